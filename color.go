package panzoom

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorAnimator tweens an RGB color by driving three channel Animators in
// lockstep. The external interface is always a 6-hex-digit string (optional
// leading '#'); internally each channel is a linear value in [0, 255].
type ColorAnimator struct {
	r, g, b *Animator
}

// NewColorAnimator creates a ColorAnimator at rest on the given color.
// Easing and duration follow the same rules as NewAnimator.
func NewColorAnimator(hex string, easing string, durationMs float64) (*ColorAnimator, error) {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return nil, err
	}
	ca := &ColorAnimator{}
	if ca.r, err = NewAnimator(r, easing, durationMs); err != nil {
		return nil, err
	}
	if ca.g, err = NewAnimator(g, easing, durationMs); err != nil {
		return nil, err
	}
	if ca.b, err = NewAnimator(b, easing, durationMs); err != nil {
		return nil, err
	}
	return ca, nil
}

// SetTarget starts animating toward the given color. Retargeting mid-flight
// re-bases each channel from its current value, same as Animator.SetTarget.
func (c *ColorAnimator) SetTarget(hex string) error {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return err
	}
	c.r.SetTarget(r)
	c.g.SetTarget(g)
	c.b.SetTarget(b)
	return nil
}

// SetValue snaps to the given color with no animation.
func (c *ColorAnimator) SetValue(hex string) error {
	r, g, b, err := parseHexColor(hex)
	if err != nil {
		return err
	}
	c.r.SetValue(r)
	c.g.SetValue(g)
	c.b.SetValue(b)
	return nil
}

// Step advances all three channels to the given timestamp.
func (c *ColorAnimator) Step(nowMs float64) {
	c.r.Step(nowMs)
	c.g.Step(nowMs)
	c.b.Step(nowMs)
}

// End force-completes all three channels immediately.
func (c *ColorAnimator) End() {
	c.r.End()
	c.g.End()
	c.b.End()
}

// HasEnded reports whether every channel has reached its target.
func (c *ColorAnimator) HasEnded() bool {
	return c.r.HasEnded() && c.g.HasEnded() && c.b.HasEnded()
}

// Value returns the current color as "#rrggbb". Channels are rounded to the
// nearest integer before encoding so mid-animation values stay clean hex.
func (c *ColorAnimator) Value() string {
	return encodeHexColor(c.r.Value(), c.g.Value(), c.b.Value())
}

// Target returns the color the animation is heading toward as "#rrggbb".
func (c *ColorAnimator) Target() string {
	return encodeHexColor(c.r.Target(), c.g.Target(), c.b.Target())
}

// parseHexColor decodes a 6-hex-digit color into channels in [0, 255].
// Exactly six digits are required; the shorthand "#abc" form is rejected.
func parseHexColor(s string) (r, g, b float64, err error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, c := range h {
		if !isHexDigit(c) {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	col, err := colorful.Hex("#" + h)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return col.R * 255, col.G * 255, col.B * 255, nil
}

// encodeHexColor rounds and clamps each channel, then encodes "#rrggbb".
func encodeHexColor(r, g, b float64) string {
	return colorful.Color{
		R: clampChannel(r) / 255,
		G: clampChannel(g) / 255,
		B: clampChannel(b) / 255,
	}.Hex()
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func clampChannel(v float64) float64 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
