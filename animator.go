package panzoom

import "fmt"

// Animator tweens a single float64 toward a target over a fixed duration.
// It is driven entirely by the caller: Step(nowMs) advances the value using
// a monotonically increasing timestamp in milliseconds. Nothing is scheduled
// internally, so an Animator is synchronously testable without a real clock.
//
// Retargeting mid-flight never jumps: SetTarget re-bases the start of the
// tween to the current interpolated value and re-anchors the timer on the
// next Step call.
type Animator struct {
	start   float64
	current float64
	target  float64

	easeFn   EaseFunc
	duration float64 // milliseconds

	startTime float64
	// pending marks a retarget whose timer has not been anchored yet.
	// Step is the only place a timestamp is available, so the first Step
	// after SetTarget records it as the tween's start time.
	pending bool
}

// NewAnimator creates an Animator holding initialValue, at rest
// (start == current == target). The easing name is resolved immediately;
// an unknown name or non-positive duration fails construction.
func NewAnimator(initialValue float64, easing string, durationMs float64) (*Animator, error) {
	fn, err := EaseByName(easing)
	if err != nil {
		return nil, err
	}
	if durationMs <= 0 {
		return nil, fmt.Errorf("%w: animator duration %v ms, must be positive", ErrInvalidConfiguration, durationMs)
	}
	return &Animator{
		start:    initialValue,
		current:  initialValue,
		target:   initialValue,
		easeFn:   fn,
		duration: durationMs,
	}, nil
}

// Step advances the animation to the given timestamp (milliseconds on any
// monotonic clock). No-op once the target has been reached.
func (a *Animator) Step(nowMs float64) {
	if a.HasEnded() {
		return
	}
	if a.pending {
		a.startTime = nowMs
		a.pending = false
	}
	progress := (nowMs - a.startTime) / a.duration
	if progress >= 1 {
		a.current = a.target
		return
	}
	if progress < 0 {
		progress = 0
	}
	a.current = a.start + a.easeFn(progress)*(a.target-a.start)
}

// SetTarget retargets the animation. Calling it with the current target is
// a no-op, so a finished animation is not restarted and an in-flight one is
// not re-anchored. Otherwise the tween re-bases from the current value.
func (a *Animator) SetTarget(value float64) {
	if value == a.target {
		return
	}
	a.start = a.current
	a.target = value
	a.pending = true
}

// SetValue snaps the animator to value with no animation.
func (a *Animator) SetValue(value float64) {
	a.start = value
	a.current = value
	a.target = value
	a.pending = false
}

// End force-completes the animation immediately.
func (a *Animator) End() {
	a.start = a.target
	a.current = a.target
	a.pending = false
}

// Value returns the current interpolated value.
func (a *Animator) Value() float64 { return a.current }

// Target returns the value the animation is heading toward.
func (a *Animator) Target() float64 { return a.target }

// HasEnded reports whether the animation has reached its target.
func (a *Animator) HasEnded() bool { return a.current == a.target }
