package panzoom

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

// EaseFunc maps normalized animation progress to eased progress. Inputs are
// in [0, 1] and any valid curve satisfies f(0) = 0 and f(1) = 1.
type EaseFunc func(t float64) float64

// normalized adapts a gween easing function to the [0,1] → [0,1] form used
// throughout this package: begin 0, change 1, duration 1.
func normalized(fn ease.TweenFunc) EaseFunc {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Built-in easing curves.
var (
	Linear     = normalized(ease.Linear)
	OutCubic   = normalized(ease.OutCubic)
	InOutCubic = normalized(ease.InOutCubic)
	OutExpo    = normalized(ease.OutExpo)
)

var easings = map[string]EaseFunc{
	"linear":       Linear,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"out-expo":     OutExpo,
}

// EaseByName resolves an easing identifier to its curve. Unknown names are
// a configuration error, not a silent default: animated behavior built on
// the wrong curve is much harder to notice than a failed construction.
func EaseByName(name string) (EaseFunc, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfiguration, name)
	}
	return fn, nil
}
