package panzoom

import "errors"

// ErrInvalidConfiguration is returned when a Config or Animator is
// constructed with values that indicate programmer error: an unrecognized
// easing name, a non-positive duration, or inverted scale bounds.
var ErrInvalidConfiguration = errors.New("panzoom: invalid configuration")

// ErrInvalidColor is returned by ColorAnimator when given a string that is
// not a 6-hex-digit color (with optional leading '#').
var ErrInvalidColor = errors.New("panzoom: invalid color")
