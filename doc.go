// Package panzoom is an interactive viewport controller for pannable,
// zoomable canvas surfaces, plus the small value-animation engine its
// transitions are built on.
//
// The [Viewport] converts pointer, touch, and keyboard input into a camera
// transform (translation + scale) with inertial panning, focal-point
// preserving eased zoom, configurable scale bounds, and screen↔world
// coordinate mapping. The generic [Animator] is a retargetable scalar
// tween; [ColorAnimator] drives an RGB triple with hex marshalling for UI
// color transitions.
//
// # Frame driving
//
// Nothing in this package schedules its own callbacks. The host render loop
// calls [Viewport.Step] once per frame with a monotonically increasing
// millisecond timestamp, then reads the transform:
//
//	view, _ := panzoom.New(800, 600, panzoom.Config{})
//	view.AddHandler(panzoom.NewMouseKeyboardHandler(view, nil))
//	view.AddHandler(panzoom.NewTouchHandler(view, nil))
//
//	// each frame:
//	view.Step(nowMs)
//	wx, wy := view.WorldCoordinates(cursorX, cursorY)
//
// This keeps the whole engine single-threaded and synchronously testable
// without a real clock or event loop.
//
// # Input
//
// [MouseKeyboardHandler] pans on middle-drag or space-held drag, zooms at
// the cursor on wheel, and steps the zoom on '+'/'-'. [TouchHandler] pans
// and pinch-zooms with exactly two fingers. Both read through an
// [InputSource], so tests (and replays) can script input instead of
// touching real devices.
//
// See examples/infinitecanvas for a runnable [Ebitengine] demo.
//
// [Ebitengine]: https://ebitengine.org
package panzoom
