package panzoom

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler translates raw platform input into viewport pan/zoom calls.
// Handlers own no viewport state; they hold a reference to the Viewport and
// are polled once per frame from Viewport.Step.
type InputHandler interface {
	Update()
}

// TouchPoint is one active touch with its screen position.
type TouchPoint struct {
	ID   ebiten.TouchID
	X, Y float64
}

// InputSource is the polled input state the handlers read each frame.
// DeviceSource reads the real ebiten devices; tests substitute a scripted
// source so gestures can be driven without a window.
type InputSource interface {
	CursorPosition() (x, y float64)
	MouseButtonPressed(b ebiten.MouseButton) bool
	KeyPressed(k ebiten.Key) bool
	KeyJustPressed(k ebiten.Key) bool
	// Wheel returns the scroll offset accumulated since the last frame.
	Wheel() (xoff, yoff float64)
	// AppendTouches appends all active touches to pts and returns it.
	AppendTouches(pts []TouchPoint) []TouchPoint
}

// DeviceSource reads input from the real mouse, keyboard, and touch screen.
type DeviceSource struct {
	touchIDs []ebiten.TouchID
}

// NewDeviceSource creates an InputSource backed by ebiten's input devices.
func NewDeviceSource() *DeviceSource { return &DeviceSource{} }

func (d *DeviceSource) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (d *DeviceSource) MouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (d *DeviceSource) KeyPressed(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func (d *DeviceSource) KeyJustPressed(k ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(k)
}

func (d *DeviceSource) Wheel() (float64, float64) {
	return ebiten.Wheel()
}

func (d *DeviceSource) AppendTouches(pts []TouchPoint) []TouchPoint {
	d.touchIDs = ebiten.AppendTouchIDs(d.touchIDs[:0])
	for _, id := range d.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pts = append(pts, TouchPoint{ID: id, X: float64(x), Y: float64(y)})
	}
	return pts
}

// --- Mouse / keyboard ---

// MouseKeyboardHandler wires desktop input to a Viewport:
//
//   - middle-button drag, or space-held left drag, pans;
//   - the mouse wheel steps the zoom at the cursor, non-eased;
//   - '+' / '=' and '-' step the zoom around the center, eased.
type MouseKeyboardHandler struct {
	view *Viewport
	src  InputSource

	panning bool
}

// NewMouseKeyboardHandler creates a handler reading from src. A nil src
// uses the real devices.
func NewMouseKeyboardHandler(view *Viewport, src InputSource) *MouseKeyboardHandler {
	if src == nil {
		src = NewDeviceSource()
	}
	return &MouseKeyboardHandler{view: view, src: src}
}

func (h *MouseKeyboardHandler) Update() {
	x, y := h.src.CursorPosition()

	pan := h.src.MouseButtonPressed(ebiten.MouseButtonMiddle) ||
		(h.src.KeyPressed(ebiten.KeySpace) && h.src.MouseButtonPressed(ebiten.MouseButtonLeft))
	switch {
	case pan && !h.panning:
		h.panning = true
		h.view.PanStart(x, y)
	case pan:
		h.view.PanTo(x, y)
	case h.panning:
		h.panning = false
		h.view.PanEnd()
	}

	if _, dy := h.src.Wheel(); dy != 0 {
		cfg := h.view.Config()
		target := h.view.Scale()
		if dy > 0 {
			target = cfg.NextScale(target)
		} else {
			target = cfg.PreviousScale(target)
		}
		h.view.SetScale(target, ScaleOptions{Focal: &Vec2{X: x, Y: y}})
	}

	if h.src.KeyJustPressed(ebiten.KeyEqual) || h.src.KeyJustPressed(ebiten.KeyKPAdd) {
		h.view.ZoomIn()
	}
	if h.src.KeyJustPressed(ebiten.KeyMinus) || h.src.KeyJustPressed(ebiten.KeyKPSubtract) {
		h.view.ZoomOut()
	}
}

// --- Touch ---

// TouchHandler wires two-finger touch gestures to a Viewport. Exactly two
// simultaneous touches pan at their centroid and pinch-zoom proportionally
// to the change in inter-touch distance, non-eased, around the centroid.
// Any other touch count ends the gesture.
type TouchHandler struct {
	view *Viewport
	src  InputSource

	touches  []TouchPoint
	active   bool
	lastDist float64
}

// NewTouchHandler creates a handler reading from src. A nil src uses the
// real devices.
func NewTouchHandler(view *Viewport, src InputSource) *TouchHandler {
	if src == nil {
		src = NewDeviceSource()
	}
	return &TouchHandler{view: view, src: src}
}

func (h *TouchHandler) Update() {
	h.touches = h.src.AppendTouches(h.touches[:0])

	if len(h.touches) != 2 {
		if h.active {
			h.active = false
			h.view.PanEnd()
		}
		return
	}

	t0, t1 := h.touches[0], h.touches[1]
	cx := (t0.X + t1.X) / 2
	cy := (t0.Y + t1.Y) / 2
	dx := t1.X - t0.X
	dy := t1.Y - t0.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	if !h.active {
		h.active = true
		h.lastDist = dist
		h.view.PanStart(cx, cy)
		return
	}

	h.view.PanTo(cx, cy)
	if delta := dist - h.lastDist; delta != 0 {
		cfg := h.view.Config()
		h.view.SetScale(h.view.Scale()+delta*cfg.PinchScaleSensitivity,
			ScaleOptions{Focal: &Vec2{X: cx, Y: cy}})
	}
	h.lastDist = dist
}

// DefaultHandlers returns the standard desktop and touch handlers for a
// viewport, reading from the real input devices.
func DefaultHandlers(view *Viewport) []InputHandler {
	return []InputHandler{
		NewMouseKeyboardHandler(view, nil),
		NewTouchHandler(view, nil),
	}
}
