package panzoom

import "math"

// ScaleOptions controls how SetScale applies a zoom request.
type ScaleOptions struct {
	// Ease animates the transition over Config.ScaleEaseDurationMs.
	// When false the new scale is applied synchronously, which is what
	// continuous gestures (wheel, pinch) want: every event lands
	// immediately instead of queueing animations.
	Ease bool
	// Focal is the screen point whose world position is preserved across
	// the zoom. Nil means the viewport center.
	Focal *Vec2
}

// Viewport converts pan and zoom input into a camera transform over an
// infinite 2D plane. It owns translation, scale (via an internal Animator),
// and momentum state, and exposes screen↔world coordinate mapping.
//
// The viewport never schedules callbacks. The host render loop calls
// Step(nowMs) once per frame with a monotonically increasing millisecond
// timestamp; irregular frame intervals are fine since elapsed time is
// derived internally. All mutation happens either inside Step or
// synchronously inside the pan/zoom operations, so there is no locking.
type Viewport struct {
	width  float64
	height float64
	cfg    Config

	translationX float64
	translationY float64
	scale        *Animator

	// Pan and momentum state. While panning, deltaPan is the instantaneous
	// per-frame velocity; after PanEnd it decays exponentially.
	panning              bool
	panX, panY           float64
	lastPanX, lastPanY   float64
	deltaPanX, deltaPanY float64

	// Scale easing focal state: the screen point being zoomed around and
	// the world point that was under it when the zoom was requested.
	focalX, focalY           float64
	focalWorldX, focalWorldY float64

	transform    [6]float64
	invTransform [6]float64

	lastStepTime float64
	stepped      bool

	handlers []InputHandler
}

// New creates a Viewport for a surface of the given pixel dimensions.
// Zero-value Config fields take their defaults; an invalid Config fails
// construction.
func New(width, height float64, cfg Config) (*Viewport, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scale, err := NewAnimator(clamp(1, cfg.MinScale, cfg.MaxScale), cfg.ScaleEasing, cfg.ScaleEaseDurationMs)
	if err != nil {
		return nil, err
	}
	v := &Viewport{
		width:  width,
		height: height,
		cfg:    cfg,
		scale:  scale,
	}
	v.refreshTransform()
	return v, nil
}

// AddHandler attaches an input handler. Attached handlers are polled at the
// start of every Step, before any state integration.
func (v *Viewport) AddHandler(h InputHandler) {
	v.handlers = append(v.handlers, h)
}

// Resize updates the surface dimensions. The translation is kept, so the
// world point at the screen center stays centered.
func (v *Viewport) Resize(width, height float64) {
	v.width = width
	v.height = height
	v.refreshTransform()
}

// --- Panning ---

// PanStart begins a pan gesture at the given screen position and resets
// any residual momentum.
func (v *Viewport) PanStart(screenX, screenY float64) {
	v.panning = true
	v.panX, v.panY = screenX, screenY
	v.lastPanX, v.lastPanY = screenX, screenY
	v.deltaPanX, v.deltaPanY = 0, 0
}

// PanTo records the latest pointer position of an active pan gesture.
// Translation itself is integrated in Step, which is also where the
// per-frame velocity is measured.
func (v *Viewport) PanTo(screenX, screenY float64) {
	v.panX, v.panY = screenX, screenY
}

// PanEnd releases the pan gesture. The velocity observed on the most
// recent Step becomes the initial momentum for decay.
func (v *Viewport) PanEnd() {
	v.panning = false
}

// --- Per-frame update ---

// Step is the per-frame heartbeat. Call it once per rendered frame, before
// reading the transform, with a monotonically increasing timestamp in
// milliseconds.
func (v *Viewport) Step(nowMs float64) {
	for _, h := range v.handlers {
		h.Update()
	}

	elapsed := nowMs - v.lastStepTime
	if !v.stepped {
		elapsed = 0
		v.stepped = true
	}

	if v.panning {
		dx := v.panX - v.lastPanX
		dy := v.panY - v.lastPanY
		v.translationX += dx
		v.translationY += dy
		v.deltaPanX, v.deltaPanY = dx, dy
	} else if v.deltaPanX != 0 || v.deltaPanY != 0 {
		speedSq := v.deltaPanX*v.deltaPanX + v.deltaPanY*v.deltaPanY
		if speedSq < v.cfg.VelocityThreshold*v.cfg.VelocityThreshold {
			// Below the threshold momentum stops dead. Decaying further
			// would drift asymptotically without ever settling.
			v.deltaPanX, v.deltaPanY = 0, 0
		} else {
			// The undecayed delta is applied first, then shrunk for the
			// next frame: each frame plays out last frame's full velocity.
			v.translationX += v.deltaPanX
			v.translationY += v.deltaPanY
			decay := math.Pow(v.cfg.DecayFactor, elapsed/v.cfg.DecayDurationMs)
			v.deltaPanX *= decay
			v.deltaPanY *= decay
		}
	}

	if !v.scale.HasEnded() {
		v.scale.Step(nowMs)
		// Re-derive translation so the captured world point stays under
		// the focal screen point at the new eased scale.
		s := v.scale.Value()
		v.translationX = v.focalX - v.width/2 - v.focalWorldX*s
		v.translationY = v.focalY - v.height/2 - v.focalWorldY*s
	}

	v.refreshTransform()

	v.lastPanX, v.lastPanY = v.panX, v.panY
	v.lastStepTime = nowMs
}

// refreshTransform recomputes the forward and inverse affine transforms
// from the current eased scale and translation.
//
//	screen = world·scale + translation + centerOffset
func (v *Viewport) refreshTransform() {
	s := v.scale.Value()
	v.transform = [6]float64{
		s, 0, 0, s,
		v.translationX + v.width/2,
		v.translationY + v.height/2,
	}
	v.invTransform = invertAffine(v.transform)
}

// --- Zoom ---

// SetScale requests a new zoom level. The value is clamped to
// [MinScale, MaxScale] at request time, so Scale() is always in bounds.
// Requesting the scale already targeted is a no-op, which keeps external
// state-sync feedback loops quiet.
//
// A request while a previous ease is still in flight re-bases from the
// current eased scale and the currently applied transform, so neither the
// value nor the focal point jumps.
func (v *Viewport) SetScale(scale float64, opts ScaleOptions) {
	scale = clamp(scale, v.cfg.MinScale, v.cfg.MaxScale)
	if scale == v.scale.Target() {
		return
	}

	fx, fy := v.width/2, v.height/2
	if opts.Focal != nil {
		fx, fy = opts.Focal.X, opts.Focal.Y
	}
	// The focal world point must come from the transform as currently
	// applied (mid-ease included), not the pre-gesture one, or multi-step
	// zooms drift.
	wx, wy := v.WorldCoordinates(fx, fy)
	v.focalX, v.focalY = fx, fy
	v.focalWorldX, v.focalWorldY = wx, wy

	v.scale.SetTarget(scale)
	if !opts.Ease {
		v.scale.End()
		v.translationX = fx - v.width/2 - wx*scale
		v.translationY = fy - v.height/2 - wy*scale
		v.refreshTransform()
	}
}

// ZoomIn steps the zoom up via Config.NextScale, eased around the center.
func (v *Viewport) ZoomIn() {
	v.SetScale(v.cfg.NextScale(v.Scale()), ScaleOptions{Ease: true})
}

// ZoomOut steps the zoom down via Config.PreviousScale, eased around the
// center.
func (v *Viewport) ZoomOut() {
	v.SetScale(v.cfg.PreviousScale(v.Scale()), ScaleOptions{Ease: true})
}

// Scale returns the requested zoom level: the target of the internal
// animator. It is always within [MinScale, MaxScale].
func (v *Viewport) Scale() float64 { return v.scale.Target() }

// EasedScale returns the zoom level as currently applied to the transform,
// which trails Scale while a transition is easing.
func (v *Viewport) EasedScale() float64 { return v.scale.Value() }

// --- Coordinate mapping ---

// WorldCoordinates converts screen coordinates to world coordinates using
// the inverse of the currently applied transform. Correct mid-ease: the
// transform is the one computed by the last Step (or by a synchronous
// zoom/position change since).
func (v *Viewport) WorldCoordinates(screenX, screenY float64) (wx, wy float64) {
	return transformPoint(v.invTransform, screenX, screenY)
}

// ScreenCoordinates converts world coordinates to screen coordinates.
func (v *Viewport) ScreenCoordinates(worldX, worldY float64) (sx, sy float64) {
	return transformPoint(v.transform, worldX, worldY)
}

// VisibleBounds returns the world-space rectangle currently covered by the
// surface.
func (v *Viewport) VisibleBounds() Rect {
	x0, y0 := v.WorldCoordinates(0, 0)
	x1, y1 := v.WorldCoordinates(v.width, v.height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// --- Center position (external store surface) ---

// UserX returns the world-space X currently at the screen center. Together
// with UserY and Scale it is the state an external store round-trips,
// without exposing raw translation internals.
func (v *Viewport) UserX() float64 {
	wx, _ := v.WorldCoordinates(v.width/2, v.height/2)
	return wx
}

// UserY returns the world-space Y currently at the screen center.
func (v *Viewport) UserY() float64 {
	_, wy := v.WorldCoordinates(v.width/2, v.height/2)
	return wy
}

// SetUserX moves the viewport so the given world X sits at the screen
// center. A no-op when the value is already held.
func (v *Viewport) SetUserX(x float64) {
	if x == v.UserX() {
		return
	}
	v.translationX = -x * v.scale.Value()
	v.refreshTransform()
}

// SetUserY moves the viewport so the given world Y sits at the screen
// center. A no-op when the value is already held.
func (v *Viewport) SetUserY(y float64) {
	if y == v.UserY() {
		return
	}
	v.translationY = -y * v.scale.Value()
	v.refreshTransform()
}

// Config returns the viewport's effective configuration (defaults filled).
func (v *Viewport) Config() Config { return v.cfg }

// Size returns the surface dimensions in pixels.
func (v *Viewport) Size() (width, height float64) { return v.width, v.height }
