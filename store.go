package panzoom

// Store is the external key-value collaborator that mirrors viewport state:
// the world position at the screen center and the zoom level. The host's
// state layer (undo history, tab sync, URL state) implements it.
type Store interface {
	X() float64
	Y() float64
	Scale() float64
	SetX(x float64)
	SetY(y float64)
	SetScale(scale float64)
}

// StoreSync round-trips x, y, and scale between a Viewport and a Store
// once per frame. It remembers what it last wrote, so a store value that
// differs is an external update to pull in, and a viewport value that
// differs is controller state to push out. Both directions go through
// idempotent setters, so a frame where nothing moved changes nothing.
type StoreSync struct {
	view  *Viewport
	store Store

	lastX, lastY, lastScale float64
	primed                  bool
}

// NewStoreSync creates a syncer between view and store.
func NewStoreSync(view *Viewport, store Store) *StoreSync {
	return &StoreSync{view: view, store: store}
}

// Sync performs one round-trip. Call it every frame, after Viewport.Step.
// On the first call the controller state seeds the store.
func (s *StoreSync) Sync() {
	if s.primed {
		// Pull external updates in.
		if x := s.store.X(); x != s.lastX {
			s.view.SetUserX(x)
		}
		if y := s.store.Y(); y != s.lastY {
			s.view.SetUserY(y)
		}
		if sc := s.store.Scale(); sc != s.lastScale {
			s.view.SetScale(sc, ScaleOptions{Ease: true})
		}
	}

	// Push controller state out. Scale may have been clamped, so the store
	// always converges to what the controller actually holds.
	x, y, sc := s.view.UserX(), s.view.UserY(), s.view.Scale()
	if !s.primed || x != s.lastX {
		s.store.SetX(x)
	}
	if !s.primed || y != s.lastY {
		s.store.SetY(y)
	}
	if !s.primed || sc != s.lastScale {
		s.store.SetScale(sc)
	}
	s.lastX, s.lastY, s.lastScale = x, y, sc
	s.primed = true
}
