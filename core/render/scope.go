package render

import "sync"

// viewMu serialises every caller that changes the active view. The active
// view is process-wide state, so two scopes must never interleave.
var viewMu sync.Mutex

// Scope is exclusive ownership of the active view. Release activates the
// restore view passed to Acquire, or the renderer's default view when it was
// nil, and must run on every exit path:
//
//	scope := render.Acquire(r, cam)
//	defer scope.Release()
type Scope struct {
	r       Renderer
	restore View
	once    sync.Once
}

// Acquire blocks until no other scope is held. A nil restore means the
// renderer's default view is restored on Release.
func Acquire(r Renderer, restore View) *Scope {
	viewMu.Lock()
	if restore == nil {
		restore = r.DefaultView()
	}
	return &Scope{r: r, restore: restore}
}

// Redirect makes v the active view for the rest of the scope.
func (s *Scope) Redirect(v View) {
	s.r.SetView(v)
}

// Release restores the captured view and unlocks. It is safe to call twice.
func (s *Scope) Release() {
	s.once.Do(func() {
		s.r.SetView(s.restore)
		viewMu.Unlock()
	})
}
