package logo

import (
	"context"
	"sync"
)

// Renderer keeps one View per slot (a team id) in front of a Fetcher.
type Renderer struct {
	fetcher *Fetcher

	mu    sync.Mutex
	views map[string]*View
}

// NewRenderer constructs a Renderer.
func NewRenderer(fetcher *Fetcher) *Renderer {
	return &Renderer{fetcher: fetcher, views: make(map[string]*View)}
}

// Render returns the PNG for key in slot. A stored image for the same key is reused.
// A fresh result is always returned to the caller but only kept in the slot when no
// newer key was requested for it while the fetch was running.
func (r *Renderer) Render(ctx context.Context, slot string, key Key) Result {
	key.Size = ClampSize(key.Size)
	view := r.view(slot)
	view.Want(key)
	if png, current, ok := view.Image(); ok && current == key {
		return Result{Key: key, Outcome: OutcomeRendered, PNG: png}
	}

	res := r.fetcher.Fetch(ctx, key)
	view.Deliver(res)
	return res
}

func (r *Renderer) view(slot string) *View {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.views[slot]
	if !ok {
		v = &View{}
		r.views[slot] = v
	}
	return v
}
