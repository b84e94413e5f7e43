package logo

import "sync"

// View is one display slot bound to the key it currently wants. Results that arrive for
// any other key are dropped; the request that produced them is not canceled.
type View struct {
	mu     sync.Mutex
	wanted Key
	png    []byte
}

// Want binds the view to key, clearing the image when the key changes.
func (v *View) Want(key Key) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.wanted != key {
		v.wanted = key
		v.png = nil
	}
}

// Deliver installs res when its key is still wanted. It reports whether res was kept.
// A failed result for the wanted key leaves the view empty.
func (v *View) Deliver(res Result) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if res.Key != v.wanted {
		return false
	}
	if !res.OK() {
		v.png = nil
		return false
	}
	v.png = res.PNG
	return true
}

// Image returns the current image and the key it belongs to.
func (v *View) Image() ([]byte, Key, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.png, v.wanted, v.png != nil
}
