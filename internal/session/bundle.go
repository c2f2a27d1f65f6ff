// Package session carries screen state across in-process session
// recreation. Nothing here outlives the process: the bundle is the
// recreate-the-screen buffer, not storage.
package session

// Bundle maps state keys to flattened values. A key that was never put is
// simply absent, which is how a host tells a genuinely fresh session from a
// recreated one.
type Bundle struct {
	slots map[string][]any
}

// NewBundle returns an empty bundle.
func NewBundle() *Bundle {
	return &Bundle{slots: make(map[string][]any)}
}

// Put stores flat under key, replacing whatever was there.
func (b *Bundle) Put(key string, flat []any) {
	b.slots[key] = flat
}

// Get returns the value under key and whether the key was present at all.
func (b *Bundle) Get(key string) ([]any, bool) {
	flat, ok := b.slots[key]
	return flat, ok
}

// Delete drops key, as a host does once restored state has been consumed.
func (b *Bundle) Delete(key string) {
	delete(b.slots, key)
}

// Len reports how many keys the bundle holds.
func (b *Bundle) Len() int {
	return len(b.slots)
}
