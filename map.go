package cobia

// CapeOpenMap is a string-keyed map with CAPE-OPEN's case-insensitive
// lookup semantics. Keys are folded on every operation, so "molWeight",
// "MOLWEIGHT" and "MolWeight" address the same entry. The key string
// reported by iteration is the folded form.
//
// CapeOpenMap is not safe for concurrent mutation; guard it externally
// the same way a plain map would be guarded.
type CapeOpenMap[V any] struct {
	entries map[string]V
}

// NewCapeOpenMap creates an empty map.
func NewCapeOpenMap[V any]() *CapeOpenMap[V] {
	return &CapeOpenMap[V]{entries: make(map[string]V)}
}

// Set stores value under the folded form of key, replacing any entry the
// key already addresses.
func (m *CapeOpenMap[V]) Set(key string, value V) {
	m.entries[foldString(key)] = value
}

// Get looks up key case-insensitively.
func (m *CapeOpenMap[V]) Get(key string) (V, bool) {
	v, ok := m.entries[foldString(key)]
	return v, ok
}

// GetKey looks up a hash key. Owned keys need no extra folding.
func (m *CapeOpenMap[V]) GetKey(key CapeStringHashKey) (V, bool) {
	v, ok := m.entries[key.folded()]
	return v, ok
}

// Delete removes the entry key addresses, if any.
func (m *CapeOpenMap[V]) Delete(key string) {
	delete(m.entries, foldString(key))
}

// Contains reports whether key addresses an entry.
func (m *CapeOpenMap[V]) Contains(key string) bool {
	_, ok := m.entries[foldString(key)]
	return ok
}

// Len returns the number of entries.
func (m *CapeOpenMap[V]) Len() int {
	return len(m.entries)
}

// Range calls fn for each entry with the folded key until fn returns
// false. Iteration order is unspecified.
func (m *CapeOpenMap[V]) Range(fn func(key string, value V) bool) {
	for k, v := range m.entries {
		if !fn(k, v) {
			return
		}
	}
}
