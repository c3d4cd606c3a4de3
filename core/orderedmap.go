// ABOUTME: OrderedMap provides a map that remembers key insertion order.
// ABOUTME: Used for search results and favorites so rows render in arrival order.
package core

// OrderedMap maintains keys in first-insertion order. Setting an existing key
// replaces its value without moving it.
type OrderedMap[K comparable, V any] struct {
	data map[K]V
	keys []K
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V),
		keys: nil,
	}
}

// Set inserts or updates a key-value pair.
func (m *OrderedMap[K, V]) Set(key K, val V) {
	if _, exists := m.data[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.data[key] = val
}

// Get retrieves a value by key. Returns the value and whether it was found.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.data[key]
	return ok
}

// Delete removes a key-value pair.
func (m *OrderedMap[K, V]) Delete(key K) {
	if _, exists := m.data[key]; !exists {
		return
	}
	delete(m.data, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int {
	return len(m.data)
}

// Keys returns all keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	result := make([]K, len(m.keys))
	copy(result, m.keys)
	return result
}

// Values returns all values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	result := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		result = append(result, m.data[k])
	}
	return result
}

// Range iterates over entries in insertion order. Return false to stop.
func (m *OrderedMap[K, V]) Range(fn func(K, V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.data[k]) {
			break
		}
	}
}
