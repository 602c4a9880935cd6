package collection

import "sync"

type SyncMap[K comparable, V any] struct {
	m   map[K]V
	mux sync.RWMutex
}

func (m *SyncMap[K, V]) Get(k K) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[k]
	return v, ok
}

func (m *SyncMap[K, V]) Put(k K, v V) {
	m.mux.Lock()
	defer m.mux.Unlock()
	m.m[k] = v
}

// Swap stores v under k and returns the previous value, if any.
func (m *SyncMap[K, V]) Swap(k K, v V) (V, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	prev, ok := m.m[k]
	m.m[k] = v
	return prev, ok
}

func (m *SyncMap[K, V]) Delete(k K) (V, bool) {
	m.mux.Lock()
	defer m.mux.Unlock()
	prev, ok := m.m[k]
	if ok {
		delete(m.m, k)
	}
	return prev, ok
}

// DeleteIf removes k only when the current value satisfies match.
func (m *SyncMap[K, V]) DeleteIf(k K, match func(V) bool) bool {
	m.mux.Lock()
	defer m.mux.Unlock()
	v, ok := m.m[k]
	if !ok || !match(v) {
		return false
	}
	delete(m.m, k)
	return true
}

func (m *SyncMap[K, V]) Range(f func(key K, value V) bool) {
	m.mux.RLock()
	snapshot := make(map[K]V, len(m.m))
	for k, v := range m.m {
		snapshot[k] = v
	}
	m.mux.RUnlock()
	for k, v := range snapshot {
		if !f(k, v) {
			return
		}
	}
}

func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.m)
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{m: make(map[K]V)}
}
