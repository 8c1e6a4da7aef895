package tgdango

import (
	"bytes"
	"encoding/gob"
	"sync"
)

// SyncMap is a map guarded by a read-write mutex, used for the chat and bot data.
//
// It supports Gob encoding, so the persistence layers can store it as a single blob.
// Values stored behind `any` must be registered with [gob.Register] unless they are basic types.
type SyncMap[K comparable, V any] struct {
	sync.RWMutex
	M map[K]V
}

// Set adds or updates a key-value pair.
func (sm *SyncMap[K, V]) Set(key K, val V) {
	sm.Lock()
	defer sm.Unlock()

	sm.M[key] = val
}

// Get retrieves the value of the key.
//
// Returns:
//   - V: The value associated with the key.
//   - bool: True if the key exists in the map, false otherwise.
func (sm *SyncMap[K, V]) Get(key K) (val V, ok bool) {
	sm.RLock()
	defer sm.RUnlock()

	val, ok = sm.M[key]

	return
}

// GetOrSet returns the existing value of the key, or stores and returns the one built by newVal.
//
// Returns:
//   - V: The stored value.
//   - bool: True if the value already existed.
func (sm *SyncMap[K, V]) GetOrSet(key K, newVal func() V) (val V, loaded bool) {
	sm.Lock()
	defer sm.Unlock()

	if val, loaded = sm.M[key]; loaded {
		return
	}
	val = newVal()
	sm.M[key] = val

	return
}

// Del removes the key.
func (sm *SyncMap[K, V]) Del(key K) {
	sm.Lock()
	defer sm.Unlock()

	delete(sm.M, key)
}

// Len returns the number of key-value pairs.
func (sm *SyncMap[K, V]) Len() int {
	sm.RLock()
	defer sm.RUnlock()

	return len(sm.M)
}

// Range calls fun for each key-value pair until it returns false.
// The map must not be modified from inside fun.
func (sm *SyncMap[K, V]) Range(fun func(K, V) bool) {
	sm.RLock()
	defer sm.RUnlock()

	for k, v := range sm.M {
		if !fun(k, v) {
			return
		}
	}
}

// Clear removes all key-value pairs.
func (sm *SyncMap[K, V]) Clear() {
	sm.Lock()
	defer sm.Unlock()

	sm.M = make(map[K]V)
}

// Keys returns the keys in no particular order.
func (sm *SyncMap[K, V]) Keys() (keys []K) {
	sm.RLock()
	defer sm.RUnlock()

	for k := range sm.M {
		keys = append(keys, k)
	}

	return
}

// GobEncode encodes the underlying map.
func (sm *SyncMap[K, V]) GobEncode() ([]byte, error) {
	sm.RLock()
	defer sm.RUnlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(sm.M); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// GobDecode replaces the underlying map with the decoded one.
func (sm *SyncMap[K, V]) GobDecode(data []byte) error {
	sm.Lock()
	defer sm.Unlock()

	m := map[K]V{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return err
	}
	sm.M = m

	return nil
}

// NewSyncMap creates a new instance of SyncMap.
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{M: map[K]V{}}
}
