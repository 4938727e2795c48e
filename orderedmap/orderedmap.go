/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package orderedmap provides an associative container that remembers the
// insertion order of its keys.
//
// Iteration order is insertion order at all times: updating an existing
// key keeps its original position, inserting a new key appends it at the
// end. Equality deliberately ignores order, because the serialization
// format does not guarantee key order stability across round-trips; two
// maps with the same unordered key/value content are equal even when their
// Items() sequences differ.
package orderedmap

import "reflect"

// Pair is a single key/value entry.
type Pair struct {
	Key   any
	Value any
}

// Map is an insertion-ordered associative container.
//
// Keys must be comparable in the sense of the Go language specification;
// storing a non-comparable key panics, same as with a built-in map. The
// zero Map is not ready for use, construct instances with New or
// FromPairs. Map is not safe for concurrent mutation.
type Map struct {
	idx     map[any]int
	entries []Pair
}

// New returns an empty Map.
func New() *Map {
	return &Map{idx: make(map[any]int)}
}

// FromPairs returns a Map populated from pairs in order. Later pairs with
// a duplicate key overwrite the earlier value but keep the earlier
// position.
func FromPairs(pairs ...Pair) *Map {
	m := New()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Set inserts or updates key. Existing keys keep their position; new keys
// are appended. Amortized O(1).
func (m *Map) Set(key, value any) {
	if i, ok := m.idx[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.idx[key] = len(m.entries)
	m.entries = append(m.entries, Pair{Key: key, Value: value})
}

// Get returns the value stored for key.
func (m *Map) Get(key any) (any, bool) {
	i, ok := m.idx[key]
	if !ok {
		return nil, false
	}
	return m.entries[i].Value, true
}

// Has reports whether key is present.
func (m *Map) Has(key any) bool {
	_, ok := m.idx[key]
	return ok
}

// Delete removes key and reports whether it was present. O(n): positions
// of later keys shift down by one.
func (m *Map) Delete(key any) bool {
	i, ok := m.idx[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.idx, key)
	for j := i; j < len(m.entries); j++ {
		m.idx[m.entries[j].Key] = j
	}
	return true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.entries)
}

// Items returns a snapshot of the entries in insertion order. The snapshot
// is not invalidated by later reads or writes.
func (m *Map) Items() []Pair {
	out := make([]Pair, len(m.entries))
	copy(out, m.entries)
	return out
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []any {
	out := make([]any, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Key
	}
	return out
}

// Equal reports whether m and other hold the same unordered key/value
// content. Order is never part of equality. Nested *Map values are
// compared with Equal as well; everything else with reflect.DeepEqual.
func (m *Map) Equal(other *Map) bool {
	if m == nil || other == nil {
		return m == other
	}
	if len(m.entries) != len(other.entries) {
		return false
	}
	for _, e := range m.entries {
		ov, ok := other.Get(e.Key)
		if !ok {
			return false
		}
		if !valueEqual(e.Value, ov) {
			return false
		}
	}
	return true
}

func valueEqual(a, b any) bool {
	am, aok := a.(*Map)
	bm, bok := b.(*Map)
	if aok || bok {
		if !aok || !bok {
			return false
		}
		return am.Equal(bm)
	}
	return reflect.DeepEqual(a, b)
}
