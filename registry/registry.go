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

package registry

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/yamx/apis"
)

var (
	// ErrZeroKey is returned when a zero TypeKey is provided.
	ErrZeroKey = errors.New("yamx(registry): zero TypeKey provided")
	// ErrNilType is returned for an exact key carrying a nil type.
	ErrNilType = errors.New("yamx(registry): exact key with nil reflect.Type")
	// ErrNilRepresenter is returned when a nil representer is provided.
	ErrNilRepresenter = errors.New("yamx(registry): nil representer provided")
)

// New constructs an empty Registry.
func New() apis.Registry {
	return &registry{m: make(map[apis.TypeKey]apis.RepresentFn)}
}

// registry is a mutex-guarded Registry implementation. Registration is a
// configuration-time operation; the read path is shared by concurrent
// dumps, hence the RWMutex.
type registry struct {
	mu sync.RWMutex
	// m maps TypeKey to the locally registered representer.
	m map[apis.TypeKey]apis.RepresentFn
	// version counts successful mutations for effective-cache
	// invalidation.
	version atomic.Uint64
}

// Register associates key with fn, overwriting any prior entry for key in
// this registry only.
func (r *registry) Register(key apis.TypeKey, fn apis.RepresentFn) error {
	if key.IsZero() {
		return ErrZeroKey
	}
	if key.Kind() == apis.KeyExact && key.Type() == nil {
		return ErrNilType
	}
	if fn == nil {
		return ErrNilRepresenter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.m[key] = fn
	r.version.Add(1)
	return nil
}

// Lookup returns the locally registered representer for key, if any.
// It never consults parent configurations.
func (r *registry) Lookup(key apis.TypeKey) (apis.RepresentFn, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.m[key]
	return fn, ok
}

// Entries returns a snapshot for merging and diagnostics.
func (r *registry) Entries() []apis.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]apis.Entry, 0, len(r.m))
	for k, fn := range r.m {
		entries = append(entries, apis.Entry{Key: k, Fn: fn})
	}
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Version returns the mutation counter.
func (r *registry) Version() uint64 {
	return r.version.Load()
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[apis.TypeKey]apis.RepresentFn)
	r.version.Add(1)
}
