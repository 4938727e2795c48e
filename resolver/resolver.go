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

// Package resolver computes effective registries: the ancestry-merged view
// of the representers a dumper configuration dispatches with.
//
// For a dumper C with parents P1..Pn the effective registry starts empty,
// merges effective(P1) through effective(Pn) in declaration order (later
// parents overwrite earlier ones entry-for-entry), and finally overlays
// C's own registry, which always wins. This models diamond reuse: both
// "Full" and "IndentedSafe" inherit the common representers from "Safe"
// without either mutating Safe's registry.
package resolver

import (
	"errors"
	"fmt"
	"sync"

	"dirpx.dev/yamx/apis"
)

var (
	// ErrNilDumper is returned when a nil dumper is provided.
	ErrNilDumper = errors.New("yamx(resolver): nil dumper provided")
	// ErrInheritanceCycle indicates a dumper that is transitively its
	// own ancestor. This is a configuration mistake and is surfaced at
	// resolution time, never silently ignored.
	ErrInheritanceCycle = errors.New("yamx(resolver): inheritance cycle detected")
)

// New constructs a Resolver with an empty memo.
func New() apis.Resolver {
	return &resolver{memo: make(map[apis.Dumper]*effective)}
}

// resolver memoizes one effective registry per dumper. A memo entry stays
// valid while every registry in the dumper's ancestry reports the version
// it was computed against; a late registration anywhere in the ancestry
// invalidates the entry transitively on the next Effective call.
type resolver struct {
	mu   sync.Mutex
	memo map[apis.Dumper]*effective
}

// stamp records the registry version an effective view was computed from.
type stamp struct {
	reg     apis.Registry
	version uint64
}

// effective is an immutable merged view. It is never mutated after build,
// so concurrent readers need no locking.
type effective struct {
	entries map[apis.TypeKey]apis.RepresentFn
	stamps  []stamp
}

// Lookup returns the merged representer for key, if any.
func (e *effective) Lookup(key apis.TypeKey) (apis.RepresentFn, bool) {
	fn, ok := e.entries[key]
	return fn, ok
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (e *effective) Entries() []apis.Entry {
	out := make([]apis.Entry, 0, len(e.entries))
	for k, fn := range e.entries {
		out = append(out, apis.Entry{Key: k, Fn: fn})
	}
	return out
}

// valid reports whether every ancestry registry still has the version this
// view was merged from.
func (e *effective) valid() bool {
	for _, s := range e.stamps {
		if s.reg.Version() != s.version {
			return false
		}
	}
	return true
}

// Effective returns the merged registry view for d, computing or reusing
// the memoized view as needed.
func (r *resolver) Effective(d apis.Dumper) (apis.Effective, error) {
	if d == nil {
		return nil, ErrNilDumper
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolve(d, make(map[apis.Dumper]bool))
}

// resolve builds effective(d) recursively. onPath holds the dumpers on the
// current descent; revisiting one means d is transitively its own
// ancestor.
func (r *resolver) resolve(d apis.Dumper, onPath map[apis.Dumper]bool) (*effective, error) {
	if onPath[d] {
		return nil, fmt.Errorf("%w: %q", ErrInheritanceCycle, d.Name())
	}
	if e, ok := r.memo[d]; ok && e.valid() {
		return e, nil
	}

	onPath[d] = true
	defer delete(onPath, d)

	merged := make(map[apis.TypeKey]apis.RepresentFn)
	var stamps []stamp

	// Parents first, in declaration order: later parents overwrite
	// earlier ones on key collision.
	for _, p := range d.Parents() {
		if p == nil {
			return nil, fmt.Errorf("%w: parent of %q", ErrNilDumper, d.Name())
		}
		pe, err := r.resolve(p, onPath)
		if err != nil {
			return nil, err
		}
		for k, fn := range pe.entries {
			merged[k] = fn
		}
		stamps = append(stamps, pe.stamps...)
	}

	// The dumper's own registry always wins over any parent entry.
	if own := d.Registry(); own != nil {
		for _, ent := range own.Entries() {
			merged[ent.Key] = ent.Fn
		}
		stamps = append(stamps, stamp{reg: own, version: own.Version()})
	}

	e := &effective{entries: merged, stamps: stamps}
	r.memo[d] = e
	return e, nil
}
