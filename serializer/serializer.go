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

// Package serializer walks a document value and converts it into a node
// tree using the effective registry of the active dumper configuration.
//
// Dispatch per value runs the strategy chain in decreasing specificity.
// When nothing matches, the value degrades to the built-in null sentinel
// (scalar `NULL` with the null tag) instead of failing; the only fatal
// conditions are a representer error and a document that contains itself.
package serializer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/strategy"
	uref "dirpx.dev/yamx/utils/reflect"
)

// ErrCyclicDocument indicates a document value that directly or indirectly
// contains itself. It aborts the dump call it occurred in and nothing
// else; shared registries are unaffected.
var ErrCyclicDocument = errors.New("yamx(serializer): document contains itself")

// SentinelText is the scalar text of the null sentinel emitted for values
// no representer matched.
const SentinelText = "NULL"

// Option adjusts a Serializer during construction.
type Option func(*Serializer)

// WithLogger attaches a logger for fallback diagnostics. Fallbacks are
// logged at debug level; they are not errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Serializer) { s.log = l }
}

// WithStrategies replaces the default dispatch chain. Mainly for tests.
func WithStrategies(strats ...apis.Strategy) Option {
	return func(s *Serializer) { s.strats = strats }
}

// New constructs a Serializer over an effective registry and a style.
func New(eff apis.Effective, style apis.Style, opts ...Option) *Serializer {
	s := &Serializer{
		eff:    eff,
		style:  style,
		strats: strategy.DefaultChain(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Serializer converts document values into node trees. It is stateless
// across Serialize calls except for the fallback counter and safe for
// concurrent use.
type Serializer struct {
	eff       apis.Effective
	style     apis.Style
	strats    []apis.Strategy
	log       *slog.Logger
	fallbacks atomic.Uint64
}

// Serialize converts doc into a node tree.
func (s *Serializer) Serialize(doc any) (*apis.Node, error) {
	w := &walker{s: s, onPath: make(map[uref.Identity]bool)}
	return w.Represent(doc)
}

// Fallbacks returns how many values degraded to the null sentinel over
// the serializer's lifetime.
func (s *Serializer) Fallbacks() uint64 {
	return s.fallbacks.Load()
}

// walker carries the per-call descent state. It implements
// apis.Representer, so representer functions recurse through it.
type walker struct {
	s *Serializer
	// onPath holds the identities of the reference values on the
	// current descent path. Revisiting one means the document contains
	// itself. Sharing without a cycle (the same value under two
	// different keys) is fine: identities are removed on ascent.
	onPath map[uref.Identity]bool
}

var _ apis.Representer = (*walker)(nil)

// Style returns the style the dump was started with.
func (w *walker) Style() apis.Style { return w.s.style }

// Represent converts one value, recursing through the same walker.
func (w *walker) Represent(v any) (*apis.Node, error) {
	if uref.IsNil(v) {
		return apis.NewScalar(apis.TagNull, "null"), nil
	}

	if id, ok := uref.IdentityOf(v); ok {
		if w.onPath[id] {
			return nil, fmt.Errorf("%w: %T", ErrCyclicDocument, v)
		}
		w.onPath[id] = true
		defer delete(w.onPath, id)
	}

	for _, st := range w.s.strats {
		if st == nil {
			continue
		}
		if fn, ok := st.TryResolve(v, w.s.eff); ok {
			return fn(w, v)
		}
	}

	// No representer matched. Degrade to the null sentinel, count it,
	// and keep going: an unrepresentable value must never abort the
	// dump.
	w.s.fallbacks.Add(1)
	if w.s.log != nil {
		w.s.log.Debug("no representer matched, emitting null sentinel",
			"type", fmt.Sprintf("%T", v))
	}
	return apis.NewScalar(apis.TagNull, SentinelText), nil
}
