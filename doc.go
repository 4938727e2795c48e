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

// Package yamx provides an order-preserving, extensible YAML dump layer.
//
// yamx turns arbitrary Go values into YAML documents through named dumper
// configurations. A configuration bundles a per-type representer registry
// with output styling, and configurations inherit from each other so that
// variants ("Safe plus indented sequences", "Safe plus arbitrary objects")
// are declared as small deltas rather than copies.
//
// # Design
//
// The core of yamx is a read-mostly global snapshot (state). The snapshot
// holds:
//
//   - Style: the base output style (flow mode, indentation, indented
//     sequences, unicode handling). Every dump starts from its
//     configuration's style and may override it per call via options.
//
//   - Dumpers: the configuration catalogue, keyed by name. The canonical
//     entries are "Full", "Safe", and "IndentedSafe". Each dumper owns a
//     local representer registry and a list of parent dumpers it inherits
//     from.
//
//   - Resolver: computes the effective registry of a configuration by
//     merging its parents' effective registries in declaration order
//     (later parents win) and overlaying the configuration's own entries
//     on top. Results are memoized and recomputed transparently when any
//     registry in the ancestry changes. Inheritance cycles are a
//     configuration error.
//
//   - Builder: a pluggable factory that constructs the catalogue and the
//     resolver. Swapping the builder replaces the whole dumper lineup at
//     runtime.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state
// and atomically swap it in, so dump calls are lock-free on the hot path:
//
//	out, err := yamx.Dump(doc)
//	out, err := yamx.SafeDump(doc, config.WithFlow(apis.FlowNever))
//
// # Serialization pipeline
//
// A dump walks the value recursively. At each value the serializer asks
// the effective registry for a representer, most specific first:
//
//  1. An exact match on the value's dynamic type.
//  2. The value implements apis.NodeMarshaler and represents itself.
//  3. A structural match (any mapping-like type, any sequence-like type).
//  4. The configuration's default representer, if one is registered.
//
// When nothing matches, the value degrades to a null-tagged scalar with
// the literal text "NULL" instead of failing the whole document. The
// degradation is counted (Fallbacks) and logged at debug level when a
// logger is attached (SetLogger). Self-referential documents are detected
// and rejected with serializer.ErrCyclicDocument.
//
// Representers produce *apis.Node trees; the emitter renders a tree to
// text. Mapping nodes carry their pairs as an ordered slice, so insertion
// order survives all the way to the output. Values of *orderedmap.Map dump
// in their own key order; plain Go maps dump with sorted keys so output is
// deterministic.
//
// # Canonical configurations
//
//   - "Safe" represents the plain data types: booleans, strings, all
//     numeric types, binary, timestamps, sequences, ordered and unordered
//     mappings. Anything else falls back to the null sentinel.
//
//   - "Full" inherits from Safe and adds a default representer that
//     handles arbitrary Go values (structs become mappings of their
//     exported fields, pointers unwrap, and so on).
//
//   - "IndentedSafe" inherits from Safe unchanged and only flips the
//     IndentSequences style flag, so block sequences nested in mappings
//     are indented one level instead of sitting flush with their key.
//
// # Extending
//
// Callers add representers to an existing configuration:
//
//	yamx.RegisterRepresenter("Safe", apis.ExactKeyOf[MyRef](),
//	    func(r apis.Representer, v any) (*apis.Node, error) {
//	        return apis.NewScalar(apis.TagStr, v.(MyRef).String()), nil
//	    })
//
// or declare a new configuration inheriting from the catalogue:
//
//	d, _ := dumper.New("Audit", []apis.Dumper{safe}, reg, style)
//	err := yamx.AddDumper(d)
//
// AddDumper resolves the configuration eagerly, so an inheritance cycle
// surfaces at registration time, not on the first dump. Registration is a
// configuration-time activity: do it during startup, before concurrent
// dump traffic begins.
//
// # Concurrency model
//
// Reads (Dump, SafeDump, DumpWith, GetDumper, Dumpers, Style) load the
// current *state atomically and never take locks. Writes (SetStyle,
// SetBuilder, SetExt, AddDumper, SetAll) take a short build mutex,
// assemble a new state, and publish it via an atomic pointer swap,
// giving last-write-wins behavior without per-dump locking.
//
// # Scope
//
// yamx solves one job: turning Go values into readable, order-stable,
// predictable YAML, with a controlled escape hatch for types the caller
// never taught it about. Schema validation, anchors/aliases, multi-
// document streams, and YAML-to-struct binding belong to other layers;
// for the loading direction, package loader offers an order-preserving
// parse that inverts the dump.
package yamx
