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

package apis

// Registry holds the representers a single dumper configuration declares
// locally. It never performs inheritance resolution itself; the ancestry-
// merged view is the Resolver's job.
type Registry interface {
	// Register associates key with fn. A later registration for the same
	// key overwrites the earlier one in this registry only; parent
	// configurations are never affected.
	Register(key TypeKey, fn RepresentFn) error
	// Lookup returns the locally registered representer for key, if any.
	Lookup(key TypeKey) (fn RepresentFn, ok bool)
	// Entries returns a snapshot for merging and diagnostics
	// (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Version returns a counter that increases on every successful
	// Register or Reset. Resolvers use it to invalidate memoized
	// effective registries.
	Version() uint64
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (key, representer) association in a Registry snapshot.
type Entry struct {
	// Key is the registered TypeKey.
	Key TypeKey
	// Fn is the associated representer.
	Fn RepresentFn
}
