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

// Resolver computes the ancestry-merged representer view of a dumper
// configuration. Implementations memoize per dumper and must invalidate
// when any registry in the ancestry changes (observable via Version).
type Resolver interface {
	// Effective returns the merged registry view for d. It fails with a
	// configuration error when d's parent graph contains a cycle.
	Effective(d Dumper) (Effective, error)
}

// Effective is the read-only, fully merged view of the representers a
// dumper configuration can dispatch to.
type Effective interface {
	// Lookup returns the representer merged in for key, if any.
	Lookup(key TypeKey) (fn RepresentFn, ok bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
}
