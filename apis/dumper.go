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

// Dumper is a named dumper configuration: the representers it declares
// itself, the configurations it inherits from, and its style overrides.
//
// A dumper with no parents and an empty registry can represent nothing;
// every value it is asked to serialize degrades to the null sentinel.
type Dumper interface {
	// Name returns the configuration name (e.g. "Safe").
	Name() string
	// Parents returns the configurations this dumper inherits from, in
	// declaration order. Earlier parents are overridden by later ones on
	// key collision; the dumper's own registry overrides them all.
	Parents() []Dumper
	// Registry returns the dumper's own (local) registry.
	Registry() Registry
	// Style returns the style the dumper emits with.
	Style() Style
}
