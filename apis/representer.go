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

// Representer is the recursion context handed to representer functions.
// Container representers call Represent on child values so that nested
// values are dispatched through the same effective registry.
type Representer interface {
	// Represent converts a child value into a node using the active
	// effective registry. It never fails for unrepresentable values
	// (those degrade to the null sentinel); errors indicate cyclic
	// documents or a representer that itself failed.
	Represent(v any) (*Node, error)

	// Style returns the style the active dump was started with.
	Style() Style
}

// RepresentFn encodes one value of its matched kind into a node.
//
// Implementations must be pure: no side effects, no retained references to
// v. A RepresentFn must not fail for well-typed input of its matched kind;
// returning an error aborts the whole dump.
type RepresentFn func(r Representer, v any) (*Node, error)

// NodeMarshaler lets a value provide its own node representation.
//
// Self-representation ranks below an exact registration for the value's
// concrete type and above structural (mapping-like / sequence-like)
// matches, so a dumper configuration can always override it.
type NodeMarshaler interface {
	MarshalNode(r Representer) (*Node, error)
}
