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

// FlowMode selects between inline ("{a: 1}") and block (multi-line,
// indented) rendering of containers.
type FlowMode uint8

const (
	// FlowAuto renders containers whose children are all scalars inline
	// and everything else in block form.
	FlowAuto FlowMode = iota
	// FlowNever renders every container in block form.
	FlowNever
	// FlowAlways renders every container inline.
	FlowAlways
)

// String returns the option-file spelling of the mode.
func (m FlowMode) String() string {
	switch m {
	case FlowAuto:
		return "auto"
	case FlowNever:
		return "never"
	case FlowAlways:
		return "always"
	default:
		return "invalid"
	}
}

// Valid reports whether m is one of the three defined modes.
func (m FlowMode) Valid() bool { return m <= FlowAlways }

// Style carries the presentation knobs of a dump. It is passed by value
// and treated as immutable by implementations; it never affects encoded
// content, only its textual shape.
type Style struct {
	// AllowUnicode emits non-ASCII characters literally rather than
	// escaped.
	AllowUnicode bool

	// Flow controls inline versus block rendering of containers.
	Flow FlowMode

	// Indent is the number of spaces per block indentation level.
	Indent int

	// IndentSequences indents block sequence items one extra level
	// relative to the enclosing mapping key, instead of the compact
	// list-under-map form.
	IndentSequences bool
}
