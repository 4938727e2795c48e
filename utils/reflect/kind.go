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

package reflect

import "reflect"

// StructuralKind is the coarse shape of a value as seen by structural
// representer dispatch.
type StructuralKind uint8

const (
	// KindOther covers values that are neither mapping- nor
	// sequence-like (scalars, structs, funcs, channels, ...).
	KindOther StructuralKind = iota
	// KindMapping covers map values of any key/element type.
	KindMapping
	// KindSequence covers slices and arrays, except []byte which is a
	// binary scalar.
	KindSequence
)

// Classify returns the structural kind of v. A nil v is KindOther.
func Classify(v any) StructuralKind {
	if v == nil {
		return KindOther
	}
	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Map:
		return KindMapping
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return KindOther
		}
		return KindSequence
	case reflect.Array:
		return KindSequence
	default:
		return KindOther
	}
}

// IsNil reports whether v is nil or a nil pointer/map/slice/interface/
// func/channel. reflect.Value.IsNil panics on other kinds, this does not.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface,
		reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
