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

// Identity is a comparable handle for a reference-typed value, used to
// detect documents that directly or indirectly contain themselves. Two
// values share an Identity iff they alias the same underlying data.
type Identity struct {
	typ reflect.Type
	ptr uintptr
}

// IdentityOf returns the identity of v and whether v is a reference type
// that can participate in a cycle (pointer, map, or slice). Scalars and
// other value types cannot alias themselves and report ok == false.
func IdentityOf(v any) (id Identity, ok bool) {
	if v == nil {
		return Identity{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return Identity{}, false
		}
		return Identity{typ: rv.Type(), ptr: rv.Pointer()}, true
	default:
		return Identity{}, false
	}
}
