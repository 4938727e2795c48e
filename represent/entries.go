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

package represent

import (
	"reflect"
	"time"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/orderedmap"
)

// SafeEntries returns the built-in representers of the Safe configuration:
// the plain document types only. The list is rebuilt on every call so
// callers can mutate their registries freely.
func SafeEntries() []apis.Entry {
	entries := []apis.Entry{
		{Key: apis.ExactKey(reflect.TypeOf(false)), Fn: Bool},
		{Key: apis.ExactKey(reflect.TypeOf("")), Fn: String},
		{Key: apis.ExactKey(reflect.TypeOf([]byte(nil))), Fn: Binary},
		{Key: apis.ExactKey(reflect.TypeOf(time.Time{})), Fn: Timestamp},
		{Key: apis.ExactKey(reflect.TypeOf((*orderedmap.Map)(nil))), Fn: OrderedMap},
		{Key: apis.MappingKey(), Fn: GoMap},
		{Key: apis.SequenceKey(), Fn: Sequence},
	}
	for _, v := range []any{int(0), int8(0), int16(0), int32(0), int64(0)} {
		entries = append(entries, apis.Entry{Key: apis.ExactKeyOf(v), Fn: Int})
	}
	for _, v := range []any{uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0)} {
		entries = append(entries, apis.Entry{Key: apis.ExactKeyOf(v), Fn: Uint})
	}
	for _, v := range []any{float32(0), float64(0)} {
		entries = append(entries, apis.Entry{Key: apis.ExactKeyOf(v), Fn: Float})
	}
	return entries
}

// FullEntries returns the representers Full adds on top of Safe: the
// reflective default that catches every value before the built-in null
// sentinel would.
func FullEntries() []apis.Entry {
	return []apis.Entry{
		{Key: apis.DefaultKey(), Fn: Object},
	}
}
