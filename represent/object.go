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
	"strings"

	"dirpx.dev/yamx/apis"
)

// Object is the default representer of the Full configuration. It covers
// arbitrary Go values reflectively: pointers are dereferenced, structs
// become mappings of their exported fields, defined types fall back to
// their underlying kind. Values no representation exists for (channels,
// funcs, complex numbers) degrade to the null sentinel instead of
// failing.
func Object(r apis.Representer, v any) (*apis.Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return apis.NewScalar(apis.TagNull, "null"), nil
		}
		return r.Represent(rv.Elem().Interface())
	case reflect.Struct:
		return structMapping(r, rv)
	case reflect.Map:
		return GoMap(r, v)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return Binary(r, rv.Bytes())
		}
		return Sequence(r, v)
	case reflect.Bool:
		return Bool(r, v)
	case reflect.String:
		return String(r, v)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(r, v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return Uint(r, v)
	case reflect.Float32, reflect.Float64:
		return Float(r, v)
	default:
		return apis.NewScalar(apis.TagNull, "NULL"), nil
	}
}

// structMapping encodes the exported fields of a struct in declaration
// order. A `yaml` field tag renames the key, "-" skips the field, and the
// omitempty flag drops zero values.
func structMapping(r apis.Representer, rv reflect.Value) (*apis.Node, error) {
	t := rv.Type()
	pairs := make([]apis.NodePair, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := f.Name
		omitEmpty := false
		if tag, ok := f.Tag.Lookup("yaml"); ok {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
			for _, p := range parts[1:] {
				if p == "omitempty" {
					omitEmpty = true
				}
			}
		}
		fv := rv.Field(i)
		if omitEmpty && fv.IsZero() {
			continue
		}
		vn, err := r.Represent(fv.Interface())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, apis.NodePair{
			Key:   apis.NewScalar(apis.TagStr, name),
			Value: vn,
		})
	}
	return apis.NewMapping(pairs...), nil
}
