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

// Package loader parses YAML documents into ordered document values: every
// mapping becomes an *orderedmap.Map whose iteration order is the source
// order of the keys, so a load/dump round trip preserves key order.
//
// Duplicate keys within one mapping are a parse error, not a silent
// last-write-wins.
package loader

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"dirpx.dev/yamx/orderedmap"
)

// ErrDuplicateKey indicates a mapping with the same key twice.
var ErrDuplicateKey = errors.New("yamx(loader): duplicate mapping key")

// Load parses a YAML document. Mappings load as *orderedmap.Map,
// sequences as []any, scalars as the external library's native Go types.
func Load(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamx(loader): parse: %w", err)
	}
	return convert(v)
}

// SafeLoad is Load under its historical name. Loading never constructs
// arbitrary types, so both spellings are equally safe; SafeLoad exists
// for symmetry with the Safe dumper configuration.
func SafeLoad(data []byte) (any, error) {
	return Load(data)
}

// LoadString is Load over a string.
func LoadString(s string) (any, error) {
	return Load([]byte(s))
}

// convert rewrites the external library's ordered mapping type into the
// document model, rejecting duplicate keys on the way.
func convert(v any) (any, error) {
	switch t := v.(type) {
	case yaml.MapSlice:
		m := orderedmap.New()
		for _, item := range t {
			k, err := convert(item.Key)
			if err != nil {
				return nil, err
			}
			val, err := convert(item.Value)
			if err != nil {
				return nil, err
			}
			if m.Has(k) {
				return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, k)
			}
			m.Set(k, val)
		}
		return m, nil
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			c, err := convert(item)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	default:
		return v, nil
	}
}
