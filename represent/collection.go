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
	"sort"
	"strconv"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/orderedmap"
)

// Sequence represents slices and arrays, recursing through r for each
// element.
func Sequence(r apis.Representer, v any) (*apis.Node, error) {
	rv := reflect.ValueOf(v)
	items := make([]*apis.Node, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		n, err := r.Represent(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return apis.NewSequence(items...), nil
}

// GoMap represents plain Go maps. Go map iteration order is random, so the
// pairs are sorted by key node to keep output deterministic; insertion
// order is only available through *orderedmap.Map.
func GoMap(r apis.Representer, v any) (*apis.Node, error) {
	rv := reflect.ValueOf(v)
	pairs := make([]apis.NodePair, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		kn, err := r.Represent(iter.Key().Interface())
		if err != nil {
			return nil, err
		}
		vn, err := r.Represent(iter.Value().Interface())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, apis.NodePair{Key: kn, Value: vn})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return lessScalar(pairs[i].Key, pairs[j].Key)
	})
	return apis.NewMapping(pairs...), nil
}

// OrderedMap represents *orderedmap.Map preserving its iteration order
// exactly: not sorted, not hashed order.
func OrderedMap(r apis.Representer, v any) (*apis.Node, error) {
	m := v.(*orderedmap.Map)
	items := m.Items()
	pairs := make([]apis.NodePair, 0, len(items))
	for _, it := range items {
		kn, err := r.Represent(it.Key)
		if err != nil {
			return nil, err
		}
		vn, err := r.Represent(it.Value)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, apis.NodePair{Key: kn, Value: vn})
	}
	return apis.NewMapping(pairs...), nil
}

// lessScalar orders key nodes: by tag first, then numerically for int and
// float scalars, then by text. Non-scalar keys sort after scalars by kind.
func lessScalar(a, b *apis.Node) bool {
	if a == nil || b == nil {
		return b != nil
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	if a.Tag != b.Tag {
		return a.Tag < b.Tag
	}
	switch a.Tag {
	case apis.TagInt:
		ai, aerr := strconv.ParseInt(a.Value, 10, 64)
		bi, berr := strconv.ParseInt(b.Value, 10, 64)
		if aerr == nil && berr == nil {
			return ai < bi
		}
	case apis.TagFloat:
		af, aerr := strconv.ParseFloat(a.Value, 64)
		bf, berr := strconv.ParseFloat(b.Value, 64)
		if aerr == nil && berr == nil {
			return af < bf
		}
	}
	return a.Value < b.Value
}
