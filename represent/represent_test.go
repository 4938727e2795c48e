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

package represent_test

import (
	"math"
	"testing"
	"time"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/config"
	"dirpx.dev/yamx/orderedmap"
	"dirpx.dev/yamx/represent"
)

// testRep is a minimal Representer for recursion in collection tests. It
// dispatches on the concrete type directly, no registry involved.
type testRep struct{}

func (r testRep) Style() apis.Style { return config.DefaultStyle() }

func (r testRep) Represent(v any) (*apis.Node, error) {
	switch v.(type) {
	case nil:
		return apis.NewScalar(apis.TagNull, "null"), nil
	case bool:
		return represent.Bool(r, v)
	case string:
		return represent.String(r, v)
	case int, int8, int16, int32, int64:
		return represent.Int(r, v)
	case float32, float64:
		return represent.Float(r, v)
	case []any:
		return represent.Sequence(r, v)
	case *orderedmap.Map:
		return represent.OrderedMap(r, v)
	default:
		return apis.NewScalar(apis.TagNull, "NULL"), nil
	}
}

func wantScalar(t *testing.T, n *apis.Node, tag, value string) {
	t.Helper()
	if n.Kind != apis.ScalarNode {
		t.Fatalf("Kind = %v, want ScalarNode", n.Kind)
	}
	if n.Tag != tag {
		t.Fatalf("Tag = %q, want %q", n.Tag, tag)
	}
	if n.Value != value {
		t.Fatalf("Value = %q, want %q", n.Value, value)
	}
}

func TestScalars(t *testing.T) {
	r := testRep{}

	n, _ := represent.Bool(r, true)
	wantScalar(t, n, apis.TagBool, "true")

	n, _ = represent.String(r, "héllo")
	wantScalar(t, n, apis.TagStr, "héllo")

	n, _ = represent.Int(r, int64(-42))
	wantScalar(t, n, apis.TagInt, "-42")

	n, _ = represent.Uint(r, uint8(255))
	wantScalar(t, n, apis.TagInt, "255")

	n, _ = represent.Binary(r, []byte("data"))
	wantScalar(t, n, apis.TagBinary, "ZGF0YQ==")
}

func TestFloat_CanonicalSpellings(t *testing.T) {
	r := testRep{}

	for _, tc := range []struct {
		in   float64
		want string
	}{
		{1, "1.0"}, // whole floats must not reload as ints
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
		{math.Inf(1), ".inf"},
		{math.Inf(-1), "-.inf"},
		{math.NaN(), ".nan"},
	} {
		n, err := represent.Float(r, tc.in)
		if err != nil {
			t.Fatalf("Float(%v): %v", tc.in, err)
		}
		wantScalar(t, n, apis.TagFloat, tc.want)
	}
}

func TestTimestamp(t *testing.T) {
	r := testRep{}
	ts := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	n, err := represent.Timestamp(r, ts)
	if err != nil {
		t.Fatalf("Timestamp: %v", err)
	}
	wantScalar(t, n, apis.TagTimestamp, "2026-08-25T10:30:00Z")
}

func TestSequence_RecursesInOrder(t *testing.T) {
	n, err := represent.Sequence(testRep{}, []any{"a", 1, true})
	if err != nil {
		t.Fatalf("Sequence: %v", err)
	}
	if n.Kind != apis.SequenceNode || len(n.Items) != 3 {
		t.Fatalf("Sequence node: kind %v, %d items", n.Kind, len(n.Items))
	}
	wantScalar(t, n.Items[0], apis.TagStr, "a")
	wantScalar(t, n.Items[1], apis.TagInt, "1")
	wantScalar(t, n.Items[2], apis.TagBool, "true")
}

func TestGoMap_SortedForDeterminism(t *testing.T) {
	m := map[string]any{"zeta": 1, "alpha": 2, "mid": 3}

	n, err := represent.GoMap(testRep{}, m)
	if err != nil {
		t.Fatalf("GoMap: %v", err)
	}
	if len(n.Pairs) != 3 {
		t.Fatalf("pairs = %d, want 3", len(n.Pairs))
	}
	want := []string{"alpha", "mid", "zeta"}
	for i, p := range n.Pairs {
		if p.Key.Value != want[i] {
			t.Fatalf("pair %d key = %q, want %q", i, p.Key.Value, want[i])
		}
	}
}

func TestGoMap_IntKeysSortNumerically(t *testing.T) {
	m := map[int]string{10: "ten", 2: "two", 1: "one"}

	n, err := represent.GoMap(testRep{}, m)
	if err != nil {
		t.Fatalf("GoMap: %v", err)
	}
	want := []string{"1", "2", "10"}
	for i, p := range n.Pairs {
		if p.Key.Value != want[i] {
			t.Fatalf("pair %d key = %q, want %q (numeric order)", i, p.Key.Value, want[i])
		}
	}
}

func TestOrderedMap_KeepsInsertionOrder(t *testing.T) {
	m := orderedmap.FromPairs(
		orderedmap.Pair{Key: "zeta", Value: 1},
		orderedmap.Pair{Key: "alpha", Value: 2},
		orderedmap.Pair{Key: "mid", Value: 3},
	)

	n, err := represent.OrderedMap(testRep{}, m)
	if err != nil {
		t.Fatalf("OrderedMap: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	for i, p := range n.Pairs {
		if p.Key.Value != want[i] {
			t.Fatalf("pair %d key = %q, want %q (insertion order)", i, p.Key.Value, want[i])
		}
	}
}

func TestObject_Struct(t *testing.T) {
	type inner struct {
		Name string `yaml:"name"`
	}
	type outer struct {
		ID      int    `yaml:"id"`
		Skip    string `yaml:"-"`
		Empty   string `yaml:"empty,omitempty"`
		Renamed inner  `yaml:"nested"`
		hidden  int
	}

	n, err := represent.Object(objectRep{}, outer{ID: 7, Skip: "x", Renamed: inner{Name: "n"}})
	if err != nil {
		t.Fatalf("Object: %v", err)
	}
	if n.Kind != apis.MappingNode {
		t.Fatalf("Kind = %v, want MappingNode", n.Kind)
	}
	// Skip is tagged out, Empty is omitted, hidden is unexported.
	if len(n.Pairs) != 2 {
		t.Fatalf("pairs = %d, want 2 (%v)", len(n.Pairs), keysOf(n))
	}
	if n.Pairs[0].Key.Value != "id" {
		t.Fatalf("pair 0 key = %q, want %q", n.Pairs[0].Key.Value, "id")
	}
	wantScalar(t, n.Pairs[0].Value, apis.TagInt, "7")
	if n.Pairs[1].Key.Value != "nested" {
		t.Fatalf("pair 1 key = %q, want %q", n.Pairs[1].Key.Value, "nested")
	}
	if n.Pairs[1].Value.Kind != apis.MappingNode {
		t.Fatalf("nested value kind = %v, want MappingNode", n.Pairs[1].Value.Kind)
	}
}

func TestObject_PointerAndNil(t *testing.T) {
	v := 42
	n, err := represent.Object(objectRep{}, &v)
	if err != nil {
		t.Fatalf("Object(&int): %v", err)
	}
	wantScalar(t, n, apis.TagInt, "42")

	var p *int
	n, err = represent.Object(objectRep{}, p)
	if err != nil {
		t.Fatalf("Object(nil *int): %v", err)
	}
	wantScalar(t, n, apis.TagNull, "null")
}

func TestObject_ByteSliceIsBinary(t *testing.T) {
	n, err := represent.Object(objectRep{}, []byte{0xDE, 0xAD})
	if err != nil {
		t.Fatalf("Object([]byte): %v", err)
	}
	if n.Tag != apis.TagBinary {
		t.Fatalf("Tag = %q, want binary", n.Tag)
	}
}

func TestObject_UnsupportedKindDegrades(t *testing.T) {
	n, err := represent.Object(objectRep{}, make(chan int))
	if err != nil {
		t.Fatalf("Object(chan): %v", err)
	}
	wantScalar(t, n, apis.TagNull, "NULL")
}

// objectRep recurses everything through Object itself, mirroring how the
// Full configuration's default entry behaves for untaught types.
type objectRep struct{}

func (r objectRep) Style() apis.Style { return config.DefaultStyle() }

func (r objectRep) Represent(v any) (*apis.Node, error) {
	if v == nil {
		return apis.NewScalar(apis.TagNull, "null"), nil
	}
	return represent.Object(r, v)
}

func keysOf(n *apis.Node) []string {
	out := make([]string, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		out = append(out, p.Key.Value)
	}
	return out
}
