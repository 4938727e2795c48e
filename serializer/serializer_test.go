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

package serializer_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/builder"
	"dirpx.dev/yamx/config"
	"dirpx.dev/yamx/orderedmap"
	"dirpx.dev/yamx/serializer"
)

// effectiveFor resolves the named canonical configuration through the
// default builder, exactly as the facade does it.
func effectiveFor(t *testing.T, name string) apis.Effective {
	t.Helper()
	b := builder.New()
	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)
	d, ok := dumpers[name]
	if !ok {
		t.Fatalf("unknown configuration %q", name)
	}
	eff, err := b.BuildResolver(nil).Effective(d)
	if err != nil {
		t.Fatalf("Effective(%s): %v", name, err)
	}
	return eff
}

func newSerializer(t *testing.T, name string) *serializer.Serializer {
	t.Helper()
	return serializer.New(effectiveFor(t, name), config.DefaultStyle())
}

func TestSerialize_Scalars(t *testing.T) {
	s := newSerializer(t, "Safe")

	for _, tc := range []struct {
		in   any
		tag  string
		text string
	}{
		{nil, apis.TagNull, "null"},
		{true, apis.TagBool, "true"},
		{"hi", apis.TagStr, "hi"},
		{42, apis.TagInt, "42"},
		{2.5, apis.TagFloat, "2.5"},
	} {
		n, err := s.Serialize(tc.in)
		if err != nil {
			t.Fatalf("Serialize(%v): %v", tc.in, err)
		}
		if n.Tag != tc.tag || n.Value != tc.text {
			t.Fatalf("Serialize(%v) = (%q,%q), want (%q,%q)",
				tc.in, n.Tag, n.Value, tc.tag, tc.text)
		}
	}
}

func TestSerialize_OrderedMappingKeepsOrder(t *testing.T) {
	s := newSerializer(t, "Safe")

	m := orderedmap.FromPairs(
		orderedmap.Pair{Key: "z", Value: 1},
		orderedmap.Pair{Key: "a", Value: 2},
	)
	n, err := s.Serialize(m)
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if n.Kind != apis.MappingNode || len(n.Pairs) != 2 {
		t.Fatalf("unexpected node:\n%s", spew.Sdump(n))
	}
	if n.Pairs[0].Key.Value != "z" || n.Pairs[1].Key.Value != "a" {
		t.Fatalf("order lost: got [%q %q], want [z a]",
			n.Pairs[0].Key.Value, n.Pairs[1].Key.Value)
	}
}

func TestSerialize_UnrepresentableDegradesNotFails(t *testing.T) {
	s := newSerializer(t, "Safe")

	// Safe has no default entry, so a struct has no representer.
	n, err := s.Serialize(struct{ X int }{X: 1})
	if err != nil {
		t.Fatalf("Serialize(struct): unexpected error: %v", err)
	}
	if n.Tag != apis.TagNull || n.Value != serializer.SentinelText {
		t.Fatalf("fallback node = (%q,%q), want (null tag, %q)",
			n.Tag, n.Value, serializer.SentinelText)
	}
	if got := s.Fallbacks(); got != 1 {
		t.Fatalf("Fallbacks() = %d, want 1", got)
	}
}

func TestSerialize_FallbackInsideContainer(t *testing.T) {
	s := newSerializer(t, "Safe")

	n, err := s.Serialize([]any{"ok", make(chan int), "also ok"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if len(n.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(n.Items))
	}
	if n.Items[1].Value != serializer.SentinelText {
		t.Fatalf("middle item = %q, want sentinel", n.Items[1].Value)
	}
	if n.Items[0].Value != "ok" || n.Items[2].Value != "also ok" {
		t.Fatalf("siblings damaged:\n%s", spew.Sdump(n))
	}
}

func TestSerialize_FullHandlesStructsViaDefault(t *testing.T) {
	s := newSerializer(t, "Full")

	n, err := s.Serialize(struct {
		Name string `yaml:"name"`
	}{Name: "x"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if n.Kind != apis.MappingNode || len(n.Pairs) != 1 {
		t.Fatalf("unexpected node:\n%s", spew.Sdump(n))
	}
	if n.Pairs[0].Key.Value != "name" || n.Pairs[0].Value.Value != "x" {
		t.Fatalf("struct mapping = %q:%q, want name:x",
			n.Pairs[0].Key.Value, n.Pairs[0].Value.Value)
	}
	if s.Fallbacks() != 0 {
		t.Fatalf("Fallbacks() = %d, want 0", s.Fallbacks())
	}
}

func TestSerialize_CyclicDocument(t *testing.T) {
	s := newSerializer(t, "Safe")

	m := map[string]any{}
	m["self"] = m

	if _, err := s.Serialize(m); !errors.Is(err, serializer.ErrCyclicDocument) {
		t.Fatalf("cyclic map: want ErrCyclicDocument, got %v", err)
	}

	sl := make([]any, 1)
	sl[0] = sl
	if _, err := s.Serialize(sl); !errors.Is(err, serializer.ErrCyclicDocument) {
		t.Fatalf("cyclic slice: want ErrCyclicDocument, got %v", err)
	}
}

func TestSerialize_SharedValueIsNotACycle(t *testing.T) {
	s := newSerializer(t, "Safe")

	shared := []any{"x"}
	n, err := s.Serialize([]any{shared, shared})
	if err != nil {
		t.Fatalf("shared value: unexpected error: %v", err)
	}
	if len(n.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(n.Items))
	}
}

// selfNode represents itself through the marshaler rank.
type selfNode struct{ id string }

func (s selfNode) MarshalNode(_ apis.Representer) (*apis.Node, error) {
	return apis.NewScalar(apis.TagStr, "self:"+s.id), nil
}

func TestSerialize_NodeMarshaler(t *testing.T) {
	s := newSerializer(t, "Safe")

	n, err := s.Serialize(selfNode{id: "a"})
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	if n.Value != "self:a" {
		t.Fatalf("marshaler value = %q, want self:a", n.Value)
	}
	if s.Fallbacks() != 0 {
		t.Fatalf("Fallbacks() = %d, want 0", s.Fallbacks())
	}
}

// errRep always fails; representer errors must abort the dump.
func errRep(_ apis.Representer, _ any) (*apis.Node, error) {
	return nil, errors.New("boom")
}

type fixedEffective map[apis.TypeKey]apis.RepresentFn

func (f fixedEffective) Lookup(key apis.TypeKey) (apis.RepresentFn, bool) {
	fn, ok := f[key]
	return fn, ok
}
func (f fixedEffective) Entries() []apis.Entry { return nil }

func TestSerialize_RepresenterErrorPropagates(t *testing.T) {
	eff := fixedEffective{apis.ExactKeyOf(""): errRep}
	s := serializer.New(eff, config.DefaultStyle())

	if _, err := s.Serialize("x"); err == nil {
		t.Fatalf("representer error: expected failure, got nil")
	}
}
