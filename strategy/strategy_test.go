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

package strategy_test

import (
	"testing"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/strategy"
)

// fakeEffective is a minimal effective-registry double.
type fakeEffective map[apis.TypeKey]string

func (f fakeEffective) Lookup(key apis.TypeKey) (apis.RepresentFn, bool) {
	text, ok := f[key]
	if !ok {
		return nil, false
	}
	return func(_ apis.Representer, _ any) (*apis.Node, error) {
		return apis.NewScalar(apis.TagStr, text), nil
	}, true
}

func (f fakeEffective) Entries() []apis.Entry { return nil }

// selfRef represents itself through the marshaler rank.
type selfRef struct{ id string }

func (s selfRef) MarshalNode(_ apis.Representer) (*apis.Node, error) {
	return apis.NewScalar(apis.TagStr, "marshaled:"+s.id), nil
}

func callText(t *testing.T, fn apis.RepresentFn, v any) string {
	t.Helper()
	n, err := fn(nil, v)
	if err != nil {
		t.Fatalf("representer: %v", err)
	}
	return n.Value
}

func TestExactStrategy(t *testing.T) {
	st := strategy.NewExactStrategy()
	eff := fakeEffective{apis.ExactKeyOf(""): "string-rep"}

	fn, ok := st.TryResolve("hello", eff)
	if !ok {
		t.Fatalf("TryResolve(string): not handled, want exact match")
	}
	if got := callText(t, fn, "hello"); got != "string-rep" {
		t.Fatalf("exact match: got %q, want %q", got, "string-rep")
	}

	if _, ok := st.TryResolve(42, eff); ok {
		t.Fatalf("TryResolve(int): handled, want miss (no registration)")
	}
	if _, ok := st.TryResolve(nil, eff); ok {
		t.Fatalf("TryResolve(nil): handled, want miss")
	}
}

func TestMarshalerStrategy(t *testing.T) {
	st := strategy.NewMarshalerStrategy()

	fn, ok := st.TryResolve(selfRef{id: "x"}, nil)
	if !ok {
		t.Fatalf("TryResolve(selfRef): not handled, want marshaler match")
	}
	if got := callText(t, fn, selfRef{id: "x"}); got != "marshaled:x" {
		t.Fatalf("marshaler: got %q, want %q", got, "marshaled:x")
	}

	if _, ok := st.TryResolve("plain", nil); ok {
		t.Fatalf("TryResolve(string): handled, want miss")
	}
}

func TestStructuralStrategy(t *testing.T) {
	st := strategy.NewStructuralStrategy()
	eff := fakeEffective{
		apis.MappingKey():  "mapping-rep",
		apis.SequenceKey(): "sequence-rep",
	}

	fn, ok := st.TryResolve(map[string]int{"a": 1}, eff)
	if !ok {
		t.Fatalf("TryResolve(map): not handled")
	}
	if got := callText(t, fn, nil); got != "mapping-rep" {
		t.Fatalf("mapping kind: got %q, want %q", got, "mapping-rep")
	}

	fn, ok = st.TryResolve([]int{1, 2}, eff)
	if !ok {
		t.Fatalf("TryResolve(slice): not handled")
	}
	if got := callText(t, fn, nil); got != "sequence-rep" {
		t.Fatalf("sequence kind: got %q, want %q", got, "sequence-rep")
	}

	// []byte is binary data, not a sequence of numbers.
	if _, ok := st.TryResolve([]byte("raw"), eff); ok {
		t.Fatalf("TryResolve([]byte): handled, want miss")
	}
	if _, ok := st.TryResolve("scalar", eff); ok {
		t.Fatalf("TryResolve(string): handled, want miss")
	}
}

func TestDefaultStrategy(t *testing.T) {
	st := strategy.NewDefaultStrategy()

	eff := fakeEffective{apis.DefaultKey(): "default-rep"}
	fn, ok := st.TryResolve(struct{}{}, eff)
	if !ok {
		t.Fatalf("TryResolve: not handled, want default match")
	}
	if got := callText(t, fn, nil); got != "default-rep" {
		t.Fatalf("default: got %q, want %q", got, "default-rep")
	}

	if _, ok := st.TryResolve(struct{}{}, fakeEffective{}); ok {
		t.Fatalf("TryResolve without default entry: handled, want miss")
	}
}

// The chain order is the dispatch contract: exact beats marshaler beats
// structural beats default.
func TestDefaultChain_Specificity(t *testing.T) {
	chain := strategy.DefaultChain()
	if len(chain) != 4 {
		t.Fatalf("DefaultChain len = %d, want 4", len(chain))
	}

	eff := fakeEffective{
		apis.ExactKeyOf(selfRef{}): "exact-rep",
		apis.MappingKey():          "mapping-rep",
		apis.DefaultKey():          "default-rep",
	}

	resolve := func(v any) (string, bool) {
		for _, st := range chain {
			if fn, ok := st.TryResolve(v, eff); ok {
				return callText(t, fn, v), true
			}
		}
		return "", false
	}

	// selfRef implements NodeMarshaler, but the exact registration wins.
	if got, ok := resolve(selfRef{id: "a"}); !ok || got != "exact-rep" {
		t.Fatalf("exact vs marshaler: got (%q,%v), want (exact-rep,true)", got, ok)
	}

	// A map with no exact registration lands on the structural rank.
	if got, ok := resolve(map[string]int{}); !ok || got != "mapping-rep" {
		t.Fatalf("structural: got (%q,%v), want (mapping-rep,true)", got, ok)
	}

	// Anything else falls through to the default rank.
	if got, ok := resolve(42); !ok || got != "default-rep" {
		t.Fatalf("default: got (%q,%v), want (default-rep,true)", got, ok)
	}
}
