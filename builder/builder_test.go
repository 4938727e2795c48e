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

package builder_test

import (
	"testing"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/builder"
	"dirpx.dev/yamx/config"
	"dirpx.dev/yamx/dumper"
)

func TestBuildDumpers_Catalogue(t *testing.T) {
	b := builder.New()
	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)

	for _, name := range []string{dumper.FullName, dumper.SafeName, dumper.IndentedSafeName} {
		if _, ok := dumpers[name]; !ok {
			t.Fatalf("catalogue missing %q", name)
		}
	}
	if len(dumpers) != 3 {
		t.Fatalf("catalogue size = %d, want 3", len(dumpers))
	}
}

func TestBuildDumpers_Inheritance(t *testing.T) {
	b := builder.New()
	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)

	safe := dumpers[dumper.SafeName]
	if got := safe.Parents(); got != nil {
		t.Fatalf("Safe parents = %v, want none", got)
	}

	full := dumpers[dumper.FullName]
	if ps := full.Parents(); len(ps) != 1 || ps[0] != safe {
		t.Fatalf("Full parents = %v, want [Safe]", ps)
	}

	indented := dumpers[dumper.IndentedSafeName]
	if ps := indented.Parents(); len(ps) != 1 || ps[0] != safe {
		t.Fatalf("IndentedSafe parents = %v, want [Safe]", ps)
	}
}

func TestBuildDumpers_IndentedSafeIsAStyleDelta(t *testing.T) {
	b := builder.New()
	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)

	indented := dumpers[dumper.IndentedSafeName]
	if !indented.Style().IndentSequences {
		t.Fatalf("IndentedSafe.Style().IndentSequences = false, want true")
	}
	if indented.Registry().Count() != 0 {
		t.Fatalf("IndentedSafe own registry has %d entries, want 0 (inherits everything)", indented.Registry().Count())
	}

	safe := dumpers[dumper.SafeName]
	if safe.Style().IndentSequences {
		t.Fatalf("Safe.Style().IndentSequences = true, want false")
	}
}

func TestBuildDumpers_RegistryContents(t *testing.T) {
	b := builder.New()
	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)

	safe := dumpers[dumper.SafeName]
	if _, ok := safe.Registry().Lookup(apis.ExactKeyOf("")); !ok {
		t.Fatalf("Safe registry: no representer for string")
	}
	if _, ok := safe.Registry().Lookup(apis.DefaultKey()); ok {
		t.Fatalf("Safe registry: has a Default entry, want none")
	}

	full := dumpers[dumper.FullName]
	if _, ok := full.Registry().Lookup(apis.DefaultKey()); !ok {
		t.Fatalf("Full registry: no Default entry")
	}
}

func TestBuildDumpers_IndependentRegistries(t *testing.T) {
	b := builder.New()
	first := b.BuildDumpers(config.DefaultStyle(), nil)
	second := b.BuildDumpers(config.DefaultStyle(), nil)

	// Each catalogue owns fresh registries.
	if first[dumper.SafeName].Registry() == second[dumper.SafeName].Registry() {
		t.Fatalf("catalogues share a registry")
	}
}

func TestBuildResolver(t *testing.T) {
	b := builder.New()
	res := b.BuildResolver(nil)
	if res == nil {
		t.Fatalf("BuildResolver returned nil")
	}

	dumpers := b.BuildDumpers(config.DefaultStyle(), nil)
	eff, err := res.Effective(dumpers[dumper.FullName])
	if err != nil {
		t.Fatalf("Effective(Full): %v", err)
	}
	// Full sees Safe's entries plus its own default.
	if _, ok := eff.Lookup(apis.ExactKeyOf("")); !ok {
		t.Fatalf("Full effective: missing inherited string entry")
	}
	if _, ok := eff.Lookup(apis.DefaultKey()); !ok {
		t.Fatalf("Full effective: missing own Default entry")
	}
}
