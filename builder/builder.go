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

package builder

import (
	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/dumper"
	"dirpx.dev/yamx/registry"
	"dirpx.dev/yamx/represent"
	"dirpx.dev/yamx/resolver"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildDumpers constructs the canonical configurations. Safe declares the
// common representers once; Full and IndentedSafe reuse them by declaring
// Safe as a parent, each able to override or add entries without mutating
// Safe's registry.
func (b *builder) BuildDumpers(style apis.Style, _ any) map[string]apis.Dumper {
	safeReg := registry.New()
	for _, e := range represent.SafeEntries() {
		_ = safeReg.Register(e.Key, e.Fn)
	}
	safe, _ := dumper.New(dumper.SafeName, nil, safeReg, style)

	fullReg := registry.New()
	for _, e := range represent.FullEntries() {
		_ = fullReg.Register(e.Key, e.Fn)
	}
	full, _ := dumper.New(dumper.FullName, []apis.Dumper{safe}, fullReg, style)

	// IndentedSafe is Safe plus one style override, nothing else.
	istyle := style
	istyle.IndentSequences = true
	indented, _ := dumper.New(dumper.IndentedSafeName, []apis.Dumper{safe}, nil, istyle)

	return map[string]apis.Dumper{
		safe.Name():     safe,
		full.Name():     full,
		indented.Name(): indented,
	}
}

// BuildResolver constructs the resolver the facade computes effective
// registries with.
func (b *builder) BuildResolver(_ any) apis.Resolver {
	return resolver.New()
}
