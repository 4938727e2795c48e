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

package apis

// Builder composes the canonical dumper set and its resolver from a base
// style. Swapping the Builder on the facade replaces the whole dumper
// catalogue, which is mainly useful for tests and for embedding binaries
// that ship extra configurations.
type Builder interface {
	// BuildDumpers constructs the dumper configurations keyed by name.
	// Built-in representers are registered here, before any resolution
	// happens. ext is an optional extension context; its meaning is
	// implementation-defined.
	BuildDumpers(style Style, ext any) map[string]Dumper
	// BuildResolver constructs the resolver used to compute effective
	// registries for the dumpers returned by BuildDumpers.
	BuildResolver(ext any) Resolver
}
