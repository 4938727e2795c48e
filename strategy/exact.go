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

// Package strategy provides the representer dispatch ranks the serializer
// chains in decreasing specificity: exact type, self-marshaling value,
// structural kind, registered default. The explicit chain is what
// guarantees that an exact-type match always beats a structural match, no
// matter in which order representers were registered.
package strategy

import (
	"dirpx.dev/yamx/apis"
)

// NewExactStrategy creates the rank that matches the value's concrete
// type against KeyExact registrations.
func NewExactStrategy() apis.Strategy {
	return exactStrategy{}
}

type exactStrategy struct{}

var _ apis.Strategy = exactStrategy{}

// TryResolve looks up the value's exact type in the effective registry.
func (exactStrategy) TryResolve(v any, eff apis.Effective) (apis.RepresentFn, bool) {
	if v == nil || eff == nil {
		return nil, false
	}
	return eff.Lookup(apis.ExactKeyOf(v))
}
