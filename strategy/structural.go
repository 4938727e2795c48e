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

package strategy

import (
	"dirpx.dev/yamx/apis"
	uref "dirpx.dev/yamx/utils/reflect"
)

// NewStructuralStrategy creates the rank that classifies the value's
// shape (mapping-like, sequence-like) and matches the corresponding
// structural registration.
func NewStructuralStrategy() apis.Strategy {
	return structuralStrategy{}
}

type structuralStrategy struct{}

var _ apis.Strategy = structuralStrategy{}

// TryResolve matches v's structural kind against the effective registry.
func (structuralStrategy) TryResolve(v any, eff apis.Effective) (apis.RepresentFn, bool) {
	if v == nil || eff == nil {
		return nil, false
	}
	switch uref.Classify(v) {
	case uref.KindMapping:
		return eff.Lookup(apis.MappingKey())
	case uref.KindSequence:
		return eff.Lookup(apis.SequenceKey())
	default:
		return nil, false
	}
}
