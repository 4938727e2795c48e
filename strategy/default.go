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
)

// NewDefaultStrategy creates the last rank: the registered Default entry,
// consulted only when no more specific rank matched. The serializer's
// built-in null sentinel sits behind even this rank.
func NewDefaultStrategy() apis.Strategy {
	return defaultStrategy{}
}

type defaultStrategy struct{}

var _ apis.Strategy = defaultStrategy{}

// TryResolve looks up the Default sentinel key.
func (defaultStrategy) TryResolve(_ any, eff apis.Effective) (apis.RepresentFn, bool) {
	if eff == nil {
		return nil, false
	}
	return eff.Lookup(apis.DefaultKey())
}

// DefaultChain returns the four ranks in decreasing specificity.
func DefaultChain() []apis.Strategy {
	return []apis.Strategy{
		NewExactStrategy(),
		NewMarshalerStrategy(),
		NewStructuralStrategy(),
		NewDefaultStrategy(),
	}
}
