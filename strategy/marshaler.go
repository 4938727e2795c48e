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

// NewMarshalerStrategy creates the rank for values that represent
// themselves via apis.NodeMarshaler. It sits below the exact rank so a
// configuration can still override a self-representing type, and above
// the structural ranks.
func NewMarshalerStrategy() apis.Strategy {
	return marshalerStrategy{}
}

type marshalerStrategy struct{}

var _ apis.Strategy = marshalerStrategy{}

// TryResolve checks whether v implements apis.NodeMarshaler.
func (marshalerStrategy) TryResolve(v any, _ apis.Effective) (apis.RepresentFn, bool) {
	if v == nil {
		return nil, false
	}
	if _, ok := v.(apis.NodeMarshaler); !ok {
		return nil, false
	}
	fn := func(r apis.Representer, v any) (*apis.Node, error) {
		return v.(apis.NodeMarshaler).MarshalNode(r)
	}
	return fn, true
}
