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

// Strategy is one rank of the representer dispatch chain. The serializer
// runs strategies in decreasing specificity (exact type, self-marshaling,
// structural kind, default) until one handles the value, which makes the
// specificity ranking explicit instead of an accident of registration
// order.
type Strategy interface {
	// TryResolve attempts to pick a representer for v from eff.
	// It returns (fn, true) if handled; otherwise (nil, false) to fall
	// through to the next rank.
	TryResolve(v any, eff Effective) (fn RepresentFn, handled bool)
}
