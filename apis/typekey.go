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

import (
	"fmt"
	"reflect"
)

// KeyKind discriminates how a TypeKey matches values.
type KeyKind uint8

const (
	// KeyExact matches one concrete reflect.Type.
	KeyExact KeyKind = iota + 1
	// KeyMappingLike matches any value whose kind is a mapping.
	KeyMappingLike
	// KeySequenceLike matches any value whose kind is a sequence (slice or array).
	KeySequenceLike
	// KeyDefault matches when nothing more specific did.
	KeyDefault
)

// TypeKey identifies the "kind" of a source value for representer dispatch.
// It is either a concrete type, a structural kind, or the Default sentinel.
//
// TypeKey is a comparable value type and is used directly as a map key in
// registries. Specificity is ranked by the resolution chain: an exact match
// always beats a structural match, and the Default sentinel only applies
// when every other rank failed.
type TypeKey struct {
	kind KeyKind
	typ  reflect.Type
}

// ExactKey returns the TypeKey matching exactly t.
func ExactKey(t reflect.Type) TypeKey {
	return TypeKey{kind: KeyExact, typ: t}
}

// ExactKeyOf returns the TypeKey matching exactly the dynamic type of v.
func ExactKeyOf(v any) TypeKey {
	return TypeKey{kind: KeyExact, typ: reflect.TypeOf(v)}
}

// MappingKey returns the structural TypeKey for mapping-like values.
func MappingKey() TypeKey {
	return TypeKey{kind: KeyMappingLike}
}

// SequenceKey returns the structural TypeKey for sequence-like values.
func SequenceKey() TypeKey {
	return TypeKey{kind: KeySequenceLike}
}

// DefaultKey returns the sentinel TypeKey consulted when no more specific
// key matched.
func DefaultKey() TypeKey {
	return TypeKey{kind: KeyDefault}
}

// Kind returns the key's match kind.
func (k TypeKey) Kind() KeyKind { return k.kind }

// Type returns the concrete type for KeyExact keys, nil otherwise.
func (k TypeKey) Type() reflect.Type { return k.typ }

// IsZero reports whether k is the zero TypeKey (never a valid registry key).
func (k TypeKey) IsZero() bool { return k.kind == 0 }

// String renders the key for diagnostics and error messages.
func (k TypeKey) String() string {
	switch k.kind {
	case KeyExact:
		if k.typ == nil {
			return "exact(<nil>)"
		}
		return fmt.Sprintf("exact(%s)", k.typ)
	case KeyMappingLike:
		return "mapping-like"
	case KeySequenceLike:
		return "sequence-like"
	case KeyDefault:
		return "default"
	default:
		return "invalid"
	}
}
