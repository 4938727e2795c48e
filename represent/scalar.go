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

// Package represent provides the built-in representer functions wired into
// the canonical dumper configurations by the default builder.
package represent

import (
	"encoding/base64"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/yamx/apis"
)

// Nil represents an untyped nil value as a plain null scalar.
func Nil(_ apis.Representer, _ any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagNull, "null"), nil
}

// Bool represents bool values.
func Bool(_ apis.Representer, v any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagBool, strconv.FormatBool(reflect.ValueOf(v).Bool())), nil
}

// String represents string values. Escaping of non-ASCII characters is an
// emitter concern, the node always carries the literal text.
func String(_ apis.Representer, v any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagStr, reflect.ValueOf(v).String()), nil
}

// Int represents the signed integer types.
func Int(_ apis.Representer, v any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagInt, strconv.FormatInt(reflect.ValueOf(v).Int(), 10)), nil
}

// Uint represents the unsigned integer types.
func Uint(_ apis.Representer, v any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagInt, strconv.FormatUint(reflect.ValueOf(v).Uint(), 10)), nil
}

// Float represents the floating point types using the canonical YAML
// spellings for the infinities and NaN.
func Float(_ apis.Representer, v any) (*apis.Node, error) {
	return apis.NewScalar(apis.TagFloat, formatFloat(reflect.ValueOf(v).Float())), nil
}

// Binary represents []byte as a base64 binary scalar.
func Binary(_ apis.Representer, v any) (*apis.Node, error) {
	b := reflect.ValueOf(v).Bytes()
	return apis.NewScalar(apis.TagBinary, base64.StdEncoding.EncodeToString(b)), nil
}

// Timestamp represents time.Time values.
func Timestamp(_ apis.Representer, v any) (*apis.Node, error) {
	t := v.(time.Time)
	return apis.NewScalar(apis.TagTimestamp, t.Format(time.RFC3339Nano)), nil
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	// A float scalar must not be mistakable for an int on reload.
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
