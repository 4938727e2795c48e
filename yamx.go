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

package yamx

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/builder"
	"dirpx.dev/yamx/config"
	"dirpx.dev/yamx/dumper"
	"dirpx.dev/yamx/emitter"
	"dirpx.dev/yamx/loader"
	"dirpx.dev/yamx/serializer"
)

// init initializes the global dumper catalogue.
func init() {
	// Built-in representers are registered by the builder here, before
	// any configuration can be resolved.
	s := &state{style: config.DefaultStyle()}
	b := builder.New()
	s.dumpers = b.BuildDumpers(s.style, nil)
	s.res = b.BuildResolver(nil)
	s.bld = b
	st.Store(s)
}

var (
	// ErrUnknownDumper is returned for a configuration name outside the
	// catalogue.
	ErrUnknownDumper = errors.New("yamx: unknown dumper configuration")
	// ErrNilDumpers is raised when a builder returns no dumper set.
	ErrNilDumpers = errors.New("yamx: builder returned no dumpers")
	// ErrNilResolver is raised when a builder returns a nil resolver.
	ErrNilResolver = errors.New("yamx: builder returned nil resolver")
)

// Dump renders v using the Full configuration and returns the serialized
// text. Values without a representer degrade to the null sentinel; the
// call fails only for malformed style options, representer errors, or a
// document that contains itself.
func Dump(v any, opts ...config.Option) (string, error) {
	return DumpWith(dumper.FullName, v, opts...)
}

// SafeDump renders v using the Safe configuration regardless of any other
// configuration the caller may have in mind.
func SafeDump(v any, opts ...config.Option) (string, error) {
	return DumpWith(dumper.SafeName, v, opts...)
}

// DumpWith renders v using the named configuration.
func DumpWith(name string, v any, opts ...config.Option) (string, error) {
	s := st.Load()
	d, ok := s.dumpers[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDumper, name)
	}
	eff, err := s.res.Effective(d)
	if err != nil {
		return "", err
	}
	style, err := config.Apply(d.Style(), opts...)
	if err != nil {
		return "", err
	}
	ser := serializer.New(eff, style, serializer.WithLogger(s.log))
	node, err := ser.Serialize(v)
	if err != nil {
		return "", err
	}
	defer fallbacks.Add(ser.Fallbacks())
	data, err := emitter.Encode(node, style)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Load parses a YAML document with mapping key order preserved. It is a
// convenience wrapper around package loader, the inverse of Dump.
func Load(data []byte) (any, error) {
	return loader.Load(data)
}

// GetDumper returns the named configuration from the catalogue.
// Canonical names are "Full", "Safe", and "IndentedSafe".
func GetDumper(name string) (apis.Dumper, error) {
	s := st.Load()
	d, ok := s.dumpers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDumper, name)
	}
	return d, nil
}

// Dumpers returns the catalogue names in sorted order.
func Dumpers() []string {
	s := st.Load()
	names := make([]string, 0, len(s.dumpers))
	for name := range s.dumpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterRepresenter adds or overwrites a representer on the named
// configuration's own registry. Effective registries of that
// configuration and of every configuration inheriting from it are
// recomputed on their next use.
//
// This is a configuration-time operation: perform registrations before
// concurrent dump calls begin.
func RegisterRepresenter(name string, key apis.TypeKey, fn apis.RepresentFn) error {
	d, err := GetDumper(name)
	if err != nil {
		return err
	}
	return d.Registry().Register(key, fn)
}

// AddDumper adds a custom configuration to the catalogue. The
// configuration is resolved eagerly, so an inheritance cycle is reported
// here rather than on the first dump.
func AddDumper(d apis.Dumper) error {
	if d == nil {
		return fmt.Errorf("%w: <nil>", ErrUnknownDumper)
	}
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if _, err := old.res.Effective(d); err != nil {
		return err
	}

	dumpers := make(map[string]apis.Dumper, len(old.dumpers)+1)
	for k, v := range old.dumpers {
		dumpers[k] = v
	}
	dumpers[d.Name()] = d

	st.Store(&state{
		style:   old.style,
		ext:     old.ext,
		dumpers: dumpers,
		res:     old.res,
		bld:     old.bld,
		log:     old.log,
	})
	return nil
}

// Style returns the global base style.
func Style() apis.Style {
	return st.Load().style
}

// SetStyle replaces the global base style and rebuilds the catalogue with
// it. Representers registered on the previous catalogue's dumpers do not
// carry over.
func SetStyle(style apis.Style) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	dumpers := b.BuildDumpers(style, old.ext)
	res := b.BuildResolver(old.ext)
	if len(dumpers) == 0 {
		panic(ErrNilDumpers)
	}
	if res == nil {
		panic(ErrNilResolver)
	}

	st.Store(&state{
		style:   style,
		ext:     old.ext,
		dumpers: dumpers,
		res:     res,
		bld:     b,
		log:     old.log,
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder replaces the builder and rebuilds the catalogue with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	dumpers := b.BuildDumpers(old.style, old.ext)
	res := b.BuildResolver(old.ext)
	if len(dumpers) == 0 {
		panic(ErrNilDumpers)
	}
	if res == nil {
		panic(ErrNilResolver)
	}

	st.Store(&state{
		style:   old.style,
		ext:     old.ext,
		dumpers: dumpers,
		res:     res,
		bld:     b,
		log:     old.log,
	})
}

// SetExt replaces the extension payload and rebuilds the catalogue so the
// builder can see it.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	b := old.bld

	dumpers := b.BuildDumpers(old.style, ext)
	res := b.BuildResolver(ext)
	if len(dumpers) == 0 {
		panic(ErrNilDumpers)
	}
	if res == nil {
		panic(ErrNilResolver)
	}

	st.Store(&state{
		style:   old.style,
		ext:     ext,
		dumpers: dumpers,
		res:     res,
		bld:     b,
		log:     old.log,
	})
}

// ExtAs returns the global extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// SetLogger attaches a logger for serialization diagnostics (fallbacks to
// the null sentinel are logged at debug level). A nil logger disables
// them.
func SetLogger(l *slog.Logger) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(&state{
		style:   old.style,
		ext:     old.ext,
		dumpers: old.dumpers,
		res:     old.res,
		bld:     old.bld,
		log:     l,
	})
}

// Fallbacks returns the process-wide count of values that degraded to the
// null sentinel.
func Fallbacks() uint64 {
	return fallbacks.Load()
}

// SetAll explicitly sets all global components in one shot. Nil arguments
// leave the corresponding component unchanged, except for ext which is
// always replaced. This is mainly used by tests to get a deterministic
// state between cases.
func SetAll(style *apis.Style, ext any, dumpers map[string]apis.Dumper, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()

	nstyle := old.style
	if style != nil {
		nstyle = *style
	}

	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	ndumpers := dumpers
	if ndumpers == nil {
		ndumpers = nbld.BuildDumpers(nstyle, ext)
	}
	nres := res
	if nres == nil {
		nres = nbld.BuildResolver(ext)
	}

	if len(ndumpers) == 0 {
		panic(ErrNilDumpers)
	}
	if nres == nil {
		panic(ErrNilResolver)
	}

	st.Store(&state{
		style:   nstyle,
		ext:     ext,
		dumpers: ndumpers,
		res:     nres,
		bld:     nbld,
		log:     old.log,
	})
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global yamx state.
var st atomic.Pointer[state]

// fallbacks counts null-sentinel degradations across all dump calls.
var fallbacks atomic.Uint64

// state is the global yamx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate
// fields of a published state. Writers create a new state and swap it
// atomically.
type state struct {
	// style is the global base style.
	style apis.Style
	// ext is the global extension payload handed to the builder.
	ext any
	// dumpers is the configuration catalogue keyed by name.
	dumpers map[string]apis.Dumper
	// res computes effective registries for the catalogue.
	res apis.Resolver
	// bld constructs dumpers and res.
	bld apis.Builder
	// log receives serialization diagnostics, may be nil.
	log *slog.Logger
}
