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

// Package config holds the style defaults and functional options shared by
// the dumper configurations and the dump facade.
package config

import (
	"errors"
	"fmt"

	"dirpx.dev/yamx/apis"
)

const (
	// DefaultAllowUnicode emits non-ASCII characters literally.
	DefaultAllowUnicode = true
	// DefaultFlow lets scalar-only containers use inline flow form.
	DefaultFlow = apis.FlowAuto
	// DefaultIndent is the block indentation width in spaces.
	DefaultIndent = 2
	// DefaultIndentSequences keeps the compact list-under-map form.
	DefaultIndentSequences = false
)

var (
	// ErrInvalidIndent is returned for a non-positive indent width.
	ErrInvalidIndent = errors.New("yamx(config): indent must be positive")
	// ErrInvalidFlowMode is returned for an undefined flow mode.
	ErrInvalidFlowMode = errors.New("yamx(config): invalid flow mode")
)

// DefaultStyle is the style used when none is provided.
func DefaultStyle() apis.Style {
	return apis.Style{
		AllowUnicode:    DefaultAllowUnicode,
		Flow:            DefaultFlow,
		Indent:          DefaultIndent,
		IndentSequences: DefaultIndentSequences,
	}
}

// Option is a functional option that adjusts a style during construction.
// Options validate their input; a failing option aborts the dump call it
// was passed to.
type Option func(*apis.Style) error

// Apply overlays opts onto base and returns the result. The first failing
// option wins and base is returned unchanged.
func Apply(base apis.Style, opts ...Option) (apis.Style, error) {
	s := base
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&s); err != nil {
			return base, err
		}
	}
	return s, nil
}

// WithAllowUnicode sets whether non-ASCII characters are emitted literally.
func WithAllowUnicode(allow bool) Option {
	return func(s *apis.Style) error {
		s.AllowUnicode = allow
		return nil
	}
}

// WithFlow sets the flow mode.
func WithFlow(mode apis.FlowMode) Option {
	return func(s *apis.Style) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidFlowMode, mode)
		}
		s.Flow = mode
		return nil
	}
}

// WithIndent sets the block indentation width.
func WithIndent(indent int) Option {
	return func(s *apis.Style) error {
		if indent <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidIndent, indent)
		}
		s.Indent = indent
		return nil
	}
}

// WithIndentSequences sets whether block sequence items get one extra
// indentation level under their mapping key.
func WithIndentSequences(indent bool) Option {
	return func(s *apis.Style) error {
		s.IndentSequences = indent
		return nil
	}
}

// ParseFlowMode converts the option-file spelling ("auto", "never",
// "always") into a FlowMode.
func ParseFlowMode(s string) (apis.FlowMode, error) {
	switch s {
	case "auto", "":
		return apis.FlowAuto, nil
	case "never":
		return apis.FlowNever, nil
	case "always":
		return apis.FlowAlways, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFlowMode, s)
	}
}
