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

// Package dumper provides the concrete dumper configuration type: a named
// bundle of {own registry, parent configurations, style}.
package dumper

import (
	"errors"

	"dirpx.dev/yamx/apis"
	"dirpx.dev/yamx/registry"
)

// Canonical configuration names built by the default builder.
const (
	// FullName serializes everything Safe does plus arbitrary Go values
	// through its reflective default representer.
	FullName = "Full"
	// SafeName serializes the plain document types only.
	SafeName = "Safe"
	// IndentedSafeName is Safe with block sequences indented one extra
	// level for readability.
	IndentedSafeName = "IndentedSafe"
)

// ErrEmptyName is returned when a dumper is constructed without a name.
var ErrEmptyName = errors.New("yamx(dumper): empty configuration name")

// New constructs a dumper configuration. parents may be nil; a nil reg
// gets a fresh empty registry so representers can be added later. The
// parent list is copied and immutable afterwards.
func New(name string, parents []apis.Dumper, reg apis.Registry, style apis.Style) (apis.Dumper, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if reg == nil {
		reg = registry.New()
	}
	d := &dumper{
		name:  name,
		reg:   reg,
		style: style,
	}
	if len(parents) > 0 {
		d.parents = make([]apis.Dumper, len(parents))
		copy(d.parents, parents)
	}
	return d, nil
}

// dumper is the plain apis.Dumper implementation. All fields except the
// registry's contents are immutable after construction.
type dumper struct {
	name    string
	parents []apis.Dumper
	reg     apis.Registry
	style   apis.Style
}

// Name returns the configuration name.
func (d *dumper) Name() string { return d.name }

// Parents returns the inherited configurations in declaration order.
func (d *dumper) Parents() []apis.Dumper {
	if len(d.parents) == 0 {
		return nil
	}
	out := make([]apis.Dumper, len(d.parents))
	copy(out, d.parents)
	return out
}

// Registry returns the dumper's own registry.
func (d *dumper) Registry() apis.Registry { return d.reg }

// Style returns the dumper's style.
func (d *dumper) Style() apis.Style { return d.style }
