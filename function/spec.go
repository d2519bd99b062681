// seehuhn.de/go/stylefunc - evaluate declarative style functions
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package function

import (
	"slices"
	"strings"

	"seehuhn.de/go/stylefunc"
)

// Spec is the canonical form of a function specification.
//
// Raw specifications, as found in style sheets, can be converted to this
// form using [Normalize].
type Spec struct {
	// Type selects the evaluation algorithm.  If this is empty, functions
	// with a table are exponential and all others are constant.
	Type Type

	// Property is the name of the input.  Names starting with
	// [stylefunc.GlobalPrefix] refer to the global input, all other names
	// refer to a record property.  If this is empty, the zoom level
	// [stylefunc.ZoomKey] is used.
	Property string

	// Base is the curve parameter of exponential interpolation.
	// The value 0 is interpreted as 1, which gives linear interpolation.
	Base float64

	// Overflow enables extrapolation beyond the first and last stop of
	// exponential functions.
	Overflow bool

	// Domain lists the keys of the table.  The keys must be numbers in
	// increasing order for interval and exponential functions.  For
	// functions of zoom and a property, all keys are [ZoomKey] values.
	Domain []stylefunc.Value

	// Range lists the values of the table.  For interval functions, Range
	// has one more element than Domain; the first element applies below
	// Domain[0].  Otherwise Range is aligned with Domain.
	Range []stylefunc.Value

	// Value is the result of a constant function.
	Value stylefunc.Value
}

// ZoomKey is a domain key of a function which depends on both the zoom
// level and a record property.
type ZoomKey struct {
	Zoom  float64
	Value stylefunc.Value
}

// Validate checks the specification more strictly than [New] does.
// In addition to the checks performed by New, Validate reports
// categorical and exponential tables where Domain and Range have different
// lengths.  New silently ignores the trailing elements of the longer list
// in this case.
func (s *Spec) Validate() error {
	if _, err := New(s); err != nil {
		return err
	}

	tp := s.funcType()
	if tp == TypeCategorical || tp == TypeExponential || s.isZoomTable() {
		if len(s.Domain) != len(s.Range) {
			return newInvalidFunctionError(tp, "domain/range",
				"lengths differ (%d, %d)", len(s.Domain), len(s.Range))
		}
	}
	return nil
}

// hasTable reports whether the specification has a table of stops.
func (s *Spec) hasTable() bool {
	return s.Domain != nil || s.Range != nil
}

// funcType returns the type of the function, with defaults applied.
func (s *Spec) funcType() Type {
	if s.Type != "" {
		return s.Type
	}
	if s.hasTable() {
		return TypeExponential
	}
	return TypeConstant
}

// property returns the name of the function input.
func (s *Spec) property() string {
	if s.Property == "" {
		return stylefunc.ZoomKey
	}
	return s.Property
}

// base returns the interpolation base, with the default applied.
func (s *Spec) base() float64 {
	if s.Base == 0 {
		return 1
	}
	return s.Base
}

// isZoomTable reports whether the domain is indexed by zoom level and
// property value.
func (s *Spec) isZoomTable() bool {
	if len(s.Domain) == 0 {
		return false
	}
	_, ok := zoomKeyOf(s.Domain[0])
	return ok
}

// clone returns a copy of s which shares no slices with s.
func (s *Spec) clone() *Spec {
	res := *s
	res.Domain = slices.Clone(s.Domain)
	res.Range = slices.Clone(s.Range)
	return &res
}

// isGlobalName reports whether a property name refers to the global input.
func isGlobalName(name string) bool {
	return strings.HasPrefix(name, stylefunc.GlobalPrefix)
}

// zoomKeyOf converts the raw forms of a two-dimensional domain key to a
// ZoomKey.  The accepted forms are ZoomKey values, mappings with a "zoom"
// entry and an optional "value" entry (also accepted under the older name
// "data"), and pairs of numbers.
func zoomKeyOf(k stylefunc.Value) (ZoomKey, bool) {
	switch k := k.(type) {
	case ZoomKey:
		return k, true
	case map[string]any:
		z, ok := toFloat(k["zoom"])
		if !ok {
			return ZoomKey{}, false
		}
		v, ok := k["value"]
		if !ok {
			v = k["data"]
		}
		return ZoomKey{Zoom: z, Value: v}, true
	case [2]float64:
		return ZoomKey{Zoom: k[0], Value: k[1]}, true
	case []any:
		if len(k) != 2 {
			return ZoomKey{}, false
		}
		z, ok1 := toFloat(k[0])
		_, ok2 := toFloat(k[1])
		if !ok1 || !ok2 {
			return ZoomKey{}, false
		}
		return ZoomKey{Zoom: z, Value: k[1]}, true
	}
	return ZoomKey{}, false
}
