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

	"seehuhn.de/go/stylefunc"
)

// Evaluator is a style function prepared for evaluation.
//
// Evaluation happens in two stages: [Evaluator.At] fixes the global input
// and returns a [Feature], which is then evaluated for the properties of
// individual records.  Evaluators are immutable and can be used
// concurrently.
type Evaluator struct {
	constancy stylefunc.Constancy

	// value is the result of a global-constant function.
	value stylefunc.Value

	at func(stylefunc.Globals) *Feature
}

// Feature is a style function with the global input fixed.
type Feature struct {
	constant bool
	value    stylefunc.Value
	eval     func(stylefunc.Properties) stylefunc.Value
}

// New creates an evaluator for a canonical function specification.
//
// The specification is copied; later changes to s do not affect the
// evaluator.  Errors in the specification are reported here, evaluation
// itself never fails.
func New(s *Spec) (*Evaluator, error) {
	if s == nil {
		return nil, newInvalidFunctionError("", "specification", "missing")
	}

	tp := s.funcType()
	switch tp {
	case TypeConstant:
		return newConstant(s.Value), nil
	case TypeCategorical, TypeInterval, TypeExponential:
		// pass
	default:
		return nil, newInvalidFunctionError("", "type", "unsupported function type %q", tp)
	}

	if !s.hasTable() {
		return nil, newInvalidFunctionError(tp, "domain/range", "missing")
	}
	if s.isZoomTable() {
		return newZoomTable(s, tp)
	}

	fn, err := makeFunc(s, tp)
	if err != nil {
		return nil, err
	}

	name := s.property()
	if Classify(s) == stylefunc.FeatureConstant {
		return newFeatureConstant(func(g stylefunc.Globals) stylefunc.Value {
			return fn.Apply(g[name])
		}), nil
	}

	feature := &Feature{
		eval: func(p stylefunc.Properties) stylefunc.Value {
			return fn.Apply(p[name])
		},
	}
	res := &Evaluator{
		constancy: stylefunc.Dynamic,
		at:        func(stylefunc.Globals) *Feature { return feature },
	}
	return res, nil
}

// makeFunc creates the algorithm object for a one-dimensional table.
func makeFunc(s *Spec, tp Type) (Func, error) {
	switch tp {
	case TypeCategorical:
		n := min(len(s.Domain), len(s.Range))
		f := &Categorical{
			Domain: slices.Clone(s.Domain[:n]),
			Range:  slices.Clone(s.Range[:n]),
		}
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f, nil

	case TypeInterval:
		domain, err := floatDomain(tp, s.Domain)
		if err != nil {
			return nil, err
		}
		f := &Interval{
			Domain: domain,
			Range:  slices.Clone(s.Range),
		}
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f, nil

	case TypeExponential:
		n := min(len(s.Domain), len(s.Range))
		domain, err := floatDomain(tp, s.Domain[:n])
		if err != nil {
			return nil, err
		}
		rng := make([]stylefunc.Value, n)
		for i, y := range s.Range[:n] {
			v, ok := numeric(y)
			if !ok {
				return nil, newInvalidFunctionError(tp, "range",
					"range[%d] = %v cannot be interpolated", i, y)
			}
			rng[i] = v
		}
		f := &Exponential{
			Domain:   domain,
			Range:    rng,
			Base:     s.base(),
			Overflow: s.Overflow,
		}
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f, nil
	}
	panic("unreachable")
}

// floatDomain converts the keys of an interval or exponential table to
// numbers.
func floatDomain(tp Type, keys []stylefunc.Value) ([]float64, error) {
	res := make([]float64, len(keys))
	for i, k := range keys {
		x, ok := toFloat(k)
		if !ok {
			return nil, newInvalidFunctionError(tp, "domain",
				"domain[%d] = %v is not a number", i, k)
		}
		res[i] = x
	}
	return res, nil
}

// newConstant returns a global-constant evaluator.
func newConstant(v stylefunc.Value) *Evaluator {
	feature := constantFeature(v)
	return &Evaluator{
		constancy: stylefunc.GlobalConstant,
		value:     v,
		at:        func(stylefunc.Globals) *Feature { return feature },
	}
}

// newFeatureConstant returns an evaluator which computes its value from
// the global input alone.
func newFeatureConstant(fn func(stylefunc.Globals) stylefunc.Value) *Evaluator {
	return &Evaluator{
		constancy: stylefunc.FeatureConstant,
		at: func(g stylefunc.Globals) *Feature {
			return constantFeature(fn(g))
		},
	}
}

func constantFeature(v stylefunc.Value) *Feature {
	return &Feature{constant: true, value: v}
}

// Constancy returns the inputs the function depends on.
func (e *Evaluator) Constancy() stylefunc.Constancy {
	return e.constancy
}

// IsGlobalConstant reports whether the result ignores the global input.
func (e *Evaluator) IsGlobalConstant() bool {
	return e.constancy.IsGlobalConstant()
}

// IsFeatureConstant reports whether the result ignores the record
// properties.
func (e *Evaluator) IsFeatureConstant() bool {
	return e.constancy.IsFeatureConstant()
}

// Value returns the result of a global-constant function.
// For other functions, nil is returned.
func (e *Evaluator) Value() stylefunc.Value {
	return e.value
}

// At fixes the global input.
//
// For feature-constant functions, every call allocates a new Feature which
// holds the function value for g.
func (e *Evaluator) At(g stylefunc.Globals) *Feature {
	return e.at(g)
}

// Eval evaluates the function for the given global input and record
// properties.
func (e *Evaluator) Eval(g stylefunc.Globals, p stylefunc.Properties) stylefunc.Value {
	return e.at(g).Eval(p)
}

// Apply evaluates the function with input as the zoom level.
// Functions which do not name a property are evaluated at input.
func (e *Evaluator) Apply(input stylefunc.Value, p stylefunc.Properties) stylefunc.Value {
	return e.Eval(stylefunc.Globals{stylefunc.ZoomKey: input}, p)
}

// IsConstant reports whether the result ignores the record properties.
func (f *Feature) IsConstant() bool {
	return f.constant
}

// Value returns the result of a constant Feature.
// For other Features, nil is returned.
func (f *Feature) Value() stylefunc.Value {
	return f.value
}

// Eval evaluates the function for the given record properties.
func (f *Feature) Eval(p stylefunc.Properties) stylefunc.Value {
	if f.constant {
		return f.value
	}
	return f.eval(p)
}
