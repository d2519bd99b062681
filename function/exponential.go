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
	"math"
	"sort"

	"seehuhn.de/go/stylefunc"
)

// Exponential is a function which interpolates between stops.
//
// Between two stops (x0, y0) and (x1, y1), the function value is
// y0 + t·(y1 - y0), where t = (x - x0) / (x1 - x0) if Base is 1 and
// t = (Base^(x-x0) - 1) / (Base^(x1-x0) - 1) otherwise.  Stop values which
// are sequences of numbers are interpolated elementwise.
type Exponential struct {
	// Domain lists the input values of the stops, in increasing order.
	Domain []float64

	// Range lists the output values of the stops.  Each value must be
	// either a float64 or a []float64.  Range must have the same length
	// as Domain.
	Range []stylefunc.Value

	// Base controls the shape of the curve between stops.
	// The value 1 gives linear interpolation.
	Base float64

	// Overflow enables extrapolation beyond the first and last stop.  If
	// this is not set, the function is constant outside the domain.
	Overflow bool
}

// Type returns [TypeExponential].
// This implements the [Func] interface.
func (f *Exponential) Type() Type {
	return TypeExponential
}

// Apply evaluates the function at x.
// Inputs which are not numbers give Range[0].
func (f *Exponential) Apply(x stylefunc.Value) stylefunc.Value {
	n := min(len(f.Domain), len(f.Range))
	if n == 0 {
		if len(f.Range) > 0 {
			return f.Range[0]
		}
		return nil
	}

	in, ok := toFloat(x)
	if !ok || math.IsNaN(in) {
		return f.Range[0]
	}

	// i is the first position with in <= Domain[i]
	i := sort.SearchFloat64s(f.Domain[:n], in)
	switch {
	case i == 0:
		if f.Overflow && in < f.Domain[0] {
			return f.extrapolate(in, 0, n)
		}
		return f.Range[0]
	case i == n:
		if f.Overflow {
			return f.extrapolate(in, n-1, n)
		}
		return f.Range[n-1]
	}

	t := ratio(f.Base, in, f.Domain[i-1], f.Domain[i])
	return interpolate(f.Range[i-1], f.Range[i], t)
}

// extrapolate continues the curve beyond stop j, which is either the first
// or the last of the n stops.
func (f *Exponential) extrapolate(x float64, j, n int) stylefunc.Value {
	x0 := f.Domain[j]
	y0 := f.Range[j]

	if f.Base != 1 {
		factor := math.Pow(f.Base, x-x0)
		return mapNumbers(y0, func(y float64) float64 { return y * factor })
	}

	if n < 2 {
		delta := x - x0
		return mapNumbers(y0, func(y float64) float64 { return y + delta })
	}

	// use the line through the two stops nearest to x
	a, b := 0, 1
	if j > 0 {
		a, b = n-2, n-1
	}
	if f.Domain[a] == f.Domain[b] {
		return y0
	}
	t := (x - f.Domain[a]) / (f.Domain[b] - f.Domain[a])
	return interpolate(f.Range[a], f.Range[b], t)
}

// validate checks if the Exponential function is properly configured.
func (f *Exponential) validate() error {
	if len(f.Range) == 0 {
		return newInvalidFunctionError(TypeExponential, "range", "must not be empty")
	}
	if len(f.Domain) != len(f.Range) {
		return newInvalidFunctionError(TypeExponential, "domain/range",
			"lengths differ (%d, %d)", len(f.Domain), len(f.Range))
	}
	if !isFinite(f.Base) || f.Base <= 0 {
		return newInvalidFunctionError(TypeExponential, "base",
			"must be a positive number, got %g", f.Base)
	}
	for i, y := range f.Range {
		switch y.(type) {
		case float64, []float64:
			// pass
		default:
			return newInvalidFunctionError(TypeExponential, "range",
				"range[%d] = %v cannot be interpolated", i, y)
		}
	}
	return checkIncreasing(TypeExponential, f.Domain)
}
