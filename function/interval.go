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

// Interval is a step function.
//
// The domain values split the real line into len(Domain)+1 intervals.
// The first interval is unbounded below, the last one is unbounded above.
// Every interval includes its lower bound.
type Interval struct {
	// Domain lists the boundaries between intervals, in increasing order.
	Domain []float64

	// Range lists the value for each interval.
	// This must have exactly one more element than Domain.
	Range []stylefunc.Value
}

// Type returns [TypeInterval].
// This implements the [Func] interface.
func (f *Interval) Type() Type {
	return TypeInterval
}

// Apply returns the value of the interval containing x.
// Inputs which are not numbers give Range[0].
func (f *Interval) Apply(x stylefunc.Value) stylefunc.Value {
	if len(f.Range) == 0 {
		return nil
	}
	in, ok := toFloat(x)
	if !ok || math.IsNaN(in) {
		return f.Range[0]
	}
	return f.Range[f.find(in)]
}

// find returns the index of the interval containing x, which is the
// smallest i with x < Domain[i], or len(Domain) if there is no such i.
func (f *Interval) find(x float64) int {
	n := min(len(f.Domain), len(f.Range)-1)
	return sort.Search(n, func(i int) bool { return x < f.Domain[i] })
}

// validate checks if the Interval function is properly configured.
func (f *Interval) validate() error {
	if len(f.Range) != len(f.Domain)+1 {
		return newInvalidFunctionError(TypeInterval, "range",
			"must have len(domain)+1 = %d elements, got %d",
			len(f.Domain)+1, len(f.Range))
	}
	return checkIncreasing(TypeInterval, f.Domain)
}

// checkIncreasing verifies that the domain values are finite and sorted.
func checkIncreasing(tp Type, domain []float64) error {
	for i, x := range domain {
		if !isFinite(x) {
			return newInvalidFunctionError(tp, "domain",
				"domain[%d] = %g is not finite", i, x)
		}
		if i > 0 && x < domain[i-1] {
			return newInvalidFunctionError(tp, "domain",
				"must be in increasing order: domain[%d] = %g > domain[%d] = %g",
				i-1, domain[i-1], i, x)
		}
	}
	return nil
}
