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
	"reflect"
	"slices"

	"seehuhn.de/go/stylefunc"
)

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// toFloat converts a Go number to float64.
func toFloat(v stylefunc.Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// toFloats converts a sequence of Go numbers to a []float64.
// The result may share memory with v.
func toFloats(v stylefunc.Value) ([]float64, bool) {
	switch x := v.(type) {
	case []float64:
		return x, true
	case []float32:
		res := make([]float64, len(x))
		for i, xi := range x {
			res[i] = float64(xi)
		}
		return res, true
	case []int:
		res := make([]float64, len(x))
		for i, xi := range x {
			res[i] = float64(xi)
		}
		return res, true
	case []any:
		res := make([]float64, len(x))
		for i, xi := range x {
			f, ok := toFloat(xi)
			if !ok {
				return nil, false
			}
			res[i] = f
		}
		return res, true
	}
	return nil, false
}

// numeric converts an interpolatable value to either float64 or
// []float64.  The second return value is false if v is not a finite number
// or a sequence of finite numbers.
func numeric(v stylefunc.Value) (stylefunc.Value, bool) {
	if x, ok := toFloat(v); ok {
		return x, isFinite(x)
	}
	xx, ok := toFloats(v)
	if !ok {
		return nil, false
	}
	for _, x := range xx {
		if !isFinite(x) {
			return nil, false
		}
	}
	return xx, true
}

// isInterpolatable reports whether v can be used as a range value of an
// exponential function.
func isInterpolatable(v stylefunc.Value) bool {
	_, ok := numeric(v)
	return ok
}

// equalKeys reports whether a categorical key matches an input.
// Numbers are compared by value, independent of their Go type.
func equalKeys(key, x stylefunc.Value) bool {
	if a, ok := toFloat(key); ok {
		b, ok := toFloat(x)
		return ok && a == b
	}
	switch key := key.(type) {
	case string:
		s, ok := x.(string)
		return ok && key == s
	case bool:
		b, ok := x.(bool)
		return ok && key == b
	case nil:
		return x == nil
	}
	return reflect.DeepEqual(key, x)
}

// ratio returns the interpolation parameter for x between x0 and x1.
// For base 1 this is linear, otherwise the curve is exponential.
func ratio(base, x, x0, x1 float64) float64 {
	progress := x - x0
	diff := x1 - x0
	if diff == 0 {
		return 0
	}
	if base == 1 {
		return progress / diff
	}
	return (math.Pow(base, progress) - 1) / (math.Pow(base, diff) - 1)
}

// lerp blends a and b.  The explicit conversions prevent the compiler from
// fusing the operations, so that results do not depend on the platform.
func lerp(a, b, t float64) float64 {
	if a == b {
		return a
	}
	return float64(a*(1-t)) + float64(b*t)
}

// interpolate blends two values.  Numbers and sequences of numbers are
// interpolated linearly, sequences elementwise over the shorter length.
// For all other values, the value nearer to t is returned.
// For t = 0, t = 1 or equal operands, an operand is returned unchanged.
func interpolate(a, b stylefunc.Value, t float64) stylefunc.Value {
	switch t {
	case 0:
		return a
	case 1:
		return b
	}

	if x, ok := toFloat(a); ok {
		if y, ok := toFloat(b); ok {
			if x == y {
				return a
			}
			return lerp(x, y, t)
		}
	} else if xx, ok := toFloats(a); ok {
		if yy, ok := toFloats(b); ok {
			if slices.Equal(xx, yy) {
				return a
			}
			n := min(len(xx), len(yy))
			res := make([]float64, n)
			for i := range res {
				res[i] = lerp(xx[i], yy[i], t)
			}
			return res
		}
	}

	if t < 0.5 {
		return a
	}
	return b
}

// mapNumbers applies fn to a number, or to every element of a sequence of
// numbers.  Other values are returned unchanged.
func mapNumbers(v stylefunc.Value, fn func(float64) float64) stylefunc.Value {
	if x, ok := toFloat(v); ok {
		return fn(x)
	}
	if xx, ok := toFloats(v); ok {
		res := make([]float64, len(xx))
		for i, x := range xx {
			res[i] = fn(x)
		}
		return res
	}
	return v
}
