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
	"fmt"

	"seehuhn.de/go/stylefunc"
)

// Mix returns an evaluator which cross-fades between lower and upper.
//
// The result is lower·(1-t) + upper·t, computed elementwise for sequences
// of numbers.  Values which cannot be interpolated are taken from lower if
// t < 0.5 and from upper otherwise.  The constancy of the result is
// derived from the constancy of the two operands, so that mixing two
// constants gives a constant and values which do not depend on the record
// are computed once per global input.
//
// Mix panics if t is not in the range [0, 1].
func Mix(lower, upper *Evaluator, t float64) *Evaluator {
	if !(t >= 0 && t <= 1) {
		panic(fmt.Sprintf("mix ratio %g outside [0, 1]", t))
	}
	return mixStrategies[lower.constancy][upper.constancy](lower, upper, t)
}

type mixFunc func(lower, upper *Evaluator, t float64) *Evaluator

// mixStrategies is indexed by the constancy of the lower and the upper
// operand.
var mixStrategies = [3][3]mixFunc{
	stylefunc.Dynamic: {
		stylefunc.Dynamic:         mixDynamic,
		stylefunc.FeatureConstant: mixOneDynamic,
		stylefunc.GlobalConstant:  mixOneDynamic,
	},
	stylefunc.FeatureConstant: {
		stylefunc.Dynamic:         mixOneDynamic,
		stylefunc.FeatureConstant: mixFeatureConstant,
		stylefunc.GlobalConstant:  mixWithConstant,
	},
	stylefunc.GlobalConstant: {
		stylefunc.Dynamic:         mixOneDynamic,
		stylefunc.FeatureConstant: mixWithConstant,
		stylefunc.GlobalConstant:  mixConstant,
	},
}

// mixConstant mixes two global-constant functions.
func mixConstant(lower, upper *Evaluator, t float64) *Evaluator {
	return newConstant(interpolate(lower.value, upper.value, t))
}

// mixWithConstant mixes a global-constant function with a
// feature-constant one.
func mixWithConstant(lower, upper *Evaluator, t float64) *Evaluator {
	if lower.constancy == stylefunc.GlobalConstant {
		c := lower.value
		return newFeatureConstant(func(g stylefunc.Globals) stylefunc.Value {
			return interpolate(c, upper.At(g).value, t)
		})
	}
	c := upper.value
	return newFeatureConstant(func(g stylefunc.Globals) stylefunc.Value {
		return interpolate(lower.At(g).value, c, t)
	})
}

// mixFeatureConstant mixes two feature-constant functions.
func mixFeatureConstant(lower, upper *Evaluator, t float64) *Evaluator {
	return newFeatureConstant(func(g stylefunc.Globals) stylefunc.Value {
		return interpolate(lower.At(g).value, upper.At(g).value, t)
	})
}

// mixOneDynamic mixes a dynamic function with a feature-constant or
// global-constant one.  The value of the second function is computed once
// per global input.
func mixOneDynamic(lower, upper *Evaluator, t float64) *Evaluator {
	lowerFixed := lower.constancy != stylefunc.Dynamic
	return &Evaluator{
		constancy: stylefunc.Dynamic,
		at: func(g stylefunc.Globals) *Feature {
			if lowerFixed {
				c := lower.At(g).value
				dyn := upper.At(g)
				return &Feature{
					eval: func(p stylefunc.Properties) stylefunc.Value {
						return interpolate(c, dyn.Eval(p), t)
					},
				}
			}
			dyn := lower.At(g)
			c := upper.At(g).value
			return &Feature{
				eval: func(p stylefunc.Properties) stylefunc.Value {
					return interpolate(dyn.Eval(p), c, t)
				},
			}
		},
	}
}

// mixDynamic mixes two dynamic functions.
func mixDynamic(lower, upper *Evaluator, t float64) *Evaluator {
	return &Evaluator{
		constancy: stylefunc.Dynamic,
		at: func(g stylefunc.Globals) *Feature {
			lf := lower.At(g)
			uf := upper.At(g)
			return &Feature{
				eval: func(p stylefunc.Properties) stylefunc.Value {
					return interpolate(lf.Eval(p), uf.Eval(p), t)
				},
			}
		},
	}
}

// blendFeatures interpolates between two Features for the same global
// input.  The result is constant if both inputs are.
func blendFeatures(lower, upper *Feature, t float64) *Feature {
	if lower.constant && upper.constant {
		return constantFeature(interpolate(lower.value, upper.value, t))
	}
	return &Feature{
		eval: func(p stylefunc.Properties) stylefunc.Value {
			return interpolate(lower.Eval(p), upper.Eval(p), t)
		},
	}
}
