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

import "seehuhn.de/go/stylefunc"

// Type selects the algorithm used to evaluate a function.
type Type string

// These are the supported function types.
const (
	TypeConstant    Type = "constant"
	TypeCategorical Type = "categorical"
	TypeInterval    Type = "interval"
	TypeExponential Type = "exponential"
)

// Func maps a single input value to an output value.
//
// Implementations are immutable.  The returned values are shared with the
// function tables and must not be modified by the caller.
type Func interface {
	// Type returns the algorithm implemented by the function.
	Type() Type

	// Apply evaluates the function for the given input.
	// Inputs which cannot be looked up in the table, including nil for a
	// missing property, give the first range value.
	Apply(x stylefunc.Value) stylefunc.Value
}

var (
	_ Func = (*Constant)(nil)
	_ Func = (*Categorical)(nil)
	_ Func = (*Interval)(nil)
	_ Func = (*Exponential)(nil)
)
