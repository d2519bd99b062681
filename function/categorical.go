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

// Categorical is a lookup table which maps keys to values.
type Categorical struct {
	// Domain lists the keys.  Keys are compared for equality, numbers are
	// compared by value.
	Domain []stylefunc.Value

	// Range lists the values, aligned with Domain.
	// Range[0] is also used for inputs which do not match any key.
	Range []stylefunc.Value
}

// Type returns [TypeCategorical].
// This implements the [Func] interface.
func (f *Categorical) Type() Type {
	return TypeCategorical
}

// Apply returns the value for the first key equal to x.
// If no key matches, Range[0] is returned.
func (f *Categorical) Apply(x stylefunc.Value) stylefunc.Value {
	if len(f.Range) == 0 {
		return nil
	}
	n := min(len(f.Domain), len(f.Range))
	for i := range n {
		if equalKeys(f.Domain[i], x) {
			return f.Range[i]
		}
	}
	return f.Range[0]
}

// validate checks if the Categorical function is properly configured.
func (f *Categorical) validate() error {
	if len(f.Range) == 0 {
		return newInvalidFunctionError(TypeCategorical, "range", "must not be empty")
	}
	return nil
}
