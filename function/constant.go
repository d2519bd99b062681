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

// Constant is a function which ignores its input.
type Constant struct {
	Value stylefunc.Value
}

// Type returns [TypeConstant].
// This implements the [Func] interface.
func (f *Constant) Type() Type {
	return TypeConstant
}

// Apply returns the constant value.
func (f *Constant) Apply(stylefunc.Value) stylefunc.Value {
	return f.Value
}
