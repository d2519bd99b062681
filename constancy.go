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

package stylefunc

import "strconv"

// Constancy describes which inputs the result of a style function depends
// on.
//
// The three values form a chain: every global-constant function is also
// feature-constant.
type Constancy int

const (
	// Dynamic functions depend on the properties of the record.
	Dynamic Constancy = iota

	// FeatureConstant functions only depend on the global input.
	FeatureConstant

	// GlobalConstant functions depend on neither input.
	GlobalConstant
)

// IsGlobalConstant reports whether the result ignores the global input.
func (c Constancy) IsGlobalConstant() bool {
	return c == GlobalConstant
}

// IsFeatureConstant reports whether the result ignores the record
// properties.
func (c Constancy) IsFeatureConstant() bool {
	return c == FeatureConstant || c == GlobalConstant
}

func (c Constancy) String() string {
	switch c {
	case Dynamic:
		return "dynamic"
	case FeatureConstant:
		return "feature-constant"
	case GlobalConstant:
		return "global-constant"
	default:
		return "Constancy(" + strconv.Itoa(int(c)) + ")"
	}
}

