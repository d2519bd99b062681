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

// Classify determines which inputs the value of the function described by
// s depends on.
//
// Functions without a table are global-constant.  Functions which read
// the zoom level or another global input are feature-constant.  All other
// functions read a record property and are dynamic.
func Classify(s *Spec) stylefunc.Constancy {
	if !s.hasTable() || s.funcType() == TypeConstant {
		return stylefunc.GlobalConstant
	}
	if isGlobalName(s.property()) {
		return stylefunc.FeatureConstant
	}
	return stylefunc.Dynamic
}
