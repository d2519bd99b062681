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

// Value is the result of evaluating a style function, or an entry of one
// of its tables.
//
// Interpolated results are float64 or []float64.  Other values are passed
// through unchanged from the function specification.
type Value = any

// Globals holds the global input of an evaluation pass.
// All keys start with [GlobalPrefix].
type Globals map[string]Value

// Properties holds the per-record input of an evaluation.
type Properties map[string]Value

// GlobalPrefix marks property names which refer to the global input
// instead of to the properties of a record.
const GlobalPrefix = "$"

// ZoomKey is the name of the zoom level in [Globals].
// This is the input of all functions which do not name a property.
const ZoomKey = "$zoom"

// Zoom returns the global input for the given zoom level.
func Zoom(z float64) Globals {
	return Globals{ZoomKey: z}
}
