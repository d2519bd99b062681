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

// Package float has helpers for comparing floating point results in tests.
package float

import "strconv"

// Format formats x with the given number of digits after the decimal point.
func Format(x float64, digits int) string {
	return strconv.FormatFloat(x, 'f', digits, 64)
}

// Round rounds x to the given number of digits after the decimal point.
func Round(x float64, digits int) float64 {
	y, err := strconv.ParseFloat(Format(x, digits), 64)
	if err != nil {
		panic(err)
	}
	return y
}

// Equal reports whether x and y agree when formatted with the given number
// of digits after the decimal point.
func Equal(x, y float64, digits int) bool {
	return Format(x, digits) == Format(y, digits)
}
