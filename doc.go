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

// Package stylefunc provides the shared model for evaluating style
// functions.
//
// A style function describes how a value, for example a line width or a
// fill colour, varies with the global input of a rendering pass (normally
// the zoom level) and with the properties of the individual record being
// styled.  The function is given declaratively, as a constant, a
// categorical lookup table, a table of intervals or a table of stops which
// is interpolated.
//
// This package only defines the types shared between the packages of this
// module.  Style functions are built and evaluated by the
// [seehuhn.de/go/stylefunc/function] package:
//
//	f, err := function.Read(map[string]any{
//	    "base":  1.5,
//	    "stops": []any{[]any{5, 1}, []any{18, 12}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	width := f.At(stylefunc.Zoom(12)).Eval(nil)
package stylefunc
