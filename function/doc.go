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

// Package function implements style functions, which compute a value from
// the zoom level of a map view and from the properties of the record being
// styled.
//
// A function is described by a [Spec].  Raw specifications, for example
// decoded from a JSON or YAML style sheet, are converted to this form using
// [Normalize] or [Decode].  The following function types are supported:
//
//   - [Constant]: the value does not depend on any input
//   - [Categorical]: lookup of the input in a table of keys
//   - [Interval]: a step function over intervals of the input
//   - [Exponential]: interpolation between stops, optionally extending the
//     curve beyond the first and last stop
//
// Exponential, interval and categorical functions can also be indexed by
// zoom level and a record property at the same time, using [ZoomKey]
// domain keys.
//
// [New] turns a specification into an [Evaluator].  Evaluation is split
// into two stages, so that work which only depends on the zoom level is
// done once per rendering pass:
//
//	f, err := function.New(spec)
//	if err != nil {
//	    ...
//	}
//	feature := f.At(stylefunc.Zoom(14))
//	for _, rec := range records {
//	    v := feature.Eval(rec)
//	    ...
//	}
//
// Every evaluator carries its [stylefunc.Constancy].  [Mix] combines two
// evaluators into a new one, using the constancy of the operands to decide
// when the mixed value is computed.
package function
