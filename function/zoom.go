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
	"math"
	"slices"
	"sort"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/stylefunc"
)

// zoomTable evaluates functions of the zoom level and a record property.
// For every zoom level in the domain, the table holds a function of the
// property alone.  Between zoom levels, the results of the neighbouring
// functions are interpolated.
type zoomTable struct {
	zooms []float64
	funcs []*Evaluator

	base        float64
	interpolate bool
}

// newZoomTable creates an evaluator for a specification with [ZoomKey]
// domain keys.
func newZoomTable(s *Spec, tp Type) (*Evaluator, error) {
	if isGlobalName(s.property()) {
		return nil, newInvalidFunctionError(tp, "property",
			"zoom and property stops need a record property, got %q", s.property())
	}

	n := min(len(s.Domain), len(s.Range))
	groups := make(map[float64]*Spec)
	interpolate := tp != TypeInterval
	for i := range n {
		zk, ok := zoomKeyOf(s.Domain[i])
		if !ok {
			return nil, newInvalidFunctionError(tp, "domain",
				"domain[%d] = %v is not a zoom and property key", i, s.Domain[i])
		} else if !isFinite(zk.Zoom) {
			return nil, newInvalidFunctionError(tp, "domain",
				"domain[%d] has invalid zoom %g", i, zk.Zoom)
		}

		g := groups[zk.Zoom]
		if g == nil {
			g = &Spec{
				Type:     tp,
				Property: s.Property,
				Base:     s.Base,
				Domain:   []stylefunc.Value{},
				Range:    []stylefunc.Value{},
			}
			groups[zk.Zoom] = g
		}
		g.Domain = append(g.Domain, zk.Value)
		g.Range = append(g.Range, s.Range[i])

		if !isInterpolatable(s.Range[i]) {
			interpolate = false
		}
	}
	if len(groups) == 0 {
		return nil, newInvalidFunctionError(tp, "range", "must not be empty")
	}

	zooms := maps.Keys(groups)
	slices.Sort(zooms)
	t := &zoomTable{
		zooms:       zooms,
		base:        s.base(),
		interpolate: interpolate,
	}
	for _, z := range t.zooms {
		g := groups[z]
		if tp == TypeInterval {
			// the first value applies below the second key
			g.Domain = g.Domain[1:]
		}
		f, err := New(g)
		if err != nil {
			return nil, fmt.Errorf("zoom level %g: %w", z, err)
		}
		t.funcs = append(t.funcs, f)
	}

	res := &Evaluator{
		constancy: stylefunc.Dynamic,
		at:        t.at,
	}
	return res, nil
}

// at selects the functions for the zoom level in g.
// Outside the range of zoom levels, the nearest function is used.
func (t *zoomTable) at(g stylefunc.Globals) *Feature {
	z, ok := toFloat(g[stylefunc.ZoomKey])
	if !ok || math.IsNaN(z) {
		return t.funcs[0].At(g)
	}

	n := len(t.zooms)
	i := sort.SearchFloat64s(t.zooms, z)
	switch {
	case i == n:
		return t.funcs[n-1].At(g)
	case i == 0 || t.zooms[i] == z:
		return t.funcs[i].At(g)
	case !t.interpolate:
		return t.funcs[i-1].At(g)
	}

	r := ratio(t.base, z, t.zooms[i-1], t.zooms[i])
	return blendFeatures(t.funcs[i-1].At(g), t.funcs[i].At(g), r)
}
