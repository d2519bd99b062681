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

import "testing"

func TestConstancy(t *testing.T) {
	type testCase struct {
		c               Constancy
		global, feature bool
		name            string
	}
	testCases := []testCase{
		{Dynamic, false, false, "dynamic"},
		{FeatureConstant, false, true, "feature-constant"},
		{GlobalConstant, true, true, "global-constant"},
	}
	for _, tc := range testCases {
		if got := tc.c.IsGlobalConstant(); got != tc.global {
			t.Errorf("%s: IsGlobalConstant() = %t, want %t", tc.name, got, tc.global)
		}
		if got := tc.c.IsFeatureConstant(); got != tc.feature {
			t.Errorf("%s: IsFeatureConstant() = %t, want %t", tc.name, got, tc.feature)
		}
		if got := tc.c.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
	}

	if s := Constancy(7).String(); s != "Constancy(7)" {
		t.Errorf("unexpected name %q", s)
	}
}

func TestZoom(t *testing.T) {
	g := Zoom(3.5)
	if len(g) != 1 || g[ZoomKey] != 3.5 {
		t.Errorf("Zoom(3.5) = %v", g)
	}
}
