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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/stylefunc"
)

func TestIsInterpolatable(t *testing.T) {
	type testCase struct {
		v    stylefunc.Value
		want bool
	}
	testCases := []testCase{
		{1, true},
		{1.5, true},
		{float32(2), true},
		{uint8(7), true},
		{[]any{1, 2.5}, true},
		{[]float64{0, 1}, true},
		{[]int{3}, true},
		{"a", false},
		{true, false},
		{nil, false},
		{[]any{1, "a"}, false},
		{math.Inf(1), false},
		{math.NaN(), false},
		{[]float64{0, math.NaN()}, false},
		{map[string]any{"x": 1}, false},
	}
	for i, tc := range testCases {
		if got := isInterpolatable(tc.v); got != tc.want {
			t.Errorf("%d: isInterpolatable(%v) = %t, want %t", i, tc.v, got, tc.want)
		}
	}
}

func TestEqualKeys(t *testing.T) {
	type testCase struct {
		key, x stylefunc.Value
		want   bool
	}
	testCases := []testCase{
		{1, 1.0, true},
		{int64(2), uint(2), true},
		{1, 2, false},
		{1, "1", false},
		{"box", "box", true},
		{"box", "map", false},
		{true, true, true},
		{true, 1, false},
		{nil, nil, true},
		{nil, 0, false},
		{[]any{1, 2}, []any{1, 2}, true},
		{[]any{1, 2}, []any{2, 1}, false},
	}
	for i, tc := range testCases {
		if got := equalKeys(tc.key, tc.x); got != tc.want {
			t.Errorf("%d: equalKeys(%v, %v) = %t, want %t", i, tc.key, tc.x, got, tc.want)
		}
	}
}

func TestRatio(t *testing.T) {
	type testCase struct {
		base, x, x0, x1 float64
		want            float64
	}
	testCases := []testCase{
		{1, 3, 1, 5, 0.5},
		{1, 1, 1, 5, 0},
		{1, 5, 1, 5, 1},
		{2, 3, 1, 5, 0.2},
		{2, 5, 1, 5, 1},
		{1, 2, 2, 2, 0},
	}
	for _, tc := range testCases {
		if got := ratio(tc.base, tc.x, tc.x0, tc.x1); got != tc.want {
			t.Errorf("ratio(%g, %g, %g, %g) = %g, want %g",
				tc.base, tc.x, tc.x0, tc.x1, got, tc.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	type testCase struct {
		a, b stylefunc.Value
		t    float64
		want stylefunc.Value
	}
	testCases := []testCase{
		{1.0, 10.0, 0.5, 5.5},
		{1, 3, 0.5, 2.0},
		{1.0, 10.0, 0, 1.0},
		{1.0, 10.0, 1, 10.0},
		{0.1, 0.1, 0.3, 0.1},
		{[]float64{1, 2}, []float64{5, 10}, 0.5, []float64{3, 6}},
		{[]any{1, 2}, []int{5, 10, 20}, 0.5, []float64{3, 6}},
		{"a", "b", 0.25, "a"},
		{"a", "b", 0.5, "b"},
		{1.0, []float64{1}, 0.75, []float64{1}},
		{1, 1, 0.3, 1},
		{1, 3, 0, 1},
		{1, 3, 1, 3},
		{[]any{1, 2}, []any{1, 2}, 0.3, []any{1, 2}},
		{[]int{0, 0, 0, 1}, []int{0, 0, 0, 1}, 0.7, []int{0, 0, 0, 1}},
	}
	for i, tc := range testCases {
		got := interpolate(tc.a, tc.b, tc.t)
		if d := cmp.Diff(tc.want, got); d != "" {
			t.Errorf("%d: unexpected result (-want +got):\n%s", i, d)
		}
	}
}

func TestMapNumbers(t *testing.T) {
	double := func(x float64) float64 { return 2 * x }
	if got := mapNumbers(3, double); got != 6.0 {
		t.Errorf("mapNumbers(3) = %v", got)
	}
	if d := cmp.Diff([]float64{2, 4}, mapNumbers([]any{1, 2.0}, double)); d != "" {
		t.Errorf("unexpected result (-want +got):\n%s", d)
	}
	if got := mapNumbers("x", double); got != "x" {
		t.Errorf("mapNumbers(\"x\") = %v", got)
	}
}
