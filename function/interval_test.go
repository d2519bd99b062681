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
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/stylefunc"
)

func TestInterval(t *testing.T) {
	type testCase struct {
		x    stylefunc.Value
		want stylefunc.Value
	}
	tests := []struct {
		name  string
		f     *Interval
		cases []testCase
	}{
		{
			name: "one range element",
			f:    &Interval{Domain: []float64{}, Range: []stylefunc.Value{11}},
			cases: []testCase{
				{-0.5, 11}, {0, 11}, {0.5, 11},
			},
		},
		{
			name: "two range elements",
			f:    &Interval{Domain: []float64{0}, Range: []stylefunc.Value{11, 111}},
			cases: []testCase{
				{-1.5, 11}, {-0.5, 11}, {0, 111}, {0.5, 111},
			},
		},
		{
			name: "three range elements",
			f:    &Interval{Domain: []float64{0, 1}, Range: []stylefunc.Value{11, 111, 1111}},
			cases: []testCase{
				{-1.5, 11}, {-0.5, 11}, {0, 111}, {0.5, 111}, {1, 1111}, {1.5, 1111},
			},
		},
		{
			name: "strings",
			f:    &Interval{Domain: []float64{3, 4}, Range: []stylefunc.Value{"a", "b", "c"}},
			cases: []testCase{
				{0, "a"}, {1, "a"}, {2, "a"}, {3, "b"}, {3.5, "b"}, {4, "c"}, {5, "c"},
				{int32(4), "c"},
			},
		},
		{
			name: "not a number",
			f:    &Interval{Domain: []float64{3, 4}, Range: []stylefunc.Value{"a", "b", "c"}},
			cases: []testCase{
				{nil, "a"}, {"5", "a"}, {math.NaN(), "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.f.validate(); err != nil {
				t.Fatal(err)
			}
			for _, tc := range tt.cases {
				if got := tt.f.Apply(tc.x); got != tc.want {
					t.Errorf("Apply(%v) = %v, want %v", tc.x, got, tc.want)
				}
			}
		})
	}
}

func TestIntervalValidate(t *testing.T) {
	bad := []*Interval{
		{Domain: []float64{1, 2}, Range: []stylefunc.Value{"a", "b"}},
		{Domain: []float64{1}, Range: []stylefunc.Value{"a", "b", "c"}},
		{Domain: []float64{2, 1}, Range: []stylefunc.Value{"a", "b", "c"}},
	}
	for i, f := range bad {
		err := f.validate()
		if !errors.Is(err, &InvalidFunctionError{}) {
			t.Errorf("%d: expected InvalidFunctionError, got %v", i, err)
		}
	}
}
