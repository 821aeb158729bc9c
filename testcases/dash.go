// seehuhn.de/go/linepattern - line pattern tiles for map renderers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package testcases

import "seehuhn.de/go/linepattern"

var dashCases = []TestCase{
	{
		Name:     "single",
		Segments: segs(dash(10)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "dash_gap",
		Segments: segs(dash(10), gap(10)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "long_short",
		Segments: segs(dash(20), gap(2)),
		Style:    linepattern.Style{Color: red, StrokeWidth: 6},
	},
	{
		Name:     "short_long",
		Segments: segs(dash(2), gap(20)),
		Style:    linepattern.Style{Color: blue, StrokeWidth: 6},
	},
	{
		Name:     "three_element",
		Segments: segs(dash(5), gap(3), dash(8), gap(3)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 5},
	},
	{
		Name:     "gap_first",
		Segments: segs(gap(4), dash(12)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 3},
	},
	{
		Name:     "gap_only",
		Segments: segs(gap(7), gap(5)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "zero_dash",
		Segments: segs(dash(0), gap(6), dash(6)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
}
