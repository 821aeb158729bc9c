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

// precisionCases place segment boundaries at fractional positions.
var precisionCases = []TestCase{
	{
		Name:     "quarter_offsets",
		Segments: segs(dash(2.25), gap(2.25), dash(2.25), gap(2.25)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "half_offsets",
		Segments: segs(dash(3.5), gap(1.5), dash(3.5), gap(1.5)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "fractional_height",
		Segments: segs(dash(8), gap(4)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4.7},
	},
	{
		Name:     "fractional_dot",
		Segments: segs(gap(1.3), dot, gap(1.3)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 7.4},
	},
	{
		Name:     "truncated_width",
		Segments: segs(dash(4.9), gap(4.9)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 3},
	},
	{
		Name:     "antialiased_offsets",
		Segments: segs(dash(2.5), gap(2.5), dash(2.5), gap(2.5)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4, Antialias: true},
	},
}
