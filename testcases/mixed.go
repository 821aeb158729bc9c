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

var mixedCases = []TestCase{
	{
		Name:     "dash_gap_dot",
		Segments: segs(dash(5), gap(3), dot),
		Style:    linepattern.Style{Color: black, StrokeWidth: 4},
	},
	{
		Name:     "dash_dot",
		Segments: segs(dash(20), gap(5), dot, gap(5)),
		Style:    linepattern.Style{Color: blue, StrokeWidth: 8},
	},
	{
		Name:     "dash_dot_dot",
		Segments: segs(dash(16), gap(4), dot, gap(4), dot, gap(4)),
		Style:    linepattern.Style{Color: red, StrokeWidth: 6},
	},
	{
		Name:     "abutting",
		Segments: segs(dash(6), dot, dash(6)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 6},
	},
	{
		Name:     "antialiased",
		Segments: segs(dash(12), gap(4), dot, gap(4)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 10, Antialias: true},
	},
}
