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

var dotCases = []TestCase{
	{
		Name:     "single",
		Segments: segs(dot),
		Style:    linepattern.Style{Color: black, StrokeWidth: 16},
	},
	{
		Name:     "dot_gap",
		Segments: segs(dot, gap(8)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 8},
	},
	{
		Name:     "two_dots",
		Segments: segs(dot, dot, gap(4)),
		Style:    linepattern.Style{Color: red, StrokeWidth: 10},
	},
	{
		Name:     "skewed",
		Segments: segs(dot, gap(6)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 6, Skew: 2},
	},
	{
		Name:     "squashed",
		Segments: segs(dot, gap(6)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 12, Skew: 0.5},
	},
	{
		Name:     "antialiased",
		Segments: segs(dot, gap(10)),
		Style:    linepattern.Style{Color: white, StrokeWidth: 20, Antialias: true},
	},
}
