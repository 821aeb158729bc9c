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

// largeCases produce tiles big enough for the active edge list strategy
// of the rasteriser.
var largeCases = []TestCase{
	{
		Name:     "wide_dashes",
		Segments: dashGrid(40, 30, 10),
		Style:    linepattern.Style{Color: black, StrokeWidth: 64},
	},
	{
		Name:     "big_dots",
		Segments: segs(dot, gap(32), dot, gap(32)),
		Style:    linepattern.Style{Color: black, StrokeWidth: 128, Antialias: true},
	},
}

// dashGrid repeats a dash of length on followed by a gap of length off.
func dashGrid(n int, on, off float64) []linepattern.Segment {
	res := make([]linepattern.Segment, 0, 2*n)
	for range n {
		res = append(res, dash(on), gap(off))
	}
	return res
}
