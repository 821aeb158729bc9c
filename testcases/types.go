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

// TestCase is a named pattern together with the style it is drawn in.
type TestCase struct {
	Name     string // lowercase a-z, 0-9 and _ only
	Segments []linepattern.Segment
	Style    linepattern.Style
}

// Opaque colors used by the cases, as packed ARGB.
const (
	black = 0xFF000000
	white = 0xFFFFFFFF
	red   = 0xFFFF0000
	blue  = 0xFF0000FF
)

func dash(l float64) linepattern.Segment { return linepattern.Dash{Length: l} }
func gap(l float64) linepattern.Segment  { return linepattern.Gap{Length: l} }

var dot linepattern.Segment = linepattern.Dot{}

// segs is shorthand for a segment list.
func segs(s ...linepattern.Segment) []linepattern.Segment {
	return s
}
