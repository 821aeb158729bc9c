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

package linepattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one element of a line pattern.
// The implementations are [Dash], [Gap] and [Dot].
type Segment interface {
	isSegment()
}

// Dash is a filled rectangle of the given length along the line.
type Dash struct {
	Length float64
}

func (Dash) isSegment() {}

// Gap is an empty stretch of the given length.
type Gap struct {
	Length float64
}

func (Gap) isSegment() {}

// Dot is a filled oval.  Its length along the line equals its height,
// the stroke width times the skew.
type Dot struct{}

func (Dot) isSegment() {}

// Name returns the textual identifier of a segment, as used in cache keys.
// Segments of unknown type are identified by their Go type name.
func Name(s Segment) string {
	switch s := s.(type) {
	case Dash:
		return "dash" + formatFloat(s.Length)
	case Gap:
		return "gap" + formatFloat(s.Length)
	case Dot:
		return "dot"
	default:
		return fmt.Sprintf("%T", s)
	}
}

// Width returns the length of a segment along the line.
// Segments of unknown type have width 1.
func Width(s Segment, strokeWidth, skew float64) float64 {
	switch s := s.(type) {
	case Dash:
		return s.Length
	case Gap:
		return s.Length
	case Dot:
		return strokeWidth * skew
	default:
		return 1
	}
}

// SequenceWidth returns the total length of a pattern along the line.
// This is zero for an empty pattern.
func SequenceWidth(segs []Segment, strokeWidth, skew float64) float64 {
	var w float64
	for _, s := range segs {
		w += Width(s, strokeWidth, skew)
	}
	return w
}

// SequenceName returns the cache key for a pattern drawn in the given style.
// Two calls return the same key only if the tiles produced by [Rasterize]
// are identical.
//
// The key consists of the segment names joined by "-", followed by
// "-<color>-width<strokeWidth>-skew<skew>", where the color is the packed
// ARGB value in decimal.  Numbers use the shortest decimal representation
// which identifies the float64 value, with ".0" added to integers.
// Tiles with anti-aliasing enabled get the additional suffix "-aa".
func SequenceName(segs []Segment, style Style) string {
	b := &strings.Builder{}
	for i, s := range segs {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(Name(s))
	}
	b.WriteByte('-')
	b.WriteString(strconv.FormatUint(uint64(style.Color), 10))
	b.WriteString("-width")
	b.WriteString(formatFloat(style.StrokeWidth))
	b.WriteString("-skew")
	b.WriteString(formatFloat(style.skew()))
	if style.Antialias {
		b.WriteString("-aa")
	}
	return b.String()
}

// formatFloat formats x so that distinct float64 values give distinct
// strings, e.g. 2 -> "2.0", 0.1 -> "0.1", 1e21 -> "1000000000000000000000.0".
func formatFloat(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
