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
	"errors"
	"fmt"
	"image/color"
	"math"
)

var (
	// ErrEmptySequence is returned when a pattern without segments is
	// rasterised.
	ErrEmptySequence = errors.New("empty pattern")

	// ErrInvalidParameter is returned for stroke widths, skews or segment
	// lengths which do not describe a drawable tile.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// DefaultSkew is the skew used when Style.Skew is zero.
const DefaultSkew = 1.0

// MaxDimension is the largest tile width or height in pixels.
const MaxDimension = 1 << 15

// Style describes how a pattern is painted.
type Style struct {
	// Color is the fill color as packed, non-premultiplied 0xAARRGGBB.
	Color uint32

	// StrokeWidth is the width of the line the pattern is drawn on.
	// Must be > 0.
	StrokeWidth float64

	// Skew scales the tile height and the size of dots.
	// Zero means DefaultSkew.
	Skew float64

	// Antialias enables fractional coverage at shape boundaries.
	// By default every pixel is either fully painted or left transparent.
	Antialias bool
}

// Paint returns the fill color of the style.
func (s Style) Paint() color.NRGBA {
	return color.NRGBA{
		R: uint8(s.Color >> 16),
		G: uint8(s.Color >> 8),
		B: uint8(s.Color),
		A: uint8(s.Color >> 24),
	}
}

func (s Style) skew() float64 {
	if s.Skew == 0 {
		return DefaultSkew
	}
	return s.Skew
}

// checkParams verifies that the stroke width, the skew and all segment
// lengths are usable.
func checkParams(segs []Segment, strokeWidth, skew float64) error {
	if len(segs) == 0 {
		return ErrEmptySequence
	}
	if !isPositive(strokeWidth) {
		return fmt.Errorf("stroke width %g: %w", strokeWidth, ErrInvalidParameter)
	}
	if !isPositive(skew) {
		return fmt.Errorf("skew %g: %w", skew, ErrInvalidParameter)
	}
	for i, s := range segs {
		var l float64
		switch s := s.(type) {
		case Dash:
			l = s.Length
		case Gap:
			l = s.Length
		default:
			continue
		}
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return fmt.Errorf("segment %d (%s): %w", i, Name(s), ErrInvalidParameter)
		}
	}
	return nil
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
