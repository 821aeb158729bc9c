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
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498

// TileSize returns the pixel dimensions of the tile for a pattern.
// The width is the pattern length and the height is strokeWidth*skew,
// both truncated towards zero.  The height deliberately ignores the
// aspect ratio of the pattern: map renderers stretch the tile to the
// line width, and this keeps dots round after stretching.
//
// An error wrapping ErrEmptySequence or ErrInvalidParameter is returned
// if no tile can be drawn, including the case where a dimension
// truncates to zero or exceeds MaxDimension.
func TileSize(segs []Segment, strokeWidth, skew float64) (width, height int, err error) {
	if err := checkParams(segs, strokeWidth, skew); err != nil {
		return 0, 0, err
	}

	wf := SequenceWidth(segs, strokeWidth, skew)
	hf := strokeWidth * skew
	if !(wf >= 1 && wf < MaxDimension+1) {
		return 0, 0, fmt.Errorf("tile width %g: %w", wf, ErrInvalidParameter)
	}
	if !(hf >= 1 && hf < MaxDimension+1) {
		return 0, 0, fmt.Errorf("tile height %g: %w", hf, ErrInvalidParameter)
	}
	return int(wf), int(hf), nil
}

// Rasterize draws a pattern into a new tile, using the given style.
// The tile is meant to be repeated along a line, with the x-axis of the
// tile pointing along the line.
func Rasterize(segs []Segment, style Style) (*image.RGBA, error) {
	img, err := RasterizePaint(segs, style.Paint(), style.StrokeWidth, style.skew(), style.Antialias)
	if err != nil {
		return nil, err
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		b := img.Bounds()
		l.Debug("rasterised pattern tile",
			slog.String("key", SequenceName(segs, style)),
			slog.Int("width", b.Dx()),
			slog.Int("height", b.Dy()))
	}
	return img, nil
}

// RasterizePaint draws a pattern into a new tile, filling the shapes given
// by [Outline] with paint.  Unlike Rasterize, skew has no default and must
// be > 0.
func RasterizePaint(segs []Segment, paint color.Color, strokeWidth, skew float64, antialias bool) (*image.RGBA, error) {
	width, height, err := TileSize(segs, strokeWidth, skew)
	if err != nil {
		return nil, err
	}

	coverage := make([]float32, width*height)
	r := NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	r.FillNonZero(Outline(segs, strokeWidth, skew), func(y, xMin int, c []float32) {
		copy(coverage[y*width+xMin:], c)
	})

	bounds := image.Rect(0, 0, width, height)
	mask := image.NewAlpha(bounds)
	for i, c := range coverage {
		switch {
		case antialias:
			mask.Pix[i] = uint8(max(0, min(255, int(c*256))))
		case c >= 0.5:
			mask.Pix[i] = 255
		}
	}

	img := image.NewRGBA(bounds)
	draw.DrawMask(img, bounds, image.NewUniform(paint), image.Point{}, mask, image.Point{}, draw.Over)
	return img, nil
}

// Outline returns the path enclosing all painted parts of a pattern, in
// tile coordinates with y pointing down.  Segments are laid out left to
// right, starting at x=0.  A dash contributes the rectangle from the current
// position to the position plus its length, a dot contributes the oval
// inscribed in the square of side strokeWidth*skew.  Gaps and segments of
// unknown type only advance the position.
func Outline(segs []Segment, strokeWidth, skew float64) *path.Data {
	p := &path.Data{}
	h := strokeWidth * skew
	cursor := 0.0
	for _, s := range segs {
		w := Width(s, strokeWidth, skew)
		switch s.(type) {
		case Dash:
			p = addRectangle(p, cursor, 0, cursor+w, h)
		case Dot:
			p = addOval(p, cursor, 0, cursor+w, h)
		}
		cursor += w
	}
	return p
}

func addRectangle(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	return p.
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

// addOval appends four cubic Bézier curves approximating the ellipse
// inscribed in the rectangle with corners (x0, y0) and (x1, y1).
// The orientation matches addRectangle, so that shapes touching at a
// fractional position add up instead of cancelling.
func addOval(p *path.Data, x0, y0, x1, y1 float64) *path.Data {
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*kappa, ry*kappa

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy+ky), pt(cx+kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx-kx, cy+ry), pt(cx-rx, cy+ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy-ky), pt(cx-kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx+kx, cy-ry), pt(cx+rx, cy-ky), pt(cx+rx, cy)).
		Close()
}
