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
	"bytes"
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

var (
	red    = Style{Color: 0xFFFF0000, StrokeWidth: 4}
	redRGB = color.RGBA{R: 255, A: 255}
)

// painted reports whether the pixel at (x, y) is not transparent.
func painted(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y).A != 0
}

func TestTileSize(t *testing.T) {
	cases := []struct {
		segs        []Segment
		strokeWidth float64
		skew        float64
		w, h        int
	}{
		{[]Segment{Dash{Length: 10}}, 4, 1, 10, 4},
		{[]Segment{Dash{Length: 5}, Gap{Length: 3}, Dot{}}, 4, 1, 12, 4},
		{[]Segment{Dash{Length: 4.9}, Gap{Length: 4.9}}, 3, 1, 9, 3},
		{[]Segment{Dash{Length: 8}, Gap{Length: 4}}, 4.7, 1, 12, 4},
		{[]Segment{Dot{}, Gap{Length: 6}}, 6, 2, 18, 12},
		{[]Segment{Dot{}, Gap{Length: 6}}, 12, 0.5, 12, 6},
		{[]Segment{futureSegment{}, Dash{Length: 1}}, 2, 1, 2, 2},
	}
	for _, c := range cases {
		w, h, err := TileSize(c.segs, c.strokeWidth, c.skew)
		if err != nil {
			t.Errorf("TileSize(%v, %g, %g): %v", c.segs, c.strokeWidth, c.skew, err)
			continue
		}
		if w != c.w || h != c.h {
			t.Errorf("TileSize(%v, %g, %g) = %dx%d, want %dx%d",
				c.segs, c.strokeWidth, c.skew, w, h, c.w, c.h)
		}
		if want := int(c.strokeWidth * c.skew); h != want {
			t.Errorf("height %d is not the truncated stroke height %d", h, want)
		}
	}
}

func TestRasterizeErrors(t *testing.T) {
	dash := []Segment{Dash{Length: 10}}
	cases := []struct {
		name  string
		segs  []Segment
		style Style
		want  error
	}{
		{"empty", nil, red, ErrEmptySequence},
		{"zero_width", dash, Style{StrokeWidth: 0}, ErrInvalidParameter},
		{"negative_width", dash, Style{StrokeWidth: -4}, ErrInvalidParameter},
		{"nan_width", dash, Style{StrokeWidth: math.NaN()}, ErrInvalidParameter},
		{"inf_width", dash, Style{StrokeWidth: math.Inf(1)}, ErrInvalidParameter},
		{"negative_skew", dash, Style{StrokeWidth: 4, Skew: -1}, ErrInvalidParameter},
		{"negative_length", []Segment{Dash{Length: 5}, Gap{Length: -1}}, red, ErrInvalidParameter},
		{"nan_length", []Segment{Dash{Length: math.NaN()}}, red, ErrInvalidParameter},
		{"zero_height", []Segment{Dot{}, Dash{Length: 3}}, Style{StrokeWidth: 0.5}, ErrInvalidParameter},
		{"zero_tile_width", []Segment{Dot{}}, Style{StrokeWidth: 4, Skew: 0.2}, ErrInvalidParameter},
		{"short_pattern", []Segment{Dash{Length: 0.5}, Gap{Length: 0.4}}, red, ErrInvalidParameter},
		{"too_wide", []Segment{Dash{Length: 1e9}}, red, ErrInvalidParameter},
		{"too_high", dash, Style{StrokeWidth: 1e6}, ErrInvalidParameter},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img, err := Rasterize(c.segs, c.style)
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
			if img != nil {
				t.Error("image returned together with an error")
			}
		})
	}
}

func TestSolidDash(t *testing.T) {
	img, err := Rasterize([]Segment{Dash{Length: 10}}, red)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 10, 4) {
		t.Fatalf("bounds %v, want 10x4", b)
	}
	for y := range 4 {
		for x := range 10 {
			if c := img.RGBAAt(x, y); c != redRGB {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, c, redRGB)
			}
		}
	}
}

func TestGapsOnly(t *testing.T) {
	img, err := Rasterize([]Segment{Gap{Length: 5}, Gap{Length: 2.5}}, red)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 7, 4) {
		t.Fatalf("bounds %v, want 7x4", b)
	}
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("byte %d of gap-only tile is %d", i, v)
		}
	}
}

func TestDashGapDot(t *testing.T) {
	img, err := Rasterize([]Segment{Dash{Length: 5}, Gap{Length: 3}, Dot{}}, red)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 12, 4) {
		t.Fatalf("bounds %v, want 12x4", b)
	}

	for y := range 4 {
		for x := 0; x < 5; x++ {
			if c := img.RGBAAt(x, y); c != redRGB {
				t.Errorf("dash pixel (%d, %d) = %v", x, y, c)
			}
		}
		for x := 5; x < 8; x++ {
			if painted(img, x, y) {
				t.Errorf("gap pixel (%d, %d) is painted", x, y)
			}
		}
	}

	// the dot is a circle of radius 2 centred at (10, 2)
	for _, p := range []image.Point{{8, 0}, {11, 0}, {8, 3}, {11, 3}} {
		if painted(img, p.X, p.Y) {
			t.Errorf("dot corner %v is painted", p)
		}
	}
	for _, p := range []image.Point{{9, 1}, {10, 1}, {9, 2}, {10, 2}, {8, 1}, {9, 0}} {
		if c := img.RGBAAt(p.X, p.Y); c != redRGB {
			t.Errorf("dot pixel %v = %v, want %v", p, c, redRGB)
		}
	}
	for x := 8; x < 12; x++ {
		n := 0
		for y := range 4 {
			if painted(img, x, y) {
				n++
			}
		}
		if n == 0 {
			t.Errorf("dot column %d is empty", x)
		}
	}
}

func TestUnknownSegment(t *testing.T) {
	segs := []Segment{Dash{Length: 2}, futureSegment{}, Dash{Length: 2}}
	img, err := Rasterize(segs, Style{Color: 0xFF00FF00, StrokeWidth: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 5, 2) {
		t.Fatalf("bounds %v, want 5x2", b)
	}
	for y := range 2 {
		for x := range 5 {
			if want := x != 2; painted(img, x, y) != want {
				t.Errorf("pixel (%d, %d): painted=%t, want %t", x, y, !want, want)
			}
		}
	}
}

func TestFractionalBoundaries(t *testing.T) {
	segs := []Segment{Dash{Length: 2.5}, Gap{Length: 2.5}, Dash{Length: 2.5}, Gap{Length: 2.5}}

	hard, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 4})
	if err != nil {
		t.Fatal(err)
	}
	soft, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 4, Antialias: true})
	if err != nil {
		t.Fatal(err)
	}

	// Columns 2 and 7 are half covered.
	wantHard := []bool{true, true, true, false, false, true, true, true, false, false}
	wantSoft := []uint8{255, 255, 128, 0, 0, 255, 255, 128, 0, 0}
	for y := range 4 {
		for x := range 10 {
			if painted(hard, x, y) != wantHard[x] {
				t.Errorf("aliased pixel (%d, %d): painted=%t", x, y, !wantHard[x])
			}
			if a := soft.RGBAAt(x, y).A; a != wantSoft[x] {
				t.Errorf("antialiased pixel (%d, %d): alpha %d, want %d", x, y, a, wantSoft[x])
			}
		}
	}
}

// TestAbuttingDashes checks that two dashes meeting at a fractional
// position leave no seam.
func TestAbuttingDashes(t *testing.T) {
	segs := []Segment{Dash{Length: 3.5}, Dash{Length: 3.5}}
	img, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 3, Antialias: true})
	if err != nil {
		t.Fatal(err)
	}
	for y := range 3 {
		for x := range 7 {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Errorf("pixel (%d, %d): alpha %d, want 255", x, y, a)
			}
		}
	}
}

func TestTranslucentColor(t *testing.T) {
	style := Style{Color: 0x80FF8000, StrokeWidth: 2}
	img, err := Rasterize([]Segment{Dash{Length: 3}}, style)
	if err != nil {
		t.Fatal(err)
	}

	want := color.RGBAModel.Convert(style.Paint()).(color.RGBA)
	if got := img.RGBAAt(1, 1); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestStylePaint(t *testing.T) {
	got := Style{Color: 0x80112233}.Paint()
	want := color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x80}
	if got != want {
		t.Errorf("Paint() = %v, want %v", got, want)
	}
}

func TestSkew(t *testing.T) {
	segs := []Segment{Dot{}, Gap{Length: 6}}

	img, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 6, Skew: 2})
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, 18, 12) {
		t.Fatalf("bounds %v, want 18x12", b)
	}
	if !painted(img, 6, 6) {
		t.Error("centre of dot is not painted")
	}
	if painted(img, 15, 6) {
		t.Error("gap is painted")
	}

	// a zero skew means the default
	a, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 6})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Rasterize(segs, Style{Color: 0xFF000000, StrokeWidth: 6, Skew: DefaultSkew})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) || a.Bounds() != b.Bounds() {
		t.Error("zero skew differs from the default skew")
	}
}

func TestDeterministic(t *testing.T) {
	segs := []Segment{Dash{Length: 7.3}, Gap{Length: 1.1}, Dot{}, Gap{Length: 2.9}, Dot{}}
	style := Style{Color: 0xFF336699, StrokeWidth: 5.5, Skew: 1.3, Antialias: true}

	a, err := Rasterize(segs, style)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Rasterize(segs, style)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("rasterising twice gives different tiles")
	}
}

func TestRasterizePaint(t *testing.T) {
	segs := []Segment{Dash{Length: 4}, Gap{Length: 4}}
	paint := color.RGBA{R: 10, G: 20, B: 30, A: 255}

	img, err := RasterizePaint(segs, paint, 3, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != paint {
		t.Errorf("pixel = %v, want %v", got, paint)
	}

	if _, err := RasterizePaint(segs, paint, 3, 0, false); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("zero skew: got %v, want ErrInvalidParameter", err)
	}
}
