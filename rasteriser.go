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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a non-horizontal line segment in pixel coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser computes the fraction of each pixel covered by a filled path.
// Coordinates are pixel coordinates with the origin in the top-left corner
// of the tile and y pointing down.
//
// Internal buffers grow as needed and are kept between calls, so a single
// Rasteriser can fill all shapes of a tile without further allocations.
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// Clip is the output region.  Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in pixels.
	// Must be > 0.
	Flatness float64

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// the 2D buffer strategy.  Larger paths use an active edge list.
	smallPathThreshold int

	cover     []float32 // cover change per pixel; reused as output
	area      []float32 // area within pixel
	edges     []edge
	activeIdx []int
	rowUsed   []bool    // per-row flag: some edge reaches this row
	crossings []float64 // y values where an edge crosses pixel columns

	bboxEmpty bool
	bboxXMin  float64
	bboxXMax  float64
	bboxYMin  float64
	bboxYMax  float64
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, using
// the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		Clip:               clip,
		Flatness:           defaultFlatness,
		smallPathThreshold: smallPathThreshold,
	}
}

// Reset prepares the Rasteriser for a new clip rectangle, keeping the
// capacity of all internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.rowUsed = r.rowUsed[:0]
	r.crossings = r.crossings[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// Coverage values in [0, 1] are passed to emit one row at a time, starting
// at column xMin.  The coverage slice is only valid during the call.
// Rows without coverage are skipped.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmall(xMin, xMax, yMin, yMax, emit)
	} else {
		r.fillLarge(xMin, xMax, yMin, yMax, emit)
	}
}

// collectEdges flattens the path into r.edges and returns the bounding box
// of the edges, clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			// degree elevation: a quadratic is a cubic with these controls
			c1 := current.Add(p.Coords[k].Sub(current).Mul(2.0 / 3.0))
			c2 := p.Coords[k+1].Add(p.Coords[k].Sub(p.Coords[k+1]).Mul(2.0 / 3.0))
			r.flattenCubic(current, c1, c2, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula to choose the number of segments.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: (p1.X - p0.X) / dy,
	})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(p0.X, p1.X), max(p0.X, p1.X)
		r.bboxYMin, r.bboxYMax = min(p0.Y, p1.Y), max(p0.Y, p1.Y)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, p0.X, p1.X)
	r.bboxXMax = max(r.bboxXMax, p0.X, p1.X)
	r.bboxYMin = min(r.bboxYMin, p0.Y, p1.Y)
	r.bboxYMax = max(r.bboxYMax, p0.Y, p1.Y)
}

// Coverage accumulation model:
//
// Every edge crossing a pixel contributes
//   cover = sign * dy               (sign is +1 for downward edges)
//   area  = cover * (1 - xFrac)     (xFrac is the crossing position within the pixel)
//
// Integrating a row from the left gives the signed covered area per pixel:
//   coverage[i] = accum + area[i]
//   accum      += cover[i]

// accumulateEdge adds the contribution of e within row y to cover and area,
// which are indexed by x - bboxXMin.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		r.accumulateSpan(e, yTop, yBot, sign, cover, area, bboxXMin, bboxXMax)
		return
	}

	// split the edge where it crosses pixel column boundaries
	dydx := 1 / e.dxdy
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := pixLeft + 1; x <= pixRight; x++ {
		yx := e.y0 + dydx*(float64(x)-e.x0)
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		r.accumulateSpan(e, r.crossings[i], r.crossings[i+1], sign, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSpan handles the part of e between y0 and y1, which must lie
// within a single pixel column.
func (r *Rasteriser) accumulateSpan(e *edge, y0, y1 float64, sign float32, cover, area []float32, bboxXMin, bboxXMax int) {
	if y1 <= y0 {
		return
	}
	c := sign * float32(y1-y0)

	xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
	pix := int(math.Floor(xMid))
	switch {
	case pix < bboxXMin:
		cover[0] += c
		area[0] += c
	case pix < bboxXMax:
		idx := pix - bboxXMin
		cover[idx] += c
		area[idx] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero turns the accumulated cover and area values of one row
// into coverage values.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the non-zero part of coverage and its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmall rasterises the path into 2D buffers covering the bounding box.
func (r *Rasteriser) fillSmall(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowUsed[row] = true
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// fillLarge rasterises the path one row at a time, keeping a list of the
// edges which intersect the current row.
func (r *Rasteriser) fillLarge(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if trimmed, lo := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+lo, trimmed)
		}
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the maximum bounding box area (in pixels) for
	// the 2D buffer strategy.
	smallPathThreshold = 65536
)
