// Package linepattern draws the tiles which map renderers repeat along a
// polyline to produce dashed and dotted lines.
//
// A pattern is a sequence of [Dash], [Gap] and [Dot] segments.  [Rasterize]
// lays the segments out from left to right and fills the painted ones into
// an RGBA image whose height is the stroke width times the skew.
// [SequenceName] returns a key identifying the resulting tile, so that
// callers can share one image between identical requests.
package linepattern

//go:generate go run ./testcases/genpdf
