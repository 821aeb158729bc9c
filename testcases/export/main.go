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

// Command export renders every test case to a PNG tile and writes an index
// of the tiles, with their cache keys, to testdata/tiles/index.json.
// Cases which share a cache key share one file.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"seehuhn.de/go/linepattern"
	"seehuhn.de/go/linepattern/testcases"
	"seehuhn.de/go/linepattern/tilecache"
)

const outDir = "testdata/tiles"

type jsonTile struct {
	Name   string `json:"name"`
	Key    string `json:"key"`
	File   string `json:"file"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	linepattern.SetLogger(log)

	if err := run(log); err != nil {
		log.Error("export failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	cache := tilecache.New(0)
	files := make(map[string]string) // cache key -> file name

	var out struct {
		Tiles []jsonTile `json:"tiles"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			tile, key, err := cache.Tile(tc.Segments, tc.Style)
			if err != nil {
				return err
			}

			file, seen := files[key]
			if !seen {
				file = "tile" + strconv.Itoa(len(files)) + ".png"
				files[key] = file
				if err := writePNG(filepath.Join(outDir, file), tile); err != nil {
					return err
				}
			}

			b := tile.Bounds()
			out.Tiles = append(out.Tiles, jsonTile{
				Name:   name,
				Key:    key,
				File:   file,
				Width:  b.Dx(),
				Height: b.Dy(),
			})
		}
	}

	f, err := os.Create(filepath.Join(outDir, "index.json"))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	st := cache.Stats()
	log.Info("exported tiles", "cases", len(out.Tiles), "files", len(files), "hits", st.Hits)
	return f.Close()
}

func writePNG(fname string, img *image.RGBA) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
