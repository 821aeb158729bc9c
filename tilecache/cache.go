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

// Package tilecache keeps rendered pattern tiles, so that identical
// patterns share a single image.
//
// Tiles are keyed by [linepattern.SequenceName].  The cache evicts the
// least recently used tile once its capacity is reached.
package tilecache

import (
	"container/list"
	"image"
	"sync"
	"sync/atomic"

	"seehuhn.de/go/linepattern"
)

// DefaultCapacity is the capacity used when New is called with a
// non-positive capacity.
const DefaultCapacity = 64

// Cache is a least-recently-used cache of tiles.
// A Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	lru      *list.List // front is most recently used
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry struct {
	key  string
	tile *image.RGBA
}

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// New returns an empty cache which holds at most capacity tiles.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
		capacity: capacity,
	}
}

// Get returns the tile stored under key.
func (c *Cache) Get(key string) (*image.RGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.lru.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*entry).tile, true
}

// Set stores a tile under key, replacing any previous tile.
// The tile must not be modified afterwards.
func (c *Cache) Set(key string, tile *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, tile)
}

func (c *Cache) set(key string, tile *image.RGBA) {
	if el, ok := c.entries[key]; ok {
		el.Value.(*entry).tile = tile
		c.lru.MoveToFront(el)
		return
	}
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&entry{key: key, tile: tile})
}

// GetOrCreate returns the tile stored under key.  If there is none,
// create is called and its result is stored.  Errors from create are
// returned to the caller and nothing is stored.
//
// create runs with the cache locked, so concurrent requests for the same
// key render the tile only once.
func (c *Cache) GetOrCreate(key string, create func() (*image.RGBA, error)) (*image.RGBA, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry).tile, nil
	}
	c.misses.Add(1)

	tile, err := create()
	if err != nil {
		return nil, err
	}
	c.set(key, tile)
	return tile, nil
}

// Tile returns the tile for a pattern, rendering it with
// [linepattern.Rasterize] if it is not yet cached.
// The returned image is shared and must not be modified.
func (c *Cache) Tile(segs []linepattern.Segment, style linepattern.Style) (*image.RGBA, string, error) {
	key := linepattern.SequenceName(segs, style)
	tile, err := c.GetOrCreate(key, func() (*image.RGBA, error) {
		return linepattern.Rasterize(segs, style)
	})
	if err != nil {
		return nil, "", err
	}
	return tile, key, nil
}

// Delete removes the tile stored under key and reports whether there was one.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return false
	}
	c.lru.Remove(el)
	delete(c.entries, key)
	return true
}

// Clear removes all tiles.  Statistics are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.lru.Init()
}

// Len returns the number of cached tiles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the maximum number of cached tiles.
func (c *Cache) Capacity() int {
	return c.capacity
}

// Stats returns the current statistics.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
