// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package devices

import (
	"io"

	"github.com/db47h/intcode/internal/ngi"
	"github.com/db47h/intcode/vm"
)

// Point is a location on a Grid. Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Coordinates on a grid must fit in 31 bits after zig-zag encoding.
const (
	coordBits = 31
	coordMin  = -(1 << (coordBits - 1))
	coordMax  = 1<<(coordBits-1) - 1
)

func zigzag(v int) uint64 {
	if v < coordMin || v > coordMax {
		panic("devices: grid coordinate out of range")
	}
	return uint64((v << 1) ^ (v >> 63))
}

func unzigzag(u uint64) int {
	return int(u>>1) ^ -int(u&1)
}

// addr maps p to a non-negative address by interleaving the bits of its
// zig-zag encoded coordinates. Points close to the origin get small addresses.
func (p Point) addr() vm.Cell {
	x, y := zigzag(p.X), zigzag(p.Y)
	var a uint64
	for i := 0; i < coordBits; i++ {
		a |= (x>>i&1)<<(2*i) | (y>>i&1)<<(2*i+1)
	}
	return vm.Cell(a)
}

func pointAt(a vm.Cell) Point {
	var x, y uint64
	for i := 0; i < coordBits; i++ {
		x |= (uint64(a) >> (2 * i) & 1) << i
		y |= (uint64(a) >> (2*i + 1) & 1) << i
	}
	return Point{unzigzag(x), unzigzag(y)}
}

// Grid is a persistent, unbounded 2D map of values. Like vm.Memory, which it
// is built upon, it has value semantics: Set returns an updated Grid.
//
// A point that was set, even to 0, is distinct from a point that never was.
type Grid struct {
	vals vm.Memory
	seen vm.Memory
	n    int
	min  Point
	max  Point
}

// Get returns the value at p, 0 if p was never set.
func (g Grid) Get(p Point) vm.Cell {
	return g.vals.Peek(p.addr())
}

// Has reports whether p was ever set.
func (g Grid) Has(p Point) bool {
	return g.seen.Peek(p.addr()) != 0
}

// Set returns a copy of g with p set to v. It panics if a coordinate of p
// does not fit in 31 bits after zig-zag encoding (about ±1e9).
func (g Grid) Set(p Point, v vm.Cell) Grid {
	a := p.addr()
	g.vals = g.vals.Poke(a, v)
	if g.seen.Peek(a) == 0 {
		g.seen = g.seen.Poke(a, 1)
		if g.n == 0 {
			g.min, g.max = p, p
		} else {
			g.min = Point{min(g.min.X, p.X), min(g.min.Y, p.Y)}
			g.max = Point{max(g.max.X, p.X), max(g.max.Y, p.Y)}
		}
		g.n++
	}
	return g
}

// Len returns the number of distinct points ever set.
func (g Grid) Len() int {
	return g.n
}

// Range calls fn for every point ever set until fn returns false. The order
// of iteration is unspecified.
func (g Grid) Range(fn func(p Point, v vm.Cell) bool) {
	g.seen.Range(func(a, _ vm.Cell) bool {
		return fn(pointAt(a), g.vals.Peek(a))
	})
}

// Count returns the number of points set to v.
func (g Grid) Count(v vm.Cell) int {
	var n int
	g.Range(func(_ Point, c vm.Cell) bool {
		if c == v {
			n++
		}
		return true
	})
	return n
}

// Bounds returns the top left and bottom right corners of the smallest
// rectangle enclosing all points set. Both are the zero Point for an empty
// grid.
func (g Grid) Bounds() (topLeft, bottomRight Point) {
	return g.min, g.max
}

// Palette maps grid values to runes for rendering.
type Palette map[vm.Cell]rune

// Render writes g to w, one line per row, within the bounds of g. Points never
// set are rendered as spaces, values missing from the palette as '?'.
func (g Grid) Render(w io.Writer, pal Palette) error {
	if g.n == 0 {
		return nil
	}
	lw := ngi.NewWriter(w)
	for y := g.min.Y; y <= g.max.Y; y++ {
		for x := g.min.X; x <= g.max.X; x++ {
			p := Point{x, y}
			r := ' '
			if g.Has(p) {
				var ok bool
				if r, ok = pal[g.Get(p)]; !ok {
					r = '?'
				}
			}
			lw.Rune(r)
		}
		lw.Rune('\n')
	}
	return lw.Flush()
}
