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

package vm

import (
	"math"

	"github.com/pkg/errors"
)

// MaxImageSize is the largest memory size, in cells, that Memory.Image will
// expand into a dense Image.
const MaxImageSize = 1 << 24

const (
	nodeBits = 5
	nodeSize = 1 << nodeBits
	nodeMask = nodeSize - 1
)

// node is either an inner node (kids != nil) or a leaf (cells != nil).
type node struct {
	kids  []*node
	cells []Cell
}

func newNode(leaf bool) *node {
	if leaf {
		return &node{cells: make([]Cell, nodeSize)}
	}
	return &node{kids: make([]*node, nodeSize)}
}

func (n *node) clone(leaf bool) *node {
	if n == nil {
		return newNode(leaf)
	}
	c := &node{}
	if leaf {
		c.cells = append([]Cell(nil), n.cells...)
	} else {
		c.kids = append([]*node(nil), n.kids...)
	}
	return c
}

// Memory is a sparse, zero-filled address space spanning all non-negative
// Cell addresses.
//
// Memory has value semantics: Write and Poke return an updated Memory and
// leave the receiver untouched, so that any number of snapshots can be kept
// around without aliasing. The zero value is an empty memory.
type Memory struct {
	root   *node
	height uint // inner levels above the leaves
	size   Cell
}

// NewMemory returns a Memory holding the given image at addresses 0 to
// len(img)-1.
func NewMemory(img Image) Memory {
	var m Memory
	for len(img) > 0 && !m.fits(Cell(len(img)-1)) {
		m.height++
	}
	if len(img) == 0 {
		return m
	}
	for addr, v := range img {
		if v != 0 {
			m.root = put(m.root, m.height, Cell(addr), v, false)
		}
	}
	m.size = Cell(len(img))
	return m
}

// fits reports whether addr can be stored without growing the trie.
func (m *Memory) fits(addr Cell) bool {
	return addr>>(nodeBits*(m.height+1)) == 0
}

// put stores v at addr in the subtree rooted at n. If cow is true, every node
// on the path is copied, otherwise nodes are updated in place.
func put(n *node, height uint, addr, v Cell, cow bool) *node {
	leaf := height == 0
	if n == nil || cow {
		n = n.clone(leaf)
	}
	if leaf {
		n.cells[addr&nodeMask] = v
		return n
	}
	i := (addr >> (nodeBits * height)) & nodeMask
	n.kids[i] = put(n.kids[i], height-1, addr, v, cow)
	return n
}

func (m Memory) get(addr Cell) Cell {
	if m.root == nil || !m.fits(addr) {
		return 0
	}
	n := m.root
	for shift := nodeBits * m.height; shift > 0; shift -= nodeBits {
		n = n.kids[(addr>>shift)&nodeMask]
		if n == nil {
			return 0
		}
	}
	return n.cells[addr&nodeMask]
}

func (m Memory) set(addr, v Cell) Memory {
	if v == 0 && (m.root == nil || !m.fits(addr)) {
		// nothing to clear
		return m
	}
	for !m.fits(addr) {
		if m.root != nil {
			r := newNode(false)
			r.kids[0] = m.root
			m.root = r
		}
		m.height++
	}
	m.root = put(m.root, m.height, addr, v, true)
	if v != 0 && addr >= m.size {
		m.size = addr + 1
		if m.size < 0 {
			m.size = math.MaxInt64
		}
	}
	return m
}

// Read returns the value at address addr. Addresses that were never written
// to read as 0. A negative address yields ErrInvalidAddress.
func (m Memory) Read(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "read @%d", addr)
	}
	return m.get(addr), nil
}

// Write returns a copy of m with the value v stored at address addr. A
// negative address yields ErrInvalidAddress.
func (m Memory) Write(addr, v Cell) (Memory, error) {
	if addr < 0 {
		return m, errors.Wrapf(ErrInvalidAddress, "write @%d", addr)
	}
	return m.set(addr, v), nil
}

// Peek is like Read but panics on negative addresses.
func (m Memory) Peek(addr Cell) Cell {
	v, err := m.Read(addr)
	if err != nil {
		panic(err)
	}
	return v
}

// Poke is like Write but panics on negative addresses. It is mostly useful to
// patch a program before running it.
func (m Memory) Poke(addr, v Cell) Memory {
	r, err := m.Write(addr, v)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns one past the highest address that was either loaded from the
// program image or holds a non-zero value. It saturates at math.MaxInt64.
func (m Memory) Len() Cell {
	return m.size
}

// Range calls fn for each non-zero cell in ascending address order until fn
// returns false.
func (m Memory) Range(fn func(addr, v Cell) bool) {
	if m.root != nil {
		walk(m.root, m.height, 0, fn)
	}
}

func walk(n *node, height uint, base Cell, fn func(addr, v Cell) bool) bool {
	if height == 0 {
		for i, v := range n.cells {
			if v != 0 && !fn(base+Cell(i), v) {
				return false
			}
		}
		return true
	}
	for i, k := range n.kids {
		if k == nil {
			continue
		}
		if !walk(k, height-1, base+Cell(i)<<(nodeBits*height), fn) {
			return false
		}
	}
	return true
}

// Image returns a dense copy of addresses 0 to Len()-1. It fails with
// ErrTooLarge if Len() exceeds MaxImageSize.
func (m Memory) Image() (Image, error) {
	if m.size > MaxImageSize {
		return nil, errors.Wrapf(ErrTooLarge, "image of %d cells", m.size)
	}
	img := make(Image, m.size)
	m.Range(func(addr, v Cell) bool {
		if addr >= m.size {
			return false
		}
		img[addr] = v
		return true
	})
	return img, nil
}

// Equal reports whether m and o hold the same values at every address.
func (m Memory) Equal(o Memory) bool {
	if m.root == o.root && m.height == o.height {
		return true
	}
	eq := true
	m.Range(func(addr, v Cell) bool {
		eq = o.get(addr) == v
		return eq
	})
	if !eq {
		return false
	}
	o.Range(func(addr, v Cell) bool {
		eq = m.get(addr) == v
		return eq
	})
	return eq
}
