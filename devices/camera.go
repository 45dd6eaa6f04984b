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
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// View is a square as seen by a scaffolding Camera.
type View vm.Cell

// Camera views.
const (
	Space View = iota
	Scaffold
	Tumbling // robot lost in space
)

// CameraPalette renders a camera view.
var CameraPalette = Palette{
	vm.Cell(Space):    '.',
	vm.Cell(Scaffold): '#',
	vm.Cell(Tumbling): 'X',
}

var robotHeadings = map[vm.Cell]Heading{'^': Up, '>': Right, 'v': Down, '<': Left}

// Camera is the channel of an ASCII scaffolding camera. It decodes its input
// into a Grid, one line per row. Reading from a Camera always returns 0.
type Camera struct {
	view    Grid
	pos     Point
	robot   Point
	heading Heading
	found   bool
}

// Read returns 0.
func (c Camera) Read() (vm.Cell, Camera, error) {
	return 0, c, nil
}

// Write decodes one character of the camera output.
func (c Camera) Write(v vm.Cell) (Camera, error) {
	switch v {
	case '\n':
		c.pos = Point{0, c.pos.Y + 1}
		return c, nil
	case '#':
		c.view = c.view.Set(c.pos, vm.Cell(Scaffold))
	case '.':
		c.view = c.view.Set(c.pos, vm.Cell(Space))
	case 'X':
		c.view = c.view.Set(c.pos, vm.Cell(Tumbling))
		c.robot, c.found = c.pos, true
	default:
		h, ok := robotHeadings[v]
		if !ok {
			return c, errors.Wrapf(ErrInvalidOutput, "camera: %d at (%d, %d)", v, c.pos.X, c.pos.Y)
		}
		c.view = c.view.Set(c.pos, vm.Cell(Scaffold))
		c.robot, c.heading, c.found = c.pos, h, true
	}
	c.pos.X++
	return c, nil
}

// Robot returns the robot position and heading. ok is false if the robot has
// not been seen yet.
func (c Camera) Robot() (p Point, h Heading, ok bool) {
	return c.robot, c.heading, c.found
}

// View returns the decoded view.
func (c Camera) View() Grid {
	return c.view
}

// Scaffolds returns the positions of scaffold squares, in row order.
func (c Camera) Scaffolds() []Point {
	var ps []Point
	tl, br := c.view.Bounds()
	for y := tl.Y; y <= br.Y; y++ {
		for x := tl.X; x <= br.X; x++ {
			if p := (Point{x, y}); c.view.Get(p) == vm.Cell(Scaffold) {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

// Intersections returns the scaffold squares whose four neighbors are also
// scaffold, in row order.
func (c Camera) Intersections() []Point {
	var ps []Point
	for _, p := range c.Scaffolds() {
		n := 0
		for h := Up; h <= Left; h++ {
			if c.view.Get(p.Add(h.Delta())) == vm.Cell(Scaffold) {
				n++
			}
		}
		if n == 4 {
			ps = append(ps, p)
		}
	}
	return ps
}
