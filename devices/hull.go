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

// ErrInvalidOutput is returned by devices receiving a value they cannot
// decode.
var ErrInvalidOutput = errors.New("invalid output value")

// Color is a hull panel color.
type Color vm.Cell

// Panel colors.
const (
	Black Color = iota
	White
)

// Heading is a direction on a grid.
type Heading int

// Headings, clockwise.
const (
	Up Heading = iota
	Right
	Down
	Left
)

var headingDelta = [...]Point{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

// Delta returns the unit vector for h.
func (h Heading) Delta() Point {
	return headingDelta[h&3]
}

// Turn returns the heading after a quarter turn, clockwise if cw is true.
func (h Heading) Turn(cw bool) Heading {
	if cw {
		return (h + 1) & 3
	}
	return (h + 3) & 3
}

// Hull is the channel of a hull painting robot. Each input is the color of
// the panel under the robot; outputs come in pairs: the color to paint the
// current panel with, then the direction to turn (0 left, 1 right) before
// moving forward one panel.
type Hull struct {
	panels  Grid
	pos     Point
	heading Heading
	turn    bool // next output is a turn
}

// NewHull returns a Hull with the robot at the origin, heading up, over a
// panel painted with start. Painting the origin counts as painting a panel
// only for a non-black start color.
func NewHull(start Color) Hull {
	var h Hull
	if start != Black {
		h.panels = h.panels.Set(h.pos, vm.Cell(start))
	}
	return h
}

// Read returns the color of the panel under the robot.
func (h Hull) Read() (vm.Cell, Hull, error) {
	return h.panels.Get(h.pos), h, nil
}

// Write paints the current panel or turns and moves the robot.
func (h Hull) Write(v vm.Cell) (Hull, error) {
	if v != 0 && v != 1 {
		return h, errors.Wrapf(ErrInvalidOutput, "hull: %d", v)
	}
	if h.turn {
		h.heading = h.heading.Turn(v == 1)
		h.pos = h.pos.Add(h.heading.Delta())
	} else {
		h.panels = h.panels.Set(h.pos, v)
	}
	h.turn = !h.turn
	return h, nil
}

// Painted returns the number of panels painted at least once.
func (h Hull) Painted() int {
	return h.panels.Len()
}

// Position returns the position and heading of the robot.
func (h Hull) Position() (Point, Heading) {
	return h.pos, h.heading
}

// Panels returns the painted panels.
func (h Hull) Panels() Grid {
	return h.panels
}

// HullPalette renders white panels as '#' and black ones as '.'.
var HullPalette = Palette{vm.Cell(Black): '.', vm.Cell(White): '#'}
