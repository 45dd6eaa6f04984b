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

// Direction is a movement command understood by a repair droid.
type Direction vm.Cell

// Movement commands.
const (
	North Direction = iota + 1
	South
	West
	East
)

var directionDelta = [...]Point{North: {0, -1}, South: {0, 1}, West: {-1, 0}, East: {1, 0}}

// Delta returns the unit vector for d.
func (d Direction) Delta() Point {
	if d < North || d > East {
		return Point{}
	}
	return directionDelta[d]
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	case East:
		return West
	}
	return d
}

// Square is a maze square type as reported by a repair droid.
type Square vm.Cell

// Square types.
const (
	WallSquare Square = iota
	OpenSquare
	OxygenSquare
)

// RoverPalette renders a maze.
var RoverPalette = Palette{
	vm.Cell(WallSquare):   '#',
	vm.Cell(OpenSquare):   '.',
	vm.Cell(OxygenSquare): 'O',
}

// Rover is the channel of a maze exploring repair droid. Input values are
// movement commands taken from a plan; outputs are status replies for the last
// move: 0 hit a wall, 1 moved, 2 moved and found the oxygen system.
//
// When the plan is empty, Read returns -1 and the Rover reports itself as
// waiting, like a vm.Mailbox. Callers check Waiting, extend the plan and
// resume the VM. Do not let a VM actually consume a -1 read: the droid rejects
// it as an invalid command.
type Rover struct {
	plan    []Direction
	last    Direction
	pos     Point
	maze    Grid
	oxygen  Point
	found   bool
	waiting bool
	replies int
}

// NewRover returns a rover at the origin, which is marked open.
func NewRover() Rover {
	var r Rover
	r.maze = r.maze.Set(r.pos, vm.Cell(OpenSquare))
	return r
}

// Read pops the next planned move.
func (r Rover) Read() (vm.Cell, Rover, error) {
	if len(r.plan) == 0 {
		r.waiting = true
		return -1, r, nil
	}
	r.last, r.plan = r.plan[0], r.plan[1:]
	r.waiting = false
	return vm.Cell(r.last), r, nil
}

// Write decodes the status reply for the last move.
func (r Rover) Write(v vm.Cell) (Rover, error) {
	if r.last == 0 {
		return r, errors.Wrapf(ErrInvalidOutput, "rover: status %d without a move", v)
	}
	target := r.pos.Add(r.last.Delta())
	switch Square(v) {
	case WallSquare:
		r.maze = r.maze.Set(target, v)
	case OpenSquare:
		r.pos = target
		r.maze = r.maze.Set(target, v)
	case OxygenSquare:
		r.pos = target
		r.maze = r.maze.Set(target, v)
		r.oxygen, r.found = target, true
	default:
		return r, errors.Wrapf(ErrInvalidOutput, "rover: status %d", v)
	}
	r.last = 0
	r.replies++
	return r, nil
}

// Replies returns the number of status replies received.
func (r Rover) Replies() int {
	return r.replies
}

// Waiting reports whether the last read found an empty plan.
func (r Rover) Waiting() bool {
	return r.waiting
}

// Plan returns a copy of r with moves appended to its plan.
func (r Rover) Plan(moves ...Direction) Rover {
	r.plan = append(r.plan[:len(r.plan):len(r.plan)], moves...)
	if len(moves) > 0 {
		r.waiting = false
	}
	return r
}

// Pending returns the number of planned moves not yet consumed.
func (r Rover) Pending() int {
	return len(r.plan)
}

// Position returns the droid position.
func (r Rover) Position() Point {
	return r.pos
}

// Map returns the explored maze.
func (r Rover) Map() Grid {
	return r.maze
}

// Oxygen returns the location of the oxygen system. ok is false if it has not
// been found yet.
func (r Rover) Oxygen() (p Point, ok bool) {
	return r.oxygen, r.found
}
