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

// Tile is an arcade screen tile id.
type Tile vm.Cell

// Tile ids.
const (
	Empty Tile = iota
	Wall
	Block
	Paddle
	Ball
)

// ScreenPalette renders arcade tiles.
var ScreenPalette = Palette{
	vm.Cell(Empty):  ' ',
	vm.Cell(Wall):   '|',
	vm.Cell(Block):  '#',
	vm.Cell(Paddle): '-',
	vm.Cell(Ball):   'o',
}

// scorePos is the pseudo position for score updates.
var scorePos = Point{-1, 0}

// Screen is the channel of an arcade cabinet. Outputs are triples (x, y, id)
// drawing a tile, or (-1, 0, score) updating the score display. Input is the
// joystick position: -1 left, 0 neutral, 1 right.
//
// If Auto is set, the joystick follows the ball: Read returns the sign of
// ball.x - paddle.x. Otherwise, Read returns Joystick.
type Screen struct {
	Auto     bool
	Joystick vm.Cell

	tiles  Grid
	buf    [3]vm.Cell
	n      int
	score  vm.Cell
	ball   Point
	paddle Point
}

// Read returns the joystick position.
func (s Screen) Read() (vm.Cell, Screen, error) {
	if !s.Auto {
		return s.Joystick, s, nil
	}
	switch {
	case s.ball.X < s.paddle.X:
		return -1, s, nil
	case s.ball.X > s.paddle.X:
		return 1, s, nil
	}
	return 0, s, nil
}

// Write buffers v and draws a tile or updates the score once a full triple
// has been received.
func (s Screen) Write(v vm.Cell) (Screen, error) {
	s.buf[s.n] = v
	s.n++
	if s.n < len(s.buf) {
		return s, nil
	}
	s.n = 0
	p, id := Point{int(s.buf[0]), int(s.buf[1])}, s.buf[2]
	if p == scorePos {
		s.score = id
		return s, nil
	}
	if id < vm.Cell(Empty) || id > vm.Cell(Ball) {
		return s, errors.Wrapf(ErrInvalidOutput, "screen: tile id %d at (%d, %d)", id, p.X, p.Y)
	}
	switch Tile(id) {
	case Ball:
		s.ball = p
	case Paddle:
		s.paddle = p
	}
	s.tiles = s.tiles.Set(p, id)
	return s, nil
}

// Score returns the last score displayed.
func (s Screen) Score() vm.Cell {
	return s.score
}

// Count returns the number of tiles of type t on screen.
func (s Screen) Count(t Tile) int {
	return s.tiles.Count(vm.Cell(t))
}

// Ball returns the ball position.
func (s Screen) Ball() Point {
	return s.ball
}

// Paddle returns the paddle position.
func (s Screen) Paddle() Point {
	return s.paddle
}

// Tiles returns the screen contents.
func (s Screen) Tiles() Grid {
	return s.tiles
}
