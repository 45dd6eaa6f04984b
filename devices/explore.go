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

// Survey is the result of a maze exploration.
type Survey struct {
	Map    Grid  // explored maze
	Oxygen Point // location of the oxygen system, valid if Found
	Found  bool
	Steps  int // length of the shortest path from the origin to Oxygen
}

// Explore maps the whole maze reachable by the repair droid running img.
//
// Since VM states are persistent, no backtracking is needed: the search
// keeps one suspended droid per open square and branches from it in every
// unexplored direction. Options apply to every single move.
func Explore(img vm.Image, opts ...vm.DriverOption) (Survey, error) {
	type node struct {
		p    vm.Process[Rover]
		dist int
	}
	var s Survey
	start := vm.NewProcess(img, NewRover())
	s.Map = start.IO.Map()
	queue := []node{{start, 0}}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for d := North; d <= East; d++ {
			pos := n.p.IO.Position()
			target := pos.Add(d.Delta())
			if s.Map.Has(target) {
				continue
			}
			p := n.p
			p.IO = p.IO.Plan(d)
			replies := p.IO.Replies()
			p, err := vm.RunUntil(p, func(p vm.Process[Rover]) bool { return p.IO.Replies() > replies }, opts...)
			if err != nil {
				return s, errors.Wrapf(err, "explore (%d, %d) from (%d, %d)", target.X, target.Y, pos.X, pos.Y)
			}
			if p.IO.Replies() == replies {
				return s, errors.Errorf("explore: droid halted at (%d, %d)", pos.X, pos.Y)
			}
			v := p.IO.Map().Get(target)
			s.Map = s.Map.Set(target, v)
			if Square(v) == WallSquare {
				continue
			}
			if Square(v) == OxygenSquare && !s.Found {
				s.Oxygen, s.Found, s.Steps = target, true, n.dist+1
			}
			queue = append(queue, node{p, n.dist + 1})
		}
	}
	return s, nil
}

// FillTime returns the number of minutes it takes for oxygen to spread from
// the oxygen system to every open square of the maze. It returns -1 if the
// oxygen system was not found.
func (s Survey) FillTime() int {
	if !s.Found {
		return -1
	}
	var t int
	for _, d := range s.Map.Distances(s.Oxygen, func(v vm.Cell) bool { return Square(v) != WallSquare }) {
		t = max(t, d)
	}
	return t
}

// Distances returns the length of the shortest path from p to every point
// reachable from it, moving in the four cardinal directions over points
// that are set and for which passable returns true.
func (g Grid) Distances(p Point, passable func(v vm.Cell) bool) map[Point]int {
	dist := map[Point]int{p: 0}
	queue := []Point{p}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for h := Up; h <= Left; h++ {
			n := q.Add(h.Delta())
			if _, ok := dist[n]; ok || !g.Has(n) || !passable(g.Get(n)) {
				continue
			}
			dist[n] = dist[q] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
