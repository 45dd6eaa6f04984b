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

package network

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Chain is a series of amplifiers: Intcode computers running the same
// program, each one feeding its output signal to the next. Like Network, a
// Chain is a value.
type Chain struct {
	stages []vm.Process[vm.Queue]
	opts   []vm.DriverOption
}

// NewChain returns a chain of len(phases) amplifiers running img, where
// stage i gets phases[i] as its first input. The driver options apply to
// every run of a stage.
func NewChain(img vm.Image, phases []vm.Cell, opts ...vm.DriverOption) (Chain, error) {
	if len(phases) == 0 {
		return Chain{}, errors.New("chain: no stages")
	}
	c := Chain{stages: make([]vm.Process[vm.Queue], len(phases)), opts: opts}
	for i, ph := range phases {
		c.stages[i] = vm.NewProcess(img, vm.NewQueue(ph))
	}
	return c, nil
}

// Len returns the number of stages.
func (c Chain) Len() int {
	return len(c.stages)
}

// Stage returns the process of stage i.
func (c Chain) Stage(i int) vm.Process[vm.Queue] {
	return c.stages[i]
}

// Halted reports whether the last stage has halted.
func (c Chain) Halted() bool {
	return c.stages[len(c.stages)-1].State.Halted()
}

// Pass feeds signal to the first stage, then runs each stage in turn until it
// produces one output value, which becomes the input of the next stage. It
// returns the output of the last stage. A halted stage passes its input along
// unchanged.
func (c Chain) Pass(signal vm.Cell) (Chain, vm.Cell, error) {
	stages := make([]vm.Process[vm.Queue], len(c.stages))
	for i, p := range c.stages {
		p.IO = p.IO.Push(signal)
		n := len(p.IO.Out)
		var err error
		p, err = vm.RunUntil(p, func(p vm.Process[vm.Queue]) bool { return len(p.IO.Out) > n }, c.opts...)
		if err != nil {
			return c, signal, errors.Wrapf(err, "stage %d", i)
		}
		if len(p.IO.Out) > n {
			signal = p.IO.Out[n]
		}
		stages[i] = p
	}
	c.stages = stages
	return c, signal, nil
}

// Series runs a single pass of signal through a new chain of amplifiers.
func Series(img vm.Image, phases []vm.Cell, signal vm.Cell, opts ...vm.DriverOption) (vm.Cell, error) {
	c, err := NewChain(img, phases, opts...)
	if err != nil {
		return 0, err
	}
	_, signal, err = c.Pass(signal)
	return signal, err
}

// Feedback runs a new chain of amplifiers as a feedback loop: the output of
// the last stage is fed back into the first one until the last stage halts.
// It returns the last signal output by the last stage.
func Feedback(img vm.Image, phases []vm.Cell, signal vm.Cell, opts ...vm.DriverOption) (vm.Cell, error) {
	c, err := NewChain(img, phases, opts...)
	if err != nil {
		return 0, err
	}
	for !c.Halted() {
		if c, signal, err = c.Pass(signal); err != nil {
			return signal, err
		}
	}
	return signal, nil
}
