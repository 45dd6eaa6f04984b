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

import "github.com/pkg/errors"

// DriverOption configures a Driver.
type DriverOption func(*driverConfig)

type driverConfig struct {
	limit int64
	trace func(State)
}

// Limit sets the maximum number of instructions a Driver executes before
// giving up with ErrLimit. The default, 0, means no limit.
func Limit(n int64) DriverOption {
	return func(c *driverConfig) { c.limit = n }
}

// Trace sets a function called with every state yielded by a Driver, before
// it is yielded.
func Trace(fn func(s State)) DriverOption {
	return func(c *driverConfig) { c.trace = fn }
}

// Driver steps a Process and yields the sequence of processes it goes
// through, starting with the initial process and ending with the first halted
// one (inclusive). Usage follows bufio.Scanner:
//
//	d := vm.NewDriver(p)
//	for d.Next() {
//		p := d.Process()
//		// inspect p.IO, break out any time.
//	}
//	if err := d.Err(); err != nil {
//		// fault
//	}
//
// Execution only happens in Next, so that a caller which stops calling Next
// suspends the VM. To resume later, keep the last Process and create a new
// Driver from it. There is no rewind: earlier processes must be retained
// explicitly.
type Driver[C Channel[C]] struct {
	p       Process[C]
	cfg     driverConfig
	steps   int64
	err     error
	started bool
	done    bool
}

// NewDriver returns a new driver for p.
func NewDriver[C Channel[C]](p Process[C], opts ...DriverOption) *Driver[C] {
	d := &Driver[C]{p: p}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	return d
}

// Next advances the driver to the next process, which will then be available
// through the Process method. It returns false once the halted process has
// been yielded or if an error occurred.
func (d *Driver[C]) Next() bool {
	if d.done {
		return false
	}
	if d.started {
		if d.cfg.limit > 0 && d.steps >= d.cfg.limit {
			d.err = errors.Wrapf(ErrLimit, "@pc=%d after %d instructions", d.p.State.PC, d.steps)
			d.done = true
			return false
		}
		p, err := d.p.Step()
		if err != nil {
			d.err = err
			d.done = true
			return false
		}
		d.p = p
		d.steps++
	}
	d.started = true
	if d.cfg.trace != nil {
		d.cfg.trace(d.p.State)
	}
	if d.p.State.Halted() {
		d.done = true
	}
	return true
}

// Process returns the last process yielded by Next.
func (d *Driver[C]) Process() Process[C] {
	return d.p
}

// Status returns the status of the last process yielded by Next.
func (d *Driver[C]) Status() Status {
	return d.p.Status()
}

// Steps returns the number of instructions executed so far.
func (d *Driver[C]) Steps() int64 {
	return d.steps
}

// Err returns the first error encountered by the driver.
func (d *Driver[C]) Err() error {
	return d.err
}

// RunUntil drives p until stop returns true or the program halts, whichever
// comes first, and returns the last process. The initial process is also
// checked against stop. A nil stop function runs p to completion.
func RunUntil[C Channel[C]](p Process[C], stop func(Process[C]) bool, opts ...DriverOption) (Process[C], error) {
	d := NewDriver(p, opts...)
	for d.Next() {
		if stop != nil && stop(d.Process()) {
			break
		}
	}
	return d.Process(), d.Err()
}

// Run runs p until it halts and returns the halted process.
func Run[C Channel[C]](p Process[C], opts ...DriverOption) (Process[C], error) {
	return RunUntil(p, nil, opts...)
}
