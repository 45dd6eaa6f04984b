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

// Channel is the I/O capability of a VM. C is the concrete channel type, so
// that Read and Write can return an updated channel of the same type without
// loss of type information:
//
//	type MyIO struct{ ... }
//	func (m MyIO) Read() (vm.Cell, MyIO, error)
//	func (m MyIO) Write(v vm.Cell) (MyIO, error)
//
// Implementations must not modify the receiver: Read and Write return a new
// channel value which does not share mutable state with the previous one.
// Effects on the outside world (console I/O) are of course not undone.
type Channel[C any] interface {
	// Read returns the next input value and the updated channel.
	Read() (Cell, C, error)
	// Write consumes an output value and returns the updated channel.
	Write(v Cell) (C, error)
}

// Waiter is implemented by channels which do not fail on input starvation and
// instead flag themselves as waiting for input.
type Waiter interface {
	Waiting() bool
}

// push returns a new slice made of s followed by v. s is never modified.
func push(s []Cell, v ...Cell) []Cell {
	return append(s[:len(s):len(s)], v...)
}

// Static is a channel whose input is a constant value. Output values are
// accumulated in Out.
type Static struct {
	Value Cell
	Out   []Cell
}

// Read returns s.Value.
func (s Static) Read() (Cell, Static, error) {
	return s.Value, s, nil
}

// Write appends v to s.Out.
func (s Static) Write(v Cell) (Static, error) {
	s.Out = push(s.Out, v)
	return s, nil
}

// Queue is a channel with a finite, pre-supplied input queue. Output values
// are accumulated in Out. Reading past the end of the input queue yields
// ErrStarvedInput.
type Queue struct {
	In  []Cell
	Out []Cell
}

// NewQueue returns a Queue with the given input.
func NewQueue(in ...Cell) Queue {
	return Queue{In: in}
}

// Read pops the head of the input queue.
func (q Queue) Read() (Cell, Queue, error) {
	if len(q.In) == 0 {
		return 0, q, errors.WithStack(ErrStarvedInput)
	}
	v := q.In[0]
	q.In = q.In[1:]
	return v, q, nil
}

// Write appends v to q.Out.
func (q Queue) Write(v Cell) (Queue, error) {
	q.Out = push(q.Out, v)
	return q, nil
}

// Push returns a copy of q with v appended to its input queue.
func (q Queue) Push(v ...Cell) Queue {
	q.In = push(q.In, v...)
	return q
}

// Mailbox is a non-blocking Queue: reading from an empty input queue returns
// -1 and flags the mailbox as waiting for input instead of failing.
type Mailbox struct {
	In      []Cell
	Out     []Cell
	waiting bool
}

// NewMailbox returns a Mailbox with the given input.
func NewMailbox(in ...Cell) Mailbox {
	return Mailbox{In: in}
}

// Read pops the head of the input queue and clears the waiting flag. If the
// queue is empty, it returns -1 and sets the waiting flag.
func (m Mailbox) Read() (Cell, Mailbox, error) {
	if len(m.In) == 0 {
		m.waiting = true
		return -1, m, nil
	}
	v := m.In[0]
	m.In = m.In[1:]
	m.waiting = false
	return v, m, nil
}

// Write appends v to m.Out.
func (m Mailbox) Write(v Cell) (Mailbox, error) {
	m.Out = push(m.Out, v)
	return m, nil
}

// Waiting reports whether the last read found the input queue empty and no
// value has been pushed since.
func (m Mailbox) Waiting() bool {
	return m.waiting
}

// Push returns a copy of m with v appended to its input queue. If any value is
// pushed, the waiting flag is cleared.
func (m Mailbox) Push(v ...Cell) Mailbox {
	if len(v) > 0 {
		m.In = push(m.In, v...)
		m.waiting = false
	}
	return m
}

// TakeOutput returns the first n output values and a copy of m without them.
// If fewer than n values are available, it returns nil and m.
func (m Mailbox) TakeOutput(n int) ([]Cell, Mailbox) {
	if len(m.Out) < n {
		return nil, m
	}
	out := m.Out[:n:n]
	m.Out = m.Out[n:]
	return out, m
}
