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

// Cell is the raw type stored in a memory location.
type Cell int64

// Faults. All of them are fatal: the Step function returns them wrapped with
// the address and value of the faulting instruction.
var (
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrInvalidMode    = errors.New("invalid addressing mode")
	ErrInvalidAddress = errors.New("invalid address")
	ErrStarvedInput   = errors.New("input starved")
	ErrHalted         = errors.New("halted")
	ErrLimit          = errors.New("instruction limit reached")
)

// ErrTooLarge is returned when a sparse memory is too large to be expanded
// into a dense image.
var ErrTooLarge = errors.New("memory too large")

// State is the state of a VM: instruction pointer, relative base and memory.
// Since Memory has value semantics, so does State. A State is only ever
// changed by Step, which returns an updated copy.
type State struct {
	PC   Cell   // Program Counter (aka. Instruction Pointer)
	Base Cell   // relative base
	Mem  Memory // memory
}

// New returns the initial state of a VM running the given program image.
func New(img Image) State {
	return State{Mem: NewMemory(img)}
}

// Instruction decodes the instruction at PC.
func (s State) Instruction() (Instruction, error) {
	w, err := s.Mem.Read(s.PC)
	if err != nil {
		return Instruction{}, err
	}
	return Decode(w)
}

// Halted reports whether the instruction at PC is a halt instruction.
func (s State) Halted() bool {
	in, err := s.Instruction()
	return err == nil && in.Op == OpHalt
}

// Status is the scheduling status of a Process.
type Status int

// Process status values.
const (
	Running Status = iota
	AwaitingInput
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingInput:
		return "awaiting input"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Process pairs a VM State with the Channel it does I/O on.
type Process[C Channel[C]] struct {
	State State
	IO    C
}

// NewProcess returns a process running img from address 0 with the given
// channel.
func NewProcess[C Channel[C]](img Image, io C) Process[C] {
	return Process[C]{New(img), io}
}

// Status returns Halted if the process is halted, AwaitingInput if its channel
// is a Waiter and is waiting, or Running.
func (p Process[C]) Status() Status {
	if p.State.Halted() {
		return Halted
	}
	if w, ok := any(p.IO).(Waiter); ok && w.Waiting() {
		return AwaitingInput
	}
	return Running
}

// Step executes one instruction and returns the updated process. On error,
// the returned process is p.
func (p Process[C]) Step() (Process[C], error) {
	s, c, err := Step(p.State, p.IO)
	if err != nil {
		return p, err
	}
	return Process[C]{s, c}, nil
}
