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

// param returns the value of the read parameter p (1-based) of in.
func (s *State) param(in Instruction, p int) (Cell, error) {
	v, err := s.Mem.Read(s.PC + Cell(p))
	if err != nil {
		return 0, err
	}
	switch in.Modes[p-1] {
	case Position:
		return s.Mem.Read(v)
	case Immediate:
		return v, nil
	case Relative:
		return s.Mem.Read(s.Base + v)
	}
	panic("unreachable: modes are checked by Decode")
}

// target returns the address written to by parameter p (1-based) of in.
func (s *State) target(in Instruction, p int) (Cell, error) {
	v, err := s.Mem.Read(s.PC + Cell(p))
	if err != nil {
		return 0, err
	}
	switch in.Modes[p-1] {
	case Position:
	case Relative:
		v += s.Base
	default:
		w, _ := s.Mem.Read(s.PC)
		return 0, errors.WithStack(&ModeError{w, p, in.Modes[p-1]})
	}
	if v < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "parameter %d", p)
	}
	return v, nil
}

// operands loads the first n read parameters of in.
func (s *State) operands(in Instruction, n int) (a, b Cell, err error) {
	if a, err = s.param(in, 1); err != nil || n < 2 {
		return a, 0, err
	}
	b, err = s.param(in, 2)
	return a, b, err
}

func (s *State) fault(err error) error {
	w, _ := s.Mem.Read(s.PC)
	return errors.Wrapf(err, "@pc=%d (%d)", s.PC, w)
}

func b2c(b bool) Cell {
	if b {
		return 1
	}
	return 0
}

// Step executes exactly one instruction of s, doing I/O on c, and returns the
// updated state and channel. Step never modifies its arguments: on error, it
// returns s and c unchanged along with the error.
//
// Only the input and output instructions touch the channel. Calling Step on a
// halted state returns ErrHalted.
func Step[C Channel[C]](s State, c C) (State, C, error) {
	in, err := s.Instruction()
	if err != nil {
		return s, c, s.fault(err)
	}
	n := s // working copy
	switch in.Op {
	case OpHalt:
		return s, c, s.fault(ErrHalted)
	case OpAdd, OpMul, OpLt, OpEq:
		a, b, err := n.operands(in, 2)
		if err != nil {
			return s, c, s.fault(err)
		}
		dst, err := n.target(in, 3)
		if err != nil {
			return s, c, s.fault(err)
		}
		var v Cell
		switch in.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			v = b2c(a < b)
		case OpEq:
			v = b2c(a == b)
		}
		n.Mem = n.Mem.set(dst, v)
	case OpIn:
		dst, err := n.target(in, 1)
		if err != nil {
			return s, c, s.fault(err)
		}
		v, nc, err := c.Read()
		if err != nil {
			return s, c, s.fault(err)
		}
		n.Mem = n.Mem.set(dst, v)
		c = nc
	case OpOut:
		a, _, err := n.operands(in, 1)
		if err != nil {
			return s, c, s.fault(err)
		}
		nc, err := c.Write(a)
		if err != nil {
			return s, c, s.fault(err)
		}
		c = nc
	case OpJnz, OpJz:
		a, b, err := n.operands(in, 2)
		if err != nil {
			return s, c, s.fault(err)
		}
		if (a != 0) == (in.Op == OpJnz) {
			n.PC = b
			return n, c, nil
		}
	case OpArb:
		a, _, err := n.operands(in, 1)
		if err != nil {
			return s, c, s.fault(err)
		}
		n.Base += a
	}
	n.PC += in.Width()
	return n, c, nil
}
