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

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Opcode is the instruction selector held in the two low order decimal digits
// of an instruction word.
type Opcode Cell

// Intcode opcodes.
const (
	OpAdd  Opcode = 1
	OpMul  Opcode = 2
	OpIn   Opcode = 3
	OpOut  Opcode = 4
	OpJnz  Opcode = 5
	OpJz   Opcode = 6
	OpLt   Opcode = 7
	OpEq   Opcode = 8
	OpArb  Opcode = 9
	OpHalt Opcode = 99
)

type opInfo struct {
	name  string
	arity int
	dst   int // 1-based index of the written parameter, 0 if none
}

var opcodes = map[Opcode]opInfo{
	OpAdd:  {"add", 3, 3},
	OpMul:  {"mul", 3, 3},
	OpIn:   {"in", 1, 1},
	OpOut:  {"out", 1, 0},
	OpJnz:  {"jnz", 2, 0},
	OpJz:   {"jz", 2, 0},
	OpLt:   {"lt", 3, 3},
	OpEq:   {"eq", 3, 3},
	OpArb:  {"arb", 1, 0},
	OpHalt: {"hlt", 0, 0},
}

// Valid reports whether op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of parameters of op.
func (op Opcode) Arity() int {
	return opcodes[op].arity
}

// Dst returns the 1-based position of the parameter written to by op, or 0 if
// op does not write to memory.
func (op Opcode) Dst() int {
	return opcodes[op].dst
}

func (op Opcode) String() string {
	if i, ok := opcodes[op]; ok {
		return i.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = 0
	Immediate Mode = 1
	Relative  Mode = 2
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Opcode
	Modes [3]Mode
}

// Width returns the number of cells taken by the instruction.
func (in Instruction) Width() Cell {
	return Cell(1 + in.Op.Arity())
}

// OpcodeError is returned when an instruction word does not hold a valid
// opcode. It matches ErrInvalidOpcode with errors.Is.
type OpcodeError struct {
	Word Cell
}

func (e *OpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode %d in instruction %d", e.Word%100, e.Word)
}

// Is makes errors.Is(e, ErrInvalidOpcode) true.
func (e *OpcodeError) Is(target error) bool { return target == ErrInvalidOpcode }

// ModeError is returned when an instruction parameter has an unknown mode or
// when a write parameter uses the immediate mode. It matches ErrInvalidMode
// with errors.Is.
type ModeError struct {
	Word  Cell
	Param int
	Mode  Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("invalid %v for parameter %d of instruction %d", e.Mode, e.Param, e.Word)
}

// Is makes errors.Is(e, ErrInvalidMode) true.
func (e *ModeError) Is(target error) bool { return target == ErrInvalidMode }

// Decode decodes an instruction word. The opcode is word % 100 and the mode of
// parameter p (1-based) is (word / 10^(p+1)) % 10.
//
// Only the modes of the parameters actually used by the opcode are checked.
func Decode(word Cell) (Instruction, error) {
	var in Instruction
	if word < 0 {
		return in, errors.WithStack(&OpcodeError{word})
	}
	in.Op = Opcode(word % 100)
	if !in.Op.Valid() {
		return in, errors.WithStack(&OpcodeError{word})
	}
	m := word / 100
	for p := 0; p < len(in.Modes); p, m = p+1, m/10 {
		in.Modes[p] = Mode(m % 10)
		if p < in.Op.Arity() && in.Modes[p] > Relative {
			return in, errors.WithStack(&ModeError{word, p + 1, in.Modes[p]})
		}
	}
	return in, nil
}
