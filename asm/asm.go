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

package asm

import (
	"io"
	"strings"

	"github.com/db47h/intcode/internal/ngi"
	"github.com/db47h/intcode/vm"
)

var modeWeight = [...]vm.Cell{100, 1000, 10000}

// encode returns the canonical instruction word for in.
func encode(in vm.Instruction) vm.Cell {
	w := vm.Cell(in.Op)
	for p := 0; p < in.Op.Arity(); p++ {
		w += vm.Cell(in.Modes[p]) * modeWeight[p]
	}
	return w
}

// Disassemble writes a disassembly of the instruction at address pc in mem to
// the specified io.Writer and returns the address of the next instruction and
// any write error.
//
// Operands are written as [a] for position mode, n for immediate mode and
// [rb+n] for relative mode. Words that do not decode to a valid instruction,
// or that carry mode digits the opcode does not use, are written as .dat n
// and take a single cell.
func Disassemble(mem vm.Memory, pc vm.Cell, w io.Writer) (next vm.Cell, err error) {
	lw := ngi.NewWriter(w)
	if next, err = disassemble(lw, mem, pc); err != nil {
		return pc, err
	}
	return next, lw.Flush()
}

func disassemble(w *ngi.Writer, mem vm.Memory, pc vm.Cell) (vm.Cell, error) {
	word, err := mem.Read(pc)
	if err != nil {
		return pc, err
	}
	in, err := vm.Decode(word)
	if err != nil || encode(in) != word {
		w.String(".dat ")
		w.Int(int64(word))
		return pc + 1, nil
	}
	w.String(in.Op.String())
	for p := 0; p < in.Op.Arity(); p++ {
		if p == 0 {
			w.Rune(' ')
		} else {
			w.String(", ")
		}
		v := mem.Peek(pc + 1 + vm.Cell(p))
		switch in.Modes[p] {
		case vm.Position:
			w.Printf("[%d]", v)
		case vm.Immediate:
			w.Int(int64(v))
		case vm.Relative:
			w.Printf("[rb%+d]", v)
		}
	}
	return pc + in.Width(), nil
}

// DisassembleAll writes a disassembly of mem, from address 0 to mem.Len()-1, to
// the specified io.Writer, one instruction per line. The address of each
// instruction is appended as a comment. It will return any write error.
func DisassembleAll(mem vm.Memory, w io.Writer) error {
	lw := ngi.NewWriter(w)
	var b strings.Builder
	line := ngi.NewWriter(&b)
	for pc := vm.Cell(0); pc < mem.Len() && lw.Err() == nil; {
		b.Reset()
		next, _ := disassemble(line, mem, pc)
		line.Flush()
		lw.Printf("\t%-32s; %d\n", b.String(), pc)
		pc = next
	}
	return lw.Flush()
}
