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

// Package asm provides an Intcode disassembler.
//
// Mnemonics:
//
//	opcode	asm	operands	description
//	------	---	--------	--------------------------------------------------
//	1	add	a, b, dst	dst = a + b
//	2	mul	a, b, dst	dst = a * b
//	3	in	dst		read a value from input into dst
//	4	out	a		write a to output
//	5	jnz	a, addr		jump to addr if a != 0
//	6	jz	a, addr		jump to addr if a == 0
//	7	lt	a, b, dst	dst = 1 if a < b, else 0
//	8	eq	a, b, dst	dst = 1 if a == b, else 0
//	9	arb	a		add a to the relative base
//	99	hlt			halt
//
// The addressing mode of each operand is given by its syntax:
//
//	[42]		position mode: the value at address 42
//	42		immediate mode: the value 42
//	[rb+3]		relative mode: the value at address relative base + 3
//	[rb-3]		relative mode with a negative offset
//
// Memory cells that do not hold an instruction are listed as data:
//
//	.dat 33
//
// Since Intcode programs freely mix code and data, and often modify their own
// code, a listing is only a best guess at the program structure: it shows how
// the VM would decode memory if execution reached each address in turn.
package asm
