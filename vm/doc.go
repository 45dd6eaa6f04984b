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

// Package vm implements an Intcode virtual machine.
//
// Intcode is a register-less machine with a single, conceptually infinite,
// zero-filled memory of 64 bits integers. Instructions are stored in memory
// with their parameters; the two low order decimal digits of an instruction
// word select the opcode and the higher digits select the addressing mode of
// each parameter (position, immediate or relative).
//
// The execution core is pure: Step takes a State and a Channel and returns
// the updated State and Channel, with all side effects confined to the
// channel. Memory is persistent, so earlier states stay valid and can be
// kept and resumed from at will. The Driver type pulls states one instruction
// at a time; a caller stops pulling to suspend a VM, which is how programs
// waiting on I/O are interleaved (see the network package).
//
// Channels are values implementing Channel[C] for their own type C. This
// package provides Static (constant input), Queue (finite input, starvation is
// fatal), Mailbox (non-blocking input) and Console (interactive terminal).
// Decoders for graphical or robotic devices live in the devices package.
//
// Faults (invalid opcode, invalid mode, negative address, input starvation)
// are never recovered: they are returned as errors matching one of the ErrXXX
// sentinels with errors.Is. Decoding faults are *OpcodeError or *ModeError
// values, available through errors.As.
package vm
