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

package asm_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var disTests = [...]struct {
	name string
	img  vm.Image
	dis  []string
}{
	{"hlt", vm.Image{99}, []string{"hlt"}},
	{"modes", vm.Image{1002, 4, 3, 4}, []string{"mul [4], 3, [4]"}},
	{"relative", vm.Image{22201, -1, 0, 7}, []string{"add [rb-1], [rb+0], [rb+7]"}},
	{"jumps", vm.Image{1105, 1, 4, 6, 0, 9}, []string{"jnz 1, 4", "jz [0], [9]"}},
	{"io", vm.Image{203, 5, 104, -10, 109, 10}, []string{"in [rb+5]", "out -10", "arb 10"}},
	{"compare", vm.Image{1107, 1, 2, 3, 108, 0, 7, 7}, []string{"lt 1, 2, [3]", "eq 0, [7], [7]"}},
	{"data", vm.Image{33, -1, 1104, 42}, []string{".dat 33", ".dat -1", ".dat 1104", ".dat 42"}},
	{"bad mode", vm.Image{301, 1, 2, 3}, []string{".dat 301", "add [2], [3], [0]"}},
	{"truncated", vm.Image{1, 0}, []string{"add [0], [0], [0]"}},
}

func disassemble(t *testing.T, mem vm.Memory) []string {
	t.Helper()
	var b bytes.Buffer
	var lines []string
	for pc := vm.Cell(0); pc < mem.Len(); {
		b.Reset()
		next, err := asm.Disassemble(mem, pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		if next <= pc {
			t.Fatalf("no progress at address %d", pc)
		}
		lines = append(lines, b.String())
		pc = next
	}
	return lines
}

func TestDisassemble(t *testing.T) {
	for _, test := range disTests {
		lines := disassemble(t, vm.NewMemory(test.img))
		if strings.Join(lines, "\n") != strings.Join(test.dis, "\n") {
			t.Errorf("%s: expected:\n%s\ngot:\n%s", test.name, strings.Join(test.dis, "\n"), strings.Join(lines, "\n"))
		}
	}

	var b bytes.Buffer
	if _, err := asm.Disassemble(vm.NewMemory(vm.Image{99}), -1, &b); err == nil {
		t.Fatal("expected error on negative address")
	}
}

// The listing must have one line per instruction, each tagged with the address
// of the instruction.
func TestDisassembleAll(t *testing.T) {
	mem := vm.NewMemory(vm.Image{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99})
	var b bytes.Buffer
	if err := asm.DisassembleAll(mem, &b); err != nil {
		t.Fatal(err)
	}
	expected := []struct {
		dis  string
		addr string
	}{
		{"arb 1", "0"},
		{"out [rb-1]", "2"},
		{"add [100], 1, [100]", "4"},
		{"eq [100], 16, [101]", "8"},
		{"jz [101], 0", "12"},
		{"hlt", "15"},
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(expected), len(lines), b.String())
	}
	for i, l := range lines {
		dis, addr, ok := strings.Cut(l, ";")
		if !ok {
			t.Fatalf("missing address in %q", l)
		}
		if strings.TrimSpace(dis) != expected[i].dis || strings.TrimSpace(addr) != expected[i].addr {
			t.Errorf("line %d: expected %q ; %s, got %q", i, expected[i].dis, expected[i].addr, l)
		}
	}
}

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, io.ErrShortWrite
}

func TestDisassembleAll_writeError(t *testing.T) {
	mem := vm.NewMemory(vm.Image{1, 0, 0, 0, 99})
	if err := asm.DisassembleAll(mem, errWriter{}); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected write error, got %v", err)
	}
	if _, err := asm.Disassemble(mem, 0, errWriter{}); errors.Cause(err) != io.ErrShortWrite {
		t.Fatalf("expected write error, got %v", err)
	}
}
