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

package vm_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type C []vm.Cell

func parse(t testing.TB, listing string) vm.Image {
	img, err := vm.Parse(strings.NewReader(listing))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return img
}

func runQueue(t testing.TB, listing string, in ...vm.Cell) vm.Process[vm.Queue] {
	p, err := vm.Run(vm.NewProcess(parse(t, listing), vm.NewQueue(in...)))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return p
}

func equal(a, b []vm.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var memTests = [...]struct {
	name string
	code string
	mem  C
}{
	{"add", "1,0,0,0,99", C{2, 0, 0, 0, 99}},
	{"mul", "2,3,0,3,99", C{2, 3, 0, 6, 99}},
	{"mulGrow", "2,4,4,5,99,0", C{2, 4, 4, 5, 99, 9801}},
	{"selfModify", "1,1,1,4,99,5,6,0,99", C{30, 1, 1, 4, 2, 5, 6, 0, 99}},
	{"sample", "1,9,10,3,2,3,11,0,99,30,40,50", C{3500, 9, 10, 70, 2, 3, 11, 0, 99, 30, 40, 50}},
	{"immediate", "1002,4,3,4,33", C{1002, 4, 3, 4, 99}},
	{"negative", "1101,100,-1,4,0", C{1101, 100, -1, 4, 99}},
}

func TestMemoryResults(t *testing.T) {
	for _, test := range memTests {
		p := runQueue(t, test.code)
		if got, _ := p.State.Mem.Image(); !equal(got, test.mem) {
			t.Errorf("%s: expected memory %v, got %v", test.name, test.mem, got)
		}
		if len(p.IO.Out) != 0 {
			t.Errorf("%s: unexpected output %v", test.name, p.IO.Out)
		}
		if !p.State.Halted() {
			t.Errorf("%s: not halted at pc=%d", test.name, p.State.PC)
		}
	}
}

const compare8 = "3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99"

var ioTests = [...]struct {
	name string
	code string
	in   C
	out  C
}{
	{"echo", "3,0,4,0,99", C{7}, C{7}},
	{"eq8Position", "3,9,8,9,10,9,4,9,99,-1,8", C{8}, C{1}},
	{"eq8Position", "3,9,8,9,10,9,4,9,99,-1,8", C{7}, C{0}},
	{"lt8Position", "3,9,7,9,10,9,4,9,99,-1,8", C{5}, C{1}},
	{"eq8Immediate", "3,3,1108,-1,8,3,4,3,99", C{8}, C{1}},
	{"lt8Immediate", "3,3,1107,-1,8,3,4,3,99", C{9}, C{0}},
	{"jzPosition", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", C{0}, C{0}},
	{"jzPosition", "3,12,6,12,15,1,13,14,13,4,13,99,-1,0,1,9", C{3}, C{1}},
	{"jnzImmediate", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", C{0}, C{0}},
	{"jnzImmediate", "3,3,1105,-1,9,1101,0,0,12,4,12,99,1", C{-2}, C{1}},
	{"compare8", compare8, C{7}, C{999}},
	{"compare8", compare8, C{8}, C{1000}},
	{"compare8", compare8, C{9}, C{1001}},
	{"bigMul", "1102,34915192,34915192,7,4,7,99,0", nil, C{1219070632396864}},
	{"bigOut", "104,1125899906842624,99", nil, C{1125899906842624}},
	{"relativeIn", "109,10,203,-3,204,-3,99", C{42}, C{42}},
}

func TestIO(t *testing.T) {
	for _, test := range ioTests {
		p := runQueue(t, test.code, test.in...)
		if !equal(p.IO.Out, test.out) {
			t.Errorf("%s(%v): expected output %v, got %v", test.name, test.in, test.out, p.IO.Out)
		}
		if len(p.IO.In) != 0 {
			t.Errorf("%s: unconsumed input %v", test.name, p.IO.In)
		}
	}
}

const quine = "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"

func TestQuine(t *testing.T) {
	img := parse(t, quine)
	p, err := vm.Run(vm.NewProcess(img, vm.NewQueue()))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(p.IO.Out, img) {
		t.Fatalf("expected %v, got %v", img, p.IO.Out)
	}
	// the quine uses address 100 and 101 as scratch space.
	if v := p.State.Mem.Peek(100); v != 16 {
		t.Errorf("expected 16 at address 100, got %d", v)
	}
	if p.State.Mem.Len() != 102 {
		t.Errorf("expected memory length 102, got %d", p.State.Mem.Len())
	}
}

func TestDeterminism(t *testing.T) {
	img := parse(t, compare8)
	for _, in := range []vm.Cell{-5, 8, 100} {
		p1, err1 := vm.Run(vm.NewProcess(img, vm.NewQueue(in)))
		p2, err2 := vm.Run(vm.NewProcess(img, vm.NewQueue(in)))
		if err1 != nil || err2 != nil {
			t.Fatalf("%+v / %+v", err1, err2)
		}
		if !equal(p1.IO.Out, p2.IO.Out) || !p1.State.Mem.Equal(p2.State.Mem) || p1.State.PC != p2.State.PC {
			t.Errorf("input %d: runs differ: %v != %v", in, p1.IO.Out, p2.IO.Out)
		}
	}
}

func TestRelativeBaseEquivalence(t *testing.T) {
	// read an input with a relative write parameter after adjusting the base,
	// then the same with an absolute address.
	rel := runQueue(t, "109,20,203,-3,99", 55)
	abs := runQueue(t, "3,17,99,0,0", 55)
	if rel.State.Base != 20 {
		t.Errorf("expected relative base 20, got %d", rel.State.Base)
	}
	if v := rel.State.Mem.Peek(17); v != 55 {
		t.Errorf("expected 55 at address 17, got %d", v)
	}
	// clear the program code, what remains must be identical.
	strip := func(m vm.Memory, n int) vm.Memory {
		for a := 0; a < n; a++ {
			m = m.Poke(vm.Cell(a), 0)
		}
		return m
	}
	if !strip(rel.State.Mem, 5).Equal(strip(abs.State.Mem, 5)) {
		t.Error("memories differ")
	}
}

func TestStatic(t *testing.T) {
	// prints its input 3 times
	p, err := vm.Run(vm.NewProcess(parse(t, "3,0,4,0,3,0,4,0,3,0,4,0,99"), vm.Static{Value: 5}))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(p.IO.Out, C{5, 5, 5}) {
		t.Fatalf("expected [5 5 5], got %v", p.IO.Out)
	}
}

func TestFaults(t *testing.T) {
	faults := [...]struct {
		name string
		code string
		err  error
	}{
		{"opcode", "1,0,0,0,42", vm.ErrInvalidOpcode},
		{"negativeWord", "-1", vm.ErrInvalidOpcode},
		{"mode", "301,0,0,0,99", vm.ErrInvalidMode},
		{"immediateWrite", "10001,0,0,0,99", vm.ErrInvalidMode},
		{"immediateIn", "103,0,99", vm.ErrInvalidMode},
		{"negativeRead", "1,-1,0,0,99", vm.ErrInvalidAddress},
		{"negativeWrite", "1,0,0,-4,99", vm.ErrInvalidAddress},
		{"negativeRelative", "109,-10,22201,0,0,0,99", vm.ErrInvalidAddress},
		{"negativeJump", "1105,1,-3", vm.ErrInvalidAddress},
		{"starved", "3,0,3,0,99", vm.ErrStarvedInput},
	}
	for _, test := range faults {
		_, err := vm.Run(vm.NewProcess(parse(t, test.code), vm.NewQueue(1)))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %+v", test.name, test.err, err)
		}
	}
}

func TestDriverSequence(t *testing.T) {
	img := parse(t, "1101,1,2,0,104,3,99")
	d := vm.NewDriver(vm.NewProcess(img, vm.NewQueue()))
	var pcs []vm.Cell
	for d.Next() {
		pcs = append(pcs, d.Process().State.PC)
	}
	if err := d.Err(); err != nil {
		t.Fatalf("%+v", err)
	}
	// initial state, two steps, halted state included.
	if !equal(pcs, C{0, 4, 6}) {
		t.Errorf("expected PCs [0 4 6], got %v", pcs)
	}
	if d.Steps() != 2 {
		t.Errorf("expected 2 steps, got %d", d.Steps())
	}
	if d.Status() != vm.Halted {
		t.Errorf("expected halted status, got %v", d.Status())
	}
	if d.Next() {
		t.Error("Next returned true after halt")
	}
}

func TestDriverSuspendResume(t *testing.T) {
	// outputs 1, 2, 3
	img := parse(t, "104,1,104,2,104,3,99")
	out := func(p vm.Process[vm.Queue]) bool { return len(p.IO.Out) == 2 }
	p, err := vm.RunUntil(vm.NewProcess(img, vm.NewQueue()), out)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(p.IO.Out, C{1, 2}) || p.Status() != vm.Running {
		t.Fatalf("expected to suspend after 2 outputs, got %v (%v)", p.IO.Out, p.Status())
	}
	saved := p
	// resume twice from the same suspended process.
	for n := 0; n < 2; n++ {
		r, err := vm.Run(saved)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if !equal(r.IO.Out, C{1, 2, 3}) {
			t.Errorf("run %d: expected [1 2 3], got %v", n, r.IO.Out)
		}
	}
	if !equal(saved.IO.Out, C{1, 2}) {
		t.Errorf("suspended process modified: %v", saved.IO.Out)
	}
}

func TestDriverLimit(t *testing.T) {
	// infinite loop
	img := parse(t, "1105,1,0")
	_, err := vm.Run(vm.NewProcess(img, vm.NewQueue()), vm.Limit(1000))
	if errors.Cause(err) != vm.ErrLimit {
		t.Fatalf("expected ErrLimit, got %v", err)
	}
}

func TestDriverTrace(t *testing.T) {
	var trace []string
	tr := func(s vm.State) {
		in, _ := s.Instruction()
		trace = append(trace, fmt.Sprintf("%d:%v", s.PC, in.Op))
	}
	_, err := vm.Run(vm.NewProcess(parse(t, "3,0,4,0,99"), vm.NewQueue(7)), vm.Trace(tr))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if got := strings.Join(trace, " "); got != "0:in 2:out 4:hlt" {
		t.Errorf("unexpected trace %q", got)
	}
}

func TestStepHalted(t *testing.T) {
	s := vm.New(vm.Image{99})
	q := vm.NewQueue()
	s2, _, err := vm.Step(s, q)
	if errors.Cause(err) != vm.ErrHalted {
		t.Fatalf("expected ErrHalted, got %v", err)
	}
	if s2.PC != 0 {
		t.Fatalf("halted state changed: pc=%d", s2.PC)
	}
}

func TestParse(t *testing.T) {
	img, err := vm.Parse(strings.NewReader(" 1, -2,3\n"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if !equal(img, C{1, -2, 3}) {
		t.Errorf("expected [1 -2 3], got %v", img)
	}
	if img.String() != "1,-2,3" {
		t.Errorf("unexpected listing %q", img.String())
	}
	for _, bad := range []string{"", "  \n", "1,,2", "1,a", "1;2"} {
		if _, err := vm.Parse(strings.NewReader(bad)); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func BenchmarkQuine(b *testing.B) {
	img := parse(b, quine)
	for i := 0; i < b.N; i++ {
		if _, err := vm.Run(vm.NewProcess(img, vm.NewQueue())); err != nil {
			b.Fatal(err)
		}
	}
}
