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
	"math"
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestMemory_growth(t *testing.T) {
	m := vm.NewMemory(vm.Image{1, 2, 3})
	for _, addr := range []vm.Cell{3, 31, 32, 1000, 1 << 20, 1 << 40, 1 << 62} {
		if v, err := m.Read(addr); err != nil || v != 0 {
			t.Errorf("unwritten address %d: got %d, %v", addr, v, err)
		}
		m2, err := m.Write(addr, addr/2+1)
		if err != nil {
			t.Fatalf("%d: %+v", addr, err)
		}
		if v := m2.Peek(addr); v != addr/2+1 {
			t.Errorf("address %d: expected %d, got %d", addr, addr/2+1, v)
		}
		if m2.Len() != addr+1 {
			t.Errorf("address %d: expected length %d, got %d", addr, addr+1, m2.Len())
		}
		// the program is still there
		for a, v := range []vm.Cell{1, 2, 3} {
			if m2.Peek(vm.Cell(a)) != v {
				t.Errorf("address %d: program overwritten", addr)
			}
		}
		m = m2
	}
}

func TestMemory_snapshots(t *testing.T) {
	m0 := vm.NewMemory(vm.Image{5, 6, 7})
	m1 := m0.Poke(1, 60)
	m2 := m1.Poke(1000, 1)
	m3 := m2.Poke(1, 600)

	expect := func(name string, m vm.Memory, addr, v vm.Cell) {
		if got := m.Peek(addr); got != v {
			t.Errorf("%s[%d]: expected %d, got %d", name, addr, v, got)
		}
	}
	expect("m0", m0, 1, 6)
	expect("m0", m0, 1000, 0)
	expect("m1", m1, 1, 60)
	expect("m1", m1, 1000, 0)
	expect("m2", m2, 1, 60)
	expect("m2", m2, 1000, 1)
	expect("m3", m3, 1, 600)
	expect("m3", m3, 1000, 1)
	if m0.Equal(m1) || !m3.Poke(1, 60).Equal(m2) {
		t.Error("Equal failed")
	}
}

func TestMemory_negative(t *testing.T) {
	var m vm.Memory
	if _, err := m.Read(-1); errors.Cause(err) != vm.ErrInvalidAddress {
		t.Errorf("read: expected ErrInvalidAddress, got %v", err)
	}
	if _, err := m.Write(-1, 1); errors.Cause(err) != vm.ErrInvalidAddress {
		t.Errorf("write: expected ErrInvalidAddress, got %v", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("Poke did not panic")
		}
	}()
	m.Poke(-5, 0)
}

func TestMemory_Range(t *testing.T) {
	m := vm.NewMemory(vm.Image{0, 1, 0, 2}).Poke(4096, 3).Poke(100, 4).Poke(3, 0)
	var addrs, vals []vm.Cell
	m.Range(func(addr, v vm.Cell) bool {
		addrs = append(addrs, addr)
		vals = append(vals, v)
		return true
	})
	if !equal(addrs, C{1, 100, 4096}) || !equal(vals, C{1, 4, 3}) {
		t.Errorf("unexpected range: %v %v", addrs, vals)
	}
	var n int
	m.Range(func(addr, v vm.Cell) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("Range did not stop: %d calls", n)
	}
	img, err := m.Image()
	if err != nil {
		t.Fatal(err)
	}
	if len(img) != 4097 || img[100] != 4 || img[3] != 0 {
		t.Errorf("unexpected image, len=%d", len(img))
	}
}

func TestMemory_zero(t *testing.T) {
	var m vm.Memory
	if img, err := m.Image(); m.Len() != 0 || len(img) != 0 || err != nil {
		t.Fatal("zero memory not empty")
	}
	m = m.Poke(1<<30, 0)
	if m.Len() != 0 {
		t.Fatalf("writing 0 grew memory to %d", m.Len())
	}
	if !m.Equal(vm.Memory{}) {
		t.Fatal("expected empty memory")
	}
}

// A single write far away must not be expanded into a dense image.
func TestMemory_sparseImage(t *testing.T) {
	p, err := vm.Run(vm.NewProcess(vm.Image{1101, 0, 1, 1 << 40, 99}, vm.NewQueue()))
	if err != nil {
		t.Fatal(err)
	}
	m := p.State.Mem
	if m.Len() != 1<<40+1 {
		t.Fatalf("expected length %d, got %d", 1<<40+1, m.Len())
	}
	if _, err := m.Image(); !errors.Is(err, vm.ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	if _, err := m.Poke(1<<40, 0).Poke(vm.MaxImageSize-1, 7).Image(); err == nil {
		t.Fatal("Len does not shrink when the top cell is cleared")
	}
}

func TestMemory_maxAddress(t *testing.T) {
	m := vm.NewMemory(nil).Poke(math.MaxInt64, 1)
	if m.Len() != math.MaxInt64 {
		t.Errorf("expected saturated length, got %d", m.Len())
	}
	if m.Peek(math.MaxInt64) != 1 {
		t.Error("value at the highest address lost")
	}
}

func BenchmarkMemory_Write(b *testing.B) {
	m := vm.NewMemory(make(vm.Image, 4096))
	for i := 0; i < b.N; i++ {
		m = m.Poke(vm.Cell(i&4095), vm.Cell(i))
	}
}
