package asm_test

import (
	"fmt"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

// Disassemble is pretty straightforward. Here we disassemble a small program
// one instruction at a time.
func ExampleDisassemble() {
	mem := vm.NewMemory(vm.Image{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 42})

	for pc := vm.Cell(0); pc < mem.Len(); {
		fmt.Printf("% 4d\t", pc)
		next, err := asm.Disassemble(mem, pc, os.Stdout)
		if err != nil {
			panic(err)
		}
		fmt.Println()
		pc = next
	}

	// Output:
	//    0	in [9]
	//    2	eq [9], [10], [9]
	//    6	out [9]
	//    8	hlt
	//    9	.dat -1
	//   10	.dat 42
}

// DisassembleAll lists a whole memory image.
func ExampleDisassembleAll() {
	img := vm.Image{1002, 4, 3, 4, 33}
	asm.DisassembleAll(vm.NewMemory(img), os.Stdout)

	// Output:
	// 	mul [4], 3, [4]                 ; 0
	// 	.dat 33                         ; 4
}
