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

package main

import (
	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis program",
		Short: "Disassemble an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			return asm.DisassembleAll(vm.NewMemory(img), cmd.OutOrStdout())
		},
	}
}
