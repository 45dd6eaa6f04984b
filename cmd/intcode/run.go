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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runOptions struct {
	input []string
	lines []string
	ascii bool
	limit int64
	dump  bool
	set   []string
}

func newRunCmd() *cobra.Command {
	var o runOptions
	cmd := &cobra.Command{
		Use:   "run program",
		Short: "Run an Intcode program",
		Long: `Run an Intcode program.

Without --input or --line, the program runs interactively on the console:
input is read one line at a time from stdin and ASCII output is written to
stdout. Other output values are printed in decimal on their own line.

With --input or --line, the program runs against a fixed input queue and its
output values are printed once it halts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout(), args[0])
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&o.input, "input", "i", nil, "comma separated input `values`")
	f.StringArrayVarP(&o.lines, "line", "l", nil, "ASCII input `line` (can be specified multiple times)")
	f.BoolVarP(&o.ascii, "ascii", "a", false, "decode output values as ASCII text")
	f.Int64Var(&o.limit, "limit", 0, "maximum number of instructions to execute (0 for no limit)")
	f.BoolVar(&o.dump, "dump", false, "dump memory upon exit")
	f.StringArrayVar(&o.set, "set", nil, "patch memory before running: `addr=value` (can be specified multiple times)")
	return cmd
}

// patch applies addr=value assignments to mem.
func patch(mem vm.Memory, set []string) (vm.Memory, error) {
	for _, s := range set {
		i := strings.IndexByte(s, '=')
		if i < 0 {
			return mem, errors.Errorf("invalid assignment %q", s)
		}
		addr, err := strconv.ParseInt(strings.TrimSpace(s[:i]), 0, 64)
		if err != nil {
			return mem, errors.Wrapf(err, "invalid address in %q", s)
		}
		v, err := strconv.ParseInt(strings.TrimSpace(s[i+1:]), 0, 64)
		if err != nil {
			return mem, errors.Wrapf(err, "invalid value in %q", s)
		}
		if mem, err = mem.Write(vm.Cell(addr), vm.Cell(v)); err != nil {
			return mem, err
		}
	}
	return mem, nil
}

func parseValues(in []string) ([]vm.Cell, error) {
	vals := make([]vm.Cell, 0, len(in))
	for _, s := range in {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid input value")
		}
		vals = append(vals, vm.Cell(v))
	}
	return vals, nil
}

func (o *runOptions) run(w io.Writer, fileName string) error {
	img, err := loadProgram(fileName)
	if err != nil {
		return err
	}
	mem, err := patch(vm.NewMemory(img), o.set)
	if err != nil {
		return err
	}
	s := vm.State{Mem: mem}
	opts := driverOptions(o.limit)

	if o.input == nil && o.lines == nil {
		out := bufio.NewWriter(w)
		c := vm.NewConsole(os.Stdin, out, vm.Echo(!isTerminal(os.Stdin)))
		p, err := vm.Run(vm.Process[vm.Console]{State: s, IO: c}, opts...)
		out.Flush()
		if errors.Cause(err) == io.EOF {
			err = nil
		}
		return o.atExit(w, p.State, err)
	}

	in, err := parseValues(o.input)
	if err != nil {
		return err
	}
	in = append(in, ascii.Encode(o.lines...)...)
	p, err := vm.Run(vm.Process[vm.Queue]{State: s, IO: vm.NewQueue(in...)}, opts...)
	if o.ascii {
		text, values := ascii.Decode(p.IO.Out)
		io.WriteString(w, text)
		for _, v := range values {
			fmt.Fprintln(w, v)
		}
	} else {
		for _, v := range p.IO.Out {
			fmt.Fprintln(w, v)
		}
	}
	return o.atExit(w, p.State, err)
}

func (o *runOptions) atExit(w io.Writer, s vm.State, err error) error {
	if err == nil && o.dump {
		return ascii.Dump(w, s.Mem)
	}
	return err
}
