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
	"fmt"

	"github.com/db47h/intcode/network"
	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

type amplifyOptions struct {
	phases   []string
	signal   int64
	feedback bool
	limit    int64
}

func newAmplifyCmd() *cobra.Command {
	var o amplifyOptions
	cmd := &cobra.Command{
		Use:   "amplify program",
		Short: "Run a chain of amplifiers",
		Long: `Run a chain of amplifiers.

One amplifier per phase setting runs the program. Each one gets its phase
setting as first input, then the output signal of the previous amplifier.
With --feedback, the output of the last amplifier is fed back into the first
one until the last amplifier halts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			phases, err := parseValues(o.phases)
			if err != nil {
				return err
			}
			run := network.Series
			if o.feedback {
				run = network.Feedback
			}
			s, err := run(img, phases, vm.Cell(o.signal), driverOptions(o.limit)...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
			return err
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&o.phases, "phases", "p", []string{"0", "1", "2", "3", "4"}, "comma separated phase `settings`")
	f.Int64VarP(&o.signal, "signal", "s", 0, "input `signal` of the first amplifier")
	f.BoolVar(&o.feedback, "feedback", false, "run the amplifiers in a feedback loop")
	f.Int64Var(&o.limit, "limit", 0, "maximum number of instructions per amplifier run (0 for no limit)")
	return cmd
}
