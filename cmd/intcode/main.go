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
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intcode",
		Short:         "Intcode virtual machine and tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging, instruction traces and stack traces")
	root.AddCommand(
		newRunCmd(),
		newDisCmd(),
		newRenderCmd(),
		newNetworkCmd(),
		newAmplifyCmd(),
	)
	return root
}

// loadProgram loads a program listing.
func loadProgram(name string) (vm.Image, error) {
	img, err := vm.Load(name)
	if err != nil {
		return nil, errors.Wrap(err, "load program")
	}
	return img, nil
}

// driverOptions returns the driver options for an instruction limit and
// tracing at debug log level.
func driverOptions(limit int64) []vm.DriverOption {
	var opts []vm.DriverOption
	if limit > 0 {
		opts = append(opts, vm.Limit(limit))
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, vm.Trace(trace))
	}
	return opts
}

func trace(s vm.State) {
	var b strings.Builder
	asm.Disassemble(s.Mem, s.PC, &b)
	logrus.WithFields(logrus.Fields{"pc": s.PC, "rb": s.Base}).Debug(b.String())
}

func atExit(err error) {
	if err == nil {
		return
	}
	if !verbose {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	os.Exit(1)
}

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	atExit(newRootCmd().Execute())
}
