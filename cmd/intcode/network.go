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
	"io"

	"github.com/db47h/intcode/network"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newNetworkCmd() *cobra.Command {
	var configFile string
	c := defaultNetworkConfig()
	cmd := &cobra.Command{
		Use:   "network [program]",
		Short: "Run a network of Intcode computers",
		Long: `Run a network of Intcode computers.

All nodes run the same program and receive their address as first input. The
run stops on the first message sent to the NAT (--stop first-nat) or when the
NAT sends the same Y value to node 0 twice in a row (--stop repeated-nat).

Settings can be loaded from a YAML file with --config; command line flags
override the settings from the file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c
			if configFile != "" {
				fc, err := loadNetworkConfig(configFile)
				if err != nil {
					return err
				}
				cmd.Flags().Visit(func(f *pflag.Flag) {
					switch f.Name {
					case "nodes":
						fc.Nodes = c.Nodes
					case "burst":
						fc.Burst = c.Burst
					case "stop":
						fc.Stop = c.Stop
					case "max-ticks":
						fc.MaxTicks = c.MaxTicks
					}
				})
				cfg = fc
			}
			if len(args) > 0 {
				cfg.Program = args[0]
			}
			if cfg.Program == "" {
				return errors.New("no program specified")
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return runNetwork(cmd.OutOrStdout(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "load settings from YAML `file`")
	f.IntVarP(&c.Nodes, "nodes", "n", c.Nodes, "number of nodes")
	f.IntVar(&c.Burst, "burst", c.Burst, "maximum number of instructions per node and per tick")
	f.StringVar(&c.Stop, "stop", c.Stop, "stop `condition`: first-nat or repeated-nat")
	f.IntVar(&c.MaxTicks, "max-ticks", c.MaxTicks, "give up after `n` ticks (0 for no limit)")
	return cmd
}

func runNetwork(w io.Writer, cfg networkConfig) error {
	img, err := loadProgram(cfg.Program)
	if err != nil {
		return err
	}
	stop, err := cfg.predicate()
	if err != nil {
		return err
	}
	n, err := network.New(network.Uniform(img, cfg.Nodes),
		network.Burst(cfg.Burst),
		network.Logger(logrus.StandardLogger()))
	if err != nil {
		return err
	}
	n, err = network.RunUntil(n, stop, cfg.MaxTicks)
	if err != nil {
		return err
	}
	logrus.WithField("ticks", n.Ticks()).Debug("network stopped")
	var m network.Message
	if h := n.History(); len(h) > 0 && cfg.Stop == "repeated-nat" {
		m = h[len(h)-1]
	} else {
		m, _ = n.NAT()
	}
	_, err = fmt.Fprintf(w, "x: %d\ny: %d\n", m.X, m.Y)
	return err
}
