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
	"io"
	"os"

	"github.com/db47h/intcode/network"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// networkConfig describes a network run. It can be loaded from a YAML file:
//
//	program: day23.txt
//	nodes: 50
//	burst: 4096
//	stop: repeated-nat
//	max_ticks: 100000
type networkConfig struct {
	Program  string `yaml:"program"`
	Nodes    int    `yaml:"nodes"`
	Burst    int    `yaml:"burst"`
	Stop     string `yaml:"stop"`
	MaxTicks int    `yaml:"max_ticks"`
}

func defaultNetworkConfig() networkConfig {
	return networkConfig{
		Nodes:    50,
		Burst:    4096,
		Stop:     "first-nat",
		MaxTicks: 100000,
	}
}

// parseNetworkConfig reads a YAML network configuration from r. Missing
// settings keep their default value.
func parseNetworkConfig(r io.Reader) (networkConfig, error) {
	c := defaultNetworkConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return c, errors.Wrap(err, "network config")
	}
	return c, c.validate()
}

func loadNetworkConfig(fileName string) (networkConfig, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return networkConfig{}, errors.Wrap(err, "network config")
	}
	defer f.Close()
	c, err := parseNetworkConfig(f)
	return c, errors.Wrap(err, fileName)
}

func (c networkConfig) validate() error {
	if _, err := c.predicate(); err != nil {
		return err
	}
	if c.Nodes <= 0 || c.Nodes >= network.NATAddress {
		return errors.Errorf("network config: invalid number of nodes %d", c.Nodes)
	}
	if c.Burst <= 0 {
		return errors.Errorf("network config: invalid burst size %d", c.Burst)
	}
	return nil
}

func (c networkConfig) predicate() (network.Predicate, error) {
	switch c.Stop {
	case "first-nat":
		return network.FirstNAT(), nil
	case "repeated-nat":
		return network.RepeatedNAT(), nil
	}
	return nil, errors.Errorf("network config: unknown stop condition %q", c.Stop)
}
