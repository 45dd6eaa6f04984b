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

package network

import (
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Predicate is a termination condition for RunUntil.
type Predicate func(n Network) bool

// FirstNAT returns a predicate which is true as soon as the NAT has received
// a message.
func FirstNAT() Predicate {
	return func(n Network) bool {
		_, ok := n.NAT()
		return ok || len(n.history) > 0
	}
}

// RepeatedNAT returns a predicate which is true when the last two messages
// forwarded by the NAT to node 0 have the same Y value.
func RepeatedNAT() Predicate {
	return func(n Network) bool {
		h := n.history
		return len(h) >= 2 && h[len(h)-1].Y == h[len(h)-2].Y
	}
}

// RunUntil ticks n until stop returns true and returns the last network
// state. If maxTicks is positive, it fails with ErrTickLimit after maxTicks
// ticks. It also fails if every node has halted since no further progress is
// possible.
func RunUntil(n Network, stop Predicate, maxTicks int) (Network, error) {
	var err error
	for i := 0; !stop(n); i++ {
		if maxTicks > 0 && i >= maxTicks {
			return n, errors.Wrapf(ErrTickLimit, "after %d ticks", i)
		}
		if n.halted() {
			return n, errors.Wrap(vm.ErrHalted, "all nodes")
		}
		if n, err = n.Tick(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (n Network) halted() bool {
	for _, p := range n.nodes {
		if !p.State.Halted() {
			return false
		}
	}
	return true
}
