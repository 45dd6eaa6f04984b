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
	"github.com/sirupsen/logrus"
)

// NATAddress is the address of the NAT.
const NATAddress = 255

// Errors.
var (
	ErrUnknownDestination = errors.New("unknown destination")
	ErrTickLimit          = errors.New("tick limit reached")
)

// Message is a packet sent over the network.
type Message struct {
	Dest int
	X, Y vm.Cell
}

// Node describes a node of the network: the program it runs and its initial
// input.
type Node struct {
	Program vm.Image
	Input   []vm.Cell
}

// Uniform returns n nodes running img, where node i gets its address i as
// input.
func Uniform(img vm.Image, n int) []Node {
	nodes := make([]Node, n)
	for i := range nodes {
		nodes[i] = Node{img, []vm.Cell{vm.Cell(i)}}
	}
	return nodes
}

// Option configures a Network.
type Option func(*config)

type config struct {
	burst int64
	log   logrus.FieldLogger
}

// Burst sets the maximum number of instructions a node executes per tick.
// The default is 4096.
func Burst(n int) Option {
	return func(c *config) { c.burst = int64(n) }
}

// Logger sets the logger for debug messages. The default logger only writes
// warnings and errors to stderr.
func Logger(l logrus.FieldLogger) Option {
	return func(c *config) { c.log = l }
}

// Network is a network of Intcode computers exchanging packets. Network is a
// value: Tick returns the next state of the network and leaves the receiver
// untouched.
type Network struct {
	cfg     *config
	nodes   []vm.Process[vm.Mailbox]
	pending []Message
	nat     Message
	hasNAT  bool
	history []Message
	ticks   int
}

// New returns a new Network of the given nodes. Node addresses are their
// index in nodes.
func New(nodes []Node, opts ...Option) (Network, error) {
	cfg := &config{burst: 4096}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetLevel(logrus.WarnLevel)
		cfg.log = l
	}
	if len(nodes) == 0 || len(nodes) >= NATAddress {
		return Network{}, errors.Errorf("network: invalid number of nodes %d", len(nodes))
	}
	if cfg.burst <= 0 {
		return Network{}, errors.Errorf("network: invalid burst size %d", cfg.burst)
	}
	n := Network{cfg: cfg, nodes: make([]vm.Process[vm.Mailbox], len(nodes))}
	for i, node := range nodes {
		n.nodes[i] = vm.NewProcess(node.Program, vm.NewMailbox(node.Input...))
	}
	return n, nil
}

// Len returns the number of nodes.
func (n Network) Len() int {
	return len(n.nodes)
}

// Node returns the process of node i.
func (n Network) Node(i int) vm.Process[vm.Mailbox] {
	return n.nodes[i]
}

// NAT returns the last message received by the NAT and not yet forwarded.
func (n Network) NAT() (Message, bool) {
	return n.nat, n.hasNAT
}

// History returns the messages forwarded by the NAT to node 0, oldest first.
func (n Network) History() []Message {
	return n.history
}

// Pending returns the messages to be delivered on the next tick.
func (n Network) Pending() []Message {
	return n.pending
}

// Ticks returns the number of ticks elapsed.
func (n Network) Ticks() int {
	return n.ticks
}

// Idle returns true if every node is waiting for input and no message is
// pending.
func (n Network) Idle() bool {
	if len(n.pending) > 0 {
		return false
	}
	for _, p := range n.nodes {
		if !p.IO.Waiting() {
			return false
		}
	}
	return true
}

// Tick advances the network by one round: if the network is idle, the NAT
// forwards its message to node 0. Then, in address order, every node receives
// its pending messages and runs until it sends a message, reads from an empty
// mailbox, halts or exceeds its burst size. Messages sent during a tick are
// delivered on the next one.
//
// A fault in any node aborts the tick; the returned error wraps it with the
// node address.
func (n Network) Tick() (Network, error) {
	orig := n
	log := n.cfg.log.WithField("tick", n.ticks)
	pending := n.pending
	if n.hasNAT && n.Idle() {
		m := Message{0, n.nat.X, n.nat.Y}
		pending = []Message{m}
		n.history = append(n.history[:len(n.history):len(n.history)], m)
		n.hasNAT = false
		log.WithFields(logrus.Fields{"x": m.X, "y": m.Y}).Debug("network idle, NAT resend")
	}

	nodes := make([]vm.Process[vm.Mailbox], len(n.nodes))
	var sent []Message
	var err error
	for i, p := range n.nodes {
		for _, m := range pending {
			if m.Dest == i {
				p.IO = p.IO.Push(m.X, m.Y)
			}
		}
		p, err = n.burst(p)
		if err != nil {
			return orig, errors.Wrapf(err, "node %d", i)
		}
		if out, mb := p.IO.TakeOutput(3); out != nil {
			p.IO = mb
			m := Message{int(out[0]), out[1], out[2]}
			switch {
			case m.Dest == NATAddress:
				n.nat, n.hasNAT = m, true
				log.WithFields(logrus.Fields{"from": i, "x": m.X, "y": m.Y}).Debug("NAT receive")
			case m.Dest < 0 || m.Dest >= len(n.nodes):
				return orig, errors.Wrapf(ErrUnknownDestination, "node %d: destination %d", i, m.Dest)
			default:
				sent = append(sent, m)
			}
		}
		nodes[i] = p
	}
	n.nodes = nodes
	n.pending = sent
	n.ticks++
	return n, nil
}

// burst runs p until it has a full message to send, reads from an empty
// mailbox, halts or reaches the burst size.
func (n Network) burst(p vm.Process[vm.Mailbox]) (vm.Process[vm.Mailbox], error) {
	d := vm.NewDriver(p, vm.Limit(n.cfg.burst))
	prev, started := p, false
	for d.Next() {
		cur := d.Process()
		if started && (len(cur.IO.Out) >= 3 || emptyRead(prev)) {
			break
		}
		prev, started = cur, true
	}
	if err := d.Err(); err != nil && !errors.Is(err, vm.ErrLimit) {
		return p, err
	}
	return d.Process(), nil
}

// emptyRead returns true if the next instruction of p is an input instruction
// and its mailbox is empty.
func emptyRead(p vm.Process[vm.Mailbox]) bool {
	in, err := p.State.Instruction()
	return err == nil && in.Op == vm.OpIn && len(p.IO.In) == 0
}
