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

// Package network simulates a network of Intcode computers exchanging packets
// through non-blocking mailboxes.
//
// Each node runs in a vm.Process with a vm.Mailbox channel. Packets are
// triples (destination, x, y) written by a node; address 255 is the NAT, which
// keeps the last packet sent to it and forwards it to node 0 when the whole
// network is idle.
//
// Scheduling is cooperative and deterministic: a Tick runs every node in
// address order for a bounded burst of instructions. Networks are values, so
// that any intermediate state can be kept and resumed from.
package network
