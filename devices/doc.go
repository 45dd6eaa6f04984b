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

// Package devices provides vm.Channel implementations which decode the
// output of Intcode programs driving simple devices: a hull painting robot
// (Hull), an arcade cabinet (Screen), an ASCII scaffolding camera (Camera) and
// a maze exploring repair droid (Rover).
//
// Devices are values, like every other channel. They record what they see in
// a Grid, a persistent 2D map built on vm.Memory, so that VM snapshots taken
// along the way keep a consistent view of the device.
package devices
