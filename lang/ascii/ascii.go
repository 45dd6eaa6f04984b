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

// Package ascii provides utility functions to talk to Intcode programs using
// ASCII text: lines of input are encoded as one cell per character followed by
// a newline (10), and output cells in the ASCII range are decoded as text.
package ascii

import (
	"strings"

	"github.com/db47h/intcode/vm"
)

// MaxASCII is the highest cell value decoded as text.
const MaxASCII = 127

// Codec encodes lines of text into input cells and decodes output cells into
// text. Output values outside of the ASCII range, typically puzzle answers,
// are returned separately.
//
// Encode returns the bytes of each line followed by a newline. Lines are
// expected to be ASCII text; any non-ASCII bytes are encoded as is.
//
// Decode splits out into the text made of values in [0, MaxASCII] and the
// values outside of that range, in order of appearance.
var Codec codec

type codec struct{}

func (codec) Encode(lines ...string) []vm.Cell {
	var n int
	for _, l := range lines {
		n += len(l) + 1
	}
	in := make([]vm.Cell, 0, n)
	for _, l := range lines {
		for i := 0; i < len(l); i++ {
			in = append(in, vm.Cell(l[i]))
		}
		in = append(in, '\n')
	}
	return in
}

func (codec) Decode(out []vm.Cell) (text string, values []vm.Cell) {
	var sb strings.Builder
	for _, v := range out {
		if v >= 0 && v <= MaxASCII {
			sb.WriteByte(byte(v))
		} else {
			values = append(values, v)
		}
	}
	return sb.String(), values
}

// Encode is a shorthand for Codec.Encode.
func Encode(lines ...string) []vm.Cell {
	return Codec.Encode(lines...)
}

// Decode is a shorthand for Codec.Decode.
func Decode(out []vm.Cell) (text string, values []vm.Cell) {
	return Codec.Decode(out)
}

// Run runs img with the given lines of input and returns the decoded output.
func Run(img vm.Image, lines []string, opts ...vm.DriverOption) (text string, values []vm.Cell, err error) {
	p, err := vm.Run(vm.NewProcess(img, vm.NewQueue(Encode(lines...)...)), opts...)
	text, values = Decode(p.IO.Out)
	return text, values, err
}
