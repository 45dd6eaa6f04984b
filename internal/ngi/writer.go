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

// Package ngi holds intcode-internal helpers shared by the asm and devices
// packages.
package ngi

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Writer is a buffered writer for text output built piece by piece. The first
// write error sticks: further writes are no-ops and Flush returns it.
type Writer struct {
	bw  *bufio.Writer
	buf []byte
	err error
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) fail(err error) {
	if err != nil && w.err == nil {
		w.err = errors.Wrap(err, "write")
	}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.bw.Write(p)
	w.fail(err)
	return n, w.err
}

// String writes s.
func (w *Writer) String(s string) {
	if w.err == nil {
		_, err := w.bw.WriteString(s)
		w.fail(err)
	}
}

// Rune writes the UTF-8 encoding of r.
func (w *Writer) Rune(r rune) {
	if w.err == nil {
		_, err := w.bw.WriteRune(r)
		w.fail(err)
	}
}

// Int writes v in decimal.
func (w *Writer) Int(v int64) {
	w.buf = strconv.AppendInt(w.buf[:0], v, 10)
	if w.err == nil {
		_, err := w.bw.Write(w.buf)
		w.fail(err)
	}
}

// Printf writes formatted output.
func (w *Writer) Printf(format string, args ...interface{}) {
	if w.err == nil {
		_, err := fmt.Fprintf(w.bw, format, args...)
		w.fail(err)
	}
}

// Err returns the first error encountered.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered data and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.fail(w.bw.Flush())
	}
	return w.err
}
