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

package vm

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

type flusher interface {
	Flush() error
}

type runeWriter interface {
	io.Writer
	WriteRune(r rune) (size int, err error)
}

type runeWriterWrapper struct {
	io.Writer
}

func (w *runeWriterWrapper) WriteRune(r rune) (size int, err error) {
	b := [utf8.UTFMax]byte{}
	l := utf8.EncodeRune(b[:], r)
	return w.Writer.Write(b[:l])
}

func (w *runeWriterWrapper) Flush() error {
	if f, ok := w.Writer.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// newWriter returns either w if it implements runeWriter or wraps it up into
// a runeWriterWrapper
func newWriter(w io.Writer) runeWriter {
	switch ww := w.(type) {
	case nil:
		return nil
	case runeWriter:
		return ww
	default:
		return &runeWriterWrapper{w}
	}
}

type lineReader interface {
	ReadString(delim byte) (string, error)
}

func newLineReader(r io.Reader) lineReader {
	switch rr := r.(type) {
	case nil:
		return nil
	case lineReader:
		return rr
	default:
		return bufio.NewReader(r)
	}
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// Echo enables or disables echoing of input characters to the console output.
// This is useful when input does not come from a terminal, so that the output
// reads like an interactive session.
func Echo(echo bool) ConsoleOption {
	return func(c *Console) { c.echo = echo }
}

// Console is an interactive line-based channel. Input is read one line at a
// time from an io.Reader and fed to the VM one character code at a time, the
// line being terminated with a newline code (10). Output values in the ASCII
// range are written as characters, other values are written in decimal on a
// line of their own.
//
// Console values share the underlying reader and writer.
type Console struct {
	in   lineReader
	out  runeWriter
	buf  []Cell
	echo bool
}

// NewConsole returns a new Console reading from r and writing to w. If w
// implements Flush() error, it is flushed before blocking for input and after
// each newline.
func NewConsole(r io.Reader, w io.Writer, opts ...ConsoleOption) Console {
	c := Console{in: newLineReader(r), out: newWriter(w)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Console) flush() error {
	if f, ok := c.out.(flusher); ok {
		return errors.Wrap(f.Flush(), "console flush")
	}
	return nil
}

// Read returns the next input character code, reading a new line from the
// input if necessary.
func (c Console) Read() (Cell, Console, error) {
	if len(c.buf) == 0 {
		if c.in == nil {
			return 0, c, errors.Wrap(io.EOF, "console read")
		}
		if err := c.flush(); err != nil {
			return 0, c, err
		}
		line, err := c.in.ReadString('\n')
		if len(line) == 0 && err != nil {
			return 0, c, errors.Wrap(err, "console read")
		}
		line = strings.TrimRight(line, "\r\n")
		buf := make([]Cell, 0, len(line)+1)
		for _, r := range line {
			buf = append(buf, Cell(r))
		}
		c.buf = append(buf, '\n')
	}
	v := c.buf[0]
	c.buf = c.buf[1:]
	if c.echo && c.out != nil {
		if _, err := c.out.WriteRune(rune(v)); err != nil {
			return 0, c, errors.Wrap(err, "console echo")
		}
	}
	return v, c, nil
}

// Write renders v on the console output.
func (c Console) Write(v Cell) (Console, error) {
	if c.out == nil {
		return c, nil
	}
	var err error
	if v >= 0 && v < utf8.RuneSelf {
		_, err = c.out.WriteRune(rune(v))
	} else {
		_, err = io.WriteString(c.out, strconv.FormatInt(int64(v), 10)+"\n")
		v = '\n'
	}
	if err != nil {
		return c, errors.Wrap(err, "console write")
	}
	if v == '\n' {
		return c, c.flush()
	}
	return c, nil
}

// Pending returns the number of buffered input characters not yet consumed.
func (c Console) Pending() int {
	return len(c.buf)
}
