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

package ascii

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// valuesPerLine is the number of values written per line by Dump.
const valuesPerLine = 16

// Dump writes mem[0:mem.Len()] to w as a program listing that can be read back
// with vm.Parse. Values are comma separated, 16 per line. Memories larger than
// vm.MaxImageSize are not written and yield vm.ErrTooLarge.
func Dump(w io.Writer, mem vm.Memory) error {
	img, err := mem.Image()
	if err != nil {
		return errors.Wrap(err, "dump")
	}
	l := len(img)
	b := make([]byte, 0, 256)
	for addr, v := range img {
		b = strconv.AppendInt(b, int64(v), 10)
		switch {
		case addr == l-1:
			b = append(b, '\n')
		case addr%valuesPerLine == valuesPerLine-1:
			b = append(b, ",\n"...)
		default:
			b = append(b, ',')
		}
		if len(b) >= 200 || addr == l-1 {
			if _, err := w.Write(b); err != nil {
				return err
			}
			b = b[:0]
		}
	}
	return nil
}
