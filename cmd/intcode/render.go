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
	"strings"

	"github.com/db47h/intcode/devices"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	device   string
	start    string
	freePlay bool
	limit    int64
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render program",
		Short: "Run a program driving a device and render what it draws",
		Long: `Run a program driving a device and render what it draws.

Supported devices:

  hull     hull painting robot. Use --start white to start on a white panel.
  screen   arcade cabinet. Use --free-play to play the game with a joystick
           following the ball.
  camera   ASCII scaffolding camera.
  maze     repair droid. The maze is explored in full.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			return o.render(cmd.OutOrStdout(), img)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.device, "device", "d", "hull", "`device` type: hull, screen, camera or maze")
	f.StringVar(&o.start, "start", "black", "hull start panel `color`: black or white")
	f.BoolVar(&o.freePlay, "free-play", false, "screen: insert quarters and let the joystick follow the ball")
	f.Int64Var(&o.limit, "limit", 0, "maximum number of instructions to execute (0 for no limit)")
	return cmd
}

func (o *renderOptions) render(w io.Writer, img vm.Image) error {
	opts := driverOptions(o.limit)
	switch strings.ToLower(o.device) {
	case "hull":
		var start devices.Color
		switch strings.ToLower(o.start) {
		case "black":
		case "white":
			start = devices.White
		default:
			return errors.Errorf("invalid start color %q", o.start)
		}
		p, err := vm.Run(vm.NewProcess(img, devices.NewHull(start)), opts...)
		if err != nil {
			return err
		}
		if err = p.IO.Panels().Render(w, devices.HullPalette); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "painted: %d\n", p.IO.Painted())
		return err

	case "screen":
		p := vm.NewProcess(img, devices.Screen{Auto: o.freePlay})
		if o.freePlay {
			p.State.Mem = p.State.Mem.Poke(0, 2)
		}
		p, err := vm.Run(p, opts...)
		if err != nil {
			return err
		}
		if err = p.IO.Tiles().Render(w, devices.ScreenPalette); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "blocks: %d\nscore: %d\n", p.IO.Count(devices.Block), p.IO.Score())
		return err

	case "camera":
		p, err := vm.Run(vm.NewProcess(img, devices.Camera{}), opts...)
		if err != nil {
			return err
		}
		if err = p.IO.View().Render(w, devices.CameraPalette); err != nil {
			return err
		}
		var align int
		for _, pt := range p.IO.Intersections() {
			align += pt.X * pt.Y
		}
		_, err = fmt.Fprintf(w, "alignment: %d\n", align)
		return err

	case "maze":
		s, err := devices.Explore(img, opts...)
		if err != nil {
			return err
		}
		if err = s.Map.Render(w, devices.RoverPalette); err != nil {
			return err
		}
		if !s.Found {
			_, err = fmt.Fprintln(w, "oxygen system not found")
			return err
		}
		_, err = fmt.Fprintf(w, "steps: %d\nfill time: %d\n", s.Steps, s.FillTime())
		return err
	}
	return errors.Errorf("unknown device %q", o.device)
}
