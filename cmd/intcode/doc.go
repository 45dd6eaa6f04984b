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

// The intcode command line tool is a showcase for the package
// github.com/db47h/intcode/vm and its companion packages.
//
// Usage:
//
//	intcode [command]
//
// Available commands:
//
//	run	Run an Intcode program
//	dis	Disassemble an Intcode program
//	render	Run a program driving a device and render what it draws
//	network	Run a network of Intcode computers
//	amplify	Run a chain of amplifiers
//
// Global flags:
//
//	-v, --verbose
//		enable debug logging, instruction traces and stack traces
//
// Programs are loaded from program listings: comma separated values, possibly
// spanning several lines.
//
// run: without --input or --line, the program runs interactively: input is
// read one line at a time from stdin and ASCII output is written to stdout.
// When stdin is not a terminal, input is echoed to stdout. The run ends
// without error when the program halts or when it reads past the end of
// stdin.
//
//	intcode run day9.txt --input 1
//	intcode run day2.txt --input 0 --set 1=12 --set 2=2 --dump
//	intcode run day21.txt --ascii --line "NOT A J" --line WALK
//
// render: runs a program against a device and draws the result:
//
//	intcode render day11.txt --device hull --start white
//	intcode render day13.txt --device screen --free-play
//	intcode render day15.txt --device maze
//
// network: runs a network of computers until the given stop condition:
//
//	intcode network day23.txt --stop repeated-nat
//	intcode network --config net.yaml
//
// amplify: runs one amplifier per phase setting, in series or as a feedback
// loop, and prints the final output signal:
//
//	intcode amplify day7.txt --phases 4,3,2,1,0
//	intcode amplify day7.txt --phases 9,8,7,6,5 --feedback
//
// With --verbose, every instruction executed is logged at debug level. This
// is slow and verbose.
package main
