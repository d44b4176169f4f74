// This file is part of gekko-ps.
//
// gekko-ps is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gekko-ps is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gekko-ps.  If not, see <https://www.gnu.org/licenses/>.

// Command psdemo is a line-oriented REPL for driving the paired-single
// core by hand: it holds a single cpu.ThreadState, accepts commands to
// load registers, run a mnemonic against them, and dump the resulting
// register and FPSCR state. It exists to make the core's behaviour
// inspectable from a terminal without writing a Go test for every
// experiment.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xyproto/env/v2"
	"golang.org/x/term"

	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/errors"
	"github.com/jsdw-emu/gekko-ps/fpu"
	"github.com/jsdw-emu/gekko-ps/logger"
	"github.com/jsdw-emu/gekko-ps/pairedsingle"
)

// echoLog, when true, mirrors every logger entry to stderr as it's
// recorded rather than only on an explicit "log" command. Controlled by
// GEKKO_PS_LOG_ECHO so a scripted run can turn on tracing without a
// recompile.
var echoLog = env.Bool("GEKKO_PS_LOG_ECHO")

func main() {
	if echoLog {
		logger.SetEcho(os.Stderr)
	}
	if err := fpu.RequireRoundToNearestEven(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	interactive := term.IsTerminal(fd)

	var oldState *term.State
	if interactive {
		var err error
		oldState, err = term.MakeRaw(fd)
		if err != nil {
			interactive = false
		} else {
			defer term.Restore(fd, oldState)
		}
	}

	state := cpu.NewThreadState()
	scanner := bufio.NewScanner(os.Stdin)

	if interactive {
		fmt.Fprint(os.Stdout, "gekko-ps> ")
	}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			runCommand(state, line)
		}
		if interactive {
			fmt.Fprint(os.Stdout, "\r\ngekko-ps> ")
		}
	}
}

func runCommand(state *cpu.ThreadState, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "set":
		runSet(state, fields[1:])
	case "exec":
		runExec(state, fields[1:])
	case "dump":
		runDump(state, fields[1:])
	case "fpscr":
		fmt.Printf("fpscr = %#08x\r\n", state.FPSCR.Value())
	case "log":
		logger.Write(os.Stdout)
	case "help":
		fmt.Print("commands: set <reg> <slot0> <slot1>, exec <mnemonic> frD frA frB frC, dump <reg>, fpscr, log\r\n")
	default:
		fmt.Printf("unrecognised command %q\r\n", fields[0])
	}
}

func runSet(state *cpu.ThreadState, args []string) {
	if len(args) != 3 {
		fmt.Print("usage: set <reg> <slot0> <slot1>\r\n")
		return
	}
	reg, err := strconv.Atoi(args[0])
	if err != nil || reg < 0 || reg >= cpu.NumFPR {
		fmt.Printf("%v\r\n", errors.New(errors.InvalidRegisterIndex, reg))
		return
	}
	slot0, err0 := strconv.ParseFloat(args[1], 64)
	slot1, err1 := strconv.ParseFloat(args[2], 64)
	if err0 != nil || err1 != nil {
		fmt.Print("slot values must be floating point literals\r\n")
		return
	}
	state.FPR[reg].SetPaired0(slot0)
	state.FPR[reg].SetPS1(float32(slot1))
}

func runExec(state *cpu.ThreadState, args []string) {
	if len(args) == 0 {
		fmt.Print("usage: exec <mnemonic> [frD frA frB frC]\r\n")
		return
	}
	op, err := pairedsingle.Lookup(args[0])
	if err != nil {
		fmt.Printf("%v\r\n", err)
		return
	}

	instr := cpu.Instruction{}
	regs := []*int{&instr.FrD, &instr.FrA, &instr.FrB, &instr.FrC}
	for i, arg := range args[1:] {
		if i >= len(regs) {
			break
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Printf("invalid register index %q\r\n", arg)
			return
		}
		if n < 0 || n >= cpu.NumFPR {
			fmt.Printf("%v\r\n", errors.New(errors.InvalidRegisterIndex, n))
			return
		}
		*regs[i] = n
	}

	logger.Logf(logger.Allow, "psdemo", "exec %s frD=%d frA=%d frB=%d frC=%d", op.Mnemonic, instr.FrD, instr.FrA, instr.FrB, instr.FrC)
	op.Exec(state, instr)
}

func runDump(state *cpu.ThreadState, args []string) {
	if len(args) != 1 {
		fmt.Print("usage: dump <reg>\r\n")
		return
	}
	reg, err := strconv.Atoi(args[0])
	if err != nil || reg < 0 || reg >= cpu.NumFPR {
		fmt.Printf("%v\r\n", errors.New(errors.InvalidRegisterIndex, reg))
		return
	}
	r := &state.FPR[reg]
	fmt.Printf("f%d = {%v, %v} (idw=%#016x iw1=%#08x)\r\n", reg, r.Paired0(), r.PS1(), r.Idw(), r.IwPaired1())
}
