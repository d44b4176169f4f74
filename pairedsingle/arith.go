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

package pairedsingle

import (
	"math"

	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/fpu"
)

// Operator names the four scalar arithmetic kernels.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
)

// Lane selects which half of an operand register a kernel reads from.
type Lane int

const (
	Lane0 Lane = iota
	Lane1
)

func loadLane(state *cpu.ThreadState, reg int, lane Lane) float64 {
	if lane == Lane0 {
		return state.FPR[reg].Paired0()
	}
	return state.FPR[reg].Paired1()
}

// single runs one lane of a scalar Add/Sub/Mul/Div, classifying operand
// exceptions, latching the FPSCR sticky bits they correspond to, and
// returning false if an enabled exception suppresses this lane's
// writeback. b is read from FrC for Mul (the paired-single "C is the
// second multiplicand" convention) and from FrB otherwise.
func single(state *cpu.ThreadState, instr cpu.Instruction, op Operator, laneA, laneB Lane) (result float32, wrote bool) {
	a := loadLane(state, instr.FrA, laneA)
	bReg := instr.FrB
	if op == Mul {
		bReg = instr.FrC
	}
	b := loadLane(state, bReg, laneB)

	vxsnan := fpu.IsSignallingNaN(a) || fpu.IsSignallingNaN(b)
	var vxisi, vximz, vxidi, vxzdz, zx bool

	switch op {
	case Add:
		vxisi = fpu.IsInfinity(a) && fpu.IsInfinity(b) && math.Signbit(a) != math.Signbit(b)
	case Sub:
		vxisi = fpu.IsInfinity(a) && fpu.IsInfinity(b) && math.Signbit(a) == math.Signbit(b)
	case Mul:
		vximz = (fpu.IsInfinity(a) && fpu.IsZero(b)) || (fpu.IsZero(a) && fpu.IsInfinity(b))
	case Div:
		vxidi = fpu.IsInfinity(a) && fpu.IsInfinity(b)
		vxzdz = fpu.IsZero(a) && fpu.IsZero(b)
		zx = fpu.IsZero(b) && !vxzdz && !vxsnan
	}

	scr := &state.FPSCR
	scr.SetVXSNAN(scr.VXSNAN() || vxsnan)
	scr.SetVXISI(scr.VXISI() || vxisi)
	scr.SetVXIMZ(scr.VXIMZ() || vximz)
	scr.SetVXIDI(scr.VXIDI() || vxidi)
	scr.SetVXZDZ(scr.VXZDZ() || vxzdz)
	scr.SetZX(scr.ZX() || zx)

	vxEnabled := (vxsnan || vxisi || vximz || vxidi || vxzdz) && scr.VE()
	zxEnabled := zx && scr.ZE()
	if vxEnabled || zxEnabled {
		return 0, false
	}

	var d float32
	switch {
	case fpu.IsNaN(a):
		d = fpu.MakeQuiet(fpu.TruncateDouble(a))
	case fpu.IsNaN(b):
		d = fpu.MakeQuiet(fpu.TruncateDouble(b))
	case vxisi || vximz || vxidi || vxzdz:
		d = fpu.MakeNaN32()
	default:
		switch op {
		case Add:
			d = float32(a + b)
		case Sub:
			d = float32(a - b)
		case Mul:
			d = float32(a * b)
		case Div:
			d = float32(a / b)
		}
	}
	return d, true
}

// arithGeneric drives both lanes of a paired arithmetic instruction,
// commits the result to FrD only if neither lane's write was suppressed,
// and runs the shared FPSCR side-effect discipline exactly once.
func arithGeneric(state *cpu.ThreadState, instr cpu.Instruction, op Operator, laneB0, laneB1 Lane) {
	old := state.FPSCR.Snapshot()

	d0, wrote0 := single(state, instr, op, Lane0, laneB0)
	d1, wrote1 := single(state, instr, op, Lane1, laneB1)

	if wrote0 && wrote1 {
		dst := &state.FPR[instr.FrD]
		dst.SetPaired0(fpu.ExtendFloat(d0))
		dst.SetPS1(d1)
	}
	if wrote0 {
		fpu.UpdateFPRF(&state.FPSCR, fpu.ExtendFloat(d0))
	}

	state.FPSCR.UpdateSummaryBits(old)
	if instr.RC {
		cpu.UpdateFloatConditionRegister(state)
	}
}

// PSAdd computes frD = frA + frB across both lanes.
func PSAdd(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Add, Lane0, Lane1)
}

// PSSub computes frD = frA - frB across both lanes.
func PSSub(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Sub, Lane0, Lane1)
}

// PSMul computes frD = frA * frC across both lanes.
func PSMul(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Mul, Lane0, Lane1)
}

// PSDiv computes frD = frA / frB across both lanes.
func PSDiv(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Div, Lane0, Lane1)
}

// PSMuls0 computes frD = frA * frC, broadcasting frC's slot 0 to both
// lanes.
func PSMuls0(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Mul, Lane0, Lane0)
}

// PSMuls1 computes frD = frA * frC, broadcasting frC's slot 1 to both
// lanes.
func PSMuls1(state *cpu.ThreadState, instr cpu.Instruction) {
	arithGeneric(state, instr, Mul, Lane1, Lane1)
}
