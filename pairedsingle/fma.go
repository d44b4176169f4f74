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

// FMAFlags select which of the four fused-multiply-add variants a single
// lane computes: plain madd, msub (subtract the addend), nmadd/nmsub
// (negate the whole result).
type FMAFlags uint8

const (
	FMASubtract FMAFlags = 1 << iota
	FMANegate
)

// fmaSingle computes one lane of frA*frC +/- frB, negated if requested,
// as a single correctly-rounded fused operation, never as a separate
// multiply followed by a separate add.
func fmaSingle(state *cpu.ThreadState, instr cpu.Instruction, flags FMAFlags, laneAB, laneC Lane) (result float32, wrote bool) {
	a := loadLane(state, instr.FrA, laneAB)
	b := loadLane(state, instr.FrB, laneAB)
	c := loadLane(state, instr.FrC, laneC)

	addend := b
	if flags&FMASubtract != 0 {
		addend = -b
	}

	vxsnan := fpu.IsSignallingNaN(a) || fpu.IsSignallingNaN(b) || fpu.IsSignallingNaN(c)
	vximz := (fpu.IsInfinity(a) && fpu.IsZero(c)) || (fpu.IsZero(a) && fpu.IsInfinity(c))

	productInfinite := fpu.IsInfinity(a) || fpu.IsInfinity(c)
	productSign := math.Signbit(a) != math.Signbit(c)
	vxisi := productInfinite && fpu.IsInfinity(addend) && productSign != math.Signbit(addend)

	scr := &state.FPSCR
	scr.SetVXSNAN(scr.VXSNAN() || vxsnan)
	scr.SetVXISI(scr.VXISI() || vxisi)
	scr.SetVXIMZ(scr.VXIMZ() || vximz)

	if (vxsnan || vxisi || vximz) && scr.VE() {
		return 0, false
	}

	var d float32
	switch {
	case fpu.IsNaN(a):
		d = fpu.MakeQuiet(fpu.TruncateDouble(a))
	case fpu.IsNaN(b):
		d = fpu.MakeQuiet(fpu.TruncateDouble(b))
	case fpu.IsNaN(c):
		d = fpu.MakeQuiet(fpu.TruncateDouble(c))
	case vxisi || vximz:
		d = fpu.MakeNaN32()
	default:
		d = float32(math.FMA(a, c, addend))
		if flags&FMANegate != 0 {
			d = -d
		}
	}
	return d, true
}

func fmaGeneric(state *cpu.ThreadState, instr cpu.Instruction, flags FMAFlags, laneC0, laneC1 Lane) {
	old := state.FPSCR.Snapshot()

	d0, wrote0 := fmaSingle(state, instr, flags, Lane0, laneC0)
	d1, wrote1 := fmaSingle(state, instr, flags, Lane1, laneC1)

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

// PSMadd computes frD = frA*frC + frB across both lanes.
func PSMadd(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, 0, Lane0, Lane1)
}

// PSMadds0 computes frD = frA*frC + frB, broadcasting frC's slot 0.
func PSMadds0(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, 0, Lane0, Lane0)
}

// PSMadds1 computes frD = frA*frC + frB, broadcasting frC's slot 1.
func PSMadds1(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, 0, Lane1, Lane1)
}

// PSMsub computes frD = frA*frC - frB across both lanes.
func PSMsub(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, FMASubtract, Lane0, Lane1)
}

// PSNmadd computes frD = -(frA*frC + frB) across both lanes.
func PSNmadd(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, FMANegate, Lane0, Lane1)
}

// PSNmsub computes frD = -(frA*frC - frB) across both lanes.
func PSNmsub(state *cpu.ThreadState, instr cpu.Instruction) {
	fmaGeneric(state, instr, FMANegate|FMASubtract, Lane0, Lane1)
}
