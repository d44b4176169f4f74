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

// ReciprocalKind selects between the reciprocal and reciprocal
// square-root estimate kernels. Neither models the hardware's limited
// estimate precision; both narrow the operand to single precision and
// compute the host's single-precision divide (and square root), since
// nothing in this core's exception and writeback behaviour depends on
// estimate error.
type ReciprocalKind int

const (
	Reciprocal ReciprocalKind = iota
	ReciprocalSqrt
)

func reciprocalSingle(state *cpu.ThreadState, instr cpu.Instruction, kind ReciprocalKind, lane Lane) (result float32, wrote bool) {
	b := loadLane(state, instr.FrB, lane)

	vxsnan := fpu.IsSignallingNaN(b)
	zx := fpu.IsZero(b)
	var vxsqrt bool
	if kind == ReciprocalSqrt {
		vxsqrt = !fpu.IsNaN(b) && math.Signbit(b) && !fpu.IsZero(b)
	}

	scr := &state.FPSCR
	scr.SetVXSNAN(scr.VXSNAN() || vxsnan)
	scr.SetVXSQRT(scr.VXSQRT() || vxsqrt)
	scr.SetZX(scr.ZX() || zx)

	vxEnabled := (vxsnan || vxsqrt) && scr.VE()
	zxEnabled := zx && scr.ZE()
	if vxEnabled || zxEnabled {
		return 0, false
	}

	var d float32
	switch {
	case fpu.IsNaN(b):
		d = fpu.MakeQuiet(fpu.TruncateDouble(b))
	case vxsqrt:
		d = fpu.MakeNaN32()
	default:
		switch kind {
		case Reciprocal:
			d = 1 / float32(b)
		case ReciprocalSqrt:
			d = 1 / float32(math.Sqrt(float64(float32(b))))
		}
	}
	return d, true
}

func reciprocalGeneric(state *cpu.ThreadState, instr cpu.Instruction, kind ReciprocalKind) {
	old := state.FPSCR.Snapshot()

	d0, wrote0 := reciprocalSingle(state, instr, kind, Lane0)
	d1, wrote1 := reciprocalSingle(state, instr, kind, Lane1)

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

// PSRes estimates frD = 1/frB across both lanes.
func PSRes(state *cpu.ThreadState, instr cpu.Instruction) {
	reciprocalGeneric(state, instr, Reciprocal)
}

// PSRsqrte estimates frD = 1/sqrt(frB) across both lanes.
func PSRsqrte(state *cpu.ThreadState, instr cpu.Instruction) {
	reciprocalGeneric(state, instr, ReciprocalSqrt)
}
