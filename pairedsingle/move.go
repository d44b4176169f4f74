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

// MoveMode selects the sign transform ps_mr/ps_neg/ps_abs/ps_nabs apply.
type MoveMode int

const (
	MoveDirect MoveMode = iota
	MoveNegate
	MoveAbsolute
	MoveNegAbsolute
)

const signBit32 = uint32(0x80000000)

func applyMoveMode(mode MoveMode, bits uint32) uint32 {
	switch mode {
	case MoveNegate:
		return bits ^ signBit32
	case MoveAbsolute:
		return bits &^ signBit32
	case MoveNegAbsolute:
		return bits | signBit32
	default:
		return bits
	}
}

// moveGeneric copies frB to frD under a per-lane sign transform, touching
// neither FPSCR nor FPRF: these are pure register moves, not arithmetic.
// Slot 0 goes through a real double-to-single-to-double round trip
// unless it's a signalling NaN, in which case TruncateDoubleBits/
// ExtendFloatNaNBits carry the raw payload across untouched so the
// signalling bit survives instead of being quieted by a native
// conversion.
func moveGeneric(state *cpu.ThreadState, instr cpu.Instruction, mode MoveMode) {
	src := &state.FPR[instr.FrB]
	ps0Signalling := fpu.IsSignallingNaN(src.Paired0())

	var d0Bits uint32
	if ps0Signalling {
		d0Bits = applyMoveMode(mode, fpu.TruncateDoubleBits(src.Idw()))
	} else {
		d0Bits = applyMoveMode(mode, math.Float32bits(float32(src.Paired0())))
	}
	d1Bits := applyMoveMode(mode, src.IwPaired1())

	dst := &state.FPR[instr.FrD]
	if ps0Signalling {
		dst.SetIdw(fpu.ExtendFloatNaNBits(d0Bits))
	} else {
		dst.SetPaired0(float64(math.Float32frombits(d0Bits)))
	}
	dst.SetIwPaired1(d1Bits)

	if instr.RC {
		cpu.UpdateFloatConditionRegister(state)
	}
}

// PSMr copies frB to frD unchanged.
func PSMr(state *cpu.ThreadState, instr cpu.Instruction) {
	moveGeneric(state, instr, MoveDirect)
}

// PSNeg copies frB to frD with both lanes' sign bits flipped.
func PSNeg(state *cpu.ThreadState, instr cpu.Instruction) {
	moveGeneric(state, instr, MoveNegate)
}

// PSAbs copies frB to frD with both lanes' sign bits cleared.
func PSAbs(state *cpu.ThreadState, instr cpu.Instruction) {
	moveGeneric(state, instr, MoveAbsolute)
}

// PSNabs copies frB to frD with both lanes' sign bits set.
func PSNabs(state *cpu.ThreadState, instr cpu.Instruction) {
	moveGeneric(state, instr, MoveNegAbsolute)
}
