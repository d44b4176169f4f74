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

// mergeGeneric builds frD out of one lane of frA and one lane of frB,
// picking the source lanes with the same two-letter scheme the four
// ps_mergeXY mnemonics encode: X is frA's source lane for frD's slot 0,
// Y is frB's source lane for frD's slot 1.
//
// The two destination lanes narrow their source differently, which is
// the merge instructions' documented asymmetry: slot 0 goes through a
// real double-to-single-to-double round trip (rounded), falling back to
// a bit-level TruncateDouble only for a signalling NaN so its signalling
// bit survives; slot 1 always goes through TruncateDoubleToSingle, which
// narrows toward zero rather than to nearest and carries a NaN payload
// (signalling or quiet) across bit-exactly, whichever lane of frB it
// comes from. A value from frB's slot 1 is already single-precision, so
// for it this is an exact copy.
func mergeGeneric(state *cpu.ThreadState, instr cpu.Instruction, laneA, laneB Lane) {
	a := loadLane(state, instr.FrA, laneA)
	b := loadLane(state, instr.FrB, laneB)

	dst := &state.FPR[instr.FrD]

	if fpu.IsSignallingNaN(a) {
		dst.SetIdw(fpu.ExtendFloatNaNBits(fpu.TruncateDoubleBits(math.Float64bits(a))))
	} else {
		dst.SetPaired0(float64(math.Float32frombits(math.Float32bits(float32(a)))))
	}

	dst.SetPS1(fpu.TruncateDoubleToSingle(b))

	if instr.RC {
		cpu.UpdateFloatConditionRegister(state)
	}
}

// PSMerge00 sets frD = {frA.slot0, frB.slot0}.
func PSMerge00(state *cpu.ThreadState, instr cpu.Instruction) {
	mergeGeneric(state, instr, Lane0, Lane0)
}

// PSMerge01 sets frD = {frA.slot0, frB.slot1}.
func PSMerge01(state *cpu.ThreadState, instr cpu.Instruction) {
	mergeGeneric(state, instr, Lane0, Lane1)
}

// PSMerge10 sets frD = {frA.slot1, frB.slot0}.
func PSMerge10(state *cpu.ThreadState, instr cpu.Instruction) {
	mergeGeneric(state, instr, Lane1, Lane0)
}

// PSMerge11 sets frD = {frA.slot1, frB.slot1}.
func PSMerge11(state *cpu.ThreadState, instr cpu.Instruction) {
	mergeGeneric(state, instr, Lane1, Lane1)
}
