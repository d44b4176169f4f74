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
	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/fpu"
)

// sumGeneric computes frA.slot0 + frB.slot1 with the full Add kernel,
// then places that sum in one lane of frD and a reshuffled copy of frC in
// the other. ps_sum0 leaves frC's slot 1 bits untouched in frD's slot 1;
// ps_sum1 has to narrow frC's slot 0 down to single precision for frD's
// slot 0, going through a real rounding conversion rather than the
// bit-chopping TruncateDouble uses for NaNs.
func sumGeneric(state *cpu.ThreadState, instr cpu.Instruction, sumSlot Lane) {
	old := state.FPSCR.Snapshot()

	d, wrote := single(state, instr, Add, Lane0, Lane1)
	if wrote {
		fpu.UpdateFPRF(&state.FPSCR, fpu.ExtendFloat(d))

		dst := &state.FPR[instr.FrD]
		switch sumSlot {
		case Lane0:
			dst.SetPaired0(fpu.ExtendFloat(d))
			dst.SetIwPaired1(state.FPR[instr.FrC].IwPaired1())
		case Lane1:
			c0 := state.FPR[instr.FrC].Paired0()
			var ps0 float32
			if fpu.IsNaN(c0) {
				ps0 = fpu.TruncateDouble(c0)
			} else {
				// A real double-to-single narrowing runs here, just
				// like the unpaired scalar conversion would. The host
				// FP environment's own sticky inexact/overflow flags
				// aren't observable from Go, so unlike the C++ core
				// this design is ported from there is nothing to save
				// and restore around it.
				ps0 = float32(c0)
			}
			dst.SetPaired0(fpu.ExtendFloat(ps0))
			dst.SetPS1(d)
		}
	}

	state.FPSCR.UpdateSummaryBits(old)
	if instr.RC {
		cpu.UpdateFloatConditionRegister(state)
	}
}

// PSSum0 computes frD.slot0 = frA.slot0 + frB.slot1, frD.slot1 = frC.slot1.
func PSSum0(state *cpu.ThreadState, instr cpu.Instruction) {
	sumGeneric(state, instr, Lane0)
}

// PSSum1 computes frD.slot1 = frA.slot0 + frB.slot1, frD.slot0 = frC.slot0.
func PSSum1(state *cpu.ThreadState, instr cpu.Instruction) {
	sumGeneric(state, instr, Lane1)
}
