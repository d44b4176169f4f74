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

import "github.com/jsdw-emu/gekko-ps/cpu"

func loadLaneSingle(state *cpu.ThreadState, reg int, lane Lane) float32 {
	if lane == Lane0 {
		return float32(state.FPR[reg].Paired0())
	}
	return state.FPR[reg].PS1()
}

// PSSel picks, per lane, frC if frA's lane is >= +0.0 and frB otherwise.
// The comparison and the selected value are single-precision: lane 0 of
// each operand is narrowed to float32 before anything else happens, so a
// slot-0 value that underflows single precision (e.g. -1e-300) compares
// as -0.0f, not as its full double value. Go's ordinary float32
// comparison already treats a NaN comparand as neither >= nor < anything,
// so frA lanes holding NaN fall through to frB without any special-
// casing. This is a pure selection: it touches neither FPSCR nor FPRF.
func PSSel(state *cpu.ThreadState, instr cpu.Instruction) {
	a0 := loadLaneSingle(state, instr.FrA, Lane0)
	a1 := loadLaneSingle(state, instr.FrA, Lane1)

	dst := &state.FPR[instr.FrD]

	var d0 float32
	if a0 >= 0 {
		d0 = loadLaneSingle(state, instr.FrC, Lane0)
	} else {
		d0 = loadLaneSingle(state, instr.FrB, Lane0)
	}
	dst.SetPaired0(float64(d0))

	var d1 float32
	if a1 >= 0 {
		d1 = loadLaneSingle(state, instr.FrC, Lane1)
	} else {
		d1 = loadLaneSingle(state, instr.FrB, Lane1)
	}
	dst.SetPS1(d1)

	if instr.RC {
		cpu.UpdateFloatConditionRegister(state)
	}
}
