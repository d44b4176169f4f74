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

package cpu

// ConditionRegister is the 32-bit condition register, organised as eight
// 4-bit fields CR0-CR7. Only CR1, the floating-point exception field, is
// touched by anything in this core.
type ConditionRegister uint32

// CR1 returns the floating-point exception nibble: FX, FEX, VX, OX.
func (c ConditionRegister) CR1() uint32 {
	return (uint32(c) >> 24) & 0xf
}

func (c *ConditionRegister) setCR1(nibble uint32) {
	*c &^= 0x0f000000
	*c |= ConditionRegister((nibble & 0xf) << 24)
}

// UpdateFloatConditionRegister copies FX, FEX and VX out of the FPSCR
// into CR1. OX (bit 3 of the nibble) mirrors the FPSCR overflow
// exception bit, which this core does not model, and is always reported
// clear.
func UpdateFloatConditionRegister(state *ThreadState) {
	var nibble uint32
	if state.FPSCR.FX() {
		nibble |= 0x8
	}
	if state.FPSCR.FEX() {
		nibble |= 0x4
	}
	if state.FPSCR.VX() {
		nibble |= 0x2
	}
	state.CR.setCR1(nibble)
}
