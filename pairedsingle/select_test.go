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

package pairedsingle_test

import (
	"math"
	"testing"

	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/pairedsingle"
	"github.com/jsdw-emu/gekko-ps/test"
)

func TestPSSelPicksFrCWhenNonNegative(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(0.0)  // frA.slot0 >= 0
	state.FPR[1].SetPS1(-1.0)     // frA.slot1 < 0
	state.FPR[2].SetPaired0(11.0) // frB
	state.FPR[2].SetPS1(22.0)
	state.FPR[3].SetPaired0(33.0) // frC
	state.FPR[3].SetPS1(44.0)

	pairedsingle.PSSel(state, cpu.Instruction{FrD: 4, FrA: 1, FrB: 2, FrC: 3})

	test.Equate(t, state.FPR[4].Paired0(), 33.0)
	test.Equate(t, state.FPR[4].PS1(), float32(22.0))
}

func TestPSSelNaNComparandFallsToFrB(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(math.NaN())
	state.FPR[2].SetPaired0(11.0) // frB
	state.FPR[3].SetPaired0(33.0) // frC

	pairedsingle.PSSel(state, cpu.Instruction{FrD: 4, FrA: 1, FrB: 2, FrC: 3})

	test.Equate(t, state.FPR[4].Paired0(), 11.0)
}
