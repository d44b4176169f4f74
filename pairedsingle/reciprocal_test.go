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

func TestPSResOfZeroSetsZXAndReturnsSignedInfinity(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(0.0)
	state.FPR[1].SetPS1(float32(math.Copysign(0, -1)))

	pairedsingle.PSRes(state, cpu.Instruction{FrD: 2, FrB: 1})

	if !state.FPSCR.ZX() {
		t.Errorf("expected ZX to be set")
	}
	if !math.IsInf(state.FPR[2].Paired0(), 1) {
		t.Errorf("expected +Inf, got %v", state.FPR[2].Paired0())
	}
	if !math.IsInf(float64(state.FPR[2].PS1()), -1) {
		t.Errorf("expected -Inf, got %v", state.FPR[2].PS1())
	}
}

func TestPSRsqrteOfPositiveValue(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(4.0)
	state.FPR[1].SetPS1(4.0)

	pairedsingle.PSRsqrte(state, cpu.Instruction{FrD: 2, FrB: 1})

	test.Equate(t, state.FPR[2].Paired0(), 0.5)
}

func TestPSRsqrteOfNegativeValueIsInvalid(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(-4.0)
	state.FPR[1].SetPS1(-4.0)

	pairedsingle.PSRsqrte(state, cpu.Instruction{FrD: 2, FrB: 1})

	if !state.FPSCR.VXSQRT() {
		t.Errorf("expected VXSQRT to be set for a negative radicand")
	}
	if !math.IsNaN(state.FPR[2].Paired0()) {
		t.Errorf("expected a NaN result")
	}
}
