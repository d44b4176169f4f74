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
	"github.com/jsdw-emu/gekko-ps/fpu"
	"github.com/jsdw-emu/gekko-ps/pairedsingle"
	"github.com/jsdw-emu/gekko-ps/test"
)

func TestPSNegFlipsBothSigns(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(1.5)
	state.FPR[1].SetPS1(-2.5)

	pairedsingle.PSNeg(state, cpu.Instruction{FrD: 2, FrB: 1})

	test.Equate(t, state.FPR[2].Paired0(), -1.5)
	test.Equate(t, state.FPR[2].PS1(), float32(2.5))
}

func TestPSAbsClearsBothSigns(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(-1.5)
	state.FPR[1].SetPS1(-2.5)

	pairedsingle.PSAbs(state, cpu.Instruction{FrD: 2, FrB: 1})

	test.Equate(t, state.FPR[2].Paired0(), 1.5)
	test.Equate(t, state.FPR[2].PS1(), float32(2.5))
}

func TestPSMrSignallingNaNSurvivesAsSignalling(t *testing.T) {
	state := cpu.NewThreadState()
	sig := math.Float64frombits(0x7ff4000000000000 | 0xdead)
	state.FPR[1].SetPaired0(sig)
	state.FPR[1].SetPS1(1.0)

	pairedsingle.PSMr(state, cpu.Instruction{FrD: 2, FrB: 1})

	got := state.FPR[2].Paired0()
	if !fpu.IsSignallingNaN(got) {
		t.Fatalf("expected slot 0 to remain a signalling NaN, got %#x", math.Float64bits(got))
	}
	want := fpu.ExtendFloatNaNBits(fpu.TruncateDoubleBits(math.Float64bits(sig)))
	if math.Float64bits(got) != want {
		t.Errorf("payload did not match truncate_double_bits: got %#x, want %#x", math.Float64bits(got), want)
	}
}

func TestPSNegOnSignallingNaNFlipsOnlySign(t *testing.T) {
	state := cpu.NewThreadState()
	sig := math.Float64frombits(0x7ff4000000000000 | 0xdead)
	state.FPR[1].SetPaired0(sig)
	state.FPR[1].SetPS1(1.0)

	pairedsingle.PSNeg(state, cpu.Instruction{FrD: 2, FrB: 1})

	got := state.FPR[2].Paired0()
	if !fpu.IsSignallingNaN(got) {
		t.Fatalf("expected negated slot 0 to remain a signalling NaN")
	}
	if !math.Signbit(got) {
		t.Errorf("expected the sign bit to flip")
	}
}

func TestPSMrDoesNotTouchFPSCR(t *testing.T) {
	state := cpu.NewThreadState()
	state.FPR[1].SetPaired0(math.NaN())
	before := state.FPSCR.Value()

	pairedsingle.PSMr(state, cpu.Instruction{FrD: 2, FrB: 1})

	if state.FPSCR.Value() != before {
		t.Errorf("expected move ops to leave FPSCR untouched")
	}
}
