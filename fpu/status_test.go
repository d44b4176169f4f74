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

package fpu_test

import (
	"testing"

	"github.com/jsdw-emu/gekko-ps/fpu"
)

func TestFPSCRAccessorsRoundTrip(t *testing.T) {
	var f fpu.FPSCR
	f.SetVXSNAN(true)
	if !f.VXSNAN() {
		t.Fatalf("expected VXSNAN to read back set")
	}
	f.SetVXSNAN(false)
	if f.VXSNAN() {
		t.Fatalf("expected VXSNAN to read back clear")
	}
}

func TestUpdateSummaryBitsSetsVXAndFX(t *testing.T) {
	var f fpu.FPSCR
	old := f.Snapshot()
	f.SetVXIMZ(true)
	f.UpdateSummaryBits(old)

	if !f.VX() {
		t.Errorf("expected VX to be set when an invalid-operation bit is sticky")
	}
	if !f.FX() {
		t.Errorf("expected FX to latch when a new sticky bit appears")
	}
}

func TestUpdateSummaryBitsFEXRequiresEnable(t *testing.T) {
	var f fpu.FPSCR
	old := f.Snapshot()
	f.SetVXIMZ(true)
	f.UpdateSummaryBits(old)
	if f.FEX() {
		t.Errorf("did not expect FEX without VE enabled")
	}

	f.SetValue(0)
	f.SetVE(true)
	old = f.Snapshot()
	f.SetVXIMZ(true)
	f.UpdateSummaryBits(old)
	if !f.FEX() {
		t.Errorf("expected FEX once VE is enabled and VX is sticky")
	}
}

func TestUpdateSummaryBitsFXDoesNotReLatchOnUnchangedSticky(t *testing.T) {
	var f fpu.FPSCR
	f.SetVXIMZ(true)
	f.UpdateSummaryBits(f.Snapshot())

	// VXIMZ was already sticky before this snapshot, so a second pass
	// over the same state must not report it as newly set.
	old := f.Snapshot()
	before := f.Value()
	f.UpdateSummaryBits(old)
	if f.Value() != before {
		t.Errorf("expected UpdateSummaryBits to be idempotent when sticky state is unchanged")
	}
}
