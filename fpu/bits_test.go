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
	"math"
	"testing"

	"github.com/jsdw-emu/gekko-ps/fpu"
)

func TestIsSignallingNaN(t *testing.T) {
	sig := math.Float64frombits(0x7ff4000000000000)
	quiet := math.Float64frombits(0x7ff8000000000000)

	if !fpu.IsSignallingNaN(sig) {
		t.Errorf("expected %x to be signalling", math.Float64bits(sig))
	}
	if fpu.IsSignallingNaN(quiet) {
		t.Errorf("expected %x to be quiet", math.Float64bits(quiet))
	}
	if fpu.IsSignallingNaN(1.0) {
		t.Errorf("expected ordinary value to not be signalling")
	}
}

func TestIsZeroBothSigns(t *testing.T) {
	if !fpu.IsZero(0.0) || !fpu.IsZero(math.Copysign(0, -1)) {
		t.Errorf("expected both zeros to be recognised")
	}
	if fpu.IsZero(1e-300) {
		t.Errorf("did not expect a tiny value to be treated as zero")
	}
}

func TestTruncateExtendRoundTrip(t *testing.T) {
	// a signalling single NaN with a distinctive payload
	f := math.Float32frombits(0x7fa5a5a5)
	d := fpu.ExtendFloat(f)
	if !fpu.IsSignallingNaN(d) {
		t.Fatalf("expected widened NaN to remain signalling")
	}

	back := fpu.TruncateDouble(d)
	if math.Float32bits(back) != math.Float32bits(f) {
		t.Errorf("round trip lost payload: got %#x, want %#x", math.Float32bits(back), math.Float32bits(f))
	}
}

func TestMakeQuietPreservesPayload(t *testing.T) {
	sig := math.Float32frombits(0x7fa00001)
	quiet := fpu.MakeQuiet(sig)
	if math.Float32bits(quiet) != 0x7fe00001 {
		t.Errorf("unexpected bits after quieting: %#x", math.Float32bits(quiet))
	}
}

func TestExtendFloatOrdinaryValueIsExact(t *testing.T) {
	f := float32(3.5)
	if fpu.ExtendFloat(f) != 3.5 {
		t.Errorf("expected exact widening of an ordinary value")
	}
}
