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

package cpu_test

import (
	"testing"

	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/test"
)

func TestFPRPaired0RoundTrip(t *testing.T) {
	var r cpu.FPR
	r.SetPaired0(3.5)
	test.Equate(t, r.Paired0(), 3.5)
}

func TestFPRPaired1WidensPS1(t *testing.T) {
	var r cpu.FPR
	r.SetPS1(float32(2.25))
	test.Equate(t, r.Paired1(), 2.25)
	test.Equate(t, r.PS1(), float32(2.25))
}

func TestFPRRawViewsAgreeWithTypedViews(t *testing.T) {
	var r cpu.FPR
	r.SetPaired0(1.0)
	if r.Idw() != 0x3ff0000000000000 {
		t.Errorf("idw did not match the IEEE bits of 1.0: got %#x", r.Idw())
	}

	r.SetPS1(1.0)
	if r.IwPaired1() != 0x3f800000 {
		t.Errorf("iw_paired1 did not match the IEEE bits of 1.0f: got %#x", r.IwPaired1())
	}
}
