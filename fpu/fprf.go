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

package fpu

import "math"

// FPRF field encodings, "Power ISA" table of floating-point result flags.
const (
	classQNaN       = 0x11
	classNegInf     = 0x09
	classNegNormal  = 0x08
	classNegDenorm  = 0x18
	classNegZero    = 0x12
	classPosZero    = 0x02
	classPosDenorm  = 0x14
	classPosNormal  = 0x04
	classPosInf     = 0x05
)

// ClassifyFPRF returns the 5-bit FPRF encoding for v.
func ClassifyFPRF(v float64) uint32 {
	if math.IsNaN(v) {
		return classQNaN
	}

	neg := math.Signbit(v)

	if math.IsInf(v, 0) {
		if neg {
			return classNegInf
		}
		return classPosInf
	}

	if v == 0 {
		if neg {
			return classNegZero
		}
		return classPosZero
	}

	if isSubnormal(v) {
		if neg {
			return classNegDenorm
		}
		return classPosDenorm
	}

	if neg {
		return classNegNormal
	}
	return classPosNormal
}

func isSubnormal(v float64) bool {
	bits := math.Float64bits(v)
	exponent := (bits >> 52) & 0x7ff
	mantissa := bits & 0xfffffffffffff
	return exponent == 0 && mantissa != 0
}

// UpdateFPRF records the FPRF class of a kernel's lane-0 result. Callers
// skip it when lane 0's own writeback is suppressed; when lane 0 produced
// a result but the other lane's enabled exception blocks the paired
// commit, FPRF is still updated from lane 0's uncommitted result.
func UpdateFPRF(f *FPSCR, result float64) {
	f.SetFPRF(ClassifyFPRF(result))
}
