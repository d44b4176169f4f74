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

import (
	"math"

	"github.com/jsdw-emu/gekko-ps/fpu"
)

// FPR is one of the 32 floating-point registers. It stores 96 bits: a full
// binary64 in slot 0 and a binary32 in slot 1, kept as raw bit patterns so
// every bit is addressable exactly as the hardware sees it.
//
// Paired1 always reads back a widened view of the slot-1 bits; there is no
// way to store a "float64 in slot 1" other than by narrowing it down to
// slot 1's 32 bits first. Callers that need slot-1 written with specific
// raw bits, rather than a rounded value, use SetIwPaired1 directly.
type FPR struct {
	idw       uint64
	iwPaired1 uint32
}

// Paired0 returns slot 0 as a binary64.
func (r *FPR) Paired0() float64 {
	return math.Float64frombits(r.idw)
}

// SetPaired0 stores v as slot 0's raw bits.
func (r *FPR) SetPaired0(v float64) {
	r.idw = math.Float64bits(v)
}

// PS1 returns slot 1 as a binary32, its native storage width.
func (r *FPR) PS1() float32 {
	return math.Float32frombits(r.iwPaired1)
}

// SetPS1 stores the binary32 v as slot 1's raw bits.
func (r *FPR) SetPS1(v float32) {
	r.iwPaired1 = math.Float32bits(v)
}

// Paired1 returns slot 1 widened to a binary64, the view every scalar
// kernel operand comes from.
func (r *FPR) Paired1() float64 {
	return fpu.ExtendFloat(r.PS1())
}

// SetPaired1 narrows v to a binary32 and stores it as slot 1, mirroring
// what the hardware does when a kernel commits a paired-single result.
func (r *FPR) SetPaired1(v float64) {
	r.SetPS1(float32(v))
}

// Idw returns slot 0's raw 64 bits.
func (r *FPR) Idw() uint64 {
	return r.idw
}

// SetIdw overwrites slot 0's raw 64 bits directly, bypassing any
// float64 rounding. The signalling-NaN paths of the move/merge kernels
// rely on writing an exact bit pattern this way.
func (r *FPR) SetIdw(v uint64) {
	r.idw = v
}

// IwPaired1 returns slot 1's raw 32 bits.
func (r *FPR) IwPaired1() uint32 {
	return r.iwPaired1
}

// SetIwPaired1 overwrites slot 1's raw 32 bits directly.
func (r *FPR) SetIwPaired1(v uint32) {
	r.iwPaired1 = v
}
