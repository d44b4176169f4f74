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

import "github.com/jsdw-emu/gekko-ps/fpu"

// NumFPR is the number of addressable floating-point registers.
const NumFPR = 32

// ThreadState is the register file a single hardware thread's
// paired-single kernels read and write. gekko-ps runs one ThreadState per
// emulated CPU thread; there is no shared mutable state between them.
type ThreadState struct {
	FPR   [NumFPR]FPR
	FPSCR fpu.FPSCR
	CR    ConditionRegister
}

// NewThreadState returns a ThreadState with every register zeroed, the
// same reset state a hardware thread begins execution with.
func NewThreadState() *ThreadState {
	return &ThreadState{}
}
