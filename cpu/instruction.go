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

// Instruction is the decoded operand set a paired-single kernel needs.
// Decoding the 32-bit instruction word into this shape is a concern of
// the CPU's fetch/decode stage, which lives outside this core.
type Instruction struct {
	FrD int
	FrA int
	FrB int
	FrC int

	// RC requests that the kernel update CR1 from the FPSCR summary
	// bits after it runs, the "record form" of every paired-single op.
	RC bool
}
