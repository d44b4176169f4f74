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

// Package pairedsingle implements the paired-single floating-point
// instruction set: arithmetic, fused multiply-add, the sum-high/sum-low
// cross-lane reductions, reciprocal estimates, register move/merge/select
// operations, and the mnemonic registry that binds all of them together.
//
// The move, merge and select operations are pure register shuffles that
// never touch FPSCR or FPRF. Every other operation here (arithmetic,
// fused multiply-add, sums and reciprocal estimates) follows the same
// shape: classify the operand
// exceptions a lane's computation would raise, latch the sticky FPSCR
// bits those exceptions correspond to, decide whether an enabled
// exception suppresses this lane's writeback, compute the result only
// when nothing suppressed it, and finally run the FPSCR side-effect
// discipline once per instruction rather than once per lane. Every lane
// of a paired instruction observes the other lane's suppression: if
// either lane's write is blocked by an enabled exception, neither lane's
// register is touched.
package pairedsingle
