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

// Package cpu holds the register-file state a paired-single kernel reads
// and writes: the 32 floating-point registers, each viewable as a
// double-precision slot-0/slot-1 pair or as raw bit patterns, the FPSCR
// (a field of the fpu package's FPSCR type), and the condition register nibble
// floating-point instructions update on the record form.
//
// This package does not decode or dispatch instructions; it only models
// the state those instructions operate on. Fetch, decode and the
// top-level execution loop belong to a full CPU core and are out of
// scope here.
package cpu
