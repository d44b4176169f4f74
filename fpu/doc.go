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

// Package fpu provides the host-independent building blocks shared by every
// paired-single kernel: NaN/zero/infinity classification on IEEE-754
// binary64 values, bit-exact narrowing and widening between binary64 and
// binary32 (including NaN payload truncation and extension), and the
// FPSCR status-and-control register with its side-effect discipline.
//
// Nothing in this package knows about instruction encodings, register
// files, or mnemonics; those live in the cpu and pairedsingle packages.
// Everything here operates on plain float64/float32/uint64/uint32 values
// so it can be exercised in isolation with simple table-driven tests.
package fpu
