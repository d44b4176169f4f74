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

// Package test contains helper functions to remove common boilerplate from
// the rest of the module's test files.
//
// Equate() compares a value against an expected value of a compatible type.
// Bit patterns matter more than usual in this module so it understands
// uint32, uint64, float32 and float64 in addition to the more ordinary types.
// Floating-point comparisons are bit-exact (via math.Float32bits /
// math.Float64bits) rather than by the == operator, so a test can assert on
// a specific NaN payload and not just "is a NaN".
//
// ExpectedFailure() and ExpectedSuccess() test a bool or error value against
// a simple pass/fail expectation.
package test
