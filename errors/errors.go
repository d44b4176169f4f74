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

package errors

import "fmt"

// Errno identifies a specific error condition.
type Errno int

// Values holds the formatting arguments for an Error.
type Values []interface{}

// Error is the error type returned by this module's non-arithmetic failure
// paths (registry lookups, instruction word validation performed by callers
// of this module). It is never used to represent an IEEE floating-point
// exception; those live on FPSCR, not in an error return.
type Error struct {
	Errno  Errno
	Values Values
}

// New creates an Error for the given Errno, with values to be interpolated
// into the associated message template.
func New(errno Errno, values ...interface{}) Error {
	return Error{Errno: errno, Values: values}
}

func (e Error) Error() string {
	return fmt.Sprintf(messages[e.Errno], e.Values...)
}
