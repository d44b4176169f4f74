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

// list of error numbers
const (
	// instruction registry
	UnknownMnemonic Errno = iota
	DuplicateMnemonic

	// instruction word / decode boundary
	InvalidLaneSelector
	InvalidRegisterIndex

	// host environment
	RoundingModeNotNearest
)
