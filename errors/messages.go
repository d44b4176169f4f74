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

var messages = map[Errno]string{
	UnknownMnemonic:        "unknown paired-single mnemonic %q",
	DuplicateMnemonic:      "mnemonic %q is already bound in the registry",
	InvalidLaneSelector:    "lane selector out of range (%d), must be 0 or 1",
	InvalidRegisterIndex:   "floating-point register index out of range (%d)",
	RoundingModeNotNearest: "host rounding mode is not round-to-nearest-even",
}
