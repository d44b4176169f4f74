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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package errors defines the error type used to report the failures that
// arise outside the paired-single execution core proper: an unbound opcode
// mnemonic, an out-of-range lane selector reaching the core from a
// misbehaving decoder, and similar programming errors.
//
// It deliberately has nothing to say about the IEEE exceptions raised during
// arithmetic (vxsnan, zx and so on). Those are in-band architectural state
// recorded on FPSCR by the fpu and pairedsingle packages, not Go errors, and
// they never abort anything - see the pairedsingle package documentation.
//
// Error is a lightweight Errno plus formatting Values, along the lines of:
//
//	if _, ok := registry[mnemonic]; !ok {
//		return errors.New(errors.UnknownMnemonic, mnemonic)
//	}
//
// The Errno determines which entry of the messages table is used to render
// the final string, so callers never need to hand-format their own error
// text.
package errors
