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

// Package logger implements a small process-wide ring-buffer log, used by
// the pairedsingle registry to trace mnemonic registration and by the
// psdemo driver to trace each executed instruction, without forcing every
// caller to thread a *log.Logger through the interpreter core. The
// kernels themselves do not log.
//
// Repeated identical entries are collapsed into a single entry with a
// repeat count, which keeps a tight loop from flooding the log when the
// same entry is logged every iteration.
package logger
