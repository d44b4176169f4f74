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

package errors_test

import (
	"testing"

	"github.com/jsdw-emu/gekko-ps/errors"
)

func TestError(t *testing.T) {
	e := errors.New(errors.UnknownMnemonic, "ps_frobnicate")
	want := `unknown paired-single mnemonic "ps_frobnicate"`
	if e.Error() != want {
		t.Errorf("unexpected error message: got %q, want %q", e.Error(), want)
	}

	e = errors.New(errors.InvalidLaneSelector, 2)
	want = "lane selector out of range (2), must be 0 or 1"
	if e.Error() != want {
		t.Errorf("unexpected error message: got %q, want %q", e.Error(), want)
	}
}
