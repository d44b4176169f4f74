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

package pairedsingle

import (
	"github.com/jsdw-emu/gekko-ps/cpu"
	"github.com/jsdw-emu/gekko-ps/errors"
	"github.com/jsdw-emu/gekko-ps/logger"
)

// Exec runs one paired-single instruction against a thread's register
// file.
type Exec func(state *cpu.ThreadState, instr cpu.Instruction)

// Op binds a mnemonic to the kernel that implements it.
type Op struct {
	Mnemonic string
	Exec     Exec
}

var registry = make(map[string]Op)

func register(mnemonic string, exec Exec) {
	if _, ok := registry[mnemonic]; ok {
		panic(errors.New(errors.DuplicateMnemonic, mnemonic))
	}
	registry[mnemonic] = Op{Mnemonic: mnemonic, Exec: exec}
	logger.Logf(logger.Allow, "pairedsingle", "registered %s", mnemonic)
}

// Lookup returns the Op bound to mnemonic, or an UnknownMnemonic error if
// nothing is registered under that name.
func Lookup(mnemonic string) (Op, error) {
	op, ok := registry[mnemonic]
	if !ok {
		return Op{}, errors.New(errors.UnknownMnemonic, mnemonic)
	}
	return op, nil
}

// Mnemonics returns every registered mnemonic, in no particular order.
func Mnemonics() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

func init() {
	register("ps_add", PSAdd)
	register("ps_sub", PSSub)
	register("ps_mul", PSMul)
	register("ps_div", PSDiv)
	register("ps_muls0", PSMuls0)
	register("ps_muls1", PSMuls1)

	register("ps_madd", PSMadd)
	register("ps_madds0", PSMadds0)
	register("ps_madds1", PSMadds1)
	register("ps_msub", PSMsub)
	register("ps_nmadd", PSNmadd)
	register("ps_nmsub", PSNmsub)

	register("ps_sum0", PSSum0)
	register("ps_sum1", PSSum1)

	register("ps_res", PSRes)
	register("ps_rsqrte", PSRsqrte)

	register("ps_mr", PSMr)
	register("ps_neg", PSNeg)
	register("ps_abs", PSAbs)
	register("ps_nabs", PSNabs)

	register("ps_merge00", PSMerge00)
	register("ps_merge01", PSMerge01)
	register("ps_merge10", PSMerge10)
	register("ps_merge11", PSMerge11)

	register("ps_sel", PSSel)
}
