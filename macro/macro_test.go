// This file is part of Gopher1.
//
// Gopher1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1.  If not, see <https://www.gnu.org/licenses/>.

package macro_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/hardware"
	"github.com/jetsetilly/gopher1/macro"
	"github.com/jetsetilly/gopher1/test"
)

func newMacro(t *testing.T) (*hardware.Apple1, *macro.Macro, *test.CompareWriter) {
	t.Helper()
	tw := &test.CompareWriter{}
	a1 := hardware.NewApple1(nil, nil, nil)
	return a1, macro.NewMacro(a1, tw), tw
}

func TestExamine(t *testing.T) {
	_, mcr, tw := newMacro(t)

	err := mcr.RunString(context.Background(), `
		type_text("ff00\r")
		if not run_until("FF00: D8", 100000) then
			error("monitor did not respond")
		end
	`)
	test.ExpectSuccess(t, err)
	out := mcr.DisplayOutput()
	test.ExpectSuccess(t, strings.HasPrefix(out, "\\\nFF00\n"), out)
	test.ExpectSuccess(t, strings.Contains(out, "FF00: D8"), out)

	// echo is the same as the captured output
	test.ExpectSuccess(t, tw.Compare(mcr.DisplayOutput()), tw.String())
}

func TestMemoryAndRegisters(t *testing.T) {
	a1, mcr, _ := newMacro(t)

	err := mcr.RunString(context.Background(), `
		poke(0x0300, 0xa9)
		poke(0x0301, 0x42)
		reset(0x0300)
		assert(reg("pc") == 0x0300)
		assert(step() == 2)
		assert(reg("A") == 0x42)
		assert(peek(0x0301) == 0x42)
		assert(cycles() == 2)
	`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a1.CPU.A.Value(), 0x42)
}

func TestRun(t *testing.T) {
	_, mcr, _ := newMacro(t)

	err := mcr.RunString(context.Background(), `
		local n = run(1000)
		assert(n >= 1000 and n < 1010)
		clear_output()
		assert(output() == "")
	`)
	test.ExpectSuccess(t, err)
}

func TestErrors(t *testing.T) {
	_, mcr, _ := newMacro(t)

	err := mcr.RunString(context.Background(), `error("stop")`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, macro.ScriptError))

	err = mcr.RunString(context.Background(), `peek(0x10000)`)
	test.ExpectFailure(t, err)

	err = mcr.RunString(context.Background(), `reg("Q")`)
	test.ExpectFailure(t, err)

	err = mcr.RunString(context.Background(), `poke(0, 256)`)
	test.ExpectFailure(t, err)
}

func TestNegativeCycles(t *testing.T) {
	a1, mcr, _ := newMacro(t)
	cycles := a1.Cycles()

	err := mcr.RunString(context.Background(), `run(-1)`)
	test.ExpectSuccess(t, curated.Is(err, macro.ScriptError))

	err = mcr.RunString(context.Background(), `run_until("FF00", -1)`)
	test.ExpectSuccess(t, curated.Is(err, macro.ScriptError))

	test.ExpectEquality(t, a1.Cycles(), cycles)
}

func TestCancel(t *testing.T) {
	_, mcr, _ := newMacro(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mcr.RunString(ctx, `run(1000000)`)
	test.ExpectFailure(t, err)
}

func TestLoadFile(t *testing.T) {
	a1, mcr, _ := newMacro(t)

	dir := t.TempDir()
	prog := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(prog, []byte{0xa9, 0x01, 0x00}, 0600))

	script := filepath.Join(dir, "script.lua")
	test.DemandSuccess(t, os.WriteFile(script, []byte(`
		local n = load(0x0280, "`+prog+`")
		assert(n == 3)
	`), 0600))

	test.ExpectSuccess(t, mcr.Run(context.Background(), script))
	test.ExpectEquality(t, a1.Mem.Peek(0x0280), 0xa9)
	test.ExpectEquality(t, a1.Mem.Peek(0x0282), 0x00)

	test.ExpectFailure(t, mcr.Run(context.Background(), filepath.Join(dir, "missing.lua")))
}
