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

package macro

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher1/cassette"
	"github.com/jetsetilly/gopher1/curated"
	"github.com/jetsetilly/gopher1/display"
	"github.com/jetsetilly/gopher1/govern"
	"github.com/jetsetilly/gopher1/hardware"
	"github.com/jetsetilly/gopher1/logger"
	"github.com/jetsetilly/gopher1/userinput"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "macro: %v"
)

// Macro is a type that allows control of an emulation from a Lua script.
type Macro struct {
	a1 *hardware.Apple1

	queue userinput.Queue

	// display output is captured and echoed
	crit    sync.Mutex
	output  strings.Builder
	printer *display.Printer
}

// NewMacro is the preferred method of initialisation for the Macro type. The
// macro becomes the display of the Apple1. The echo writer can be nil.
func NewMacro(a1 *hardware.Apple1, echo io.Writer) *Macro {
	mcr := &Macro{
		a1: a1,
	}
	if echo != nil {
		mcr.printer = display.NewPrinter(echo)
	}
	a1.Mem.PIA.Plumb(mcr)
	return mcr
}

// Output implements the pia.Display interface.
func (mcr *Macro) Output(v uint8) {
	mcr.crit.Lock()
	if v&0x7f == display.CarriageReturn {
		mcr.output.WriteByte('\n')
	} else if ch, ok := display.Translate(v); ok {
		mcr.output.WriteByte(ch)
	}
	mcr.crit.Unlock()

	if mcr.printer != nil {
		mcr.printer.Output(v)
	}
}

// DisplayOutput returns everything written to the display that has not been cleared.
func (mcr *Macro) DisplayOutput() string {
	mcr.crit.Lock()
	defer mcr.crit.Unlock()
	return mcr.output.String()
}

func (mcr *Macro) clearOutput() {
	mcr.crit.Lock()
	defer mcr.crit.Unlock()
	mcr.output.Reset()
}

// Run a script from a file. The context can be used to stop a script early.
func (mcr *Macro) Run(ctx context.Context, filename string) error {
	return mcr.exec(ctx, func(L *lua.LState) error {
		return L.DoFile(filename)
	})
}

// RunString runs a script held in a string.
func (mcr *Macro) RunString(ctx context.Context, script string) error {
	return mcr.exec(ctx, func(L *lua.LState) error {
		return L.DoString(script)
	})
}

func (mcr *Macro) exec(ctx context.Context, do func(L *lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.SetContext(ctx)
	mcr.register(L)

	if err := do(L); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (mcr *Macro) register(L *lua.LState) {
	funcs := map[string]lua.LGFunction{
		"type_text":    mcr.luaTypeText,
		"run":          mcr.luaRun,
		"run_until":    mcr.luaRunUntil,
		"step":         mcr.luaStep,
		"peek":         mcr.luaPeek,
		"poke":         mcr.luaPoke,
		"reg":          mcr.luaReg,
		"reset":        mcr.luaReset,
		"output":       mcr.luaOutput,
		"clear_output": mcr.luaClearOutput,
		"cycles":       mcr.luaCycles,
		"load":         mcr.luaLoad,
		"log":          mcr.luaLog,
	}
	for name, fn := range funcs {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

// run the emulation for the number of cycles, delivering queued keys and
// stopping early if the until function returns true
func (mcr *Macro) run(L *lua.LState, cycles uint64, until func() bool) (uint64, error) {
	ctx := L.Context()
	var performanceFilter int

	return mcr.a1.RunForCycles(cycles, func() (govern.State, error) {
		mcr.queue.Deliver(mcr.a1)

		performanceFilter++
		if performanceFilter < hardware.PerformanceBrake {
			return govern.Running, nil
		}
		performanceFilter = 0

		if ctx != nil && ctx.Err() != nil {
			return govern.Ending, ctx.Err()
		}
		if until != nil && until() {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
}

func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(v)
}

func checkCycles(L *lua.LState, n int) uint64 {
	v := L.CheckInt64(n)
	if v < 0 {
		L.ArgError(n, "cycle count must not be negative")
	}
	return uint64(v)
}

func (mcr *Macro) luaTypeText(L *lua.LState) int {
	mcr.queue.PushText(L.CheckString(1))
	return 0
}

func (mcr *Macro) luaRun(L *lua.LState) int {
	n, err := mcr.run(L, checkCycles(L, 1), nil)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (mcr *Macro) luaRunUntil(L *lua.LState) int {
	s := L.CheckString(1)
	limit := checkCycles(L, 2)

	found := func() bool {
		return strings.Contains(mcr.DisplayOutput(), s)
	}

	_, err := mcr.run(L, limit, found)
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LBool(found()))
	return 1
}

func (mcr *Macro) luaStep(L *lua.LState) int {
	mcr.queue.Deliver(mcr.a1)
	L.Push(lua.LNumber(mcr.a1.Step()))
	return 1
}

func (mcr *Macro) luaPeek(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.a1.Mem.Peek(checkAddress(L, 1))))
	return 1
}

func (mcr *Macro) luaPoke(L *lua.LState) int {
	address := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, "value out of range")
	}
	mcr.a1.Mem.Poke(address, uint8(v))
	return 0
}

func (mcr *Macro) luaReg(L *lua.LState) int {
	cpu := mcr.a1.CPU

	var v int
	switch strings.ToUpper(L.CheckString(1)) {
	case "PC":
		v = int(cpu.PC.Address())
	case "A":
		v = int(cpu.A.Value())
	case "X":
		v = int(cpu.X.Value())
	case "Y":
		v = int(cpu.Y.Value())
	case "SP":
		v = int(cpu.SP.Value())
	case "P":
		v = int(cpu.Status.Value())
	default:
		L.ArgError(1, "unknown register")
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (mcr *Macro) luaReset(L *lua.LState) int {
	mcr.queue.Clear()
	if L.GetTop() >= 1 {
		mcr.a1.ResetTo(checkAddress(L, 1))
	} else {
		mcr.a1.Reset()
	}
	return 0
}

func (mcr *Macro) luaOutput(L *lua.LState) int {
	L.Push(lua.LString(mcr.DisplayOutput()))
	return 1
}

func (mcr *Macro) luaClearOutput(L *lua.LState) int {
	mcr.clearOutput()
	return 0
}

func (mcr *Macro) luaCycles(L *lua.LState) int {
	L.Push(lua.LNumber(mcr.a1.Cycles()))
	return 1
}

func (mcr *Macro) luaLoad(L *lua.LState) int {
	address := checkAddress(L, 1)
	data, _, err := cassette.ReadFile(L.CheckString(2))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(mcr.a1.Mem.Load(address, data)))
	return 1
}

func (mcr *Macro) luaLog(L *lua.LState) int {
	logger.Log(mcr.a1.Env, "macro", L.CheckString(1))
	return 0
}
