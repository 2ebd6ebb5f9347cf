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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher1/hardware/cpu"
	"github.com/jetsetilly/gopher1/hardware/cpu/execution"
	"github.com/jetsetilly/gopher1/hardware/cpu/registers/rtest"
	"github.com/jetsetilly/gopher1/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher1/test"
)

func testStatusInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin = mem.putInstructions(origin, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	rtest.EquateStatus(t, mc.Status, "nv-BdizC")
	step(t, mc) // CLC
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // CLI
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // SEI
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
	step(t, mc) // SED
	rtest.EquateStatus(t, mc.Status, "nv-BDIzc")
	step(t, mc) // CLD
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
	step(t, mc) // CLV
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")

	// PHP; PLP
	_ = mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	rtest.EquateRegisters(t, mc.SP, 0xfe)
	mem.assert(t, 0x01ff, 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true
	mc.Status.Break = false

	// restore status register
	step(t, mc) // PLP
	rtest.EquateRegisters(t, mc.SP, 0xff)
	rtest.EquateStatus(t, mc.Status, "nv-BdIzc")
}

func testRegisterArithmetic(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// LDA immediate; ADC immediate
	origin = mem.putInstructions(origin, 0xa9, 1, 0x69, 10)
	step(t, mc) // LDA #1
	step(t, mc) // ADC #10
	rtest.EquateRegisters(t, mc.A, 11)

	// SEC; SBC immediate
	origin = mem.putInstructions(origin, 0x38, 0xe9, 8)
	step(t, mc) // SEC
	step(t, mc) // SBC #8
	rtest.EquateRegisters(t, mc.A, 3)
	rtest.EquateStatus(t, mc.Status, "nv-BdizC")

	// SBC immediate with borrow
	_ = mem.putInstructions(origin, 0xe9, 4)
	step(t, mc) // SBC #4
	rtest.EquateRegisters(t, mc.A, 0xff)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
}

func testRegisterBitwiseInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// ORA immediate; EOR immediate; AND immediate
	origin = mem.putInstructions(origin, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	rtest.EquateRegisters(t, mc.A, 0x00)
	step(t, mc) // ORA #$FF
	rtest.EquateRegisters(t, mc.A, 0xff)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
	step(t, mc) // EOR #$F0
	rtest.EquateRegisters(t, mc.A, 0x0f)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // AND #$01
	rtest.EquateRegisters(t, mc.A, 0x01)

	// ASL implied; LSR implied; LSR implied
	origin = mem.putInstructions(origin, 0x0a, 0x4a, 0x4a)
	step(t, mc) // ASL
	rtest.EquateRegisters(t, mc.A, 0x02)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0x01)
	step(t, mc) // LSR
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateStatus(t, mc.Status, "nv-BdiZC")

	// ROL implied; ROR implied; ROR implied; ROR implied
	_ = mem.putInstructions(origin, 0x2a, 0x6a, 0x6a, 0x6a)
	step(t, mc) // ROL
	rtest.EquateRegisters(t, mc.A, 0x01)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateStatus(t, mc.Status, "nv-BdiZC")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
	step(t, mc) // ROR
	rtest.EquateRegisters(t, mc.A, 0x40)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
}

func testImmediateImplied(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// LDX immediate; INX; DEX
	origin = mem.putInstructions(origin, 0xa2, 5, 0xe8, 0xca)
	step(t, mc) // LDX #5
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // INX
	rtest.EquateRegisters(t, mc.X, 6)
	step(t, mc) // DEX
	rtest.EquateRegisters(t, mc.X, 5)

	// PHA; LDA immediate; PLA
	origin = mem.putInstructions(origin, 0xa9, 5, 0x48, 0xa9, 0, 0x68)
	step(t, mc) // LDA #5
	step(t, mc) // PHA
	rtest.EquateRegisters(t, mc.SP, 0xfe)
	step(t, mc) // LDA #0
	rtest.EquateRegisters(t, mc.A, 0)
	rtest.EquateStatus(t, mc.Status, "nv-BdiZc")
	step(t, mc) // PLA
	rtest.EquateRegisters(t, mc.A, 5)
	rtest.EquateRegisters(t, mc.SP, 0xff)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")

	// TAX; TAY; TSX; TXS
	_ = mem.putInstructions(origin, 0xaa, 0xa8, 0xba, 0xa2, 0x80, 0x9a)
	step(t, mc) // TAX
	rtest.EquateRegisters(t, mc.X, 5)
	step(t, mc) // TAY
	rtest.EquateRegisters(t, mc.Y, 5)
	step(t, mc) // TSX
	rtest.EquateRegisters(t, mc.X, 0xff)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
	step(t, mc) // LDX #$80
	step(t, mc) // TXS
	rtest.EquateRegisters(t, mc.SP, 0x80)
}

func testOtherAddressingModes(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	_ = mem.putInstructions(0x0100, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08)
	_ = mem.putInstructions(0x0050, 0x00, 0x01)

	// LDA zero page
	origin = mem.putInstructions(origin, 0xa5, 0x51)
	step(t, mc) // LDA $51
	rtest.EquateRegisters(t, mc.A, 0x01)

	// LDX immediate; LDA zero page,X
	origin = mem.putInstructions(origin, 0xa2, 0x01, 0xb5, 0x50)
	step(t, mc) // LDX #1
	step(t, mc) // LDA $50,X
	rtest.EquateRegisters(t, mc.A, 0x01)

	// LDA absolute; LDA absolute,X; LDY immediate; LDA absolute,Y
	origin = mem.putInstructions(origin, 0xad, 0x00, 0x01, 0xbd, 0x01, 0x01, 0xa0, 0x02, 0xb9, 0x01, 0x01)
	step(t, mc) // LDA $0100
	rtest.EquateRegisters(t, mc.A, 0x01)
	step(t, mc) // LDA $0101,X
	rtest.EquateRegisters(t, mc.A, 0x03)
	step(t, mc) // LDY #2
	step(t, mc) // LDA $0101,Y
	rtest.EquateRegisters(t, mc.A, 0x04)

	// pre-indexed indirect: LDA ($4f,X)
	origin = mem.putInstructions(origin, 0xa1, 0x4f)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x01)

	// post-indexed indirect: LDA ($50),Y
	origin = mem.putInstructions(origin, 0xb1, 0x50)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x03)

	// zero page indexed wraps within the zero page: LDX #$52; LDA $ff,X
	_ = mem.putInstructions(origin, 0xa2, 0x52, 0xb5, 0xff)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x01)
}

func testStorageInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// LDA immediate; STA absolute
	origin = mem.putInstructions(origin, 0xa9, 0x54, 0x8d, 0x00, 0x01)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0100, 0x54)

	// LDX immediate; STX absolute
	origin = mem.putInstructions(origin, 0xa2, 0x63, 0x8e, 0x01, 0x01)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0101, 0x63)

	// LDY immediate; STY absolute
	origin = mem.putInstructions(origin, 0xa0, 0x72, 0x8c, 0x02, 0x01)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0102, 0x72)

	// INC zero page; DEC absolute
	mem.Write(0x0080, 0xa2)
	_ = mem.putInstructions(origin, 0xe6, 0x80, 0xce, 0x00, 0x01)
	step(t, mc)
	mem.assert(t, 0x0080, 0xa3)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
	step(t, mc)
	mem.assert(t, 0x0100, 0x53)
	rtest.EquateStatus(t, mc.Status, "nv-Bdizc")
}

func testBranching(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// BNE forward. not taken because of zero flag
	origin = mem.putInstructions(origin, 0xa9, 0x00, 0xd0, 0x10)
	step(t, mc)
	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 2)
	rtest.EquateRegisters(t, mc.PC, 0x04)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, false)

	// BEQ forward. taken
	_ = mem.putInstructions(origin, 0xf0, 0x10)
	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 3)
	rtest.EquateRegisters(t, mc.PC, 0x16)
	test.ExpectEquality(t, mc.LastResult.BranchSuccess, true)

	// BEQ backwards across a page
	mem.Clear()
	mc.ResetTo(0x0200)
	_ = mem.putInstructions(0x0200, 0xf0, 0xf0)
	mc.Status.Zero = true
	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 4)
	rtest.EquateRegisters(t, mc.PC, 0x01f2)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)
}

func testJumps(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// JMP absolute
	_ = mem.putInstructions(origin, 0x4c, 0x00, 0x01)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0100)

	// JMP indirect
	origin = 0x0100
	_ = mem.putInstructions(origin, 0x6c, 0x50, 0x01)
	mem.putWord(0x0150, 0x0204)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x0204)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)

	// JMP indirect with the page boundary bug
	origin = 0x0204
	_ = mem.putInstructions(origin, 0x6c, 0xff, 0x30)
	mem.Write(0x30ff, 0x80)
	mem.Write(0x3000, 0x50)
	mem.Write(0x3100, 0x99)
	step(t, mc)
	rtest.EquateRegisters(t, mc.PC, 0x5080)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
}

func testComparisonInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// CMP immediate (equality)
	origin = mem.putInstructions(origin, 0xc9, 0x00)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nv-BdiZC")

	// LDA immediate; CMP immediate
	origin = mem.putInstructions(origin, 0xa9, 0xf6, 0xc9, 0x18)
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "Nv-BdizC")

	// LDX immediate; CPX immediate
	origin = mem.putInstructions(origin, 0xa2, 0x06, 0xe0, 0x81)
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")

	// LDY immediate; CPY immediate
	origin = mem.putInstructions(origin, 0xa0, 0x80, 0xc0, 0x7f)
	step(t, mc)
	step(t, mc)
	rtest.EquateStatus(t, mc.Status, "nv-BdizC")

	// LDA immediate; BIT zero page
	mem.Write(0x0080, 0xc0)
	_ = mem.putInstructions(origin, 0xa9, 0x01, 0x24, 0x80)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x01)
	rtest.EquateStatus(t, mc.Status, "NV-BdiZC")
}

func testSubroutineInstructions(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// JSR absolute
	_ = mem.putInstructions(origin, 0x20, 0x00, 0x01)
	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 6)
	rtest.EquateRegisters(t, mc.PC, 0x0100)
	mem.assert(t, 0x01ff, 0x00)
	mem.assert(t, 0x01fe, 0x02)
	rtest.EquateRegisters(t, mc.SP, 0xfd)

	// RTS
	_ = mem.putInstructions(0x0100, 0x60)
	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 6)
	rtest.EquateRegisters(t, mc.PC, 0x0003)
	rtest.EquateRegisters(t, mc.SP, 0xff)
}

func testDecimalMode(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// SED; LDA #$09; ADC #$01
	origin = mem.putInstructions(origin, 0xf8, 0xa9, 0x09, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x10)
	test.ExpectEquality(t, mc.Status.Carry, false)

	// LDA #$99; CLC; ADC #$01
	origin = mem.putInstructions(origin, 0xa9, 0x99, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x00)
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)

	// SEC; LDA #$10; SBC #$01
	_ = mem.putInstructions(origin, 0x38, 0xa9, 0x10, 0xe9, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x09)
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func testBinaryOverflow(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	var origin uint16
	mem.Clear()
	mc.ResetTo(origin)

	// LDA #$7F; CLC; ADC #$01
	_ = mem.putInstructions(origin, 0xa9, 0x7f, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Sign, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func testPageFaults(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.ResetTo(0x0200)

	// LDX #1; LDA $1200,X; LDA $12FF,X
	_ = mem.putInstructions(0x0200, 0xa2, 0x01, 0xbd, 0x00, 0x12, 0xbd, 0xff, 0x12)
	mem.Write(0x1201, 0x11)
	mem.Write(0x1300, 0x22)

	step(t, mc)
	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 4)
	rtest.EquateRegisters(t, mc.A, 0x11)
	test.ExpectEquality(t, mc.LastResult.PageFault, false)

	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 5)
	rtest.EquateRegisters(t, mc.A, 0x22)
	test.ExpectEquality(t, mc.LastResult.PageFault, true)

	// STA $12FF,X never takes an additional cycle
	mc.ResetTo(0x0300)
	_ = mem.putInstructions(0x0300, 0xa2, 0x01, 0x9d, 0xff, 0x12)
	step(t, mc)
	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 5)
	mem.assert(t, 0x1300, 0x00)
}

func testInterrupts(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.putWord(cpubus.IRQ, 0x0400)
	mem.putWord(cpubus.NMI, 0x0500)
	mc.ResetTo(0x0200)

	// BRK pushes the address following the two byte instruction
	_ = mem.putInstructions(0x0200, 0x00, 0xea)
	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 7)
	rtest.EquateRegisters(t, mc.PC, 0x0400)
	mem.assert(t, 0x01ff, 0x02)
	mem.assert(t, 0x01fe, 0x02)
	mem.assert(t, 0x01fd, 0x30)
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// RTI
	_ = mem.putInstructions(0x0400, 0x40)
	cycles = step(t, mc)
	test.ExpectEquality(t, cycles, 6)
	rtest.EquateRegisters(t, mc.PC, 0x0202)
	rtest.EquateRegisters(t, mc.SP, 0xff)
	test.ExpectEquality(t, mc.Status.InterruptDisable, false)

	// IRQ pushes the status register with the break flag clear
	before := mc.Cycles
	test.ExpectEquality(t, mc.IRQ(), true)
	test.ExpectEquality(t, mc.Cycles-before, uint64(7))
	rtest.EquateRegisters(t, mc.PC, 0x0400)
	mem.assert(t, 0x01fd, 0x20)

	// IRQ is masked by the interrupt disable flag
	test.ExpectEquality(t, mc.IRQ(), false)
	rtest.EquateRegisters(t, mc.PC, 0x0400)

	// NMI is never masked
	mc.NMI()
	rtest.EquateRegisters(t, mc.PC, 0x0500)
	rtest.EquateRegisters(t, mc.SP, 0xf9)
	mem.assert(t, 0x01fa, 0x24)
}

func testReset(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mem.Write(0xfffc, 0x00)
	mem.Write(0xfffd, 0x80)

	mc.A.Load(0x10)
	mc.Cycles = 100
	mc.Reset()
	rtest.EquateRegisters(t, mc.PC, 0x8000)
	rtest.EquateRegisters(t, mc.SP, 0xff)
	rtest.EquateRegisters(t, mc.A, 0x00)
	rtest.EquateRegisters(t, mc.Status, 0x30)
	test.ExpectEquality(t, mc.Cycles, uint64(0))

	mc.ResetTo(0xff00)
	rtest.EquateRegisters(t, mc.PC, 0xff00)
}

func testUndefined(t *testing.T, mc *cpu.CPU, mem *mockMem) {
	mem.Clear()
	mc.ResetTo(0x0200)

	_ = mem.putInstructions(0x0200, 0x02, 0xff, 0x03)
	mc.A.Load(0x12)
	status := mc.Status.Value()

	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 0)
	rtest.EquateRegisters(t, mc.PC, 0x0202)
	rtest.EquateRegisters(t, mc.A, 0x12)
	rtest.EquateRegisters(t, mc.Status, int(status))
	test.ExpectEquality(t, mc.Cycles, uint64(0))
}

func TestCPU(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)

	testStatusInstructions(t, mc, mem)
	testRegisterArithmetic(t, mc, mem)
	testRegisterBitwiseInstructions(t, mc, mem)
	testImmediateImplied(t, mc, mem)
	testOtherAddressingModes(t, mc, mem)
	testStorageInstructions(t, mc, mem)
	testBranching(t, mc, mem)
	testJumps(t, mc, mem)
	testComparisonInstructions(t, mc, mem)
	testSubroutineInstructions(t, mc, mem)
	testDecimalMode(t, mc, mem)
	testBinaryOverflow(t, mc, mem)
	testPageFaults(t, mc, mem)
	testInterrupts(t, mc, mem)
	testReset(t, mc, mem)
	testUndefined(t, mc, mem)
}

func TestStackRoundTrip(t *testing.T) {
	mem := newMockMem()
	mc := cpu.NewCPU(mem)
	mc.ResetTo(0x0200)

	// LDA #$80; PHA; LDA #$01; PLA
	_ = mem.putInstructions(0x0200, 0xa9, 0x80, 0x48, 0xa9, 0x01, 0x68)
	step(t, mc)
	sp := mc.SP.Value()
	step(t, mc)
	step(t, mc)
	step(t, mc)
	rtest.EquateRegisters(t, mc.A, 0x80)
	rtest.EquateRegisters(t, mc.SP, int(sp))
	rtest.EquateStatus(t, mc.Status, "Nv-Bdizc")
}
