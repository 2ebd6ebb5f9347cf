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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher1/hardware/cpu/execution"
	"github.com/jetsetilly/gopher1/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1/hardware/memory/cpubus"
)

// number of cycles consumed by the interrupt sequence of IRQ and NMI
const interruptCycles = 7

// CPU implements the NMOS 6502 as found in the Apple-1. Register logic is
// implemented by the types in the registers sub-package.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	// total number of cycles since the last reset
	Cycles uint64

	mem          cpubus.Memory
	instructions [256]instructions.Definition

	// details of the most recently executed instruction
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// registers are not initialised until Reset() or ResetTo() is called.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:          mem,
		PC:           registers.NewProgramCounter(0),
		A:            registers.NewRegister(0, "A"),
		X:            registers.NewRegister(0, "X"),
		Y:            registers.NewRegister(0, "Y"),
		SP:           registers.NewStackPointer(0),
		Status:       registers.NewStatusRegister(),
		instructions: instructions.GetDefinitions(),
	}
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC from the reset vector.
func (mc *CPU) Reset() {
	mc.reset()
	mc.PC.Load(mc.read16Bit(cpubus.Reset))
}

// ResetTo reinitialises all registers and loads the PC with the start address.
// The reset vector is not consulted.
func (mc *CPU) ResetTo(start uint16) {
	mc.reset()
	mc.PC.Load(start)
}

func (mc *CPU) reset() {
	mc.LastResult.Reset()
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Cycles = 0
}

func (mc *CPU) read8Bit(address uint16) uint8 {
	return mc.mem.Read(address)
}

func (mc *CPU) write8Bit(address uint16, value uint8) {
	mc.mem.Write(address, value)
}

// read a little-endian word. the address of the high byte wraps around the
// end of the address space
func (mc *CPU) read16Bit(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// read a little-endian word without crossing into the next page. used for
// zero page pointers and for the JMP indirect bug
func (mc *CPU) read16BitWrap(address uint16) uint16 {
	lo := mc.read8Bit(address)
	hi := mc.read8Bit(address&0xff00 | (address+1)&0x00ff)
	return uint16(hi)<<8 | uint16(lo)
}

// read the byte at the PC and advance the PC
func (mc *CPU) read8BitPC() uint8 {
	v := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)
	mc.LastResult.InstructionData = uint16(v)
	return v
}

// read the word at the PC and advance the PC
func (mc *CPU) read16BitPC() uint16 {
	v := mc.read16Bit(mc.PC.Address())
	mc.PC.Add(2)
	mc.LastResult.InstructionData = v
	return v
}

func (mc *CPU) push8Bit(value uint8) {
	mc.write8Bit(mc.SP.Push(), value)
}

// high byte is pushed first
func (mc *CPU) push16Bit(value uint16) {
	mc.push8Bit(uint8(value >> 8))
	mc.push8Bit(uint8(value))
}

func (mc *CPU) pop8Bit() uint8 {
	return mc.read8Bit(mc.SP.Pop())
}

func (mc *CPU) pop16Bit() uint16 {
	lo := mc.pop8Bit()
	hi := mc.pop8Bit()
	return uint16(hi)<<8 | uint16(lo)
}

// indexed address with page fault check. the extra cycle is only charged for
// page sensitive instructions
func (mc *CPU) indexed(base uint16, index uint8, defn instructions.Definition) uint16 {
	address := base + uint16(index)
	if defn.PageSensitive && base&0xff00 != address&0xff00 {
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
	return address
}

func (mc *CPU) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag
	if !flag {
		return
	}

	// +1 cycle for a taken branch
	mc.LastResult.Cycles++

	// sign extend the offset
	address := uint16(offset)
	if offset&0x80 == 0x80 {
		address |= 0xff00
	}

	// the page is compared with the address following the branch
	// instruction, which is the current value of the PC
	if mc.PC.Add(address) {
		// +1 cycle for a page fault
		mc.LastResult.PageFault = true
		mc.LastResult.Cycles++
	}
}

// the common interrupt sequence. the status register is pushed with the break
// flag as specified
func (mc *CPU) interrupt(vector uint16, pc uint16, brk bool) {
	mc.push16Bit(pc)
	mc.Status.Break = brk
	mc.push8Bit(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.PC.Load(mc.read16Bit(vector))
}

// IRQ requests a maskable interrupt. The request is ignored if the interrupt
// disable flag is set. Returns true if the interrupt was serviced.
func (mc *CPU) IRQ() bool {
	if mc.Status.InterruptDisable {
		return false
	}
	mc.interrupt(cpubus.IRQ, mc.PC.Address(), false)
	mc.Cycles += interruptCycles
	return true
}

// NMI requests a non-maskable interrupt. It is always serviced.
func (mc *CPU) NMI() {
	mc.interrupt(cpubus.NMI, mc.PC.Address(), false)
	mc.Cycles += interruptCycles
}

// Step executes the instruction at the PC and returns the number of cycles
// consumed. The basic process when executing an instruction is this:
//
//  1. read opcode and look up instruction definition
//  2. read the operand (if required) and resolve the addressing mode
//  3. read the value at the resolved address (if required)
//  4. perform the operation
//  5. add the cycles to the running total
//
// Step never fails. Opcodes that are not part of the instruction set consume
// the opcode and the following byte and do nothing else.
func (mc *CPU) Step() int {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)

	defn := mc.instructions[opcode]
	mc.LastResult.Defn = defn
	mc.LastResult.Cycles = defn.Cycles

	var address uint16
	var value uint8

	// resolve the address to use when reading/writing from/to memory. in the
	// case of immediate addressing the value is read directly from the
	// instruction stream
	switch defn.AddressingMode {
	case instructions.Implied:
		if defn.Operator == instructions.Undefined {
			mc.PC.Add(1)
		}

	case instructions.Accumulator:
		value = mc.A.Value()

	case instructions.Immediate:
		value = mc.read8BitPC()

	case instructions.Relative:
		address = uint16(mc.read8BitPC())

	case instructions.Absolute:
		address = mc.read16BitPC()

	case instructions.ZeroPage:
		address = uint16(mc.read8BitPC())

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP
		// command. the high byte of the pointer does not cross into the next
		// page
		indirectAddress := mc.read16BitPC()
		if indirectAddress&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}
		address = mc.read16BitWrap(indirectAddress)

	case instructions.IndexedIndirect: // x indexing
		zp := mc.read8BitPC() + mc.X.Value()
		address = mc.read16BitWrap(uint16(zp))

	case instructions.IndirectIndexed: // y indexing
		zp := mc.read8BitPC()
		address = mc.indexed(mc.read16BitWrap(uint16(zp)), mc.Y.Value(), defn)

	case instructions.AbsoluteIndexedX:
		address = mc.indexed(mc.read16BitPC(), mc.X.Value(), defn)

	case instructions.AbsoluteIndexedY:
		address = mc.indexed(mc.read16BitPC(), mc.Y.Value(), defn)

	case instructions.ZeroPageIndexedX:
		address = uint16(mc.read8BitPC() + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		address = uint16(mc.read8BitPC() + mc.Y.Value())
	}

	// read value from memory using the resolved address. this is only done
	// for read and read-modify-write instructions that use memory. write
	// instructions only use the address and flow instructions use the
	// address very specifically
	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate:
	default:
		if defn.Effect == instructions.Read || defn.Effect == instructions.RMW {
			value = mc.read8Bit(address)
		}
	}

	// actually perform instruction based on operator group
	switch defn.Operator {
	case instructions.Undefined:
		// does nothing

	case instructions.Nop:
		// does nothing

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		mc.push8Bit(mc.A.Value())

	case instructions.Pla:
		mc.A.Load(mc.pop8Bit())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		mc.push8Bit(mc.Status.Value() | registers.Break)

	case instructions.Plp:
		mc.Status.Load(mc.pop8Bit() | registers.Break)

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		mc.SP.Load(mc.X.Value())
		// does not affect status register

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Inx:
		mc.X.Add(1, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Add(1, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Add(0xff, false)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Add(0xff, false)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Asl:
		r := registers.NewRegister(value, "asl")
		mc.Status.Carry = r.ASL()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Lsr:
		r := registers.NewRegister(value, "lsr")
		mc.Status.Carry = r.LSR()
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Rol:
		r := registers.NewRegister(value, "rol")
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Ror:
		r := registers.NewRegister(value, "ror")
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Inc:
		r := registers.NewRegister(value, "inc")
		r.Add(1, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Dec:
		r := registers.NewRegister(value, "dec")
		r.Add(0xff, false)
		mc.Status.Zero = r.IsZero()
		mc.Status.Sign = r.IsNegative()
		mc.storeRMW(defn, address, r.Value())

	case instructions.Adc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.AddDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			mc.Status.Carry, mc.Status.Zero, mc.Status.Overflow, mc.Status.Sign = mc.A.SubtractDecimal(value, mc.Status.Carry)
		} else {
			mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Cmp:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.A.Compare(value)

	case instructions.Cpx:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.X.Compare(value)

	case instructions.Cpy:
		mc.Status.Carry, mc.Status.Zero, mc.Status.Sign = mc.Y.Compare(value)

	case instructions.Bit:
		r := registers.NewRegister(value, "bit")
		mc.Status.Sign = r.IsNegative()
		mc.Status.Overflow = r.IsBitV()
		r.AND(mc.A.Value())
		mc.Status.Zero = r.IsZero()

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, uint8(address))

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, uint8(address))

	case instructions.Beq:
		mc.branch(mc.Status.Zero, uint8(address))

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, uint8(address))

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, uint8(address))

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, uint8(address))

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, uint8(address))

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, uint8(address))

	case instructions.Jsr:
		// the address pushed onto the stack is the address of the last byte
		// of the JSR instruction
		mc.push16Bit(mc.PC.Address() - 1)
		mc.PC.Load(address)

	case instructions.Rts:
		mc.PC.Load(mc.pop16Bit())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK is a two byte instruction. the byte following the opcode is
		// skipped on return from the interrupt
		mc.interrupt(cpubus.IRQ, mc.PC.Address()+1, true)

	case instructions.Rti:
		mc.Status.Load(mc.pop8Bit() | registers.Break)
		mc.PC.Load(mc.pop16Bit())
	}

	mc.Cycles += uint64(mc.LastResult.Cycles)

	return mc.LastResult.Cycles
}

// store the result of a read-modify-write instruction to the accumulator or
// to memory depending on the addressing mode
func (mc *CPU) storeRMW(defn instructions.Definition, address uint16, value uint8) {
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(value)
		return
	}
	mc.write8Bit(address, value)
}
