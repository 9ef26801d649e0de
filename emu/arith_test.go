package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/em8051/emu"
)

var _ = Describe("Arithmetic opcodes", func() {
	var cpu *emu.CPU

	BeforeEach(func() {
		cpu = newCPU()
	})

	It("executes ADD A,#data and advances PC past the operand", func() {
		cpu.SetA(0x10)
		runOne(cpu, 0x24, 0x05)
		Expect(cpu.A()).To(BeEquivalentTo(0x15))
		Expect(cpu.PC).To(Equal(uint16(2)))
	})

	It("executes ADDC A,#data folding in the carry flag", func() {
		cpu.SetA(0x10)
		cpu.SetC(true)
		runOne(cpu, 0x34, 0x05)
		Expect(cpu.A()).To(BeEquivalentTo(0x16))
	})

	It("executes SUBB A,Rn folding in the carry flag as a borrow", func() {
		cpu.SetA(0x10)
		cpu.SetR(0, 0x05)
		cpu.SetC(true)
		runOne(cpu, 0x98) // SUBB A,R0
		Expect(cpu.A()).To(BeEquivalentTo(0x0A))
	})

	It("executes INC A without touching carry", func() {
		cpu.SetA(0xFF)
		cpu.SetC(false)
		runOne(cpu, 0x04)
		Expect(cpu.A()).To(BeEquivalentTo(0x00))
		Expect(cpu.C()).To(BeFalse())
	})

	It("executes DEC direct on lower RAM", func() {
		cpu.WriteDirect(0x30, 0x01)
		runOne(cpu, 0x15, 0x30) // DEC direct
		Expect(cpu.ReadDirect(0x30)).To(BeEquivalentTo(0x00))
	})

	It("executes INC DPTR across the DPH:DPL boundary", func() {
		cpu.SetDPTR(0x00FF)
		runOne(cpu, 0xA3)
		Expect(cpu.DPTR()).To(Equal(uint16(0x0100)))
	})

	It("executes MUL AB through the opcode table", func() {
		cpu.SetA(12)
		cpu.SetB(12)
		runOne(cpu, 0xA4)
		Expect(cpu.A()).To(BeEquivalentTo(144))
		Expect(cpu.B()).To(BeEquivalentTo(0))
	})

	It("executes DIV AB through the opcode table", func() {
		cpu.SetA(17)
		cpu.SetB(5)
		runOne(cpu, 0x84)
		Expect(cpu.A()).To(BeEquivalentTo(3))
		Expect(cpu.B()).To(BeEquivalentTo(2))
	})
})
