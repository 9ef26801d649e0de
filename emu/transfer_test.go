package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/em8051/emu"
)

var _ = Describe("Data transfer opcodes", func() {
	var cpu *emu.CPU

	BeforeEach(func() {
		cpu = newCPU()
	})

	It("executes MOV A,#data", func() {
		runOne(cpu, 0x74, 0x42)
		Expect(cpu.A()).To(BeEquivalentTo(0x42))
	})

	It("executes MOV Rn,#data into the active register bank", func() {
		runOne(cpu, 0x78, 0x07) // MOV R0,#7
		Expect(cpu.R(0)).To(BeEquivalentTo(0x07))
	})

	It("executes MOV direct,direct with the reversed src/dest byte order", func() {
		cpu.WriteDirect(0x30, 0x99)
		runOne(cpu, 0x85, 0x30, 0x31) // MOV 0x31, 0x30
		Expect(cpu.ReadDirect(0x31)).To(BeEquivalentTo(0x99))
	})

	It("executes MOV DPTR,#data16", func() {
		runOne(cpu, 0x90, 0x12, 0x34)
		Expect(cpu.DPTR()).To(Equal(uint16(0x1234)))
	})

	It("executes MOVC A,@A+DPTR against code memory", func() {
		load(cpu, 0x0200, 0xAB)
		cpu.SetDPTR(0x0200)
		cpu.SetA(0x00)
		runOne(cpu, 0x93)
		Expect(cpu.A()).To(BeEquivalentTo(0xAB))
	})

	It("executes MOVC A,@A+PC against the byte following the opcode", func() {
		load(cpu, 0x0006, 0xAB)
		cpu.SetA(0x05) // PC is 0x0001 immediately after the opcode fetch
		runOne(cpu, 0x83)
		Expect(cpu.A()).To(BeEquivalentTo(0xAB))
	})

	It("executes MOVX A,@DPTR against external data memory", func() {
		cpu.SetDPTR(0x0010)
		cpu.WriteExt(0x0010, 0x55)
		runOne(cpu, 0xE0)
		Expect(cpu.A()).To(BeEquivalentTo(0x55))
	})

	It("composes the MOVX @Ri address from P2 as the high byte and Ri as the low byte", func() {
		cpu.WriteDirect(0x80+emu.RegP2, 0x12)
		cpu.SetR(0, 0x34)
		var seenAddr int
		ex := emu.NewExecutor(cpu, emu.WithExternalMemoryHooks(
			func(c *emu.CPU, addr int) byte { seenAddr = addr; return 0x99 },
			nil,
		))
		load(cpu, 0, 0xE2) // MOVX A,@R0
		cpu.PC = 0
		ex.DoOp()
		Expect(seenAddr).To(Equal(0x1234))
		Expect(cpu.A()).To(BeEquivalentTo(0x99))
	})

	It("round-trips PUSH and POP through the stack", func() {
		cpu.WriteDirect(0x40, 0x77)
		startSP := cpu.SP()
		runOne(cpu, 0xC0, 0x40) // PUSH 0x40
		Expect(cpu.SP()).To(Equal(startSP + 1))

		runOne(cpu, 0xD0, 0x41) // POP 0x41
		Expect(cpu.SP()).To(Equal(startSP))
		Expect(cpu.ReadDirect(0x41)).To(BeEquivalentTo(0x77))
	})

	It("raises ExceptionStack when a stack push lands above 0x7F with no upper RAM", func() {
		bare, err := emu.New(make([]byte, 256), nil, nil)
		Expect(err).NotTo(HaveOccurred())
		bare.SetSP(0x7F)
		var raised emu.ExceptionCode
		bare.Hooks.Exception = func(c *emu.CPU, code emu.ExceptionCode) { raised = code }
		load(bare, 0, 0xC0, 0x40)
		bare.PC = 0
		emu.NewExecutor(bare).DoOp()
		Expect(raised).To(Equal(emu.ExceptionStack))
	})

	It("executes XCH A,Rn swapping both operands", func() {
		cpu.SetA(0x0F)
		cpu.SetR(1, 0xF0)
		runOne(cpu, 0xC9) // XCH A,R1
		Expect(cpu.A()).To(BeEquivalentTo(0xF0))
		Expect(cpu.R(1)).To(BeEquivalentTo(0x0F))
	})

	It("raises ExceptionAccToA when a direct operand addresses ACC", func() {
		var raised emu.ExceptionCode
		cpu.Hooks.Exception = func(c *emu.CPU, code emu.ExceptionCode) { raised = code }
		runOne(cpu, 0x75, 0xE0, 0x01) // MOV 0xE0,#1 (0xE0 is ACC's SFR address)
		Expect(raised).To(Equal(emu.ExceptionAccToA))
	})
})
