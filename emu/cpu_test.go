package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/em8051/emu"
)

var _ = Describe("CPU construction and reset", func() {
	It("rejects a code memory size that isn't a power of two", func() {
		_, err := emu.New(make([]byte, 300), nil, nil)
		Expect(err).To(MatchError(emu.ErrInvalidCodeMemSize))
	})

	It("rejects an empty code memory", func() {
		_, err := emu.New(nil, nil, nil)
		Expect(err).To(MatchError(emu.ErrInvalidCodeMemSize))
	})

	It("rejects an external memory size that isn't a power of two", func() {
		_, err := emu.New(make([]byte, 256), make([]byte, 100), nil)
		Expect(err).To(MatchError(emu.ErrInvalidExtMemSize))
	})

	It("accepts a nil external memory", func() {
		cpu, err := emu.New(make([]byte, 256), nil, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(cpu).NotTo(BeNil())
	})

	It("starts SP at 0x07 after construction", func() {
		cpu := newCPU()
		Expect(cpu.SP()).To(BeEquivalentTo(0x07))
	})

	It("zeroes memory on a wiping reset", func() {
		cpu := newCPU()
		cpu.SetA(0x42)
		cpu.LowerRAM[10] = 0x99
		cpu.Reset(true)
		Expect(cpu.A()).To(BeEquivalentTo(0))
		Expect(cpu.LowerRAM[10]).To(BeEquivalentTo(0))
		Expect(cpu.SP()).To(BeEquivalentTo(0x07))
	})

	It("preserves memory on a non-wiping reset but still resets PC and SP", func() {
		cpu := newCPU()
		cpu.LowerRAM[10] = 0x99
		cpu.PC = 0x1234
		cpu.Reset(false)
		Expect(cpu.LowerRAM[10]).To(BeEquivalentTo(0x99))
		Expect(cpu.PC).To(Equal(uint16(0)))
		Expect(cpu.SP()).To(BeEquivalentTo(0x07))
	})
})

var _ = Describe("Memory substrate", func() {
	var cpu *emu.CPU

	BeforeEach(func() {
		cpu = newCPU()
	})

	It("recomputes PSW.P as the parity of every write to A", func() {
		cpu.SetA(0x01) // one set bit: odd parity
		Expect(cpu.PSW() & emu.PSWMaskP).NotTo(BeZero())

		cpu.SetA(0x03) // two set bits: even parity
		Expect(cpu.PSW() & emu.PSWMaskP).To(BeZero())
	})

	It("composes and decomposes DPTR across DPH and DPL", func() {
		cpu.SetDPTR(0xBEEF)
		Expect(cpu.ReadDirect(0x80 + emu.RegDPH)).To(BeEquivalentTo(0xBE))
		Expect(cpu.ReadDirect(0x80 + emu.RegDPL)).To(BeEquivalentTo(0xEF))
	})

	It("routes non-ACC, non-PSW SFR reads through the read hook", func() {
		cpu.Hooks.SFRRead = func(c *emu.CPU, idx int) byte {
			if idx == emu.RegP1 {
				return 0x55
			}
			return 0
		}
		Expect(cpu.ReadDirect(0x80 + emu.RegP1)).To(BeEquivalentTo(0x55))
	})

	It("never routes ACC reads or writes through hooks", func() {
		reads, writes := 0, 0
		cpu.Hooks.SFRRead = func(c *emu.CPU, idx int) byte { reads++; return 0 }
		cpu.Hooks.SFRWrite = func(c *emu.CPU, idx int) { writes++ }
		cpu.SetA(0x42)
		_ = cpu.A()
		Expect(reads).To(Equal(0))
		Expect(writes).To(Equal(0))
	})

	It("wraps code memory reads modulo its size", func() {
		load(cpu, 0, 0xAB)
		Expect(cpu.ReadCode(4096)).To(BeEquivalentTo(0xAB))
	})
})
