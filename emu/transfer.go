package emu

// push writes val onto the stack: SP is incremented first, then the byte
// is stored at the new SP. Incrementing past 0xFF, and landing above 0x7F
// with no upper RAM installed, both raise ExceptionStack; the store still
// happens, wrapping SP to 0x00 or dropping the byte respectively.
func (c *CPU) push(val byte) {
	sp := c.SP()
	if sp == 0xFF {
		c.raiseException(ExceptionStack)
	}
	sp++
	c.SetSP(sp)
	c.WriteIndirect(sp, val)
}

// pop reads the byte at SP and decrements SP.
func (c *CPU) pop() byte {
	sp := c.SP()
	val := c.ReadIndirect(sp)
	c.SetSP(sp - 1)
	return val
}

// checkAccToA flags a direct address that encodes the accumulator (0xE0)
// where the dedicated A operand form exists instead. The access itself
// still proceeds normally.
func (c *CPU) checkAccToA(addr byte) {
	if addr == 0x80+RegACC {
		c.raiseException(ExceptionAccToA)
	}
}

// riExtAddr builds the 16-bit external-memory address a MOVX @Ri form
// addresses: P2 supplies the high byte, Ri the low byte.
func (c *CPU) riExtAddr(i int) int {
	return int(uint16(c.SFR[RegP2])<<8 | uint16(c.R(i)))
}

func registerTransfer(table *[256]OpEntry) {
	table[0x00] = OpEntry{"NOP", func(c *CPU) int { return 1 }}

	// MOV A,#data / Rn,#data / direct,#data / @Ri,#data
	table[0x74] = OpEntry{"MOV A,#data", func(c *CPU) int {
		c.SetA(c.fetch())
		return 1
	}}
	for n := 0; n < 8; n++ {
		n := n
		table[0x78+n] = OpEntry{"MOV Rn,#data", func(c *CPU) int {
			c.SetR(n, c.fetch())
			return 1
		}}
	}
	table[0x75] = OpEntry{"MOV direct,#data", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.WriteDirect(addr, c.fetch())
		return 2
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x76+i] = OpEntry{"MOV @Ri,#data", func(c *CPU) int {
			c.WriteIndirect(c.R(i), c.fetch())
			return 1
		}}
	}

	// MOV direct,direct: byte order in the stream is src, dest — the
	// reverse of the mnemonic's operand order.
	table[0x85] = OpEntry{"MOV direct,direct", func(c *CPU) int {
		src := c.fetch()
		dest := c.fetch()
		c.checkAccToA(src)
		c.checkAccToA(dest)
		c.WriteDirect(dest, c.ReadDirect(src))
		return 2
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x86+i] = OpEntry{"MOV direct,@Ri", func(c *CPU) int {
			dest := c.fetch()
			c.checkAccToA(dest)
			c.WriteDirect(dest, c.ReadIndirect(c.R(i)))
			return 2
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x88+n] = OpEntry{"MOV direct,Rn", func(c *CPU) int {
			dest := c.fetch()
			c.checkAccToA(dest)
			c.WriteDirect(dest, c.R(n))
			return 2
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0xA8+n] = OpEntry{"MOV Rn,direct", func(c *CPU) int {
			src := c.fetch()
			c.checkAccToA(src)
			c.SetR(n, c.ReadDirect(src))
			return 2
		}}
	}
	for i := 0; i < 2; i++ {
		i := i
		table[0xA6+i] = OpEntry{"MOV @Ri,direct", func(c *CPU) int {
			src := c.fetch()
			c.checkAccToA(src)
			c.WriteIndirect(c.R(i), c.ReadDirect(src))
			return 2
		}}
	}

	table[0xE5] = OpEntry{"MOV A,direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.SetA(c.ReadDirect(addr))
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xE6+i] = OpEntry{"MOV A,@Ri", func(c *CPU) int {
			c.SetA(c.ReadIndirect(c.R(i)))
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0xE8+n] = OpEntry{"MOV A,Rn", func(c *CPU) int {
			c.SetA(c.R(n))
			return 1
		}}
	}

	table[0xF5] = OpEntry{"MOV direct,A", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.WriteDirect(addr, c.A())
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xF6+i] = OpEntry{"MOV @Ri,A", func(c *CPU) int {
			c.WriteIndirect(c.R(i), c.A())
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0xF8+n] = OpEntry{"MOV Rn,A", func(c *CPU) int {
			c.SetR(n, c.A())
			return 1
		}}
	}

	table[0x90] = OpEntry{"MOV DPTR,#data16", func(c *CPU) int {
		c.SetDPTR(c.fetch16())
		return 2
	}}

	table[0x92] = OpEntry{"MOV bit,C", func(c *CPU) int {
		b := c.fetch()
		c.WriteBit(b, c.C())
		return 2
	}}
	table[0xA2] = OpEntry{"MOV C,bit", func(c *CPU) int {
		b := c.fetch()
		c.SetC(c.ReadBit(b))
		return 1
	}}

	table[0x93] = OpEntry{"MOVC A,@A+DPTR", func(c *CPU) int {
		c.SetA(c.ReadCode(int(c.DPTR()) + int(c.A())))
		return 2
	}}
	table[0x83] = OpEntry{"MOVC A,@A+PC", func(c *CPU) int {
		c.SetA(c.ReadCode(int(c.PC) + int(c.A())))
		return 2
	}}

	table[0xE0] = OpEntry{"MOVX A,@DPTR", func(c *CPU) int {
		c.SetA(c.ReadExt(int(c.DPTR())))
		return 2
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xE2+i] = OpEntry{"MOVX A,@Ri", func(c *CPU) int {
			c.SetA(c.ReadExt(c.riExtAddr(i)))
			return 2
		}}
	}
	table[0xF0] = OpEntry{"MOVX @DPTR,A", func(c *CPU) int {
		c.WriteExt(int(c.DPTR()), c.A())
		return 2
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xF2+i] = OpEntry{"MOVX @Ri,A", func(c *CPU) int {
			c.WriteExt(c.riExtAddr(i), c.A())
			return 2
		}}
	}

	table[0xC0] = OpEntry{"PUSH direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.push(c.ReadDirect(addr))
		return 2
	}}
	table[0xD0] = OpEntry{"POP direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.WriteDirect(addr, c.pop())
		return 2
	}}

	table[0xC5] = OpEntry{"XCH A,direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		a, d := c.A(), c.ReadDirect(addr)
		c.SetA(d)
		c.WriteDirect(addr, a)
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xC6+i] = OpEntry{"XCH A,@Ri", func(c *CPU) int {
			addr := c.R(i)
			a, m := c.A(), c.ReadIndirect(addr)
			c.SetA(m)
			c.WriteIndirect(addr, a)
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0xC8+n] = OpEntry{"XCH A,Rn", func(c *CPU) int {
			a, r := c.A(), c.R(n)
			c.SetA(r)
			c.SetR(n, a)
			return 1
		}}
	}
	for i := 0; i < 2; i++ {
		i := i
		table[0xD6+i] = OpEntry{"XCHD A,@Ri", func(c *CPU) int {
			addr := c.R(i)
			a, m := c.A(), c.ReadIndirect(addr)
			c.SetA(a&0xF0 | m&0x0F)
			c.WriteIndirect(addr, m&0xF0|a&0x0F)
			return 1
		}}
	}
}
