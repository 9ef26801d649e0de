package emu

// registerBranch wires jumps, calls, returns and the loop/compare
// instructions that combine a conditional test with a relative branch.
func registerBranch(table *[256]OpEntry) {
	for page := byte(0); page < 8; page++ {
		page := page
		table[page<<5|0x01] = OpEntry{"AJMP addr11", func(c *CPU) int {
			low := c.fetch()
			c.PC = (c.PC & 0xF800) | uint16(page)<<8 | uint16(low)
			return 2
		}}
		table[page<<5|0x11] = OpEntry{"ACALL addr11", func(c *CPU) int {
			low := c.fetch()
			target := (c.PC & 0xF800) | uint16(page)<<8 | uint16(low)
			c.push(byte(c.PC))
			c.push(byte(c.PC >> 8))
			c.PC = target
			return 2
		}}
	}

	table[0x02] = OpEntry{"LJMP addr16", func(c *CPU) int {
		c.PC = c.fetch16()
		return 2
	}}
	table[0x12] = OpEntry{"LCALL addr16", func(c *CPU) int {
		target := c.fetch16()
		c.push(byte(c.PC))
		c.push(byte(c.PC >> 8))
		c.PC = target
		return 2
	}}

	table[0x80] = OpEntry{"SJMP rel", func(c *CPU) int {
		rel := rel8(c.fetch())
		c.PC = uint16(int32(c.PC) + int32(rel))
		return 2
	}}
	table[0x73] = OpEntry{"JMP @A+DPTR", func(c *CPU) int {
		c.PC = c.DPTR() + uint16(c.A())
		return 2
	}}

	table[0x60] = OpEntry{"JZ rel", condJump(func(c *CPU) bool { return c.A() == 0 })}
	table[0x70] = OpEntry{"JNZ rel", condJump(func(c *CPU) bool { return c.A() != 0 })}
	table[0x40] = OpEntry{"JC rel", condJump(func(c *CPU) bool { return c.C() })}
	table[0x50] = OpEntry{"JNC rel", condJump(func(c *CPU) bool { return !c.C() })}

	table[0x20] = OpEntry{"JB bit,rel", func(c *CPU) int {
		b := c.fetch()
		rel := rel8(c.fetch())
		if c.ReadBit(b) {
			c.PC = uint16(int32(c.PC) + int32(rel))
		}
		return 2
	}}
	table[0x30] = OpEntry{"JNB bit,rel", func(c *CPU) int {
		b := c.fetch()
		rel := rel8(c.fetch())
		if !c.ReadBit(b) {
			c.PC = uint16(int32(c.PC) + int32(rel))
		}
		return 2
	}}
	table[0x10] = OpEntry{"JBC bit,rel", func(c *CPU) int {
		b := c.fetch()
		rel := rel8(c.fetch())
		if c.ReadBit(b) {
			c.WriteBit(b, false)
			c.PC = uint16(int32(c.PC) + int32(rel))
		}
		return 2
	}}

	table[0xB4] = OpEntry{"CJNE A,#data,rel", func(c *CPU) int {
		data := c.fetch()
		rel := rel8(c.fetch())
		c.cjne(c.A(), data, rel)
		return 2
	}}
	table[0xB5] = OpEntry{"CJNE A,direct,rel", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		rel := rel8(c.fetch())
		c.cjne(c.A(), c.ReadDirect(addr), rel)
		return 2
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0xB6+i] = OpEntry{"CJNE @Ri,#data,rel", func(c *CPU) int {
			val := c.ReadIndirect(c.R(i))
			data := c.fetch()
			rel := rel8(c.fetch())
			c.cjne(val, data, rel)
			return 2
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0xB8+n] = OpEntry{"CJNE Rn,#data,rel", func(c *CPU) int {
			val := c.R(n)
			data := c.fetch()
			rel := rel8(c.fetch())
			c.cjne(val, data, rel)
			return 2
		}}
	}

	table[0xD5] = OpEntry{"DJNZ direct,rel", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		rel := rel8(c.fetch())
		v := c.ReadDirect(addr) - 1
		c.WriteDirect(addr, v)
		if v != 0 {
			c.PC = uint16(int32(c.PC) + int32(rel))
		}
		return 2
	}}
	for n := 0; n < 8; n++ {
		n := n
		table[0xD8+n] = OpEntry{"DJNZ Rn,rel", func(c *CPU) int {
			rel := rel8(c.fetch())
			v := c.R(n) - 1
			c.SetR(n, v)
			if v != 0 {
				c.PC = uint16(int32(c.PC) + int32(rel))
			}
			return 2
		}}
	}

	table[0x22] = OpEntry{"RET", func(c *CPU) int {
		hi := c.pop()
		lo := c.pop()
		c.PC = uint16(hi)<<8 | uint16(lo)
		return 2
	}}
	table[0x32] = OpEntry{"RETI", func(c *CPU) int {
		hi := c.pop()
		lo := c.pop()
		c.PC = uint16(hi)<<8 | uint16(lo)
		c.returnFromInterrupt()
		return 2
	}}
}

// condJump builds a relative-jump handler for the single-condition forms
// JZ, JNZ, JC and JNC, all of which share the one-byte displacement
// encoding and fixed two-cycle cost.
func condJump(cond func(c *CPU) bool) OpHandler {
	return func(c *CPU) int {
		rel := rel8(c.fetch())
		if cond(c) {
			c.PC = uint16(int32(c.PC) + int32(rel))
		}
		return 2
	}
}

// cjne compares a against b, sets C on a<b, and branches by rel whenever
// they differ.
func (c *CPU) cjne(a, b byte, rel int16) {
	c.SetC(a < b)
	if a != b {
		c.PC = uint16(int32(c.PC) + int32(rel))
	}
}
