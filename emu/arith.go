package emu

func registerArith(table *[256]OpEntry) {
	table[0x24] = OpEntry{"ADD A,#data", func(c *CPU) int {
		c.SetA(c.AddFlags(c.A(), c.fetch(), 0))
		return 1
	}}
	table[0x25] = OpEntry{"ADD A,direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.SetA(c.AddFlags(c.A(), c.ReadDirect(addr), 0))
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x26+i] = OpEntry{"ADD A,@Ri", func(c *CPU) int {
			c.SetA(c.AddFlags(c.A(), c.ReadIndirect(c.R(i)), 0))
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x28+n] = OpEntry{"ADD A,Rn", func(c *CPU) int {
			c.SetA(c.AddFlags(c.A(), c.R(n), 0))
			return 1
		}}
	}

	table[0x34] = OpEntry{"ADDC A,#data", func(c *CPU) int {
		c.SetA(c.AddFlags(c.A(), c.fetch(), c.carryBit()))
		return 1
	}}
	table[0x35] = OpEntry{"ADDC A,direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.SetA(c.AddFlags(c.A(), c.ReadDirect(addr), c.carryBit()))
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x36+i] = OpEntry{"ADDC A,@Ri", func(c *CPU) int {
			c.SetA(c.AddFlags(c.A(), c.ReadIndirect(c.R(i)), c.carryBit()))
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x38+n] = OpEntry{"ADDC A,Rn", func(c *CPU) int {
			c.SetA(c.AddFlags(c.A(), c.R(n), c.carryBit()))
			return 1
		}}
	}

	table[0x94] = OpEntry{"SUBB A,#data", func(c *CPU) int {
		c.SetA(c.SubFlags(c.A(), c.fetch(), c.carryBit()))
		return 1
	}}
	table[0x95] = OpEntry{"SUBB A,direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.SetA(c.SubFlags(c.A(), c.ReadDirect(addr), c.carryBit()))
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x96+i] = OpEntry{"SUBB A,@Ri", func(c *CPU) int {
			c.SetA(c.SubFlags(c.A(), c.ReadIndirect(c.R(i)), c.carryBit()))
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x98+n] = OpEntry{"SUBB A,Rn", func(c *CPU) int {
			c.SetA(c.SubFlags(c.A(), c.R(n), c.carryBit()))
			return 1
		}}
	}

	table[0x04] = OpEntry{"INC A", func(c *CPU) int {
		c.SetA(c.A() + 1)
		return 1
	}}
	table[0x05] = OpEntry{"INC direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.WriteDirect(addr, c.ReadDirect(addr)+1)
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x06+i] = OpEntry{"INC @Ri", func(c *CPU) int {
			addr := c.R(i)
			c.WriteIndirect(addr, c.ReadIndirect(addr)+1)
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x08+n] = OpEntry{"INC Rn", func(c *CPU) int {
			c.SetR(n, c.R(n)+1)
			return 1
		}}
	}
	table[0xA3] = OpEntry{"INC DPTR", func(c *CPU) int {
		c.SetDPTR(c.DPTR() + 1)
		return 2
	}}

	table[0x14] = OpEntry{"DEC A", func(c *CPU) int {
		c.SetA(c.A() - 1)
		return 1
	}}
	table[0x15] = OpEntry{"DEC direct", func(c *CPU) int {
		addr := c.fetch()
		c.checkAccToA(addr)
		c.WriteDirect(addr, c.ReadDirect(addr)-1)
		return 1
	}}
	for i := 0; i < 2; i++ {
		i := i
		table[0x16+i] = OpEntry{"DEC @Ri", func(c *CPU) int {
			addr := c.R(i)
			c.WriteIndirect(addr, c.ReadIndirect(addr)-1)
			return 1
		}}
	}
	for n := 0; n < 8; n++ {
		n := n
		table[0x18+n] = OpEntry{"DEC Rn", func(c *CPU) int {
			c.SetR(n, c.R(n)-1)
			return 1
		}}
	}

	table[0xA4] = OpEntry{"MUL AB", func(c *CPU) int {
		c.Mul()
		return 4
	}}
	table[0x84] = OpEntry{"DIV AB", func(c *CPU) int {
		c.Div()
		return 4
	}}
	table[0xD4] = OpEntry{"DA A", func(c *CPU) int {
		c.DA()
		return 1
	}}
}
