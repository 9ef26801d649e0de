package emu

// ReadCode fetches a byte from code memory, wrapping the address modulo
// CodeMemSize.
func (c *CPU) ReadCode(addr int) byte {
	return c.CodeMem[addr&(c.CodeMemSize-1)]
}

// ReadExt reads a byte of external data memory. If Hooks.XRead is
// installed it is delegated to entirely; otherwise the read indexes
// ExtData modulo ExtDataSize.
func (c *CPU) ReadExt(addr int) byte {
	if c.Hooks.XRead != nil {
		return c.Hooks.XRead(c, addr)
	}
	if c.ExtDataSize == 0 {
		return 0
	}
	return c.ExtData[addr&(c.ExtDataSize-1)]
}

// WriteExt writes a byte of external data memory. If Hooks.XWrite is
// installed it is delegated to entirely; otherwise the write indexes
// ExtData modulo ExtDataSize.
func (c *CPU) WriteExt(addr int, val byte) {
	if c.Hooks.XWrite != nil {
		c.Hooks.XWrite(c, addr, val)
		return
	}
	if c.ExtDataSize == 0 {
		return
	}
	c.ExtData[addr&(c.ExtDataSize-1)] = val
}

// ReadSFR reads SFR idx (0..127). Reads of ACC and PSW never invoke
// Hooks.SFRRead: those two registers are maintained through the flag
// engine's internal path. Every other SFR is routed through the hook
// when one is installed, letting a host model port or peripheral reads.
func (c *CPU) ReadSFR(idx int) byte {
	if idx == RegACC || idx == RegPSW {
		return c.SFR[idx]
	}
	if c.Hooks.SFRRead != nil {
		return c.Hooks.SFRRead(c, idx)
	}
	return c.SFR[idx]
}

// WriteSFR stores val into SFR idx and then, unless idx is ACC, invokes
// Hooks.SFRWrite. A write to ACC always recomputes PSW's parity bit;
// this is the single funnel every accumulator write passes through.
func (c *CPU) WriteSFR(idx int, val byte) {
	c.SFR[idx] = val
	if idx == RegACC {
		c.updateParity()
		return
	}
	if c.Hooks.SFRWrite != nil {
		c.Hooks.SFRWrite(c, idx)
	}
}

// A reads the accumulator.
func (c *CPU) A() byte { return c.SFR[RegACC] }

// SetA writes the accumulator through WriteSFR, keeping PSW.P in sync.
func (c *CPU) SetA(v byte) { c.WriteSFR(RegACC, v) }

// B reads the B register.
func (c *CPU) B() byte { return c.ReadSFR(RegB) }

// SetB writes the B register.
func (c *CPU) SetB(v byte) { c.WriteSFR(RegB, v) }

// SP reads the stack pointer.
func (c *CPU) SP() byte { return c.SFR[RegSP] }

// SetSP writes the stack pointer directly, bypassing hooks; SP is
// maintained internally by PUSH/POP/CALL/RET and is not expected to
// drive port logic.
func (c *CPU) SetSP(v byte) { c.SFR[RegSP] = v }

// DPTR reads the 16-bit data pointer, high byte in DPH and low in DPL.
func (c *CPU) DPTR() uint16 {
	return uint16(c.SFR[RegDPH])<<8 | uint16(c.SFR[RegDPL])
}

// SetDPTR writes the 16-bit data pointer.
func (c *CPU) SetDPTR(v uint16) {
	c.SFR[RegDPH] = byte(v >> 8)
	c.SFR[RegDPL] = byte(v)
}

// PSW reads the program status word.
func (c *CPU) PSW() byte { return c.SFR[RegPSW] }

// SetPSW writes the program status word directly. Unlike arithmetic
// flag updates, an explicit MOV PSW,#data retains every written bit,
// including P, until the next write to A recomputes it.
func (c *CPU) SetPSW(v byte) { c.SFR[RegPSW] = v }

// updateParity recomputes PSW.P as the XOR of all eight bits of A.
func (c *CPU) updateParity() {
	a := c.SFR[RegACC]
	p := byte(0)
	for a != 0 {
		p ^= a & 1
		a >>= 1
	}
	if p != 0 {
		c.SFR[RegPSW] |= PSWMaskP
	} else {
		c.SFR[RegPSW] &^= PSWMaskP
	}
}
