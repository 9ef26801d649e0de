package emu

// RS returns the two-bit register bank selector decoded from PSW.RS1:RS0.
func (c *CPU) RS() int {
	return int(c.PSW()>>3) & 3
}

// RegAddr returns the lower-RAM offset of register Rn (0..7) in the
// currently selected bank.
func (c *CPU) RegAddr(n int) byte {
	return byte(c.RS()*8 + n)
}

// R reads register Rn (0..7) from the active bank.
func (c *CPU) R(n int) byte {
	return c.LowerRAM[c.RegAddr(n)]
}

// SetR writes register Rn (0..7) in the active bank.
func (c *CPU) SetR(n int, v byte) {
	c.LowerRAM[c.RegAddr(n)] = v
}

// ReadDirect reads a direct-addressed byte: 0x00-0x7F indexes lower RAM,
// 0x80-0xFF indexes the SFR bank.
func (c *CPU) ReadDirect(addr byte) byte {
	if addr < 0x80 {
		return c.LowerRAM[addr]
	}
	return c.ReadSFR(int(addr) - 0x80)
}

// WriteDirect writes a direct-addressed byte, with the same split as
// ReadDirect.
func (c *CPU) WriteDirect(addr byte, v byte) {
	if addr < 0x80 {
		c.LowerRAM[addr] = v
		return
	}
	c.WriteSFR(int(addr)-0x80, v)
}

// ReadIndirect reads an @Ri-addressed byte: 0x00-0x7F indexes lower RAM;
// 0x80-0xFF indexes upper RAM if present, otherwise raises
// ExceptionStack and returns 0.
func (c *CPU) ReadIndirect(addr byte) byte {
	if addr < 0x80 {
		return c.LowerRAM[addr]
	}
	if c.UpperRAM != nil {
		return c.UpperRAM[addr-0x80]
	}
	c.raiseException(ExceptionStack)
	return 0
}

// WriteIndirect writes an @Ri-addressed byte, with the same split as
// ReadIndirect. Absent upper RAM, the write is dropped after raising
// ExceptionStack.
func (c *CPU) WriteIndirect(addr byte, v byte) {
	if addr < 0x80 {
		c.LowerRAM[addr] = v
		return
	}
	if c.UpperRAM != nil {
		c.UpperRAM[addr-0x80] = v
		return
	}
	c.raiseException(ExceptionStack)
}

// bitAddress resolves a bit address to its containing byte address and
// bit position. Bits 0x00-0x7F map into lower RAM 0x20-0x2F; bits
// 0x80-0xFF map into SFRs whose byte address has a zero low nibble.
func bitAddress(b byte) (byteAddr byte, bit uint) {
	if b < 0x80 {
		return 0x20 + (b >> 3), uint(b & 7)
	}
	return b & 0xF8, uint(b & 7)
}

// ReadBit reads a single bit from the bit-addressable space.
func (c *CPU) ReadBit(b byte) bool {
	byteAddr, bit := bitAddress(b)
	return c.ReadDirect(byteAddr)&(1<<bit) != 0
}

// WriteBit writes a single bit in the bit-addressable space.
func (c *CPU) WriteBit(b byte, v bool) {
	byteAddr, bit := bitAddress(b)
	cur := c.ReadDirect(byteAddr)
	if v {
		cur |= 1 << bit
	} else {
		cur &^= 1 << bit
	}
	c.WriteDirect(byteAddr, cur)
}

// carryBit returns the current value of PSW.C as a 0/1 byte, for use as
// an addend in ADDC/SUBB.
func (c *CPU) carryBit() byte {
	if c.SFR[RegPSW]&PSWMaskC != 0 {
		return 1
	}
	return 0
}

func (c *CPU) setFlag(mask byte, v bool) {
	if v {
		c.SFR[RegPSW] |= mask
	} else {
		c.SFR[RegPSW] &^= mask
	}
}

// C returns PSW.C.
func (c *CPU) C() bool { return c.SFR[RegPSW]&PSWMaskC != 0 }

// SetC sets PSW.C.
func (c *CPU) SetC(v bool) { c.setFlag(PSWMaskC, v) }

// AC returns PSW.AC.
func (c *CPU) AC() bool { return c.SFR[RegPSW]&PSWMaskAC != 0 }

// SetAC sets PSW.AC.
func (c *CPU) SetAC(v bool) { c.setFlag(PSWMaskAC, v) }

// OV returns PSW.OV.
func (c *CPU) OV() bool { return c.SFR[RegPSW]&PSWMaskOV != 0 }

// SetOV sets PSW.OV.
func (c *CPU) SetOV(v bool) { c.setFlag(PSWMaskOV, v) }
