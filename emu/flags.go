package emu

// AddFlags computes a+b+cin as a wrapped byte and updates C, AC and OV
// to match. It does not touch P; callers that write the result into A
// go through SetA, which recomputes parity separately.
func (c *CPU) AddFlags(a, b, cin byte) byte {
	raw := int(a) + int(b) + int(cin)
	result := byte(raw)

	c.SetC(raw > 0xFF)
	c.SetAC((a&0xF)+(b&0xF)+cin > 0xF)
	c.SetOV((a^result)&(b^result)&0x80 != 0)

	return result
}

// SubFlags computes a-b-bin as a wrapped byte and updates C (borrow), AC
// and OV to match.
func (c *CPU) SubFlags(a, b, bin byte) byte {
	raw := int(a) - int(b) - int(bin)
	result := byte(raw)

	c.SetC(raw < 0)
	c.SetAC(int(a&0xF)-int(b&0xF)-int(bin) < 0)
	c.SetOV((a^b)&(a^result)&0x80 != 0)

	return result
}

// Mul stores the 16-bit product A*B into B:A (high byte in B, low in A),
// clears C, and sets OV when the product exceeds 0xFF, i.e. when the new
// B is non-zero.
func (c *CPU) Mul() {
	a, b := c.A(), c.B()
	product := uint16(a) * uint16(b)
	overflow := product > 0xFF

	c.SetC(false)
	c.SetOV(overflow)
	c.SetA(byte(product))
	c.SetB(byte(product >> 8))
}

// Div performs A,B = A/B, A%B. On division by zero, A and B are left
// unchanged (architecturally undefined beyond C=0, OV=1), C is cleared
// and OV is set; otherwise C and OV are both cleared.
func (c *CPU) Div() {
	a, b := c.A(), c.B()
	c.SetC(false)
	if b == 0 {
		c.SetOV(true)
		return
	}
	c.SetOV(false)
	quotient, remainder := a/b, a%b
	c.SetA(quotient)
	c.SetB(remainder)
}

// DA performs the decimal-adjust-accumulator correction following an
// ADD/ADDC on packed-BCD operands.
func (c *CPU) DA() {
	a := c.A()
	carry := c.C()

	if a&0xF > 9 || c.AC() {
		sum := int(a) + 0x06
		a = byte(sum)
		if sum > 0xFF {
			carry = true
		}
	}
	if a>>4 > 9 || carry {
		sum := int(a) + 0x60
		a = byte(sum)
		carry = true
	}

	c.SetC(carry)
	c.SetA(a)
}
