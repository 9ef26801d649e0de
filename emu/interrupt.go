package emu

// intSource describes one interrupt request line: how to tell whether it
// is enabled and pending, how to clear its request flag on acknowledgment
// (nil for sources the ISR must clear itself, such as RI/TI), its
// priority-select bit in IP, and its service vector.
type intSource struct {
	name    string
	ieMask  byte
	ipMask  byte
	pending func(c *CPU) bool
	ack     func(c *CPU) // nil: request flag is left for software to clear
	vector  uint16
}

// interruptSources lists the five request lines in their fixed sampling
// order: external 0, timer 0, external 1, timer 1, then serial.
var interruptSources = [5]intSource{
	{
		name:   "IE0",
		ieMask: IEMaskEX0,
		ipMask: IPMaskPX0,
		pending: func(c *CPU) bool {
			return c.SFR[RegTCON]&TCONMaskIE0 != 0
		},
		ack: func(c *CPU) {
			if c.SFR[RegTCON]&TCONMaskIT0 != 0 {
				c.SFR[RegTCON] &^= TCONMaskIE0
			}
		},
		vector: 0x0003,
	},
	{
		name:   "TF0",
		ieMask: IEMaskET0,
		ipMask: IPMaskPT0,
		pending: func(c *CPU) bool {
			return c.SFR[RegTCON]&TCONMaskTF0 != 0
		},
		ack: func(c *CPU) {
			c.SFR[RegTCON] &^= TCONMaskTF0
		},
		vector: 0x000B,
	},
	{
		name:   "IE1",
		ieMask: IEMaskEX1,
		ipMask: IPMaskPX1,
		pending: func(c *CPU) bool {
			return c.SFR[RegTCON]&TCONMaskIE1 != 0
		},
		ack: func(c *CPU) {
			if c.SFR[RegTCON]&TCONMaskIT1 != 0 {
				c.SFR[RegTCON] &^= TCONMaskIE1
			}
		},
		vector: 0x0013,
	},
	{
		name:   "TF1",
		ieMask: IEMaskET1,
		ipMask: IPMaskPT1,
		pending: func(c *CPU) bool {
			return c.SFR[RegTCON]&TCONMaskTF1 != 0
		},
		ack: func(c *CPU) {
			c.SFR[RegTCON] &^= TCONMaskTF1
		},
		vector: 0x001B,
	},
	{
		name:   "RI|TI",
		ieMask: IEMaskES,
		ipMask: IPMaskPS,
		pending: func(c *CPU) bool {
			return c.SFR[RegSCON]&(SCONMaskRI|SCONMaskTI) != 0
		},
		ack:    nil,
		vector: 0x0023,
	},
}

// CheckInterrupts samples the five request lines in order and, if one is
// enabled, pending and not blocked by the priority already in service,
// dispatches it: it snapshots A, PSW and SP, pushes PC, raises the
// matching InterruptActive bit, sets PC to the source's vector and loads
// a one-cycle tick delay for the LCALL-equivalent entry. It returns true
// if an interrupt was dispatched, in which case the instruction that
// would otherwise have run at PC is deferred to the next Tick.
func (c *CPU) CheckInterrupts() bool {
	if c.SFR[RegIE]&IEMaskEA == 0 {
		return false
	}

	for _, src := range interruptSources {
		if c.SFR[RegIE]&src.ieMask == 0 || !src.pending(c) {
			continue
		}

		level := 0
		if c.SFR[RegIP]&src.ipMask != 0 {
			level = 1
		}
		activeBit := byte(1) << uint(level)

		if level == 0 && c.InterruptActive != 0 {
			continue
		}
		if level == 1 && c.InterruptActive&interruptActiveHigh != 0 {
			continue
		}

		if src.ack != nil {
			src.ack(c)
		}

		c.IntSnapshot[level] = IntSnapshot{A: c.A(), PSW: c.PSW(), SP: c.SP()}
		c.push(byte(c.PC))
		c.push(byte(c.PC >> 8))
		c.InterruptActive |= activeBit
		c.PC = src.vector
		c.TickDelay = 1
		return true
	}

	return false
}

// pswIretIgnoreMask covers the bits RETI's mismatch check excludes: P is
// recomputed by every ACC write, F0 is a general-purpose user flag and
// bit 1 (F1) is unused, so none of them constrains whether control
// returned correctly.
const pswIretIgnoreMask = PSWMaskP | PSWMaskF0 | PSWMaskF1

// returnFromInterrupt validates RETI against the snapshot taken at
// dispatch and clears the innermost InterruptActive bit. A high-priority
// ISR is assumed to be the one returning whenever one is in flight, since
// it can only have preempted, never coexisted with, another high-priority
// ISR.
func (c *CPU) returnFromInterrupt() {
	level := 0
	if c.InterruptActive&interruptActiveHigh != 0 {
		level = 1
	} else if c.InterruptActive&interruptActiveLow == 0 {
		return
	}

	snap := c.IntSnapshot[level]
	if c.SP() != snap.SP {
		c.raiseException(ExceptionIretSPMismatch)
	}
	if c.PSW()&^byte(pswIretIgnoreMask) != snap.PSW&^byte(pswIretIgnoreMask) {
		c.raiseException(ExceptionIretPSWMismatch)
	}
	if c.A() != snap.A {
		c.raiseException(ExceptionIretAccMismatch)
	}

	c.InterruptActive &^= byte(1) << uint(level)
}
