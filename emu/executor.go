package emu

// Option configures an Executor at construction time.
type Option func(*Executor)

// WithHooks installs the complete hook set in one call, replacing
// whatever the CPU already carries.
func WithHooks(h Hooks) Option {
	return func(e *Executor) { e.cpu.Hooks = h }
}

// WithSFRReadHook installs only the SFR-read hook.
func WithSFRReadHook(f SFRReadFunc) Option {
	return func(e *Executor) { e.cpu.Hooks.SFRRead = f }
}

// WithSFRWriteHook installs only the SFR-write hook.
func WithSFRWriteHook(f SFRWriteFunc) Option {
	return func(e *Executor) { e.cpu.Hooks.SFRWrite = f }
}

// WithExternalMemoryHooks installs the external-memory read and write
// hooks together, since a host that models external peripherals almost
// always needs both.
func WithExternalMemoryHooks(r XReadFunc, w XWriteFunc) Option {
	return func(e *Executor) {
		e.cpu.Hooks.XRead = r
		e.cpu.Hooks.XWrite = w
	}
}

// WithExceptionHook installs the architectural-exception hook.
func WithExceptionHook(f ExceptionFunc) Option {
	return func(e *Executor) { e.cpu.Hooks.Exception = f }
}

// WithDecodeHook installs a disassembler for Executor.Decode.
func WithDecodeHook(f DecodeFunc) Option {
	return func(e *Executor) { e.cpu.Hooks.Decode = f }
}

// Executor drives a CPU's fetch/dispatch loop one machine cycle or one
// full instruction at a time. It owns no state beyond the CPU itself;
// every exported method is a thin synchronous wrapper invoked on the
// caller's own goroutine, so a host embeds it directly into its own event
// loop, test harness or REPL without any handoff.
type Executor struct {
	cpu *CPU
}

// NewExecutor wraps cpu in an Executor, applying opts in order.
func NewExecutor(cpu *CPU, opts ...Option) *Executor {
	e := &Executor{cpu: cpu}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CPU returns the underlying architectural state.
func (e *Executor) CPU() *CPU {
	return e.cpu
}

// Reset puts the underlying CPU through a reset; see CPU.Reset.
func (e *Executor) Reset(wipe bool) {
	e.cpu.Reset(wipe)
}

// Tick advances the CPU by exactly one machine cycle. While an
// instruction's remaining cycles are still counting down, Tick only
// decrements the counter and returns false. Once the counter reaches
// zero, Tick samples the interrupt controller; a dispatch there is an
// interrupt transition; not an instruction retirement, so Tick returns
// false even though it mutated PC and pushed the stack. Absent a
// dispatch, Tick fetches and executes the next opcode, loading its cycle
// cost (minus the cycle Tick itself represents) into TickDelay and
// returns true.
func (e *Executor) Tick() bool {
	c := e.cpu

	if c.TickDelay > 0 {
		c.TickDelay--
		return false
	}

	if c.CheckInterrupts() {
		return false
	}

	opcode := c.fetch()
	cycles := c.opTable[opcode].Exec(c)
	if cycles < 1 {
		cycles = 1
	}
	c.TickDelay = cycles - 1
	return true
}

// DoOp collapses any in-flight tick delay and executes exactly one full
// instruction (or one interrupt dispatch) synchronously, returning its
// cycle cost. It is the convenience entry point for hosts that don't need
// cycle-level granularity.
func (e *Executor) DoOp() int {
	c := e.cpu
	c.TickDelay = 0

	if c.CheckInterrupts() {
		c.TickDelay = 0
		return 2
	}

	opcode := c.fetch()
	cycles := c.opTable[opcode].Exec(c)
	c.TickDelay = 0
	return cycles
}

// Run calls DoOp in a loop until it has executed n instructions (counting
// interrupt dispatches), returning the total cycle count.
func (e *Executor) Run(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += e.DoOp()
	}
	return total
}

// Decode disassembles the instruction at addr into buf and returns its
// length, delegating entirely to Hooks.Decode. With no decode hook
// installed, it returns 0: disassembly is an external collaborator, not
// part of the core.
func (e *Executor) Decode(addr int, buf []byte) int {
	if e.cpu.Hooks.Decode == nil {
		return 0
	}
	return e.cpu.Hooks.Decode(e.cpu, addr, buf)
}
