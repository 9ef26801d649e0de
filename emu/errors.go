package emu

import "errors"

// Host errors are rejected at construction time (New); they are distinct
// from the architectural exceptions delivered through Hooks.Exception,
// which are diagnostics the core continues to run past.
var (
	// ErrInvalidCodeMemSize is returned when code memory is missing or its
	// length is not a power of two.
	ErrInvalidCodeMemSize = errors.New("emu: code memory size must be a non-zero power of two")

	// ErrInvalidExtMemSize is returned when external data memory's length
	// is non-zero and not a power of two.
	ErrInvalidExtMemSize = errors.New("emu: external memory size must be a power of two")
)
