//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

// Tracer receives intermediate values while the engine processes
// blocks. Tracers observe only; they never change the computed
// digest. The block argument is the 1-based index of the block since
// the last Reset.
type Tracer interface {
	// Schedule is called with a copy of the expanded message
	// schedule before the rounds of the block run.
	Schedule(block uint64, w *Schedule)

	// Round is called after each of the 80 rounds. The round value
	// is reused between calls.
	Round(block uint64, r *Round)

	// Digest is called with the chaining state after the block.
	Digest(block uint64, h State)
}

// Round describes one step of the round transform.
type Round struct {
	// T is the round index 0..79.
	T int

	// In holds the working registers before the round.
	In Registers

	// F, K, and W are the round function value, the round constant,
	// and the schedule word of the round.
	F uint32
	K uint32
	W uint32

	// Temp is the new value of register a.
	Temp uint32

	// Out holds the working registers after the round.
	Out Registers
}
