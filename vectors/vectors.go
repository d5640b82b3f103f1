//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package vectors implements known-answer test vectors and the
// harness that runs them against the SHA-1 compression engine.
package vectors

import (
	"github.com/markkurossi/sha1model/sha1"
)

// Vector defines a sequence of message blocks and the expected
// chaining states at checkpoints of the sequence.
type Vector struct {
	Name   string
	Blocks []sha1.Block

	// Repeat specifies how many times Blocks is processed. The
	// values 0 and 1 both process the blocks once.
	Repeat int

	Checkpoints []Checkpoint
}

// Checkpoint specifies the expected chaining state after a number of
// processed blocks. The value After=0 checks the state right after
// reset.
type Checkpoint struct {
	After    uint64
	Expected sha1.State
}

// NumBlocks returns the total number of blocks the vector processes.
func (v Vector) NumBlocks() uint64 {
	repeat := v.Repeat
	if repeat < 1 {
		repeat = 1
	}
	return uint64(len(v.Blocks)) * uint64(repeat)
}

// Block returns the block with the 1-based index n.
func (v Vector) Block(n uint64) *sha1.Block {
	return &v.Blocks[(n-1)%uint64(len(v.Blocks))]
}

// Message creates a vector from a padded message and its expected
// digest.
func Message(name, msg string, expected sha1.State) Vector {
	blocks := Pad([]byte(msg))
	return Vector{
		Name:   name,
		Blocks: blocks,
		Checkpoints: []Checkpoint{
			{
				After:    uint64(len(blocks)),
				Expected: expected,
			},
		},
	}
}

// NIST returns the NIST SHA-1 example vectors.
func NIST() []Vector {
	repeat := sha1.Block{
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
		0xaa55aa55, 0xdeadbeef, 0x55aa55aa, 0xf00ff00f,
	}
	return []Vector{
		{
			Name: "reset",
			Checkpoints: []Checkpoint{
				{
					After:    0,
					Expected: sha1.IV,
				},
			},
		},
		{
			Name: "single-block",
			Blocks: []sha1.Block{
				{
					0x61626380, 0, 0, 0, 0, 0, 0, 0,
					0, 0, 0, 0, 0, 0, 0, 0x00000018,
				},
			},
			Checkpoints: []Checkpoint{
				{
					After: 1,
					Expected: sha1.State{
						0xa9993e36, 0x4706816a, 0xba3e2571,
						0x7850c26c, 0x9cd0d89d,
					},
				},
			},
		},
		{
			Name: "dual-block",
			Blocks: []sha1.Block{
				{
					0x61626364, 0x62636465, 0x63646566, 0x64656667,
					0x65666768, 0x66676869, 0x6768696a, 0x68696a6b,
					0x696a6b6c, 0x6a6b6c6d, 0x6b6c6d6e, 0x6c6d6e6f,
					0x6d6e6f70, 0x6e6f7071, 0x80000000, 0x00000000,
				},
				{
					0, 0, 0, 0, 0, 0, 0, 0,
					0, 0, 0, 0, 0, 0, 0, 0x000001c0,
				},
			},
			Checkpoints: []Checkpoint{
				{
					After: 1,
					Expected: sha1.State{
						0xf4286818, 0xc37b27ae, 0x0408f581,
						0x84677148, 0x4a566572,
					},
				},
				{
					After: 2,
					Expected: sha1.State{
						0x84983e44, 0x1c3bd26e, 0xbaae4aa1,
						0xf95129e5, 0xe54670f1,
					},
				},
			},
		},
		{
			Name:   "huge",
			Blocks: []sha1.Block{repeat},
			Repeat: 10000,
			Checkpoints: []Checkpoint{
				{
					After: 10000,
					Expected: sha1.State{
						0xea2ebc79, 0x35516705, 0xde1e1467,
						0x31e55587, 0xa0038725,
					},
				},
			},
		},
	}
}
