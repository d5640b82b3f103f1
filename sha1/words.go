//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// StateWords is the number of 32-bit words in the chaining state.
	StateWords = 5

	// BlockWords is the number of 32-bit words in a message block.
	BlockWords = 16

	// ScheduleWords is the number of words in the message schedule.
	ScheduleWords = 80

	// Size is the size of the digest in bytes.
	Size = StateWords * 4

	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
	init4 = 0xc3d2e1f0
)

// Boundary errors.
var (
	ErrBlockSize = errors.New("invalid block size")
	ErrWordRange = errors.New("word out of 32-bit range")
)

// State holds the chaining state H0..H4.
type State [StateWords]uint32

// Block holds one padded 512-bit message block as sixteen big-endian
// words.
type Block [BlockWords]uint32

// Schedule holds the eighty expanded message words W[0..79].
type Schedule [ScheduleWords]uint32

// IV is the SHA-1 initialization vector.
var IV = State{init0, init1, init2, init3, init4}

// RotateLeft rotates the 32-bit word x left by r bits.
func RotateLeft(x uint32, r int) uint32 {
	return bits.RotateLeft32(x, r)
}

func (s State) String() string {
	var sb strings.Builder
	for i, w := range s {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}
	return sb.String()
}

// Bytes returns the state as a big-endian byte array.
func (s State) Bytes() [Size]byte {
	var result [Size]byte
	for i, w := range s {
		binary.BigEndian.PutUint32(result[i*4:], w)
	}
	return result
}

func (b Block) String() string {
	var sb strings.Builder
	for i, w := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%08x", w)
	}
	return sb.String()
}

// ParseState parses five hexadecimal words separated by whitespace
// or commas.
func ParseState(val string) (State, error) {
	var result State

	words, err := parseWords(val)
	if err != nil {
		return result, err
	}
	if len(words) != StateWords {
		return result, fmt.Errorf("sha1: invalid state size %d, expected %d",
			len(words), StateWords)
	}
	for i, w := range words {
		result[i] = uint32(w)
	}
	return result, nil
}

// ParseBlock parses sixteen hexadecimal words separated by whitespace
// or commas.
func ParseBlock(val string) (Block, error) {
	words, err := parseWords(val)
	if err != nil {
		return Block{}, err
	}
	return MakeBlock(words)
}

// MakeBlock validates words at the engine boundary and returns them
// as a Block. It rejects anything but exactly sixteen words, each in
// the 32-bit range.
func MakeBlock(words []uint64) (Block, error) {
	var result Block

	if len(words) != BlockWords {
		return result, fmt.Errorf("sha1: %w %d, expected %d",
			ErrBlockSize, len(words), BlockWords)
	}
	for i, w := range words {
		if w > 0xffffffff {
			return result, fmt.Errorf("sha1: %w: word %d: 0x%x",
				ErrWordRange, i, w)
		}
		result[i] = uint32(w)
	}
	return result, nil
}

func parseWords(val string) ([]uint64, error) {
	fields := strings.FieldsFunc(val, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var result []uint64
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		v, err := strconv.ParseUint(f, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("sha1: invalid word '%s'", f)
		}
		result = append(result, v)
	}
	return result, nil
}
