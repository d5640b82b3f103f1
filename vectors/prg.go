//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/markkurossi/sha1model/env"
	"github.com/markkurossi/sha1model/sha1"
	"golang.org/x/crypto/chacha20"
)

// SeedSize is the size of the PRG seed in bytes.
const SeedSize = chacha20.KeySize

// Seed seeds the pseudo-random block generator.
type Seed [SeedSize]byte

func (s Seed) String() string {
	return hex.EncodeToString(s[:])
}

// RandomSeed creates a new random seed from the configuration's
// entropy source.
func RandomSeed(config *env.Config) (Seed, error) {
	var seed Seed
	_, err := io.ReadFull(config.GetRandom(), seed[:])
	return seed, err
}

// ParseSeed parses a hex-encoded seed.
func ParseSeed(val string) (Seed, error) {
	var seed Seed
	data, err := hex.DecodeString(val)
	if err != nil {
		return seed, err
	}
	if len(data) != SeedSize {
		return seed, fmt.Errorf("invalid seed length %d, expected %d",
			len(data), SeedSize)
	}
	copy(seed[:], data)
	return seed, nil
}

// PRG generates a reproducible stream of message blocks and chaining
// states from the ChaCha20 keystream of its seed.
type PRG struct {
	cipher *chacha20.Cipher
	buf    [sha1.BlockWords * 4]byte
}

// NewPRG creates a new generator for the seed and stream ID. The
// same seed and stream always produce the same values.
func NewPRG(seed Seed, stream uint64) *PRG {
	var nonce [chacha20.NonceSize]byte
	binary.BigEndian.PutUint64(nonce[4:], stream)

	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: c,
	}
}

func (p *PRG) fill(n int) []byte {
	buf := p.buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	p.cipher.XORKeyStream(buf, buf)
	return buf
}

// Block returns the next pseudo-random message block.
func (p *PRG) Block() sha1.Block {
	var result sha1.Block
	buf := p.fill(len(result) * 4)
	for i := range result {
		result[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return result
}

// State returns the next pseudo-random chaining state.
func (p *PRG) State() sha1.State {
	var result sha1.State
	buf := p.fill(len(result) * 4)
	for i := range result {
		result[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return result
}
