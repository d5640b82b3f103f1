//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"encoding/binary"

	"github.com/markkurossi/sha1model/sha1"
)

const (
	chunk = sha1.BlockWords * 4
)

// Pad pads the message and splits it into message blocks. It appends
// the 1 bit, zero bits until 56 bytes mod 64, and the 64-bit
// big-endian message length in bits.
func Pad(msg []byte) []sha1.Block {
	length := uint64(len(msg))

	var t uint64
	if length%chunk < 56 {
		t = 56 - length%chunk
	} else {
		t = chunk + 56 - length%chunk
	}

	data := make([]byte, length+t+8)
	copy(data, msg)
	data[length] = 0x80
	binary.BigEndian.PutUint64(data[length+t:], length<<3)

	blocks := make([]sha1.Block, len(data)/chunk)
	for i := range blocks {
		for j := 0; j < sha1.BlockWords; j++ {
			blocks[i][j] = binary.BigEndian.Uint32(data[i*chunk+j*4:])
		}
	}
	return blocks
}
