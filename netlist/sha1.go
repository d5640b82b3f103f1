//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

import (
	"github.com/markkurossi/sha1model/circuit"
	"github.com/markkurossi/sha1model/sha1"
)

// SHA1Compress builds the SHA-1 compression function as a boolean
// circuit. The circuit has two inputs, the chaining state h (160 bits)
// and the message block (512 bits), and one output, the new chaining
// state h (160 bits). Word j of an argument occupies bits 32j..32j+31,
// LSB first.
func SHA1Compress() *circuit.Circuit {
	b := NewBuilder()

	h := Words(b.Input("h", sha1.StateWords*32))
	block := Words(b.Input("block", sha1.BlockWords*32))

	// Message schedule.
	var w [sha1.ScheduleWords]Word
	copy(w[:], block)
	for i := sha1.BlockWords; i < sha1.ScheduleWords; i++ {
		w[i] = RotateLeft(b.Xor(b.Xor3(w[i-3], w[i-8], w[i-14]), w[i-16]), 1)
	}

	var k [4]Word
	for i := range k {
		k[i] = b.Const(sha1.RoundConstant(i * 20))
	}

	a, bb, c, d, e := h[0], h[1], h[2], h[3], h[4]
	for t := 0; t < sha1.ScheduleWords; t++ {
		var f Word
		switch t / 20 {
		case 0:
			f = b.Ch(bb, c, d)
		case 2:
			f = b.Maj(bb, c, d)
		default:
			f = b.Xor3(bb, c, d)
		}
		T := b.Add(b.Add(RotateLeft(a, 5), f), b.Add(b.Add(e, k[t/20]), w[t]))
		a, bb, c, d, e = T, a, RotateLeft(bb, 30), c, d
	}

	out := []Word{
		b.Add(h[0], a),
		b.Add(h[1], bb),
		b.Add(h[2], c),
		b.Add(h[3], d),
		b.Add(h[4], e),
	}

	return b.Compile(Output{
		Name:  "h",
		Wires: Wires(out...),
	})
}
