//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package netlist

// Word holds the wires of a 32-bit word, LSB first.
type Word [32]*Wire

// Words splits the wires into 32-bit words.
func Words(wires []*Wire) []Word {
	if len(wires)%32 != 0 {
		panic("netlist: wire count is not a multiple of 32")
	}
	result := make([]Word, len(wires)/32)
	for i := range result {
		copy(result[i][:], wires[i*32:])
	}
	return result
}

// Wires concatenates the words into a wire slice.
func Wires(words ...Word) []*Wire {
	var result []*Wire
	for _, w := range words {
		result = append(result, w[:]...)
	}
	return result
}

// Const returns the constant word v.
func (b *Builder) Const(v uint32) Word {
	var result Word
	for i := range result {
		if v&(1<<i) != 0 {
			result[i] = b.One()
		} else {
			result[i] = b.Zero()
		}
	}
	return result
}

// RotateLeft rotates x left by r bits. Rotation only rewires and
// emits no gates.
func RotateLeft(x Word, r int) Word {
	var result Word
	for i := range x {
		result[(i+r)%32] = x[i]
	}
	return result
}

// Xor returns x XOR y.
func (b *Builder) Xor(x, y Word) Word {
	var result Word
	for i := range result {
		result[i] = b.XOR(x[i], y[i])
	}
	return result
}

// Xor3 returns x XOR y XOR z.
func (b *Builder) Xor3(x, y, z Word) Word {
	return b.Xor(b.Xor(x, y), z)
}

// Ch returns the choose function (x AND y) XOR (NOT x AND z),
// computed as z XOR (x AND (y XOR z)).
func (b *Builder) Ch(x, y, z Word) Word {
	var result Word
	for i := range result {
		result[i] = b.XOR(z[i], b.AND(x[i], b.XOR(y[i], z[i])))
	}
	return result
}

// Maj returns the majority function, computed as
// (x AND y) XOR (z AND (x XOR y)).
func (b *Builder) Maj(x, y, z Word) Word {
	var result Word
	for i := range result {
		result[i] = b.XOR(b.AND(x[i], y[i]), b.AND(z[i], b.XOR(x[i], y[i])))
	}
	return result
}

// Add returns x+y modulo 2^32 using a ripple-carry adder. The carry
// out of the most significant bit is dropped.
func (b *Builder) Add(x, y Word) Word {
	var result Word

	s, cin := b.HalfAdder(x[0], y[0])
	result[0] = s
	for i := 1; i < len(result); i++ {
		result[i], cin = b.FullAdder(x[i], y[i], cin, i+1 < len(result))
	}
	return result
}
