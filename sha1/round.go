//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

import (
	"fmt"
)

// Registers holds the working registers a..e of the round transform.
type Registers struct {
	A, B, C, D, E uint32
}

func (r Registers) String() string {
	return fmt.Sprintf("a=%08x b=%08x c=%08x d=%08x e=%08x",
		r.A, r.B, r.C, r.D, r.E)
}

// Round function and constant per 20-round stage.
var stages = [4]struct {
	f    func(x, y, z uint32) uint32
	k    uint32
	name string
}{
	{Ch, 0x5a827999, "Ch"},
	{Parity, 0x6ed9eba1, "Parity"},
	{Maj, 0x8f1bbcdc, "Maj"},
	{Parity, 0xca62c1d6, "Parity"},
}

// Ch is the choose function of rounds 0-19.
func Ch(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

// Parity is the parity function of rounds 20-39 and 60-79.
func Parity(x, y, z uint32) uint32 {
	return x ^ y ^ z
}

// Maj is the majority function of rounds 40-59.
func Maj(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// RoundConstant returns the additive constant k of round t.
func RoundConstant(t int) uint32 {
	return stages[t/20].k
}

// RoundFunction returns the name and the round function f of round t.
func RoundFunction(t int) (string, func(x, y, z uint32) uint32) {
	s := stages[t/20]
	return s.name, s.f
}

// Compress runs the 80-round transform over the schedule w and
// returns the new chaining state.
func Compress(h State, w *Schedule) State {
	return compress(h, w, nil, 0)
}

func compress(h State, w *Schedule, tracer Tracer, block uint64) State {
	regs := Registers{
		A: h[0],
		B: h[1],
		C: h[2],
		D: h[3],
		E: h[4],
	}

	var r Round
	for t := 0; t < ScheduleWords; t++ {
		s := &stages[t/20]
		f := s.f(regs.B, regs.C, regs.D)
		T := RotateLeft(regs.A, 5) + f + regs.E + s.k + w[t]

		if tracer != nil {
			r = Round{
				T:  t,
				In: regs,
				F:  f,
				K:  s.k,
				W:  w[t],
			}
		}

		regs.E = regs.D
		regs.D = regs.C
		regs.C = RotateLeft(regs.B, 30)
		regs.B = regs.A
		regs.A = T

		if tracer != nil {
			r.Temp = T
			r.Out = regs
			tracer.Round(block, &r)
		}
	}

	h[0] += regs.A
	h[1] += regs.B
	h[2] += regs.C
	h[3] += regs.D
	h[4] += regs.E

	return h
}
