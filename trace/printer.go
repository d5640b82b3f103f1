//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package trace implements tracers that expose the intermediate
// values of the SHA-1 compression engine for step-by-step
// verification.
package trace

import (
	"fmt"
	"io"

	"github.com/markkurossi/sha1model/sha1"
)

// Printer prints the message schedule and the round inputs and
// outputs in plain text.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
	}
}

// Schedule implements sha1.Tracer.Schedule.
func (p *Printer) Schedule(block uint64, w *sha1.Schedule) {
	fmt.Fprintf(p.out, "Block %d\n", block)
	fmt.Fprintf(p.out, "W after schedule:\n")
	for i, v := range w {
		fmt.Fprintf(p.out, "W[%02d] = 0x%08x\n", i, v)
	}
	fmt.Fprintln(p.out)
}

// Round implements sha1.Tracer.Round.
func (p *Printer) Round(block uint64, r *sha1.Round) {
	fmt.Fprintf(p.out, "Round %d\n", r.T)
	fmt.Fprintf(p.out, "Round input values:\n")
	p.registers(r.In)
	fmt.Fprintf(p.out, "f = 0x%08x, k = 0x%08x, w = 0x%08x\n", r.F, r.K, r.W)
	fmt.Fprintf(p.out, "Round output values:\n")
	p.registers(r.Out)
	fmt.Fprintln(p.out)
}

func (p *Printer) registers(r sha1.Registers) {
	fmt.Fprintf(p.out, "a = 0x%08x, b = 0x%08x, c = 0x%08x\n", r.A, r.B, r.C)
	fmt.Fprintf(p.out, "d = 0x%08x, e = 0x%08x\n", r.D, r.E)
}

// Digest implements sha1.Tracer.Digest.
func (p *Printer) Digest(block uint64, h sha1.State) {
	fmt.Fprintf(p.out, "Digest after block %d: %v\n\n", block, h)
}

// Multi fans tracer calls out to all of its tracers in order.
type Multi []sha1.Tracer

// Schedule implements sha1.Tracer.Schedule.
func (m Multi) Schedule(block uint64, w *sha1.Schedule) {
	for _, t := range m {
		t.Schedule(block, w)
	}
}

// Round implements sha1.Tracer.Round.
func (m Multi) Round(block uint64, r *sha1.Round) {
	for _, t := range m {
		t.Round(block, r)
	}
}

// Digest implements sha1.Tracer.Digest.
func (m Multi) Digest(block uint64, h sha1.State) {
	for _, t := range m {
		t.Digest(block, h)
	}
}
