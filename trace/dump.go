//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package trace

import (
	"fmt"
	"io"

	"github.com/markkurossi/sha1model/sha1"
)

// Dump writes the register trace in the line format HDL testbenches
// emit: a "block N" line, one "T a b c d e" line per round, and a
// "digest H0 .. H4" line per block.
type Dump struct {
	out io.Writer
}

// NewDump creates a new trace dump writer.
func NewDump(out io.Writer) *Dump {
	return &Dump{
		out: out,
	}
}

// Schedule implements sha1.Tracer.Schedule.
func (d *Dump) Schedule(block uint64, w *sha1.Schedule) {
	fmt.Fprintf(d.out, "block %d\n", block)
}

// Round implements sha1.Tracer.Round.
func (d *Dump) Round(block uint64, r *sha1.Round) {
	fmt.Fprintf(d.out, "%d %08x %08x %08x %08x %08x\n",
		r.T, r.Out.A, r.Out.B, r.Out.C, r.Out.D, r.Out.E)
}

// Digest implements sha1.Tracer.Digest.
func (d *Dump) Digest(block uint64, h sha1.State) {
	fmt.Fprintf(d.out, "digest %v\n", h)
}
