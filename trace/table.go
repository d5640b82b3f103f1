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
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
)

// Table collects the rounds of each block into a table. The tables
// are rendered with Flush.
type Table struct {
	tables []*blockTable
}

type blockTable struct {
	block uint64
	tab   *tabulate.Tabulate
}

// NewTable creates a new table tracer.
func NewTable() *Table {
	return new(Table)
}

// Schedule implements sha1.Tracer.Schedule.
func (t *Table) Schedule(block uint64, w *sha1.Schedule) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("t").SetAlign(tabulate.MR)
	for _, hdr := range []string{"a", "b", "c", "d", "e", "f", "k", "W"} {
		tab.Header(hdr).SetAlign(tabulate.ML)
	}
	t.tables = append(t.tables, &blockTable{
		block: block,
		tab:   tab,
	})
}

// Round implements sha1.Tracer.Round.
func (t *Table) Round(block uint64, r *sha1.Round) {
	bt := t.current(block)
	if bt == nil {
		return
	}
	row := bt.tab.Row()
	row.Column(fmt.Sprintf("%d", r.T))
	for _, v := range []uint32{
		r.Out.A, r.Out.B, r.Out.C, r.Out.D, r.Out.E, r.F, r.K, r.W,
	} {
		row.Column(fmt.Sprintf("%08x", v))
	}
}

// Digest implements sha1.Tracer.Digest.
func (t *Table) Digest(block uint64, h sha1.State) {
	bt := t.current(block)
	if bt == nil {
		return
	}
	row := bt.tab.Row()
	row.Column(Label("H", block)).SetFormat(tabulate.FmtBold)
	for _, v := range h {
		row.Column(fmt.Sprintf("%08x", v)).SetFormat(tabulate.FmtBold)
	}
}

func (t *Table) current(block uint64) *blockTable {
	if len(t.tables) == 0 {
		return nil
	}
	bt := t.tables[len(t.tables)-1]
	if bt.block != block {
		return nil
	}
	return bt
}

// Flush prints all collected tables to out and clears the tracer.
func (t *Table) Flush(out io.Writer) {
	for _, bt := range t.tables {
		fmt.Fprintf(out, "%s:\n", Label("Block", bt.block))
		bt.tab.Print(out)
	}
	t.tables = nil
}

// Label returns name with the block index as superscript, for example
// H¹².
func Label(name string, block uint64) string {
	return name + superscript.Itoa(int(block))
}
