//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package trace

import (
	"bytes"
	"strings"
	"testing"

	"github.com/markkurossi/sha1model/sha1"
)

var abc = sha1.Block{
	0x61626380, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0x00000018,
}

func run(tracer sha1.Tracer, blocks ...sha1.Block) sha1.State {
	e := sha1.New()
	e.SetTracer(tracer)
	e.Reset()
	for i := range blocks {
		e.Process(&blocks[i])
	}
	return e.Digest()
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer

	h := run(NewPrinter(&buf), abc)
	if h != run(nil, abc) {
		t.Fatalf("printer changed digest")
	}
	out := buf.String()
	for _, s := range []string{
		"W[00] = 0x61626380",
		"W[16] = 0xc2c4c700",
		"Round 0\n",
		"Round 79\n",
		"a = 0x0116fc33, b = 0x67452301, c = 0x7bf36ae2",
		"Digest after block 1: a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("printer output does not contain %q", s)
		}
	}
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	h := run(rec, abc, abc)

	if len(rec.Blocks) != 2 {
		t.Fatalf("recorded %d blocks, expected 2", len(rec.Blocks))
	}
	if rec.Get(2).Digest != h {
		t.Errorf("block 2 digest %v != %v", rec.Get(2).Digest, h)
	}
	b1 := rec.Get(1)
	if b1.Schedule[0] != 0x61626380 {
		t.Errorf("schedule W[0]=%08x", b1.Schedule[0])
	}
	for i, r := range b1.Rounds {
		if r.T != i {
			t.Fatalf("round %d recorded as %d", i, r.T)
		}
		if i > 0 && r.In != b1.Rounds[i-1].Out {
			t.Errorf("round %d input does not chain from round %d", i, i-1)
		}
	}
	if b1.Rounds[0].Out.A != 0x0116fc33 {
		t.Errorf("round 0 a=%08x", b1.Rounds[0].Out.A)
	}
	if rec.Get(3) != nil {
		t.Errorf("unexpected record for block 3")
	}
	rec.Reset()
	if len(rec.Blocks) != 0 {
		t.Errorf("Reset did not clear records")
	}
}

func TestTable(t *testing.T) {
	tab := NewTable()
	rec := NewRecorder()
	run(Multi{tab, rec}, abc)

	var buf bytes.Buffer
	tab.Flush(&buf)
	out := buf.String()
	if !strings.Contains(out, Label("Block", 1)) {
		t.Errorf("table output missing block label")
	}
	for _, s := range []string{"0116fc33", "42541b35", "a9993e36", "ca62c1d6"} {
		if !strings.Contains(out, s) {
			t.Errorf("table output does not contain %s", s)
		}
	}
	if len(rec.Blocks) != 1 {
		t.Errorf("multi tracer did not reach recorder")
	}

	buf.Reset()
	tab.Flush(&buf)
	if buf.Len() != 0 {
		t.Errorf("Flush did not clear tables")
	}
}

func TestLabel(t *testing.T) {
	if l := Label("H", 12); l != "H¹²" {
		t.Errorf("Label: got %q", l)
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	run(NewDump(&buf), abc)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 82 {
		t.Fatalf("dump has %d lines, expected 82", len(lines))
	}
	if lines[0] != "block 1" {
		t.Errorf("line 1: %s", lines[0])
	}
	if lines[1] != "0 0116fc33 67452301 7bf36ae2 98badcfe 10325476" {
		t.Errorf("line 2: %s", lines[1])
	}
	if lines[81] != "digest a9993e36 4706816a ba3e2571 7850c26c 9cd0d89d" {
		t.Errorf("line 82: %s", lines[81])
	}
}
