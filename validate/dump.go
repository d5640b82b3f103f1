//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package validate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/markkurossi/sha1model/sha1"
	"github.com/markkurossi/sha1model/trace"
	"github.com/markkurossi/sha1model/utils"
)

// TraceMismatch reports a register value in a trace dump that
// differs from the golden model.
type TraceMismatch struct {
	Loc      utils.Point
	Block    uint64
	Round    int
	Register string
	Got      uint32
	Expected uint32
}

func (m *TraceMismatch) Error() string {
	where := fmt.Sprintf("round %d", m.Round)
	if m.Round < 0 {
		where = "digest"
	}
	return fmt.Sprintf("%s: block %d: %s: %s=%08x, expected %08x",
		m.Loc, m.Block, where, m.Register, m.Got, m.Expected)
}

// CompareTrace compares a register trace dump, for example from an
// HDL simulation, with the golden model processing blocks from reset.
// The dump consists of the lines:
//
//	block N                 selects the 1-based block index
//	T A B C D E             registers after round T (hex)
//	digest H0 H1 H2 H3 H4   chaining state after the block (hex)
//
// Empty lines and lines starting with '#' are ignored. Rounds may be
// omitted from the dump but every block must have its digest line.
// CompareTrace returns a *TraceMismatch for the first differing
// register.
func CompareTrace(in io.Reader, source string, blocks []sha1.Block) error {
	rec := trace.NewRecorder()
	e := sha1.New()
	e.SetTracer(rec)
	e.Reset()
	for i := range blocks {
		e.Process(&blocks[i])
	}

	loc := utils.Point{
		Source: source,
	}
	var current *trace.BlockRecord
	var compared int
	digests := make(map[uint64]bool)

	check := func(names string, got []uint64, expected []uint32,
		round int) error {

		for i, v := range got {
			if v > 0xffffffff {
				return fmt.Errorf("%s: value %x out of range", loc, v)
			}
			if uint32(v) != expected[i] {
				return &TraceMismatch{
					Loc:      loc,
					Block:    current.Block,
					Round:    round,
					Register: names[i : i+1],
					Got:      uint32(v),
					Expected: expected[i],
				}
			}
		}
		compared++
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		loc.Line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "block":
			if len(fields) != 2 {
				return fmt.Errorf("%s: invalid block line", loc)
			}
			n, err := strconv.ParseUint(fields[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%s: invalid block index: %v", loc, err)
			}
			current = rec.Get(n)
			if current == nil {
				return fmt.Errorf("%s: block %d not in input (%d blocks)",
					loc, n, len(blocks))
			}
			continue
		}
		if current == nil {
			return fmt.Errorf("%s: data before block line", loc)
		}
		if len(fields) != 6 {
			return fmt.Errorf("%s: invalid line: expected 6 fields, got %d",
				loc, len(fields))
		}
		values, err := parseHex(fields[1:])
		if err != nil {
			return fmt.Errorf("%s: %v", loc, err)
		}

		if fields[0] == "digest" {
			if err := check("01234", values, current.Digest[:], -1); err != nil {
				if m, ok := err.(*TraceMismatch); ok {
					m.Register = "H" + m.Register
				}
				return err
			}
			digests[current.Block] = true
			continue
		}
		t, err := strconv.Atoi(fields[0])
		if err != nil || t < 0 || t >= sha1.ScheduleWords {
			return fmt.Errorf("%s: invalid round '%s'", loc, fields[0])
		}
		out := current.Rounds[t].Out
		err = check("abcde", values,
			[]uint32{out.A, out.B, out.C, out.D, out.E}, t)
		if err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if compared == 0 {
		return fmt.Errorf("%s: no trace data", source)
	}
	for n := uint64(1); n <= uint64(len(blocks)); n++ {
		if !digests[n] {
			return fmt.Errorf("%s: block %d: missing digest", source, n)
		}
	}
	return nil
}

func parseHex(fields []string) ([]uint64, error) {
	result := make([]uint64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimPrefix(f, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value '%s'", f)
		}
		result[i] = v
	}
	return result, nil
}
