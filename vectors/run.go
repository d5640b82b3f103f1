//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"fmt"
	"io"
	"sort"

	"github.com/markkurossi/sha1model/sha1"
	"github.com/markkurossi/tabulate"
)

// Mismatch reports a chaining state that differs from the expected
// test vector value.
type Mismatch struct {
	Vector   string
	Block    uint64
	Got      sha1.State
	Expected sha1.State
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("%s: block %d: digest mismatch: got %v, expected %v",
		m.Vector, m.Block, m.Got, m.Expected)
}

// Run resets the engine, processes the vector blocks, and verifies
// all checkpoints. It returns a *Mismatch error for the first failed
// checkpoint.
func Run(e *sha1.Engine, v Vector) error {
	total := v.NumBlocks()

	checkpoints := make([]Checkpoint, len(v.Checkpoints))
	copy(checkpoints, v.Checkpoints)
	sort.SliceStable(checkpoints, func(i, j int) bool {
		return checkpoints[i].After < checkpoints[j].After
	})
	if len(checkpoints) > 0 && checkpoints[len(checkpoints)-1].After > total {
		return fmt.Errorf("%s: checkpoint after block %d beyond %d blocks",
			v.Name, checkpoints[len(checkpoints)-1].After, total)
	}

	e.Reset()

	check := func(n uint64) error {
		for len(checkpoints) > 0 && checkpoints[0].After == n {
			if got := e.Digest(); got != checkpoints[0].Expected {
				return &Mismatch{
					Vector:   v.Name,
					Block:    n,
					Got:      got,
					Expected: checkpoints[0].Expected,
				}
			}
			checkpoints = checkpoints[1:]
		}
		return nil
	}

	if err := check(0); err != nil {
		return err
	}
	for n := uint64(1); n <= total; n++ {
		e.Process(v.Block(n))
		if err := check(n); err != nil {
			return err
		}
	}
	return nil
}

// Result holds the outcome of one vector.
type Result struct {
	Vector string
	Blocks uint64
	Digest sha1.State
	Err    error
}

// Report collects vector results.
type Report struct {
	Results []Result
}

// Run runs the vector with the engine and adds its result to the
// report.
func (r *Report) Run(e *sha1.Engine, v Vector) error {
	err := Run(e, v)
	r.Results = append(r.Results, Result{
		Vector: v.Name,
		Blocks: e.Blocks(),
		Digest: e.Digest(),
		Err:    err,
	})
	return err
}

// Failed returns the number of failed vectors.
func (r *Report) Failed() int {
	var count int
	for _, result := range r.Results {
		if result.Err != nil {
			count++
		}
	}
	return count
}

// Print prints the report as a table.
func (r *Report) Print(out io.Writer) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Vector").SetAlign(tabulate.ML)
	tab.Header("Blocks").SetAlign(tabulate.MR)
	tab.Header("Digest").SetAlign(tabulate.ML)
	tab.Header("Result").SetAlign(tabulate.ML)

	for _, result := range r.Results {
		row := tab.Row()
		row.Column(result.Vector)
		row.Column(fmt.Sprintf("%d", result.Blocks))
		row.Column(result.Digest.String())
		if result.Err != nil {
			row.Column("FAIL").SetFormat(tabulate.FmtBold)
		} else {
			row.Column("ok")
		}
	}
	tab.Print(out)

	for _, result := range r.Results {
		if result.Err != nil {
			fmt.Fprintf(out, "%s\n", result.Err)
		}
	}
}
