//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package validate

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/markkurossi/sha1model/env"
	"github.com/markkurossi/sha1model/sha1"
	"github.com/markkurossi/sha1model/utils"
	"github.com/markkurossi/sha1model/vectors"
	"golang.org/x/sync/errgroup"
)

// Failure reports an implementation result that differs from the
// golden model.
type Failure struct {
	Implementation string

	// Vector names the failing vector and Block the 1-based block
	// index in it. For random trials, Vector is empty and Trial
	// holds the trial index.
	Vector string
	Block  uint64
	Trial  int

	Input    sha1.State
	Data     sha1.Block
	Got      sha1.State
	Expected sha1.State
}

func (f *Failure) Error() string {
	var where string
	if len(f.Vector) > 0 {
		where = fmt.Sprintf("%s: block %d", f.Vector, f.Block)
	} else {
		where = fmt.Sprintf("trial %d", f.Trial)
	}
	return fmt.Sprintf("%s: %s: got %v, expected %v (h=%v)",
		f.Implementation, where, f.Got, f.Expected, f.Input)
}

// Validator validates implementations against the golden model.
type Validator struct {
	Config *env.Config
	Log    *utils.Logger

	// MaxBlocks skips vectors with more blocks. The value 0 does not
	// limit the vectors.
	MaxBlocks uint64
}

// NewValidator creates a new validator.
func NewValidator(config *env.Config, log *utils.Logger) *Validator {
	if log == nil {
		log = utils.NewLogger(io.Discard)
	}
	return &Validator{
		Config: config,
		Log:    log,
	}
}

// Vectors chains the vector blocks through the implementation and
// compares the state after every block with the golden engine.
func (v *Validator) Vectors(impl Implementation, vecs []vectors.Vector) error {
	e := sha1.New()

	for _, vec := range vecs {
		total := vec.NumBlocks()
		if v.MaxBlocks > 0 && total > v.MaxBlocks {
			v.Log.Warningf(utils.Point{Source: vec.Name},
				"skipping %d blocks, limit is %d", total, v.MaxBlocks)
			continue
		}
		v.Log.Debugf("%s: %s: %d blocks", impl.Name(), vec.Name, total)

		e.Reset()
		for n := uint64(1); n <= total; n++ {
			block := vec.Block(n)
			h := e.Digest()

			got, err := impl.Compress(h, block)
			if err != nil {
				return fmt.Errorf("%s: %s: block %d: %v",
					impl.Name(), vec.Name, n, err)
			}
			e.Process(block)
			if got != e.Digest() {
				return &Failure{
					Implementation: impl.Name(),
					Vector:         vec.Name,
					Block:          n,
					Input:          h,
					Data:           *block,
					Got:            got,
					Expected:       e.Digest(),
				}
			}
		}
	}
	return nil
}

// Random compresses n pseudo-random (state, block) pairs with the
// implementation and the golden model. Trial i draws its values from
// the PRG stream i of seed, so any trial can be reproduced alone. The
// trials run on Config.Workers workers. If trials fail, Random
// returns the failure with the lowest trial index.
func (v *Validator) Random(ctx context.Context, impl Implementation,
	seed vectors.Seed, n int) error {

	workers := v.Config.GetWorkers()
	if workers > n {
		workers = n
	}

	var m sync.Mutex
	var first *Failure

	g, ctx := errgroup.WithContext(ctx)
	for worker := 0; worker < workers; worker++ {
		worker := worker
		g.Go(func() error {
			for trial := worker; trial < n; trial += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				prg := vectors.NewPRG(seed, uint64(trial))
				h := prg.State()
				block := prg.Block()

				got, err := impl.Compress(h, &block)
				if err != nil {
					return fmt.Errorf("%s: trial %d: %v", impl.Name(), trial,
						err)
				}
				w := sha1.Expand(&block)
				expected := sha1.Compress(h, &w)
				if got == expected {
					continue
				}
				m.Lock()
				if first == nil || trial < first.Trial {
					first = &Failure{
						Implementation: impl.Name(),
						Trial:          trial,
						Input:          h,
						Data:           block,
						Got:            got,
						Expected:       expected,
					}
				}
				m.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if first != nil {
		return first
	}
	v.Log.Debugf("%s: %d random trials ok (seed %v)", impl.Name(), n, seed)
	return nil
}
