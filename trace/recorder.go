//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package trace

import (
	"github.com/markkurossi/sha1model/sha1"
)

// Recorder records all intermediate values in memory.
type Recorder struct {
	Blocks []*BlockRecord
}

// BlockRecord holds the intermediate values of one block.
type BlockRecord struct {
	Block    uint64
	Schedule sha1.Schedule
	Rounds   [sha1.ScheduleWords]sha1.Round
	Digest   sha1.State
}

// NewRecorder creates a new recorder.
func NewRecorder() *Recorder {
	return new(Recorder)
}

// Schedule implements sha1.Tracer.Schedule.
func (r *Recorder) Schedule(block uint64, w *sha1.Schedule) {
	r.Blocks = append(r.Blocks, &BlockRecord{
		Block:    block,
		Schedule: *w,
	})
}

// Round implements sha1.Tracer.Round.
func (r *Recorder) Round(block uint64, round *sha1.Round) {
	if rec := r.Get(block); rec != nil {
		rec.Rounds[round.T] = *round
	}
}

// Digest implements sha1.Tracer.Digest.
func (r *Recorder) Digest(block uint64, h sha1.State) {
	if rec := r.Get(block); rec != nil {
		rec.Digest = h
	}
}

// Get returns the latest record of the block or nil if the block has
// not been recorded.
func (r *Recorder) Get(block uint64) *BlockRecord {
	for i := len(r.Blocks) - 1; i >= 0; i-- {
		if r.Blocks[i].Block == block {
			return r.Blocks[i]
		}
	}
	return nil
}

// Reset clears all records.
func (r *Recorder) Reset() {
	r.Blocks = nil
}
