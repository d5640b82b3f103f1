//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha1

// Expand expands the message block into the 80-word message
// schedule.
func Expand(block *Block) Schedule {
	var w Schedule

	copy(w[:BlockWords], block[:])
	for i := BlockWords; i < ScheduleWords; i++ {
		w[i] = RotateLeft(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}
	return w
}
