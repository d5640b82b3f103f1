//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package utils

import (
	"io"
)

// Params specify tool parameters.
type Params struct {
	Verbose     bool
	Diagnostics bool

	// TraceFormat selects the round trace format: "text" or "table".
	// The empty format disables tracing.
	TraceFormat string
	TraceOut    io.WriteCloser

	CircOut    io.WriteCloser
	CircFormat string

	// RandomTrials specifies the number of random blocks used in
	// circuit validation.
	RandomTrials int
}

// NewParams returns new tool params object, initialized with the
// default values.
func NewParams() *Params {
	return &Params{
		CircFormat:   "bristol",
		RandomTrials: 64,
	}
}

// Close closes all open resources.
func (p *Params) Close() {
	if p.TraceOut != nil {
		p.TraceOut.Close()
		p.TraceOut = nil
	}
	if p.CircOut != nil {
		p.CircOut.Close()
		p.CircOut = nil
	}
}
