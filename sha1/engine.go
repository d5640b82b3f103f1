//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements a bit-exact model of the SHA-1 compression
// function. It is a golden reference for validating alternative
// implementations such as HDL cores and gate-level circuits.
//
// The engine operates on already padded 512-bit blocks expressed as
// sixteen 32-bit words. It does not implement padding or a
// byte-oriented hashing API.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

// Engine implements the block-chaining lifecycle of the compression
// function. An Engine is not safe for concurrent use; independent
// messages can be processed concurrently with independent engines.
type Engine struct {
	h      State
	blocks uint64
	tracer Tracer
}

// New creates a new uninitialized engine. Its digest is the zero
// state until Reset is called.
func New() *Engine {
	return new(Engine)
}

// SetTracer sets the tracer that receives intermediate values. The
// nil tracer disables tracing.
func (e *Engine) SetTracer(tracer Tracer) {
	e.tracer = tracer
}

// Reset sets the chaining state to the initialization vector. It
// must be called before the first block of each message.
func (e *Engine) Reset() {
	e.h = IV
	e.blocks = 0
}

// Process processes the next message block and updates the chaining
// state.
func (e *Engine) Process(block *Block) {
	e.blocks++

	w := Expand(block)
	if e.tracer != nil {
		ws := w
		e.tracer.Schedule(e.blocks, &ws)
	}
	e.h = compress(e.h, &w, e.tracer, e.blocks)
	if e.tracer != nil {
		e.tracer.Digest(e.blocks, e.h)
	}
}

// ProcessWords validates the words as a message block and processes
// it. Invalid blocks are rejected without modifying the chaining
// state.
func (e *Engine) ProcessWords(words []uint64) error {
	block, err := MakeBlock(words)
	if err != nil {
		return err
	}
	e.Process(&block)
	return nil
}

// Digest returns the current chaining state.
func (e *Engine) Digest() State {
	return e.h
}

// Sum returns the current chaining state as a big-endian 160-bit
// value.
func (e *Engine) Sum() [Size]byte {
	return e.h.Bytes()
}

// Blocks returns the number of blocks processed since the last Reset.
func (e *Engine) Blocks() uint64 {
	return e.blocks
}
