//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package validate cross-checks alternative implementations of the
// SHA-1 compression function against the golden model.
package validate

import (
	"fmt"
	"math/big"

	"github.com/markkurossi/sha1model/circuit"
	"github.com/markkurossi/sha1model/sha1"
)

// Implementation is an alternative implementation of the compression
// function. Implementations must be safe for concurrent use.
type Implementation interface {
	Name() string
	Compress(h sha1.State, block *sha1.Block) (sha1.State, error)
}

type funcImpl struct {
	name string
	f    func(h sha1.State, block *sha1.Block) (sha1.State, error)
}

func (impl *funcImpl) Name() string {
	return impl.name
}

func (impl *funcImpl) Compress(h sha1.State, block *sha1.Block) (
	sha1.State, error) {
	return impl.f(h, block)
}

// Func creates an implementation from the compression function f.
func Func(name string,
	f func(h sha1.State, block *sha1.Block) (sha1.State, error)) Implementation {

	return &funcImpl{
		name: name,
		f:    f,
	}
}

// Golden returns the golden model as an implementation.
func Golden() Implementation {
	return Func("golden", func(h sha1.State, block *sha1.Block) (
		sha1.State, error) {
		w := sha1.Expand(block)
		return sha1.Compress(h, &w), nil
	})
}

type circuitImpl struct {
	name string
	circ *circuit.Circuit
}

// Circuit creates an implementation that evaluates the boolean
// circuit. The circuit must have the inputs h:160 and block:512 and
// the output h:160.
func Circuit(name string, c *circuit.Circuit) (Implementation, error) {
	if len(c.Inputs) != 2 ||
		c.Inputs[0].Size != sha1.StateWords*32 ||
		c.Inputs[1].Size != sha1.BlockWords*32 {
		return nil, fmt.Errorf("%s: invalid circuit inputs: %v, expected "+
			"160, 512", name, c.Inputs)
	}
	if len(c.Outputs) != 1 || c.Outputs[0].Size != sha1.StateWords*32 {
		return nil, fmt.Errorf("%s: invalid circuit outputs: %v, expected 160",
			name, c.Outputs)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	return &circuitImpl{
		name: name,
		circ: c,
	}, nil
}

func (impl *circuitImpl) Name() string {
	return impl.name
}

func (impl *circuitImpl) Compress(h sha1.State, block *sha1.Block) (
	sha1.State, error) {

	var result sha1.State

	outputs, err := impl.circ.Compute([]*big.Int{
		PackWords(h[:]), PackWords(block[:]),
	})
	if err != nil {
		return result, err
	}
	copy(result[:], UnpackWords(outputs[0], sha1.StateWords))
	return result, nil
}

// PackWords packs the words into an integer. Word j occupies bits
// 32j..32j+31.
func PackWords(words []uint32) *big.Int {
	result := new(big.Int)
	w := new(big.Int)
	for j := len(words) - 1; j >= 0; j-- {
		result.Lsh(result, 32)
		result.Or(result, w.SetUint64(uint64(words[j])))
	}
	return result
}

// UnpackWords unpacks n words from the integer. Bits above 32n are
// ignored.
func UnpackWords(v *big.Int, n int) []uint32 {
	result := make([]uint32, n)
	mask := big.NewInt(0xffffffff)
	tmp := new(big.Int)
	for j := 0; j < n; j++ {
		tmp.Rsh(v, uint(32*j))
		result[j] = uint32(tmp.And(tmp, mask).Uint64())
	}
	return result
}
