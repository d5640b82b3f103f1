//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package netlist builds gate-level boolean circuits from word-level
// operations.
package netlist

import (
	"fmt"

	"github.com/markkurossi/sha1model/circuit"
)

// Wire implements a wire connecting binary gates. Wires are
// identified by their pointer until the circuit is compiled.
type Wire struct {
	id    int
	input bool
}

type gate struct {
	op  circuit.Operation
	in0 *Wire
	in1 *Wire
	out *Wire
}

// Output describes an output argument of the circuit.
type Output struct {
	Name  string
	Wires []*Wire
}

// Builder collects gates of a circuit under construction.
type Builder struct {
	inputs     circuit.IO
	inputWires []*Wire
	gates      []gate
	zeroWire   *Wire
	oneWire    *Wire
}

// NewBuilder creates a new circuit builder.
func NewBuilder() *Builder {
	return &Builder{
		gates: make([]gate, 0, 65536),
	}
}

// Input adds an input argument with the given number of bits. The
// wires are returned in LSB first order.
func (b *Builder) Input(name string, bits int) []*Wire {
	if len(b.gates) > 0 {
		panic("netlist: inputs must be defined before gates")
	}
	b.inputs = append(b.inputs, circuit.IOArg{
		Name: name,
		Size: bits,
	})
	result := make([]*Wire, bits)
	for i := range result {
		result[i] = &Wire{
			id:    len(b.inputWires),
			input: true,
		}
		b.inputWires = append(b.inputWires, result[i])
	}
	return result
}

func (b *Builder) add(op circuit.Operation, x, y *Wire) *Wire {
	if x == nil || (op != circuit.INV && y == nil) {
		panic(fmt.Sprintf("netlist: %s with nil input", op))
	}
	out := new(Wire)
	b.gates = append(b.gates, gate{
		op:  op,
		in0: x,
		in1: y,
		out: out,
	})
	return out
}

// XOR returns a wire holding x XOR y.
func (b *Builder) XOR(x, y *Wire) *Wire {
	return b.add(circuit.XOR, x, y)
}

// AND returns a wire holding x AND y.
func (b *Builder) AND(x, y *Wire) *Wire {
	return b.add(circuit.AND, x, y)
}

// INV returns a wire holding NOT x.
func (b *Builder) INV(x *Wire) *Wire {
	return b.add(circuit.INV, x, nil)
}

// Zero returns a wire holding value 0.
func (b *Builder) Zero() *Wire {
	if b.zeroWire == nil {
		if len(b.inputWires) == 0 {
			panic("netlist: constants need an input wire")
		}
		// x XOR x
		b.zeroWire = b.XOR(b.inputWires[0], b.inputWires[0])
	}
	return b.zeroWire
}

// One returns a wire holding value 1.
func (b *Builder) One() *Wire {
	if b.oneWire == nil {
		b.oneWire = b.INV(b.Zero())
	}
	return b.oneWire
}

// HalfAdder adds x and y and returns the sum and carry wires.
func (b *Builder) HalfAdder(x, y *Wire) (s, c *Wire) {
	return b.XOR(x, y), b.AND(x, y)
}

// FullAdder adds x, y, and cin and returns the sum and carry
// wires. The carry is not generated if cout is false.
func (b *Builder) FullAdder(x, y, cin *Wire, cout bool) (s, c *Wire) {
	// s = x XOR y XOR cin
	// cout = cin XOR ((x XOR cin) AND (y XOR cin))
	w1 := b.XOR(y, cin)
	s = b.XOR(x, w1)
	if cout {
		w2 := b.XOR(x, cin)
		w3 := b.AND(w1, w2)
		c = b.XOR(cin, w3)
	}
	return
}

// Compile compiles the gates into a circuit. Input wires get the
// first wire IDs and the output wires the last ones, as the Bristol
// format requires.
func (b *Builder) Compile(outputs ...Output) *circuit.Circuit {
	var outIO circuit.IO
	var outWires []*Wire
	for _, o := range outputs {
		outIO = append(outIO, circuit.IOArg{
			Name: o.Name,
			Size: len(o.Wires),
		})
		outWires = append(outWires, o.Wires...)
	}

	// Output wires must be distinct gate outputs. Buffer inputs,
	// constants shared with other outputs, and repeated wires.
	driven := make(map[*Wire]bool)
	for _, g := range b.gates {
		driven[g.out] = true
	}
	seen := make(map[*Wire]bool)
	for i, w := range outWires {
		if !driven[w] || seen[w] {
			outWires[i] = b.XOR(w, b.Zero())
		}
		seen[outWires[i]] = true
	}

	numInputs := len(b.inputWires)
	numWires := numInputs + len(b.gates)
	outputBase := numWires - len(outWires)

	outIdx := make(map[*Wire]int)
	for i, w := range outWires {
		outIdx[w] = outputBase + i
	}

	next := numInputs
	for _, g := range b.gates {
		if idx, ok := outIdx[g.out]; ok {
			g.out.id = idx
		} else {
			g.out.id = next
			next++
		}
	}
	if next != outputBase {
		panic(fmt.Sprintf("netlist: wire allocation mismatch: %d != %d",
			next, outputBase))
	}

	var stats circuit.Stats
	gates := make([]circuit.Gate, len(b.gates))
	for i, g := range b.gates {
		gates[i] = circuit.Gate{
			Input0: circuit.Wire(g.in0.id),
			Output: circuit.Wire(g.out.id),
			Op:     g.op,
		}
		if g.in1 != nil {
			gates[i].Input1 = circuit.Wire(g.in1.id)
		}
		stats[g.op]++
	}

	return &circuit.Circuit{
		NumGates: len(gates),
		NumWires: numWires,
		Inputs:   append(circuit.IO(nil), b.inputs...),
		Outputs:  outIO,
		Gates:    gates,
		Stats:    stats,
	}
}
