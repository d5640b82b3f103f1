//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"math/big"
)

// Compute evaluates the circuit with plain input values. Bit i of
// input argument j is assigned to the i:th wire of the argument's
// wire range. The outputs are read from the last wires of the
// circuit.
func (c *Circuit) Compute(inputs []*big.Int) ([]*big.Int, error) {
	if len(inputs) != len(c.Inputs) {
		return nil, fmt.Errorf("invalid inputs: got %d, expected %d",
			len(inputs), len(c.Inputs))
	}

	wires := make([]byte, c.NumWires)

	var w int
	for idx, io := range c.Inputs {
		a := inputs[idx]
		if a.Sign() < 0 || a.BitLen() > io.Size {
			return nil, fmt.Errorf("input %d does not fit in %d bits",
				idx, io.Size)
		}
		for bit := 0; bit < io.Size; bit++ {
			wires[w] = byte(a.Bit(bit))
			w++
		}
	}

	// Evaluate circuit.
	for _, gate := range c.Gates {
		var result byte

		switch gate.Op {
		case XOR:
			result = wires[gate.Input0] ^ wires[gate.Input1]

		case XNOR:
			result = 1 ^ wires[gate.Input0] ^ wires[gate.Input1]

		case AND:
			result = wires[gate.Input0] & wires[gate.Input1]

		case OR:
			result = wires[gate.Input0] | wires[gate.Input1]

		case INV:
			result = 1 ^ wires[gate.Input0]

		default:
			return nil, fmt.Errorf("invalid gate %s", gate.Op)
		}

		wires[gate.Output] = result
	}

	// Construct outputs
	w = c.NumWires - c.Outputs.Size()
	var result []*big.Int
	for _, io := range c.Outputs {
		r := new(big.Int)
		for bit := 0; bit < io.Size; bit++ {
			if wires[w] != 0 {
				r.SetBit(r, bit, 1)
			}
			w++
		}
		result = append(result, r)
	}

	return result, nil
}
