//
// Copyright (c) 2021-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Check verifies the circuit structure. Gates must be in evaluation
// order so that every gate input is an input wire or the output of an
// earlier gate, no wire is driven twice, and all output wires are
// driven.
func (c *Circuit) Check() error {
	if len(c.Gates) != c.NumGates {
		return fmt.Errorf("gate count mismatch: %d != %d",
			len(c.Gates), c.NumGates)
	}
	numInputs := c.Inputs.Size()
	numOutputs := c.Outputs.Size()
	if numInputs+numOutputs > c.NumWires {
		return fmt.Errorf("too many I/O wires: %d+%d > %d",
			numInputs, numOutputs, c.NumWires)
	}

	defined := make([]bool, c.NumWires)
	for w := 0; w < numInputs; w++ {
		defined[w] = true
	}

	for idx, g := range c.Gates {
		for _, w := range g.Inputs() {
			if w.ID() >= c.NumWires || !defined[w] {
				return fmt.Errorf("gate %d (%v): input %v is not defined",
					idx, g, w)
			}
		}
		if g.Output.ID() >= c.NumWires {
			return fmt.Errorf("gate %d (%v): invalid output %v", idx, g,
				g.Output)
		}
		if defined[g.Output] {
			return fmt.Errorf("gate %d (%v): output %v driven twice", idx, g,
				g.Output)
		}
		defined[g.Output] = true
	}

	for w := c.NumWires - numOutputs; w < c.NumWires; w++ {
		if !defined[w] {
			return fmt.Errorf("output wire %v is not driven", Wire(w))
		}
	}
	return nil
}
