//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"fmt"
	"io"
)

// MarshalFormat marshals circuit in the specified format.
func (c *Circuit) MarshalFormat(out io.Writer, format string) error {
	switch format {
	case "bristol":
		return c.MarshalBristol(out)
	case "dot":
		return c.Dot(out)
	default:
		return fmt.Errorf("unsupported circuit format: %s", format)
	}
}

// MarshalBristol marshals the circuit in the Bristol format.
func (c *Circuit) MarshalBristol(w io.Writer) error {
	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "%d %d\n", c.NumGates, c.NumWires)
	fmt.Fprintf(out, "%d", len(c.Inputs))
	for _, input := range c.Inputs {
		fmt.Fprintf(out, " %d", input.Size)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d", len(c.Outputs))
	for _, ret := range c.Outputs {
		fmt.Fprintf(out, " %d", ret.Size)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	for _, g := range c.Gates {
		fmt.Fprintf(out, "%d 1", len(g.Inputs()))
		for _, w := range g.Inputs() {
			fmt.Fprintf(out, " %d", w)
		}
		fmt.Fprintf(out, " %d", g.Output)
		fmt.Fprintf(out, " %s\n", g.Op)
	}

	return out.Flush()
}
