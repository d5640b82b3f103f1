//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"regexp"
	"strconv"
)

var reParts = regexp.MustCompilePOSIX("[[:space:]]+")

// maxPrealloc limits the gate slice preallocation from the circuit
// header.
const maxPrealloc = 1 << 20

// Parse parses the Bristol circuit file.
func Parse(file string) (*Circuit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseBristol(f)
}

// ParseBristol parses a circuit in the Bristol fashion format:
//
//	NumGates NumWires
//	NumInputs Size0 Size1 ...
//	NumOutputs Size0 Size1 ...
//
//	2 1 In0 In1 Out {XOR|XNOR|AND|OR}
//	1 1 In Out INV
func ParseBristol(in io.Reader) (*Circuit, error) {
	r := bufio.NewReader(in)

	// NumGates NumWires
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if len(line) != 2 {
		return nil, errors.New("invalid 1st line")
	}
	numGates, err := strconv.Atoi(line[0])
	if err != nil {
		return nil, err
	}
	numWires, err := strconv.Atoi(line[1])
	if err != nil {
		return nil, err
	}
	if numGates < 0 || numWires < 0 ||
		int64(numGates) > math.MaxUint32 || int64(numWires) > math.MaxUint32 {
		return nil, fmt.Errorf("invalid circuit size: %v", line)
	}

	inputs, err := readIO(r, "input")
	if err != nil {
		return nil, err
	}
	outputs, err := readIO(r, "output")
	if err != nil {
		return nil, err
	}
	if inputs.Size()+outputs.Size() > numWires {
		return nil, fmt.Errorf("too many I/O wires: %d+%d > %d",
			inputs.Size(), outputs.Size(), numWires)
	}
	if numWires > inputs.Size()+numGates {
		return nil, fmt.Errorf("too many wires: %d > %d inputs + %d gates",
			numWires, inputs.Size(), numGates)
	}

	wire := func(val string) (Wire, error) {
		v, err := strconv.Atoi(val)
		if err != nil {
			return 0, err
		}
		if v < 0 || v >= numWires {
			return 0, fmt.Errorf("invalid wire %d", v)
		}
		return Wire(v), nil
	}

	var stats Stats
	gates := make([]Gate, 0, min(numGates, maxPrealloc))
	for gate := 0; gate < numGates; gate++ {
		line, err = readLine(r)
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("truncated circuit: got %d gates, "+
					"expected %d", gate, numGates)
			}
			return nil, err
		}
		if len(line) < 3 {
			return nil, fmt.Errorf("invalid gate: %v", line)
		}
		n1, err := strconv.Atoi(line[0])
		if err != nil {
			return nil, err
		}
		n2, err := strconv.Atoi(line[1])
		if err != nil {
			return nil, err
		}
		if n2 != 1 || 2+n1+n2+1 != len(line) {
			return nil, fmt.Errorf("invalid gate: %v", line)
		}

		var op Operation
		var expected int
		switch line[len(line)-1] {
		case "XOR":
			op, expected = XOR, 2
		case "XNOR":
			op, expected = XNOR, 2
		case "AND":
			op, expected = AND, 2
		case "OR":
			op, expected = OR, 2
		case "INV":
			op, expected = INV, 1
		default:
			return nil, fmt.Errorf("invalid operation '%s'", line[len(line)-1])
		}
		if n1 != expected {
			return nil, fmt.Errorf("invalid gate %s: %d inputs", op, n1)
		}

		var g Gate
		g.Op = op
		g.Input0, err = wire(line[2])
		if err != nil {
			return nil, err
		}
		if n1 == 2 {
			g.Input1, err = wire(line[3])
			if err != nil {
				return nil, err
			}
		}
		g.Output, err = wire(line[2+n1])
		if err != nil {
			return nil, err
		}
		gates = append(gates, g)
		stats[op]++
	}

	return &Circuit{
		NumGates: numGates,
		NumWires: numWires,
		Inputs:   inputs,
		Outputs:  outputs,
		Gates:    gates,
		Stats:    stats,
	}, nil
}

func readIO(r *bufio.Reader, name string) (IO, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(line[0])
	if err != nil {
		return nil, err
	}
	if count < 0 || count+1 != len(line) {
		return nil, fmt.Errorf("invalid %s line: %v", name, line)
	}
	var result IO
	for i := 0; i < count; i++ {
		size, err := strconv.Atoi(line[1+i])
		if err != nil {
			return nil, err
		}
		if size <= 0 || int64(size) > math.MaxUint32 {
			return nil, fmt.Errorf("invalid %s size %d", name, size)
		}
		result = append(result, IOArg{
			Size: size,
		})
	}
	return result, nil
}

func readLine(r *bufio.Reader) ([]string, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil && (err != io.EOF || len(line) == 0) {
			return nil, err
		}
		var parts []string
		for _, part := range reParts.Split(line, -1) {
			if len(part) > 0 {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
