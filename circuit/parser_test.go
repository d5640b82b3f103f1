//
// parser_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"
)

var data = `1 3
2 1 1
1 1

2 1 0 1 2 AND
`

var halfAdder = `2 4
2 1 1
1 2

2 1 0 1 2 XOR
2 1 0 1 3 AND`

func TestParse(t *testing.T) {
	circuit, err := ParseBristol(bytes.NewReader([]byte(data)))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if circuit.NumGates != 1 || circuit.NumWires != 3 ||
		len(circuit.Inputs) != 2 || circuit.Outputs.Size() != 1 {
		t.Errorf("unexpected circuit: %v", circuit)
	}
	if circuit.Stats[AND] != 1 {
		t.Errorf("unexpected stats: %v", circuit.Stats)
	}
	if err := circuit.Check(); err != nil {
		t.Errorf("Check failed: %v", err)
	}

	circuit, err = ParseBristol(strings.NewReader(halfAdder))
	if err != nil {
		t.Fatalf("Parse failed without final newline: %s", err)
	}
	if len(circuit.Gates) != 2 {
		t.Errorf("parsed %d gates", len(circuit.Gates))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"1\n",
		"1 3\n2 1 1\n",
		"1 3\n2 1 1\n1 1\n",
		"1 3\n2 1 1\n1 1\n\n2 1 0 1 2 NAND\n",
		"1 3\n2 1 1\n1 1\n\n2 1 0 1 3 AND\n",
		"1 3\n2 1 1\n1 1\n\n1 1 0 2 AND\n",
		"1 3\n3 1 1\n1 1\n\n2 1 0 1 2 AND\n",
		"1 2\n2 1 1\n1 1\n\n2 1 0 1 2 AND\n",
		"9000000000000000000 10\n0\n0\n",
		"4000000000 10\n0\n0\n",
		"9000000000000000000 10\n2 1 1\n1 1\n\n2 1 0 1 2 AND\n",
		"1 9000000000000000000\n2 1 1\n1 1\n\n2 1 0 1 2 AND\n",
		"1 4\n2 1 1\n1 1\n\n2 1 0 1 3 AND\n",
		"1 3\n2 9000000000000000000 9000000000000000000\n1 1\n",
	}
	for _, test := range tests {
		if _, err := ParseBristol(strings.NewReader(test)); err == nil {
			t.Errorf("ParseBristol(%q) succeeded", test)
		}
	}
}

func TestMarshal(t *testing.T) {
	circuit, err := ParseBristol(strings.NewReader(halfAdder))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := circuit.MarshalBristol(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != halfAdder+"\n" {
		t.Errorf("MarshalBristol:\n%s", buf.String())
	}

	parsed, err := ParseBristol(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.String() != circuit.String() {
		t.Errorf("round-trip: %v != %v", parsed, circuit)
	}

	buf.Reset()
	if err := circuit.MarshalFormat(&buf, "dot"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "digraph circuit") ||
		!strings.Contains(buf.String(), "g1 -> w3;") {
		t.Errorf("unexpected dot output:\n%s", buf.String())
	}
	if err := circuit.MarshalFormat(&buf, "svg"); err == nil {
		t.Errorf("unsupported format accepted")
	}
}
