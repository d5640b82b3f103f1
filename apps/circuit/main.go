//
// main.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/markkurossi/sha1model/circuit"
	"github.com/markkurossi/tabulate"
)

func main() {
	dot := flag.Bool("dot", false, "print circuit in Graphviz dot format")
	check := flag.Bool("check", true, "verify circuit structure")
	flag.Parse()

	log.SetFlags(0)

	if len(flag.Args()) == 0 {
		fmt.Printf("No input files\n")
		os.Exit(1)
	}

	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("Inputs").SetAlign(tabulate.ML)
	tab.Header("Outputs").SetAlign(tabulate.ML)
	tab.Header("Wires").SetAlign(tabulate.MR)
	for op := circuit.XOR; op <= circuit.INV; op++ {
		tab.Header(op.String()).SetAlign(tabulate.MR)
	}
	tab.Header("Cost").SetAlign(tabulate.MR)

	for _, file := range flag.Args() {
		c, err := circuit.Parse(file)
		if err != nil {
			log.Fatal(err)
		}
		if *check {
			if err := c.Check(); err != nil {
				log.Fatalf("%s: %s", file, err)
			}
		}
		if *dot {
			if err := c.Dot(os.Stdout); err != nil {
				log.Fatal(err)
			}
			continue
		}

		row := tab.Row()
		row.Column(file)
		row.Column(c.Inputs.String())
		row.Column(c.Outputs.String())
		row.Column(fmt.Sprintf("%d", c.NumWires))
		for _, count := range c.Stats {
			row.Column(fmt.Sprintf("%d", count))
		}
		row.Column(fmt.Sprintf("%d", c.Cost())).SetFormat(tabulate.FmtBold)
	}
	if !*dot {
		tab.Print(os.Stdout)
	}
}
