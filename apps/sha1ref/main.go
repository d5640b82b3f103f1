//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/markkurossi/sha1model/circuit"
	"github.com/markkurossi/sha1model/env"
	"github.com/markkurossi/sha1model/netlist"
	"github.com/markkurossi/sha1model/sha1"
	"github.com/markkurossi/sha1model/trace"
	"github.com/markkurossi/sha1model/utils"
	"github.com/markkurossi/sha1model/validate"
	"github.com/markkurossi/sha1model/vectors"
)

type fileList []string

func (l *fileList) String() string {
	return strings.Join(*l, ",")
}

func (l *fileList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func main() {
	var files fileList

	flag.Var(&files, "f", "test vector `file` (may be repeated)")
	message := flag.String("m", "", "hash `message` with padding")
	fVerbose := flag.Bool("v", false, "verbose output")
	fDiag := flag.Bool("diag", false, "print timing diagnostics")
	fTrace := flag.String("trace", "", "round trace format: text, table")
	fDump := flag.String("dump", "", "write round dump to `file`")
	fCompare := flag.String("cmp", "", "compare round dump `file` with model")
	fGen := flag.String("gen", "", "write SHA-1 compression circuit to `file`")
	fFormat := flag.String("format", "bristol", "circuit format: bristol, dot")
	fCirc := flag.String("circ", "", "validate circuit `file`")
	fTrials := flag.Int("n", 64, "number of random validation trials")
	fSeed := flag.String("seed", "", "random validation seed (hex)")
	fWorkers := flag.Int("workers", 0, "number of validation workers")
	fMaxBlocks := flag.Uint64("max-blocks", 2,
		"skip circuit vectors longer than this")
	flag.Parse()

	log.SetFlags(0)

	params := utils.NewParams()
	defer params.Close()

	params.Verbose = *fVerbose
	params.Diagnostics = *fDiag
	params.TraceFormat = *fTrace
	params.CircFormat = *fFormat
	params.RandomTrials = *fTrials

	config := &env.Config{
		Workers: *fWorkers,
	}
	logger := utils.NewLogger(os.Stderr)
	logger.Verbose = params.Verbose

	if len(*fDump) > 0 {
		f, err := os.Create(*fDump)
		if err != nil {
			log.Fatal(err)
		}
		params.TraceOut = f
	}

	timing := utils.NewTiming()

	if len(*fGen) > 0 {
		f, err := os.Create(*fGen)
		if err != nil {
			log.Fatal(err)
		}
		params.CircOut = f
		circ := netlist.SHA1Compress()
		if err := circ.MarshalFormat(params.CircOut, params.CircFormat); err != nil {
			log.Fatal(err)
		}
		logger.Infof("%s: %v", *fGen, circ)
		timing.Sample("Generate", 0)
	}

	if len(*fCirc) > 0 {
		err := validateCircuit(params, config, logger, *fCirc, *fSeed,
			*fMaxBlocks, timing)
		if err != nil {
			log.Fatal(err)
		}
	}

	var vecs []vectors.Vector
	for _, file := range files {
		v, err := vectors.ParseFile(file)
		if err != nil {
			log.Fatal(err)
		}
		vecs = append(vecs, v...)
	}

	var blocks []sha1.Block
	if len(*message) > 0 {
		blocks = vectors.Pad([]byte(*message))
	}
	args, err := parseBlocks(logger, flag.Args())
	if err != nil {
		params.Close()
		os.Exit(1)
	}
	blocks = append(blocks, args...)

	if len(*fCompare) > 0 {
		f, err := os.Open(*fCompare)
		if err != nil {
			log.Fatal(err)
		}
		err = validate.CompareTrace(f, *fCompare, blocks)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		logger.Infof("%s: trace matches", *fCompare)
		return
	}

	e := sha1.New()
	tracer, flush := newTracer(params)
	e.SetTracer(tracer)

	if len(blocks) > 0 {
		e.Reset()
		for i := range blocks {
			e.Process(&blocks[i])
		}
		flush()
		fmt.Printf("%v\n", e.Digest())
		timing.Sample("Compress", e.Blocks())
	} else if len(vecs) > 0 || (len(*fGen) == 0 && len(*fCirc) == 0) {
		if len(vecs) == 0 {
			vecs = vectors.NIST()
		}
		report := runVectors(e, vecs, timing, flush)
		report.Print(os.Stdout)
		if params.Diagnostics {
			timing.Print(os.Stdout)
		}
		if report.Failed() > 0 {
			params.Close()
			os.Exit(1)
		}
		return
	}

	if params.Diagnostics {
		timing.Print(os.Stdout)
	}
}

// parseBlocks parses the hex block arguments. The arguments are
// located by their 1-based position.
func parseBlocks(logger *utils.Logger, args []string) ([]sha1.Block, error) {
	var result []sha1.Block
	for idx, arg := range args {
		block, err := sha1.ParseBlock(arg)
		if err != nil {
			return nil, logger.Errorf(utils.Point{
				Source: "arg",
				Line:   idx + 1,
			}, "%s", err)
		}
		result = append(result, block)
	}
	return result, nil
}

// runVectors runs the vectors with the engine. The vectors are timed
// as one sample with a sub-sample per vector.
func runVectors(e *sha1.Engine, vecs []vectors.Vector, timing *utils.Timing,
	flush func()) *vectors.Report {

	type run struct {
		name string
		end  time.Time
	}
	var runs []run
	var blocks uint64

	report := new(vectors.Report)
	for _, v := range vecs {
		report.Run(e, v)
		flush()
		blocks += e.Blocks()
		runs = append(runs, run{
			name: v.Name,
			end:  time.Now(),
		})
	}
	sample := timing.Sample("Vectors", blocks)
	for _, r := range runs {
		sample.SubSample(r.name, r.end)
	}
	return report
}

func newTracer(params *utils.Params) (sha1.Tracer, func()) {
	var tracers trace.Multi
	flush := func() {}

	switch params.TraceFormat {
	case "":
	case "text":
		tracers = append(tracers, trace.NewPrinter(os.Stdout))
	case "table":
		tab := trace.NewTable()
		tracers = append(tracers, tab)
		flush = func() {
			tab.Flush(os.Stdout)
		}
	default:
		log.Fatalf("unknown trace format: %s", params.TraceFormat)
	}
	if params.TraceOut != nil {
		tracers = append(tracers, trace.NewDump(params.TraceOut))
	}

	switch len(tracers) {
	case 0:
		return nil, flush
	case 1:
		return tracers[0], flush
	default:
		return tracers, flush
	}
}

func validateCircuit(params *utils.Params, config *env.Config,
	logger *utils.Logger, file, seedArg string, maxBlocks uint64,
	timing *utils.Timing) error {

	circ, err := circuit.Parse(file)
	if err != nil {
		return err
	}
	impl, err := validate.Circuit(file, circ)
	if err != nil {
		return err
	}
	logger.Debugf("%s: %v", file, circ)
	timing.Sample("Parse", 0)

	var seed vectors.Seed
	if len(seedArg) > 0 {
		seed, err = vectors.ParseSeed(seedArg)
	} else {
		seed, err = vectors.RandomSeed(config)
	}
	if err != nil {
		return err
	}

	v := validate.NewValidator(config, logger)
	v.MaxBlocks = maxBlocks

	vecs := vectors.NIST()
	if err := v.Vectors(impl, vecs); err != nil {
		return err
	}
	var blocks uint64
	for _, vec := range vecs {
		if n := vec.NumBlocks(); maxBlocks == 0 || n <= maxBlocks {
			blocks += n
		}
	}
	timing.Sample("Vectors", blocks)

	err = v.Random(context.Background(), impl, seed, params.RandomTrials)
	if err != nil {
		return fmt.Errorf("%w (seed %v)", err, seed)
	}
	timing.Sample("Random", uint64(params.RandomTrials))

	fmt.Printf("%s: ok, %d random trials, seed %v\n", file,
		params.RandomTrials, seed)
	return nil
}
