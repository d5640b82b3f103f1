//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package vectors

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/markkurossi/sha1model/sha1"
	"github.com/markkurossi/sha1model/utils"
)

// ParseFile parses the vector file.
func ParseFile(file string) ([]Vector, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, file)
}

// Parse parses test vectors from the input. The input consists of
// directive lines:
//
//	@Vector NAME            starts a new vector
//	@Message "TEXT"         appends the padded message blocks
//	@Block W0 ... W15       appends a block of hex words
//	@Repeat N               processes the blocks N times
//	@Expect [after=N] H0 .. H4
//	                        expected state after N blocks, or
//	                        after all blocks if N is omitted
//
// Empty lines and lines starting with '#' are ignored.
func Parse(in io.Reader, source string) ([]Vector, error) {
	var result []Vector
	var current *Vector
	var final []sha1.State

	finish := func() {
		if current == nil {
			return
		}
		for _, h := range final {
			current.Checkpoints = append(current.Checkpoints, Checkpoint{
				After:    current.NumBlocks(),
				Expected: h,
			})
		}
		result = append(result, *current)
		current = nil
		final = nil
	}

	scanner := bufio.NewScanner(in)
	var loc utils.Point
	loc.Source = source

	for scanner.Scan() {
		loc.Line++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		var directive, args string
		idx := strings.IndexAny(line, " \t")
		if idx < 0 {
			directive = line
		} else {
			directive = line[:idx]
			args = strings.TrimSpace(line[idx:])
		}

		if directive == "@Vector" {
			finish()
			if len(args) == 0 {
				return nil, fmt.Errorf("%s: missing vector name", loc)
			}
			current = &Vector{
				Name: args,
			}
			continue
		}
		if current == nil {
			return nil, fmt.Errorf("%s: %s outside vector", loc, directive)
		}

		switch directive {
		case "@Message":
			msg, err := strconv.Unquote(args)
			if err != nil {
				return nil, fmt.Errorf("%s: invalid message %s: %v",
					loc, args, err)
			}
			current.Blocks = append(current.Blocks, Pad([]byte(msg))...)

		case "@Block":
			block, err := sha1.ParseBlock(args)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", loc, err)
			}
			current.Blocks = append(current.Blocks, block)

		case "@Repeat":
			n, err := strconv.Atoi(args)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%s: invalid repeat count '%s'",
					loc, args)
			}
			current.Repeat = n

		case "@Expect":
			after := int64(-1)
			if strings.HasPrefix(args, "after=") {
				idx := strings.IndexAny(args, " \t")
				if idx < 0 {
					return nil, fmt.Errorf("%s: missing expected state", loc)
				}
				v, err := strconv.ParseInt(args[6:idx], 10, 64)
				if err != nil || v < 0 {
					return nil, fmt.Errorf("%s: invalid checkpoint '%s'",
						loc, args[:idx])
				}
				after = v
				args = args[idx:]
			}
			h, err := sha1.ParseState(args)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", loc, err)
			}
			if after < 0 {
				final = append(final, h)
			} else {
				current.Checkpoints = append(current.Checkpoints, Checkpoint{
					After:    uint64(after),
					Expected: h,
				})
			}

		default:
			return nil, fmt.Errorf("%s: unknown directive '%s'", loc, directive)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	finish()

	return result, nil
}
