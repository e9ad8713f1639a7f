package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/jblondin/simpledot/dotparser"
)

const stdinName = "<stdin>"

// input is one DOT document to parse.
type input struct {
	name string
	src  []byte
}

// parseResult is the outcome of parsing one input.
type parseResult struct {
	input
	job   string // correlates the log lines of one parse
	graph *dotparser.Graph
	err   error
}

// readInputs reads every path, or stdin when there are none.
func readInputs(stdin io.Reader, paths []string) ([]input, error) {
	if len(paths) == 0 {
		src, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []input{{name: stdinName, src: src}}, nil
	}
	inputs := make([]input, 0, len(paths))
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		inputs = append(inputs, input{name: p, src: src})
	}
	return inputs, nil
}

// parseAll parses the inputs concurrently on at most workers goroutines.
// Results are returned in input order. Inputs not started before ctx is
// cancelled carry ctx.Err().
func parseAll(ctx context.Context, inputs []input, workers int) []parseResult {
	logger := loggerFromContext(ctx)
	if workers < 1 {
		workers = 1
	}

	results := make([]parseResult, len(inputs))
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, in := range inputs {
		wg.Add(1)
		go func(idx int, in input) {
			defer wg.Done()
			res := parseResult{input: in, job: uuid.NewString()}

			select {
			case semaphore <- struct{}{}:
				defer func() { <-semaphore }()
			case <-ctx.Done():
				res.err = ctx.Err()
				results[idx] = res
				return
			}

			logger.Debug("parsing", "job", res.job, "input", in.name, "bytes", len(in.src))
			res.graph, res.err = dotparser.Parse(in.src)
			if res.err != nil {
				logger.Debug("parse failed", "job", res.job, "input", in.name, "err", res.err)
			} else {
				logger.Debug("parsed", "job", res.job, "input", in.name, "statements", len(res.graph.Statements))
			}
			results[idx] = res
		}(i, in)
	}

	wg.Wait()
	return results
}
