// Package batch runs one formatting job per input file across a bounded
// pool of goroutines. Each worker owns one file's full lex/parse/print
// pipeline end to end; no state is shared between files (spec.md §5's
// "each file's lex/parse/format is sequential and owns its own AST"
// extended, here, to run many such sequential pipelines concurrently).
package batch

import "sync"

// Job is one unit of work: Path identifies the file only for reporting,
// Run performs the file's own lex/parse/print pipeline and returns its
// result or error.
type Job struct {
	Path string
	Run  func() (string, error)
}

// Outcome pairs a Job's Path with what Run produced.
type Outcome struct {
	Path   string
	Output string
	Err    error
}

// Run executes jobs across workers goroutines (clamped to at least 1 and
// at most len(jobs)) and returns one Outcome per job, in the same order
// jobs were given.
func Run(jobs []Job, workers int) []Outcome {
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 0 {
		return nil
	}

	outcomes := make([]Outcome, len(jobs))
	indices := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				out, err := jobs[i].Run()
				outcomes[i] = Outcome{Path: jobs[i].Path, Output: out, Err: err}
			}
		}()
	}

	for i := range jobs {
		indices <- i
	}
	close(indices)
	wg.Wait()

	return outcomes
}
