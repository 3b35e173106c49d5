package solver

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// SolveConcurrent partitions the starting cells across workers, each running
// an independent search with its own buffers, and merges the per-worker
// results. workers < 1 means one worker per CPU.
//
// Merging walks the partitions in ascending start-cell order, keeping the
// first path seen for each word. Which witnessing path wins for a word can
// therefore differ from Solve, but it is stable across runs.
func (s *Solver) SolveConcurrent(ctx context.Context, workers int) (Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	cells := s.grid.Cells()
	if workers > len(cells) {
		workers = len(cells)
	}
	chunkSize := (len(cells) + workers - 1) / workers
	chunks := lo.Chunk(cells, chunkSize)

	start := time.Now()
	results := make([]Result, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			results[i] = make(Result)
			return s.solveFrom(gctx, chunk, results[i])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(Result)
	for _, res := range results {
		for word, path := range res {
			if _, ok := merged[word]; !ok {
				merged[word] = path
			}
		}
	}
	log.Debug().
		Int("words", len(merged)).
		Int("workers", len(chunks)).
		Dur("elapsed", time.Since(start)).
		Msg("concurrent search finished")
	return merged, nil
}
