package orchestrator

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// CompileFiles compiles several root documents concurrently using an errgroup
// bounded by the number of CPUs. Every document runs in its own session, so
// no cache or helper state is shared between them. Results are sorted by
// path to keep output deterministic regardless of scheduling order.
func (s *Service) CompileFiles(paths []string) ([]*Result, error) {
	var (
		mu        sync.Mutex
		collected []*Result
	)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			result, err := s.CompileFile(path)
			if err != nil {
				return err
			}

			mu.Lock()
			collected = append(collected, result)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Path < collected[j].Path
	})

	return collected, nil
}
