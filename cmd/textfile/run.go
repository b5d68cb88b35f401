package main

import (
	"context"

	"golang.org/x/sync/errgroup"
	"lesiw.io/zeros"
)

// unique returns files without repeats, in order of first appearance.
// Each path is then handled by a single goroutine.
func unique(files []string) []string {
	var (
		seen zeros.Map[string, struct{}]
		out  []string
	)
	for _, name := range files {
		if _, ok := seen.CheckGet(name); ok {
			continue
		}
		seen.Set(name, struct{}{})
		out = append(out, name)
	}
	return out
}

// forEach calls fn for every file, at most jobs at a time, and returns the
// first error. The context passed to fn is canceled after that error.
func forEach(
	ctx context.Context, files []string, jobs int,
	fn func(ctx context.Context, i int, name string) error,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error { return fn(ctx, i, name) })
	}
	return g.Wait()
}
