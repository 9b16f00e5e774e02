package yamlstore

import (
	"golang.org/x/sync/errgroup"

	"github.com/dmagro/rclcfg/internal/rclerr"
	"github.com/dmagro/rclcfg/internal/typedvalue"
)

// FileResult is one file's outcome from LoadMany.
type FileResult struct {
	Path  string
	Store *typedvalue.ParameterStore
	Err   *rclerr.Error
}

// LoadMany loads N independent parameter files concurrently and returns
// one FileResult per path, in the same order as paths. Unlike the
// argument parser's sequential --params-file handling (spec.md §4.9,
// where load order affects overlay precedence), these files are
// independent validation targets with no shared mutable state, so
// fan-out is safe; each goroutine builds its own store and errgroup only
// coordinates completion, matching the teacher's use of
// golang.org/x/sync for concurrent, order-independent provider queries
// (internal/provider/selector.go).
func LoadMany(paths []string) []FileResult {
	results := make([]FileResult, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			store, err := LoadFile(path)
			results[i] = FileResult{Path: path, Store: store, Err: err}
			return nil // collect per-file errors rather than aborting the group
		})
	}
	_ = g.Wait()
	return results
}
