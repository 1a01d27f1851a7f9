package records

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Store reads and writes student records.
type Store interface {
	List(ctx context.Context, studentID string, c Collection) ([]Record, error)
	Put(ctx context.Context, studentID string, c Collection, rec Record) error
}

// FetchAll loads every collection for a student concurrently. The first failure cancels
// the remaining fetches and is returned; no partial set is returned.
func FetchAll(ctx context.Context, store Store, studentID string) (Set, error) {
	var (
		mu  sync.Mutex
		set Set
	)
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range All() {
		c := c
		g.Go(func() error {
			recs, err := store.List(gctx, studentID, c)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", c, err)
			}
			mu.Lock()
			*set.slot(c) = recs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Set{}, err
	}
	return set, nil
}
