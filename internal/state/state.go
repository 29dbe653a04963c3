// Package state holds the authoritative in-memory copies of the four entity
// collections and mirrors every change to a store.KV.
package state

import (
	"context"
	"log/slog"

	"workstudy/internal/logger"
	"workstudy/internal/store"
)

// Store owns the jobs, applications, work logs and feedback collections.
type Store struct {
	Jobs         *Collection[store.Job]
	Applications *Collection[store.Application]
	WorkLogs     *Collection[store.WorkLog]
	Feedback     *Collection[store.Feedback]
}

// Open loads every collection from kv, falling back to the built-in seed
// data for any record that is missing or corrupt. It never fails.
func Open(ctx context.Context, kv store.KV, log *slog.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	return &Store{
		Jobs:         newCollection(ctx, kv, log, store.KeyJobs, store.SeedJobs()),
		Applications: newCollection(ctx, kv, log, store.KeyApplications, store.SeedApplications()),
		WorkLogs:     newCollection(ctx, kv, log, store.KeyWorkLogs, store.SeedWorkLogs()),
		Feedback:     newCollection(ctx, kv, log, store.KeyFeedback, store.SeedFeedback()),
	}
}
