package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a KV when no record exists under the key.
var ErrNotFound = errors.New("record not found")

// Record keys. They are stable across releases; renaming one orphans existing data.
const (
	KeyJobs         = "swms_jobs"
	KeyApplications = "swms_applications"
	KeyWorkLogs     = "swms_work_logs"
	KeyFeedback     = "swms_feedback"
	KeyCurrentUser  = "swms_current_user"
)

// KV is the durable key-value storage behind the entity store and the session.
// Values are opaque encoded records.
type KV interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous record.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the record under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
