package bolt

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"workstudy/internal/store"

	"go.etcd.io/bbolt"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swms.bolt")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_PutGet(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, store.KeyJobs, []byte(`[{"id":"job-1"}]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := s.Get(ctx, store.KeyJobs)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"job-1"}]` {
		t.Errorf("got %s", got)
	}
}

func TestStore_GetMissing(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Get(context.Background(), store.KeyFeedback)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, store.KeyCurrentUser, []byte(`{"id":"admin-1"}`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Delete(ctx, store.KeyCurrentUser); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, store.KeyCurrentUser); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, "never-written"); err != nil {
		t.Errorf("deleting a missing key should succeed, got %v", err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swms.bolt")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Put(ctx, store.KeyWorkLogs, []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()

	got, err := s.Get(ctx, store.KeyWorkLogs)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if string(got) != `[]` {
		t.Errorf("got %s, want []", got)
	}
}

func TestStore_UsesRecordsBucket(t *testing.T) {
	s, path := openTestStore(t)
	if err := s.Put(context.Background(), store.KeyJobs, []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	s.Close()

	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer db.Close()

	err = db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(recordsBucket))
		if b == nil {
			t.Fatal("records bucket missing")
		}
		if b.Get([]byte(store.KeyJobs)) == nil {
			t.Error("expected swms_jobs in records bucket")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("view: %v", err)
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestStore_CanceledContext(t *testing.T) {
	s, _ := openTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Put(ctx, store.KeyJobs, []byte(`[]`)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
