package engine

import (
	"context"
	"errors"
	"testing"

	"workstudy/internal/store"
)

func validJobInput() JobInput {
	return JobInput{
		Title:       "Dining Hall Cashier",
		Description: "Run the register during lunch service.",
		Department:  "Student Affairs",
		HourlyRate:  12.25,
		MaxHours:    15,
		Location:    "Commons",
	}
}

func TestPostJob_AssignsEngineFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	job, err := env.svc.PostJob(ctx, validJobInput())
	if err != nil {
		t.Fatalf("PostJob failed: %v", err)
	}

	if job.ID != "job-test-1" {
		t.Errorf("got ID %s, want job-test-1", job.ID)
	}
	if job.PostedDate != "2026-02-03" {
		t.Errorf("got PostedDate %s, want 2026-02-03", job.PostedDate)
	}
	if job.Status != store.JobStatusActive {
		t.Errorf("got Status %s, want active", job.Status)
	}
	if job.PostedBy != store.DefaultAdminID {
		t.Errorf("got PostedBy %s, want %s", job.PostedBy, store.DefaultAdminID)
	}

	jobs := env.svc.Jobs()
	if jobs[0].ID != job.ID {
		t.Errorf("new job should be first, got %s", jobs[0].ID)
	}
	if len(jobs) != len(store.SeedJobs())+1 {
		t.Errorf("got %d jobs, want %d", len(jobs), len(store.SeedJobs())+1)
	}

	mirror := persisted[store.Job](t, env.kv, store.KeyJobs)
	if len(mirror) != len(jobs) || mirror[0].ID != job.ID {
		t.Error("persisted jobs do not match memory")
	}
}

func TestPostJob_CreditsActingAdmin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.session.Login(ctx, "admin-1")

	job, err := env.svc.PostJob(ctx, validJobInput())
	if err != nil {
		t.Fatalf("PostJob failed: %v", err)
	}
	if job.PostedBy != "admin-1" {
		t.Errorf("got PostedBy %s, want admin-1", job.PostedBy)
	}
}

func TestPostJob_Validation(t *testing.T) {
	env := newTestEnv(t)

	in := validJobInput()
	in.Title = "  "
	in.HourlyRate = 0
	in.MaxHours = -3

	_, err := env.svc.PostJob(context.Background(), in)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"title", "hourlyRate", "maxHours"} {
		if _, ok := ve.Fields[field]; !ok {
			t.Errorf("expected %s to be rejected", field)
		}
	}
	if len(env.svc.Jobs()) != len(store.SeedJobs()) {
		t.Error("rejected job was stored")
	}
}

func TestUpdateJob_MergesChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	rate := 15.0
	closed := store.JobStatusClosed
	found, err := env.svc.UpdateJob(ctx, "job-2", JobChanges{HourlyRate: &rate, Status: &closed})
	if err != nil || !found {
		t.Fatalf("UpdateJob = %v, %v; want true, nil", found, err)
	}

	job, _ := env.svc.Job("job-2")
	if job.HourlyRate != 15 || job.Status != store.JobStatusClosed {
		t.Errorf("changes not applied: %+v", job)
	}
	if job.Title != "IT Help Desk Technician" || job.PostedDate != "2026-01-12" || job.ID != "job-2" {
		t.Errorf("untouched fields changed: %+v", job)
	}

	for _, j := range env.svc.ActiveJobs() {
		if j.ID == "job-2" {
			t.Error("closed job listed as active")
		}
	}
}

func TestUpdateJob_UnknownIDIsNoop(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	title := "Ghost"
	found, err := env.svc.UpdateJob(ctx, "job-999", JobChanges{Title: &title})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false for unknown id")
	}
	if _, err := env.kv.Get(ctx, store.KeyJobs); !errors.Is(err, store.ErrNotFound) {
		t.Error("no-op update must not rewrite the record")
	}
}

func TestUpdateJob_IDCollision(t *testing.T) {
	env := newTestEnv(t)

	taken := "job-1"
	found, err := env.svc.UpdateJob(context.Background(), "job-2", JobChanges{ID: &taken})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if found {
		t.Error("collision must not report an update")
	}
	if _, ok := env.svc.Job("job-2"); !ok {
		t.Error("job-2 disappeared after a refused rename")
	}
}

func TestUpdateJob_InvalidRate(t *testing.T) {
	env := newTestEnv(t)

	rate := -1.0
	if _, err := env.svc.UpdateJob(context.Background(), "job-1", JobChanges{HourlyRate: &rate}); !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPostJob_TrimsDepartment(t *testing.T) {
	env := newTestEnv(t)

	in := validJobInput()
	in.Department = "  Finance \t"
	job, err := env.svc.PostJob(context.Background(), in)
	if err != nil {
		t.Fatalf("PostJob failed: %v", err)
	}
	if job.Department != "Finance" {
		t.Errorf("got Department %q, want Finance", job.Department)
	}
}

func TestPostJob_UnknownDepartment(t *testing.T) {
	env := newTestEnv(t)

	in := validJobInput()
	in.Department = "Astrology"
	_, err := env.svc.PostJob(context.Background(), in)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["department"] != "Choose one of the listed departments." {
		t.Errorf("unexpected department message %q", ve.Fields["department"])
	}
}

func TestUpdateJob_Department(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	bad := "Astrology"
	if _, err := env.svc.UpdateJob(ctx, "job-1", JobChanges{Department: &bad}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	padded := " Marketing "
	found, err := env.svc.UpdateJob(ctx, "job-1", JobChanges{Department: &padded})
	if err != nil || !found {
		t.Fatalf("UpdateJob = %v, %v", found, err)
	}
	if j, _ := env.svc.Job("job-1"); j.Department != "Marketing" {
		t.Errorf("got Department %q, want Marketing", j.Department)
	}
}
