package engine

import (
	"context"
	"errors"
	"testing"

	"workstudy/internal/store"
)

func TestApplyForJob_DuplicateRefused(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.svc.ApplyForJob(ctx, "student-9", "job-2", "note")
	if !first.OK {
		t.Fatalf("first apply failed: %s", first.Message)
	}
	if first.Application == nil {
		t.Fatal("expected created application in result")
	}
	if first.Application.Status != store.ApplicationStatusPending {
		t.Errorf("got status %s, want pending", first.Application.Status)
	}
	if first.Application.AppliedDate != "2026-02-03" {
		t.Errorf("got appliedDate %s, want 2026-02-03", first.Application.AppliedDate)
	}

	second := env.svc.ApplyForJob(ctx, "student-9", "job-2", "note")
	if second.OK {
		t.Fatal("second apply should fail")
	}
	if second.Message != MsgAlreadyApplied {
		t.Errorf("got message %q, want %q", second.Message, MsgAlreadyApplied)
	}
	if second.Application != nil {
		t.Error("failed result must not carry an application")
	}

	if got := len(env.svc.StudentApplications("student-9")); got != 1 {
		t.Errorf("student-9 has %d applications, want 1", got)
	}
	if got := len(persisted[store.Application](t, env.kv, store.KeyApplications)); got != len(store.SeedApplications())+1 {
		t.Errorf("persisted %d applications, want %d", got, len(store.SeedApplications())+1)
	}
}

func TestApplyForJob_SeededDuplicate(t *testing.T) {
	env := newTestEnv(t)

	// student-1 already applied to job-2 in the seed data.
	if res := env.svc.ApplyForJob(context.Background(), "student-1", "job-2", ""); res.OK {
		t.Error("expected seeded application to block a duplicate")
	}
}

func TestApplyForJob_SameJobDifferentStudents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	a := env.svc.ApplyForJob(ctx, "student-3", "job-1", "")
	b := env.svc.ApplyForJob(ctx, "student-4", "job-1", "")
	if !a.OK || !b.OK {
		t.Fatalf("expected both applications to succeed: %+v %+v", a, b)
	}
	if a.Application.ID == b.Application.ID {
		t.Error("applications share an id")
	}

	apps := env.svc.Applications()
	if apps[0].ID != b.Application.ID || apps[1].ID != a.Application.ID {
		t.Error("expected most recent application first")
	}
}

func TestUpdateApplicationStatus_IsolatesOtherApplications(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := env.svc.Applications()

	found, err := env.svc.UpdateApplicationStatus(ctx, "app-2", store.ApplicationStatusApproved)
	if err != nil || !found {
		t.Fatalf("UpdateApplicationStatus = %v, %v; want true, nil", found, err)
	}

	after := env.svc.Applications()
	for i := range after {
		if after[i].ID == "app-2" {
			if after[i].Status != store.ApplicationStatusApproved {
				t.Errorf("app-2 status = %s, want approved", after[i].Status)
			}
			continue
		}
		if after[i] != before[i] {
			t.Errorf("application %s changed: %+v -> %+v", after[i].ID, before[i], after[i])
		}
	}
}

func TestUpdateApplicationStatus_AnyTransitionAllowed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// app-4 starts rejected.
	for _, status := range []store.ApplicationStatus{store.ApplicationStatusApproved, store.ApplicationStatusPending, store.ApplicationStatusRejected} {
		if found, err := env.svc.UpdateApplicationStatus(ctx, "app-4", status); err != nil || !found {
			t.Fatalf("transition to %s = %v, %v", status, found, err)
		}
	}
}

func TestUpdateApplicationStatus_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	before := env.svc.Applications()
	found, err := env.svc.UpdateApplicationStatus(ctx, "app-999", store.ApplicationStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false")
	}

	after := env.svc.Applications()
	if len(after) != len(before) {
		t.Fatal("collection size changed")
	}
	for i := range after {
		if after[i] != before[i] {
			t.Errorf("application %s changed", after[i].ID)
		}
	}
}

func TestUpdateApplicationStatus_InvalidStatus(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.UpdateApplicationStatus(context.Background(), "app-1", "withdrawn")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStudentApprovedJobs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	jobs := env.svc.StudentApprovedJobs("student-1")
	if len(jobs) != 1 || jobs[0].ID != "job-2" {
		t.Fatalf("got %+v, want only job-2", jobs)
	}

	env.svc.UpdateApplicationStatus(ctx, "app-2", store.ApplicationStatusApproved)
	jobs = env.svc.StudentApprovedJobs("student-1")
	if len(jobs) != 2 {
		t.Errorf("got %d approved jobs after approving app-2, want 2", len(jobs))
	}

	if got := env.svc.StudentApprovedJobs("student-4"); len(got) != 0 {
		t.Errorf("student-4 has only a pending application, got %+v", got)
	}
}

func TestStudentApplications_FiltersByStudent(t *testing.T) {
	env := newTestEnv(t)

	apps := env.svc.StudentApplications("student-2")
	if len(apps) != 2 || apps[0].ID != "app-3" || apps[1].ID != "app-4" {
		t.Errorf("got %+v, want app-3 and app-4 in order", apps)
	}
}
