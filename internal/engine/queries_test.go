package engine

import (
	"context"
	"reflect"
	"testing"

	"workstudy/internal/store"
)

func TestTotalApprovedHours_IgnoresUnapproved(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Seed: log-1 (4), log-2 (5), log-3 (3) approved.
	if got := env.svc.TotalApprovedHours(); got != 12 {
		t.Fatalf("seed total = %v, want 12", got)
	}

	if _, err := env.svc.SubmitWorkLog(ctx, WorkLogInput{StudentID: "student-2", JobID: "job-3", Date: "2026-02-01", Hours: 8}); err != nil {
		t.Fatalf("SubmitWorkLog failed: %v", err)
	}
	if got := env.svc.TotalApprovedHours(); got != 12 {
		t.Errorf("unapproved log changed total to %v", got)
	}
}

func TestTotalApprovedHours_MissingHoursCountAsZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.svc.state.WorkLogs.Set(ctx, []store.WorkLog{
		{ID: "a", StudentID: "student-1", Approved: true, Hours: 2.5},
		{ID: "b", StudentID: "student-1", Approved: true},
		{ID: "c", StudentID: "student-2", Approved: false, Hours: 7},
	})

	if got := env.svc.TotalApprovedHours(); got != 2.5 {
		t.Errorf("total = %v, want 2.5", got)
	}
}

func TestStudentTotalHours(t *testing.T) {
	env := newTestEnv(t)

	if got := env.svc.StudentTotalHours("student-1"); got != 9 {
		t.Errorf("student-1 total = %v, want 9", got)
	}
	if got := env.svc.StudentTotalHours("student-3"); got != 0 {
		t.Errorf("student-3 total = %v, want 0 (log-4 unapproved)", got)
	}
}

func TestStudentWorkLogs(t *testing.T) {
	env := newTestEnv(t)

	logs := env.svc.StudentWorkLogs("student-1")
	if len(logs) != 3 {
		t.Errorf("got %d logs for student-1, want 3", len(logs))
	}
	for _, l := range logs {
		if l.StudentID != "student-1" {
			t.Errorf("log %s belongs to %s", l.ID, l.StudentID)
		}
	}
}

func TestPendingWorkLogs(t *testing.T) {
	env := newTestEnv(t)

	pending := env.svc.PendingWorkLogs()
	if len(pending) != 2 || pending[0].ID != "log-4" || pending[1].ID != "log-5" {
		t.Errorf("got %+v, want log-4 and log-5", pending)
	}
}

func TestStudentAverageRating(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, ok := env.svc.StudentAverageRating("student-4"); ok {
		t.Error("student-4 has no feedback")
	}

	env.svc.AddFeedback(ctx, FeedbackInput{StudentID: "student-1", JobID: "job-2", Rating: 4})
	avg, ok := env.svc.StudentAverageRating("student-1")
	if !ok || avg != 4.5 {
		t.Errorf("average = %v (ok=%v), want 4.5", avg, ok)
	}
}

func TestSummary(t *testing.T) {
	env := newTestEnv(t)

	got := env.svc.Summary()
	want := Summary{
		Jobs:                 6,
		ActiveJobs:           6,
		Applications:         6,
		PendingApplications:  2,
		ApprovedApplications: 3,
		RejectedApplications: 1,
		ActiveStudents:       3,
		PendingWorkLogs:      2,
		WorkLogs:             5,
		TotalApprovedHours:   12,
		PendingHours:         10,
		JobsByDepartment: []DepartmentJobs{
			{"Library Services", 1},
			{"Information Technology", 1},
			{"Admissions", 1},
			{"Sciences", 1},
			{"Student Affairs", 1},
			{"Recreation & Athletics", 1},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
}

func TestQueries_ReturnCopies(t *testing.T) {
	env := newTestEnv(t)

	apps := env.svc.StudentApplications("student-1")
	apps[0].Status = store.ApplicationStatusRejected

	if env.svc.StudentApplications("student-1")[0].Status == store.ApplicationStatusRejected {
		t.Error("query result aliases the store")
	}
}

func TestActor_ReflectsSession(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, ok := env.svc.Actor(); ok {
		t.Error("expected no actor before login")
	}
	env.session.Login(ctx, "student-3")
	if u, ok := env.svc.Actor(); !ok || u.ID != "student-3" {
		t.Errorf("Actor() = %+v, %v", u, ok)
	}
}

func TestPendingHours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Seed: log-4 (6, student-3) and log-5 (4, student-1) are pending.
	if got := env.svc.PendingHours(); got != 10 {
		t.Errorf("pending = %v, want 10", got)
	}
	if got := env.svc.StudentPendingHours("student-1"); got != 4 {
		t.Errorf("student-1 pending = %v, want 4", got)
	}

	env.svc.ApproveWorkLog(ctx, "log-5")
	if got := env.svc.StudentPendingHours("student-1"); got != 0 {
		t.Errorf("student-1 pending after approval = %v, want 0", got)
	}
	if got := env.svc.PendingHours(); got != 6 {
		t.Errorf("pending after approval = %v, want 6", got)
	}
}

func TestStudentHoursSummary(t *testing.T) {
	env := newTestEnv(t)

	got := env.svc.StudentHoursSummary()
	want := []StudentHours{
		{StudentID: "student-1", Name: "Alex Johnson", Approved: 9, Pending: 4},
		{StudentID: "student-2", Name: "Maria Garcia", Approved: 3, Pending: 0},
		{StudentID: "student-3", Name: "James Chen", Approved: 0, Pending: 6},
	}
	// student-4 has no logs and is left out.
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StudentHoursSummary() = %+v, want %+v", got, want)
	}
}

func TestJobsByDepartment_CountsEveryStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	in := validJobInput()
	in.Department = "Sciences"
	if _, err := env.svc.PostJob(ctx, in); err != nil {
		t.Fatalf("PostJob failed: %v", err)
	}
	closed := store.JobStatusClosed
	env.svc.UpdateJob(ctx, "job-4", JobChanges{Status: &closed})

	got := env.svc.JobsByDepartment()
	if got[0].Department != "Sciences" || got[0].Jobs != 2 {
		t.Errorf("expected Sciences first with 2 jobs, got %+v", got[0])
	}
	if len(got) != 6 {
		t.Errorf("expected 6 departments, got %d", len(got))
	}
}

func TestSearchJobs(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	closed := store.JobStatusClosed
	env.svc.UpdateJob(ctx, "job-2", JobChanges{Status: &closed})

	ids := func(jobs []store.Job) []string {
		out := []string{}
		for _, j := range jobs {
			out = append(out, j.ID)
		}
		return out
	}

	tests := []struct {
		name   string
		filter JobFilter
		want   []string
	}{
		{"active only by default", JobFilter{}, []string{"job-1", "job-3", "job-4", "job-5", "job-6"}},
		{"department exact", JobFilter{Department: "Admissions"}, []string{"job-3"}},
		{"search title case-insensitive", JobFilter{Search: "LAB"}, []string{"job-4"}},
		{"search description", JobFilter{Search: "gym membership"}, []string{"job-6"}},
		{"search department", JobFilter{Search: "student affairs"}, []string{"job-5"}},
		{"closed job hidden", JobFilter{Search: "help desk"}, []string{}},
		{"closed job included", JobFilter{Search: "help desk", IncludeInactive: true}, []string{"job-2"}},
		{"department and search", JobFilter{Department: "Sciences", Search: "tour"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(env.svc.SearchJobs(tt.filter)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SearchJobs(%+v) = %v, want %v", tt.filter, got, tt.want)
			}
		})
	}
}

func TestActiveDepartments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	closed := store.JobStatusClosed
	env.svc.UpdateJob(ctx, "job-3", JobChanges{Status: &closed})

	got := env.svc.ActiveDepartments()
	want := []string{"Information Technology", "Library Services", "Recreation & Athletics", "Sciences", "Student Affairs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ActiveDepartments() = %v, want %v", got, want)
	}
}
