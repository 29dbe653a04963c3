package engine

import (
	"slices"
	"strings"

	"workstudy/internal/store"
)

// Jobs returns every job, most recent first.
func (s *Service) Jobs() []store.Job { return s.state.Jobs.All() }

// Applications returns every application.
func (s *Service) Applications() []store.Application { return s.state.Applications.All() }

// WorkLogs returns every work log.
func (s *Service) WorkLogs() []store.WorkLog { return s.state.WorkLogs.All() }

// Feedback returns every feedback entry.
func (s *Service) Feedback() []store.Feedback { return s.state.Feedback.All() }

// Job looks up a single job by id.
func (s *Service) Job(jobID string) (store.Job, bool) {
	for _, j := range s.state.Jobs.All() {
		if j.ID == jobID {
			return j, true
		}
	}
	return store.Job{}, false
}

// ActiveJobs returns the jobs students can still apply to.
func (s *Service) ActiveJobs() []store.Job {
	return filter(s.state.Jobs.All(), func(j store.Job) bool {
		return j.Status == store.JobStatusActive
	})
}

// JobFilter narrows a job listing. Zero fields match everything.
type JobFilter struct {
	// Department must match exactly.
	Department string

	// Search is a case-insensitive substring of the title, department or description.
	Search string

	// IncludeInactive also lists jobs that are no longer active.
	IncludeInactive bool
}

func (f JobFilter) match(j store.Job) bool {
	if !f.IncludeInactive && j.Status != store.JobStatusActive {
		return false
	}
	if f.Department != "" && j.Department != f.Department {
		return false
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Department), q) ||
		strings.Contains(strings.ToLower(j.Description), q)
}

// SearchJobs returns the jobs matching f, most recent first.
func (s *Service) SearchJobs(f JobFilter) []store.Job {
	return filter(s.state.Jobs.All(), f.match)
}

// ActiveDepartments lists the departments with at least one active job, sorted.
func (s *Service) ActiveDepartments() []string {
	var depts []string
	for _, j := range s.ActiveJobs() {
		if !slices.Contains(depts, j.Department) {
			depts = append(depts, j.Department)
		}
	}
	slices.Sort(depts)
	return depts
}

// DepartmentJobs is the number of jobs posted under one department.
type DepartmentJobs struct {
	Department string
	Jobs       int
}

// JobsByDepartment counts every job per department, in order of first appearance.
func (s *Service) JobsByDepartment() []DepartmentJobs {
	var out []DepartmentJobs
	index := make(map[string]int)
	for _, j := range s.state.Jobs.All() {
		i, ok := index[j.Department]
		if !ok {
			i = len(out)
			index[j.Department] = i
			out = append(out, DepartmentJobs{Department: j.Department})
		}
		out[i].Jobs++
	}
	return out
}

// StudentApplications returns studentID's applications in collection order.
func (s *Service) StudentApplications(studentID string) []store.Application {
	return filter(s.state.Applications.All(), func(a store.Application) bool {
		return a.StudentID == studentID
	})
}

// StudentApprovedJobs returns the jobs studentID holds an approved application for.
func (s *Service) StudentApprovedJobs(studentID string) []store.Job {
	approved := make(map[string]struct{})
	for _, a := range s.state.Applications.All() {
		if a.StudentID == studentID && a.Status == store.ApplicationStatusApproved {
			approved[a.JobID] = struct{}{}
		}
	}
	return filter(s.state.Jobs.All(), func(j store.Job) bool {
		_, ok := approved[j.ID]
		return ok
	})
}

// StudentWorkLogs returns studentID's work logs.
func (s *Service) StudentWorkLogs(studentID string) []store.WorkLog {
	return filter(s.state.WorkLogs.All(), func(l store.WorkLog) bool {
		return l.StudentID == studentID
	})
}

// StudentFeedback returns the feedback written about studentID.
func (s *Service) StudentFeedback(studentID string) []store.Feedback {
	return filter(s.state.Feedback.All(), func(f store.Feedback) bool {
		return f.StudentID == studentID
	})
}

// PendingWorkLogs returns the logs still waiting for approval.
func (s *Service) PendingWorkLogs() []store.WorkLog {
	return filter(s.state.WorkLogs.All(), func(l store.WorkLog) bool {
		return !l.Approved
	})
}

// TotalApprovedHours sums hours over every approved work log.
func (s *Service) TotalApprovedHours() float64 {
	return sumHours(s.state.WorkLogs.All(), true, "")
}

// StudentTotalHours sums approved hours for one student.
func (s *Service) StudentTotalHours(studentID string) float64 {
	return sumHours(s.state.WorkLogs.All(), true, studentID)
}

// PendingHours sums hours still waiting for approval.
func (s *Service) PendingHours() float64 {
	return sumHours(s.state.WorkLogs.All(), false, "")
}

// StudentPendingHours sums one student's hours still waiting for approval.
func (s *Service) StudentPendingHours(studentID string) float64 {
	return sumHours(s.state.WorkLogs.All(), false, studentID)
}

// StudentHours is one student's line on the hours review page.
type StudentHours struct {
	StudentID string
	Name      string
	Approved  float64
	Pending   float64
}

// StudentHoursSummary reports approved and pending hours per roster student,
// in roster order. Students with no logged hours are left out.
func (s *Service) StudentHoursSummary() []StudentHours {
	logs := s.state.WorkLogs.All()
	var out []StudentHours
	for _, u := range s.session.Roster() {
		if u.Role != store.RoleStudent {
			continue
		}
		row := StudentHours{
			StudentID: u.ID,
			Name:      u.Name,
			Approved:  sumHours(logs, true, u.ID),
			Pending:   sumHours(logs, false, u.ID),
		}
		if row.Approved > 0 || row.Pending > 0 {
			out = append(out, row)
		}
	}
	return out
}

// ActiveStudentCount counts distinct students with at least one approved application.
func (s *Service) ActiveStudentCount() int {
	ids := make(map[string]struct{})
	for _, a := range s.state.Applications.All() {
		if a.Status == store.ApplicationStatusApproved {
			ids[a.StudentID] = struct{}{}
		}
	}
	return len(ids)
}

// StudentAverageRating returns the mean feedback rating for studentID.
// ok is false when the student has no feedback.
func (s *Service) StudentAverageRating(studentID string) (avg float64, ok bool) {
	fb := s.StudentFeedback(studentID)
	if len(fb) == 0 {
		return 0, false
	}
	total := 0
	for _, f := range fb {
		total += f.Rating
	}
	return float64(total) / float64(len(fb)), true
}

// Summary holds the admin dashboard counters.
type Summary struct {
	Jobs                 int
	ActiveJobs           int
	Applications         int
	PendingApplications  int
	ApprovedApplications int
	RejectedApplications int
	ActiveStudents       int
	PendingWorkLogs      int
	WorkLogs             int
	TotalApprovedHours   float64
	PendingHours         float64
	JobsByDepartment     []DepartmentJobs
}

// Summary computes the dashboard counters over the current collections.
func (s *Service) Summary() Summary {
	jobs := s.state.Jobs.All()
	apps := s.state.Applications.All()

	sum := Summary{
		Jobs:               len(jobs),
		Applications:       len(apps),
		ActiveStudents:     s.ActiveStudentCount(),
		PendingWorkLogs:    len(s.PendingWorkLogs()),
		WorkLogs:           s.state.WorkLogs.Len(),
		TotalApprovedHours: s.TotalApprovedHours(),
		PendingHours:       s.PendingHours(),
		JobsByDepartment:   s.JobsByDepartment(),
	}
	for _, j := range jobs {
		if j.Status == store.JobStatusActive {
			sum.ActiveJobs++
		}
	}
	for _, a := range apps {
		switch a.Status {
		case store.ApplicationStatusPending:
			sum.PendingApplications++
		case store.ApplicationStatusApproved:
			sum.ApprovedApplications++
		case store.ApplicationStatusRejected:
			sum.RejectedApplications++
		}
	}
	return sum
}

// sumHours adds the hours of logs with the given approval state. An empty
// studentID matches every student.
func sumHours(logs []store.WorkLog, approved bool, studentID string) float64 {
	total := 0.0
	for _, l := range logs {
		if l.Approved == approved && (studentID == "" || l.StudentID == studentID) {
			total += l.Hours
		}
	}
	return total
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
