package engine

import (
	"context"
	"math"
	"strings"

	"workstudy/internal/store"

	"go.opentelemetry.io/otel/attribute"
)

// Bounds on the hours a single work log may report.
const (
	MinLogHours = 0.5
	MaxLogHours = 12
)

// WorkLogInput is the student-supplied part of a work log.
type WorkLogInput struct {
	StudentID string
	JobID     string
	Date      string
	Hours     float64
	Notes     string
}

func (s *Service) validateWorkLog(in WorkLogInput) (store.Date, error) {
	var v validator
	v.check(strings.TrimSpace(in.StudentID) != "", "studentId", "Student is required.")
	v.check(strings.TrimSpace(in.JobID) != "", "jobId", "Please select a job.")

	var date store.Date
	if strings.TrimSpace(in.Date) == "" {
		v.check(false, "date", "Date is required.")
	} else if d, err := store.ParseDate(in.Date); err != nil {
		v.check(false, "date", "Date must be YYYY-MM-DD.")
	} else {
		v.check(!d.After(s.today()), "date", "Date cannot be in the future.")
		date = d
	}

	v.check(!math.IsNaN(in.Hours) && in.Hours >= MinLogHours && in.Hours <= MaxLogHours,
		"hours", "Hours must be between 0.5 and 12.")
	return date, v.err()
}

// SubmitWorkLog records unapproved hours for a student. It does not check
// that the student holds an approved application for the job.
func (s *Service) SubmitWorkLog(ctx context.Context, in WorkLogInput) (store.WorkLog, error) {
	ctx, span, log := s.start(ctx, "SubmitWorkLog",
		attribute.String("student.id", in.StudentID), attribute.String("job.id", in.JobID))
	defer span.End()

	date, err := s.validateWorkLog(in)
	if err != nil {
		return store.WorkLog{}, err
	}

	wl := store.WorkLog{
		ID:            s.newID(prefixWorkLog),
		StudentID:     in.StudentID,
		JobID:         in.JobID,
		Date:          date,
		Hours:         in.Hours,
		Notes:         strings.TrimSpace(in.Notes),
		Approved:      false,
		SubmittedDate: s.today(),
	}

	s.mu.Lock()
	s.state.WorkLogs.Update(ctx, func(logs []store.WorkLog) ([]store.WorkLog, bool) {
		return append([]store.WorkLog{wl}, logs...), true
	})
	s.mu.Unlock()

	add(ctx, s.metrics.workLogsSubmitted)
	log.Info("work log submitted", "log_id", wl.ID, "hours", wl.Hours)
	return wl, nil
}

// ApproveWorkLog marks logID approved. Approving an approved log is a no-op
// that still returns true; an unknown id returns false.
func (s *Service) ApproveWorkLog(ctx context.Context, logID string) bool {
	ctx, span, log := s.start(ctx, "ApproveWorkLog", attribute.String("log.id", logID))
	defer span.End()

	var (
		found bool
		hours float64
	)
	s.mu.Lock()
	approved := s.state.WorkLogs.Update(ctx, func(logs []store.WorkLog) ([]store.WorkLog, bool) {
		for i := range logs {
			if logs[i].ID != logID {
				continue
			}
			found = true
			if logs[i].Approved {
				return logs, false
			}
			logs[i].Approved = true
			hours = logs[i].Hours
			return logs, true
		}
		return logs, false
	})
	s.mu.Unlock()

	if approved {
		add(ctx, s.metrics.workLogsApproved)
		if s.metrics.hoursApproved != nil {
			s.metrics.hoursApproved.Add(ctx, hours)
		}
		log.Info("work log approved", "log_id", logID, "hours", hours)
	}
	return found
}
