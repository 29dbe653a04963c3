package engine

import (
	"context"

	"workstudy/internal/store"

	"go.opentelemetry.io/otel/attribute"
)

// MsgAlreadyApplied is the refusal reason for a duplicate application.
const MsgAlreadyApplied = "Already applied to this job."

// ApplyResult distinguishes a created application from a refused one.
type ApplyResult struct {
	OK          bool
	Message     string
	Application *store.Application
}

// ApplyForJob files a pending application unless studentID already applied
// to jobID, in which case it returns a failed result and changes nothing.
func (s *Service) ApplyForJob(ctx context.Context, studentID, jobID, coverNote string) ApplyResult {
	ctx, span, log := s.start(ctx, "ApplyForJob",
		attribute.String("student.id", studentID), attribute.String("job.id", jobID))
	defer span.End()

	app := store.Application{
		ID:          s.newID(prefixApplication),
		StudentID:   studentID,
		JobID:       jobID,
		Status:      store.ApplicationStatusPending,
		AppliedDate: s.today(),
		CoverNote:   coverNote,
	}

	s.mu.Lock()
	created := s.state.Applications.Update(ctx, func(apps []store.Application) ([]store.Application, bool) {
		for _, a := range apps {
			if a.StudentID == studentID && a.JobID == jobID {
				return apps, false
			}
		}
		return append([]store.Application{app}, apps...), true
	})
	s.mu.Unlock()

	if !created {
		add(ctx, s.metrics.applicationsRejected)
		log.Info("duplicate application refused", "student_id", studentID, "job_id", jobID)
		return ApplyResult{OK: false, Message: MsgAlreadyApplied}
	}

	add(ctx, s.metrics.applicationsCreated)
	log.Info("application created", "application_id", app.ID, "student_id", studentID, "job_id", jobID)
	return ApplyResult{OK: true, Application: &app}
}

// UpdateApplicationStatus sets the status of appID. Any status may follow any
// other. It returns false when no application matches.
func (s *Service) UpdateApplicationStatus(ctx context.Context, appID string, status store.ApplicationStatus) (bool, error) {
	ctx, span, log := s.start(ctx, "UpdateApplicationStatus",
		attribute.String("application.id", appID), attribute.String("application.status", string(status)))
	defer span.End()

	var v validator
	v.check(status.Valid(), "status", "Status must be pending, approved or rejected.")
	if err := v.err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	found := s.state.Applications.Update(ctx, func(apps []store.Application) ([]store.Application, bool) {
		for i := range apps {
			if apps[i].ID == appID {
				apps[i].Status = status
				return apps, true
			}
		}
		return apps, false
	})
	s.mu.Unlock()

	if found {
		add(ctx, s.metrics.statusChanges)
		log.Info("application status updated", "application_id", appID, "status", status)
	}
	return found, nil
}
