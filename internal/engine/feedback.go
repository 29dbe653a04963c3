package engine

import (
	"context"
	"strings"

	"workstudy/internal/store"

	"go.opentelemetry.io/otel/attribute"
)

// FeedbackInput is the admin-supplied part of a feedback entry.
type FeedbackInput struct {
	StudentID string
	JobID     string
	Rating    int
	Comment   string
}

// AddFeedback records a review authored by the acting admin.
func (s *Service) AddFeedback(ctx context.Context, in FeedbackInput) (store.Feedback, error) {
	ctx, span, log := s.start(ctx, "AddFeedback",
		attribute.String("student.id", in.StudentID), attribute.Int("feedback.rating", in.Rating))
	defer span.End()

	var v validator
	v.check(strings.TrimSpace(in.StudentID) != "", "studentId", "Student is required.")
	v.check(strings.TrimSpace(in.JobID) != "", "jobId", "Job is required.")
	v.check(in.Rating >= 1 && in.Rating <= 5, "rating", "Rating must be between 1 and 5.")
	if err := v.err(); err != nil {
		return store.Feedback{}, err
	}

	fb := store.Feedback{
		ID:        s.newID(prefixFeedback),
		StudentID: in.StudentID,
		JobID:     in.JobID,
		AdminID:   s.adminID(),
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Date:      s.today(),
	}

	s.mu.Lock()
	s.state.Feedback.Update(ctx, func(items []store.Feedback) ([]store.Feedback, bool) {
		return append([]store.Feedback{fb}, items...), true
	})
	s.mu.Unlock()

	add(ctx, s.metrics.feedbackAdded)
	log.Info("feedback added", "feedback_id", fb.ID, "student_id", fb.StudentID, "rating", fb.Rating)
	return fb, nil
}
