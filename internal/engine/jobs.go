package engine

import (
	"context"
	"slices"
	"strings"

	"workstudy/internal/store"

	"go.opentelemetry.io/otel/attribute"
)

// JobInput is the admin-supplied part of a new job posting.
type JobInput struct {
	Title        string
	Description  string
	Department   string
	HourlyRate   float64
	MaxHours     int
	Requirements string
	Location     string
}

// JobChanges is a partial update; nil fields are left as they are.
type JobChanges struct {
	ID           *string
	Title        *string
	Description  *string
	Department   *string
	HourlyRate   *float64
	MaxHours     *int
	PostedDate   *store.Date
	Status       *store.JobStatus
	PostedBy     *string
	Requirements *string
	Location     *string
}

func (in JobInput) validate() error {
	var v validator
	v.check(strings.TrimSpace(in.Title) != "", "title", "Job title is required.")
	v.check(strings.TrimSpace(in.Description) != "", "description", "Description is required.")
	checkDepartment(&v, in.Department)
	v.check(in.HourlyRate > 0, "hourlyRate", "Enter a valid hourly rate.")
	v.check(in.MaxHours > 0, "maxHours", "Enter valid max hours.")
	return v.err()
}

// checkDepartment requires name to be one of store.Departments.
func checkDepartment(v *validator, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		v.check(false, "department", "Department is required.")
		return
	}
	v.check(slices.Contains(store.Departments(), name), "department", "Choose one of the listed departments.")
}

// PostJob creates an active job credited to the acting admin and puts it at
// the front of the collection.
func (s *Service) PostJob(ctx context.Context, in JobInput) (store.Job, error) {
	ctx, span, log := s.start(ctx, "PostJob")
	defer span.End()

	if err := in.validate(); err != nil {
		return store.Job{}, err
	}

	job := store.Job{
		ID:           s.newID(prefixJob),
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Department:   strings.TrimSpace(in.Department),
		HourlyRate:   in.HourlyRate,
		MaxHours:     in.MaxHours,
		PostedDate:   s.today(),
		Status:       store.JobStatusActive,
		PostedBy:     s.adminID(),
		Requirements: strings.TrimSpace(in.Requirements),
		Location:     strings.TrimSpace(in.Location),
	}

	s.mu.Lock()
	s.state.Jobs.Update(ctx, func(jobs []store.Job) ([]store.Job, bool) {
		return append([]store.Job{job}, jobs...), true
	})
	s.mu.Unlock()

	span.SetAttributes(attribute.String("job.id", job.ID))
	add(ctx, s.metrics.jobsPosted)
	log.Info("job posted", "job_id", job.ID, "department", job.Department)
	return job, nil
}

// UpdateJob merges changes into the job with jobID. It returns false when no
// job matches. The id and postedDate change only when set in changes.
func (s *Service) UpdateJob(ctx context.Context, jobID string, changes JobChanges) (bool, error) {
	ctx, span, log := s.start(ctx, "UpdateJob", attribute.String("job.id", jobID))
	defer span.End()

	var v validator
	if changes.HourlyRate != nil {
		v.check(*changes.HourlyRate > 0, "hourlyRate", "Enter a valid hourly rate.")
	}
	if changes.MaxHours != nil {
		v.check(*changes.MaxHours > 0, "maxHours", "Enter valid max hours.")
	}
	if changes.ID != nil {
		v.check(strings.TrimSpace(*changes.ID) != "", "id", "Job id cannot be empty.")
	}
	if changes.Department != nil {
		dept := strings.TrimSpace(*changes.Department)
		changes.Department = &dept
		checkDepartment(&v, dept)
	}
	if err := v.err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var conflict error
	found := s.state.Jobs.Update(ctx, func(jobs []store.Job) ([]store.Job, bool) {
		idx := -1
		for i := range jobs {
			if jobs[i].ID == jobID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return jobs, false
		}
		if changes.ID != nil && *changes.ID != jobID {
			for i := range jobs {
				if jobs[i].ID == *changes.ID {
					var cv validator
					cv.check(false, "id", "Another job already uses this id.")
					conflict = cv.err()
					return jobs, false
				}
			}
		}
		jobs[idx] = changes.apply(jobs[idx])
		return jobs, true
	})
	if conflict != nil {
		return false, conflict
	}
	if found {
		log.Info("job updated", "job_id", jobID)
	}
	return found, nil
}

func (c JobChanges) apply(j store.Job) store.Job {
	if c.ID != nil {
		j.ID = *c.ID
	}
	if c.Title != nil {
		j.Title = *c.Title
	}
	if c.Description != nil {
		j.Description = *c.Description
	}
	if c.Department != nil {
		j.Department = *c.Department
	}
	if c.HourlyRate != nil {
		j.HourlyRate = *c.HourlyRate
	}
	if c.MaxHours != nil {
		j.MaxHours = *c.MaxHours
	}
	if c.PostedDate != nil {
		j.PostedDate = *c.PostedDate
	}
	if c.Status != nil {
		j.Status = *c.Status
	}
	if c.PostedBy != nil {
		j.PostedBy = *c.PostedBy
	}
	if c.Requirements != nil {
		j.Requirements = *c.Requirements
	}
	if c.Location != nil {
		j.Location = *c.Location
	}
	return j
}
