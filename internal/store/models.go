// Package store contains the data model and persistence layer for the work-study system.
package store

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date encoding used for every persisted date.
const DateLayout = "2006-01-02"

// Date is a calendar date encoded as YYYY-MM-DD.
// The zero value is the empty string and means "not set".
type Date string

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) Date {
	return Date(t.UTC().Format(DateLayout))
}

// ParseDate validates s as a YYYY-MM-DD calendar date.
func ParseDate(s string) (Date, error) {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(s), nil
}

// After reports whether d is later than other. Both must be well formed,
// which makes lexical order equal to chronological order.
func (d Date) After(other Date) bool {
	return d > other
}

func (d Date) String() string { return string(d) }

// Role tags an identity as an administrator or a student.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// User is one of the pre-provisioned identities that can act in the system.
type User struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       Role    `json:"role"`
	Avatar     string  `json:"avatar,omitempty"`
	Department string  `json:"department,omitempty"`
	Title      string  `json:"title,omitempty"`
	GPA        float64 `json:"gpa,omitempty"`
	Year       string  `json:"year,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// JobStatus is the lifecycle state of a posted job.
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posted work-study position.
type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Department   string    `json:"department"`
	HourlyRate   float64   `json:"hourlyRate"`
	MaxHours     int       `json:"maxHours"`
	PostedDate   Date      `json:"postedDate"`
	Status       JobStatus `json:"status"`
	PostedBy     string    `json:"postedBy"`
	Requirements string    `json:"requirements,omitempty"`
	Location     string    `json:"location,omitempty"`
}

// ApplicationStatus is the admin decision on an application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is one of the known application statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Application is a student's request to fill a Job.
type Application struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"studentId"`
	JobID       string            `json:"jobId"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate Date              `json:"appliedDate"`
	CoverNote   string            `json:"coverNote,omitempty"`
}

// WorkLog is a student's reported hours against an approved Job.
type WorkLog struct {
	ID            string  `json:"id"`
	StudentID     string  `json:"studentId"`
	JobID         string  `json:"jobId"`
	Date          Date    `json:"date"`
	Hours         float64 `json:"hours"`
	Notes         string  `json:"notes,omitempty"`
	Approved      bool    `json:"approved"`
	SubmittedDate Date    `json:"submittedDate"`
}

// Feedback is an admin's performance review of a student's work.
type Feedback struct {
	ID        string `json:"id"`
	StudentID string `json:"studentId"`
	JobID     string `json:"jobId"`
	AdminID   string `json:"adminId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      Date   `json:"date"`
}
