package domain

import (
	"errors"
	"time"
)

var ErrAlreadyApplied = errors.New("already applied to this job")

// StatusApplied is the initial (and currently only) application status.
const StatusApplied = "applied"

// Application links one user, one job and one resume. At most one
// application may exist per (user, job) pair, enforced by a unique index.
type Application struct {
	ID          string    `json:"id" bson:"id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	JobID       string    `json:"job_id" bson:"job_id"`
	ResumeID    string    `json:"resume_id" bson:"resume_id"`
	CoverLetter string    `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Status      string    `json:"status" bson:"status"`
	AppliedAt   time.Time `json:"applied_at" bson:"applied_at"`
}
