package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

const (
	CategoryInternship = "internship"
	CategoryJob        = "job"
)

// JobListing is a posting visible to all users. Listings are read-only
// through the API; the catalog is seeded at startup when empty.
type JobListing struct {
	ID           string     `json:"id" bson:"id"`
	Title        string     `json:"title" bson:"title"`
	Company      string     `json:"company" bson:"company"`
	Location     string     `json:"location" bson:"location"`
	JobType      string     `json:"job_type" bson:"job_type"`
	Description  string     `json:"description" bson:"description"`
	Requirements []string   `json:"requirements" bson:"requirements"`
	PostedDate   time.Time  `json:"posted_date" bson:"posted_date"`
	Deadline     *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Salary       string     `json:"salary,omitempty" bson:"salary,omitempty"`
	Stipend      string     `json:"stipend,omitempty" bson:"stipend,omitempty"`
	Category     string     `json:"category" bson:"category"`
}
