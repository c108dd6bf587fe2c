package domain

import (
	"errors"
	"time"
)

var (
	ErrResumeNotFound  = errors.New("resume not found")
	ErrUnsupportedFile = errors.New("unsupported file type")
)

// Resume is a stored CV owned exclusively by its creator. FilePath points at
// the uploaded source document in object storage, when one exists.
type Resume struct {
	ID        string    `json:"id" bson:"id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	FilePath  string    `json:"file_path,omitempty" bson:"file_path,omitempty"`
	ATSScore  *float64  `json:"ats_score,omitempty" bson:"ats_score,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
