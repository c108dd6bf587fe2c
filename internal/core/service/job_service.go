package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/careerforge/resume-platform/internal/core/domain"
	"github.com/careerforge/resume-platform/internal/core/ports"
)

const (
	defaultJobsLimit = 50
	maxJobsLimit     = 100
)

// JobService exposes the public, read-only job catalog.
type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

func (s *JobService) List(ctx context.Context, category string, limit int) ([]*domain.JobListing, error) {
	if limit <= 0 {
		limit = defaultJobsLimit
	}
	if limit > maxJobsLimit {
		limit = maxJobsLimit
	}
	return s.repo.List(ctx, category, int64(limit))
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.JobListing, error) {
	return s.repo.FindByID(ctx, id)
}

// Seed populates the catalog with the sample listings when it is empty.
// Calling it again is a no-op.
func (s *JobService) Seed(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	jobs := sampleListings()
	if err := s.repo.InsertMany(ctx, jobs); err != nil {
		return err
	}
	s.logger.Info().Int("count", len(jobs)).Msg("seeded job listings")
	return nil
}

func sampleListings() []*domain.JobListing {
	now := time.Now().UTC()
	return []*domain.JobListing{
		{ID: uuid.NewString(), Title: "Frontend Developer Intern", Company: "TechCorp", Location: "Bangalore, India", JobType: "Remote", Description: "Build responsive web applications using React", Requirements: []string{"React", "JavaScript", "HTML/CSS"}, PostedDate: now, Stipend: "₹15,000/month", Category: domain.CategoryInternship},
		{ID: uuid.NewString(), Title: "Data Science Intern", Company: "DataMinds", Location: "Mumbai, India", JobType: "Hybrid", Description: "Work on machine learning models", Requirements: []string{"Python", "ML", "Statistics"}, PostedDate: now, Stipend: "₹20,000/month", Category: domain.CategoryInternship},
		{ID: uuid.NewString(), Title: "UI/UX Designer", Company: "DesignHub", Location: "Delhi, India", JobType: "Full-time", Description: "Design user interfaces for mobile and web", Requirements: []string{"Figma", "Adobe XD", "User Research"}, PostedDate: now, Salary: "₹6-8 LPA", Category: domain.CategoryJob},
		{ID: uuid.NewString(), Title: "Full Stack Developer", Company: "StartupXYZ", Location: "Pune, India", JobType: "Full-time", Description: "Build scalable web applications", Requirements: []string{"React", "Node.js", "MongoDB"}, PostedDate: now, Salary: "₹8-12 LPA", Category: domain.CategoryJob},
		{ID: uuid.NewString(), Title: "Content Writing Intern", Company: "MediaCo", Location: "Remote", JobType: "Remote", Description: "Create engaging content for blogs and social media", Requirements: []string{"Writing", "SEO", "Research"}, PostedDate: now, Stipend: "₹10,000/month", Category: domain.CategoryInternship},
		{ID: uuid.NewString(), Title: "Marketing Intern", Company: "GrowthLabs", Location: "Hyderabad, India", JobType: "On-site", Description: "Assist in digital marketing campaigns", Requirements: []string{"Social Media", "Analytics", "Communication"}, PostedDate: now, Stipend: "₹12,000/month", Category: domain.CategoryInternship},
		{ID: uuid.NewString(), Title: "Product Manager", Company: "InnovateTech", Location: "Bangalore, India", JobType: "Full-time", Description: "Drive product strategy and roadmap", Requirements: []string{"Product Management", "Analytics", "Leadership"}, PostedDate: now, Salary: "₹15-20 LPA", Category: domain.CategoryJob},
		{ID: uuid.NewString(), Title: "Mobile App Developer Intern", Company: "AppBuilders", Location: "Chennai, India", JobType: "Hybrid", Description: "Develop iOS and Android applications", Requirements: []string{"React Native", "Flutter", "Mobile Development"}, PostedDate: now, Stipend: "₹18,000/month", Category: domain.CategoryInternship},
	}
}
