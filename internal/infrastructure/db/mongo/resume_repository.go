package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/careerforge/resume-platform/internal/core/domain"
)

const resumesCollection = "resumes"

type ResumeRepository struct {
	col *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) *ResumeRepository {
	return &ResumeRepository{col: db.Collection(resumesCollection)}
}

func (r *ResumeRepository) Create(ctx context.Context, resume *domain.Resume) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, resume); err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

// FindByID retrieves a resume scoped to its owner. A resume belonging to a
// different user is reported as not found.
func (r *ResumeRepository) FindByID(ctx context.Context, id, userID string) (*domain.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var resume domain.Resume
	err := r.col.FindOne(ctx, bson.M{"id": id, "user_id": userID}).Decode(&resume)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResumeNotFound
		}
		return nil, fmt.Errorf("find resume: %w", err)
	}
	return &resume, nil
}

func (r *ResumeRepository) ListByUser(ctx context.Context, userID string, limit int64) ([]*domain.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetLimit(limit).SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer cursor.Close(ctx)

	var resumes []*domain.Resume
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("decode resumes: %w", err)
	}
	return resumes, nil
}

func (r *ResumeRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": id, "user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("delete resume: %w", err)
	}
	return res.DeletedCount, nil
}

// EnsureIndexes creates lookup indexes for owner-scoped queries.
func (r *ResumeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
