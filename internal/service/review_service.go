package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

const (
	minRating = 1
	maxRating = 5
)

type CreateReviewInput struct {
	ProjectID string
	ClientID  string
	HackerID  string
	Rating    int
	Comment   string
	Featured  bool
}

type ReviewService struct {
	reviews  repository.ReviewRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewReviewService(reviews repository.ReviewRepository, projects repository.ProjectRepository, users repository.UserRepository, log *zap.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, projects: projects, users: users, log: log}
}

// Create validates the rating bounds and that every referenced document
// exists before inserting.
func (s *ReviewService) Create(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.Rating < minRating || in.Rating > maxRating {
		return nil, validationErr("rating", "rating must be between 1 and 5")
	}

	projectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ProjectID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	clientID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ClientID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	hackerID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.HackerID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	ok, err := s.projects.Exists(ctx, projectID.Hex())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validationErr("projectId", "project does not exist")
	}
	for field, id := range map[string]string{"clientId": clientID.Hex(), "hackerId": hackerID.Hex()} {
		ok, err := s.users.Exists(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, validationErr(field, field+" does not reference an existing user")
		}
	}

	return s.reviews.Insert(ctx, &models.Review{
		ProjectID: projectID,
		ClientID:  clientID,
		HackerID:  hackerID,
		Rating:    in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		Featured:  in.Featured,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *ReviewService) ListByHacker(ctx context.Context, hackerID string) ([]models.Review, error) {
	return s.reviews.FindByHackerID(ctx, hackerID)
}

// ListTestimonials returns reviews marked featured, newest first.
func (s *ReviewService) ListTestimonials(ctx context.Context) ([]models.Review, error) {
	return s.reviews.FindFeatured(ctx)
}

func (s *ReviewService) SetFeatured(ctx context.Context, id string, featured bool) (*models.Review, error) {
	return s.reviews.SetFeatured(ctx, id, featured)
}
