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

type CreateApplicationInput struct {
	ProjectID     string
	HackerID      string
	Proposal      string
	EstimatedTime string
	PriceQuote    string
}

type ApplicationService struct {
	apps     repository.ApplicationRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewApplicationService(apps repository.ApplicationRepository, projects repository.ProjectRepository, users repository.UserRepository, log *zap.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, projects: projects, users: users, log: log}
}

// Create inserts a pending application. A second application for the same
// (project, hacker) pair fails with repository.ErrDuplicate.
func (s *ApplicationService) Create(ctx context.Context, in CreateApplicationInput) (*models.Application, error) {
	projectID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ProjectID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	hackerID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.HackerID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	if strings.TrimSpace(in.Proposal) == "" {
		return nil, validationErr("proposal", "proposal is required")
	}

	ok, err := s.projects.Exists(ctx, projectID.Hex())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validationErr("projectId", "project does not exist")
	}
	ok, err = s.users.Exists(ctx, hackerID.Hex())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validationErr("hackerId", "hacker does not exist")
	}

	return s.apps.Insert(ctx, &models.Application{
		ProjectID:     projectID,
		HackerID:      hackerID,
		Proposal:      strings.TrimSpace(in.Proposal),
		EstimatedTime: strings.TrimSpace(in.EstimatedTime),
		PriceQuote:    strings.TrimSpace(in.PriceQuote),
		Status:        models.ApplicationStatusPending,
		CreatedAt:     time.Now().UTC(),
	})
}

func (s *ApplicationService) ListByProject(ctx context.Context, projectID string) ([]models.Application, error) {
	return s.apps.FindByProjectID(ctx, projectID)
}

func (s *ApplicationService) ListByHacker(ctx context.Context, hackerID string) ([]models.Application, error) {
	return s.apps.FindByHackerID(ctx, hackerID)
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	switch status {
	case models.ApplicationStatusPending, models.ApplicationStatusAccepted, models.ApplicationStatusRejected:
	default:
		return nil, validationErr("status", "status must be pending, accepted or rejected")
	}
	return s.apps.UpdateStatus(ctx, id, status)
}
