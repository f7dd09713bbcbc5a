package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
	log  *zap.Logger
}

func NewUserService(repo repository.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Create inserts the user as given. Uniqueness of username and email is
// enforced by the store's unique indexes; a violation surfaces as
// repository.ErrDuplicate.
func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if u.Username == "" {
		return nil, validationErr("username", "username is required")
	}
	if u.Email == "" {
		return nil, validationErr("email", "email is required")
	}
	if u.UserType == "" {
		u.UserType = models.UserTypeClient
	}
	u.CreatedAt = time.Now().UTC()
	return s.repo.Insert(ctx, u)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context, userType models.UserType) ([]models.User, error) {
	return s.repo.FindAll(ctx, userType)
}

// Update applies a partial field merge and returns the post-update document.
// An empty patch is a no-op that returns the stored document unchanged.
func (s *UserService) Update(ctx context.Context, id string, patch bson.M) (*models.User, error) {
	if len(patch) == 0 {
		return s.repo.FindByID(ctx, id)
	}
	delete(patch, "_id")
	return s.repo.UpdateFields(ctx, id, patch)
}
