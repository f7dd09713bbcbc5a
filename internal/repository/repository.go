package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
)

// UserRepository is the persistence contract for the users collection.
type UserRepository interface {
	Insert(ctx context.Context, u *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, userType models.UserType) ([]models.User, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	CountByType(ctx context.Context, userType models.UserType) (int64, error)
}

// ProjectRepository is the persistence contract for the projects collection.
// List results are ordered by creation time, newest first.
type ProjectRepository interface {
	Insert(ctx context.Context, p *models.Project) (*models.Project, error)
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindAll(ctx context.Context, status models.ProjectStatus) ([]models.Project, error)
	FindByClientID(ctx context.Context, clientID string) ([]models.Project, error)
	UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Project, error)
	Delete(ctx context.Context, id string) (*models.Project, error)
	DeleteMany(ctx context.Context, ids []string) (int64, error)
	AddSkill(ctx context.Context, id, skill string) (*models.Project, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type ReviewRepository interface {
	Insert(ctx context.Context, r *models.Review) (*models.Review, error)
	FindByHackerID(ctx context.Context, hackerID string) ([]models.Review, error)
	FindFeatured(ctx context.Context) ([]models.Review, error)
	SetFeatured(ctx context.Context, id string, featured bool) (*models.Review, error)
}

type ApplicationRepository interface {
	Insert(ctx context.Context, a *models.Application) (*models.Application, error)
	FindByProjectID(ctx context.Context, projectID string) ([]models.Application, error)
	FindByHackerID(ctx context.Context, hackerID string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error)
	FindAll(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) (*models.ContactMessage, error)
}
