package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

const (
	minTitleLen        = 10
	minDescriptionLen  = 50
	minRequirementsLen = 20
)

// Fallbacks used when normalizing list views of documents with missing fields.
const (
	fallbackTitle       = "Untitled"
	fallbackDescription = "No description provided"
	fallbackClientName  = "Unknown Client"
)

// CreateProjectInput is the plain field bag accepted for project creation.
type CreateProjectInput struct {
	ClientID          string
	Title             string
	Description       string
	Requirements      string
	AdditionalDetails string
	Budget            string
	Timeframe         string
	Status            string
	Skills            []string
}

// ProjectView is the normalized listing shape: every field is populated,
// falling back to documented defaults when the stored document is sparse.
type ProjectView struct {
	ID                string    `json:"id"`
	ClientID          string    `json:"clientId"`
	ClientName        string    `json:"clientName"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Requirements      string    `json:"requirements"`
	AdditionalDetails string    `json:"additionalDetails"`
	Budget            string    `json:"budget"`
	Timeframe         string    `json:"timeframe"`
	Status            string    `json:"status"`
	Skills            []string  `json:"skills"`
	CreatedAt         time.Time `json:"createdAt"`
}

type ProjectService struct {
	projects repository.ProjectRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewProjectService(projects repository.ProjectRepository, users repository.UserRepository, log *zap.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, log: log}
}

// Create normalizes and validates the input, then inserts the project.
// Validation runs in a fixed order and aborts before any write.
func (s *ProjectService) Create(ctx context.Context, in CreateProjectInput) (*models.Project, error) {
	p, err := buildProject(in)
	if err != nil {
		return nil, err
	}
	ok, err := s.users.Exists(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, validationErr("clientId", "client does not exist")
	}
	return s.projects.Insert(ctx, p)
}

// buildProject performs the trim / validate / default pipeline without
// touching the store.
func buildProject(in CreateProjectInput) (*models.Project, error) {
	clientID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.ClientID))
	if err != nil {
		return nil, repository.ErrInvalidID
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	requirements := strings.TrimSpace(in.Requirements)

	if len(title) < minTitleLen {
		return nil, validationErr("title", "title too short")
	}
	if len(description) < minDescriptionLen {
		return nil, validationErr("description", "description too short")
	}
	if len(requirements) < minRequirementsLen {
		return nil, validationErr("requirements", "requirements too short")
	}

	budget := strings.TrimSpace(in.Budget)
	if budget == "" {
		budget = models.DefaultBudget
	}
	timeframe := strings.TrimSpace(in.Timeframe)
	if timeframe == "" {
		timeframe = models.DefaultTimeframe
	}
	status := models.ProjectStatus(strings.TrimSpace(in.Status))
	if status == "" {
		status = models.ProjectStatusOpen
	}

	skills := make([]string, 0, len(in.Skills))
	for _, sk := range in.Skills {
		if sk = strings.TrimSpace(sk); sk != "" {
			skills = append(skills, sk)
		}
	}

	return &models.Project{
		ClientID:          clientID,
		Title:             title,
		Description:       description,
		Requirements:      requirements,
		AdditionalDetails: strings.TrimSpace(in.AdditionalDetails),
		Budget:            budget,
		Timeframe:         timeframe,
		Status:            status,
		Skills:            skills,
		CreatedAt:         time.Now().UTC(),
	}, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.FindByID(ctx, id)
}

// List returns all projects (optionally filtered by status) joined to their
// owning client's display name, newest first. A store failure on the project
// fetch is returned to the caller; a client that cannot be resolved degrades
// that row to the fallback name.
func (s *ProjectService) List(ctx context.Context, status models.ProjectStatus) ([]ProjectView, error) {
	projects, err := s.projects.FindAll(ctx, status)
	if err != nil {
		return nil, err
	}

	names := map[string]string{}
	views := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		clientID := p.ClientID.Hex()
		name, seen := names[clientID]
		if !seen {
			name = s.clientName(ctx, clientID)
			names[clientID] = name
		}
		views = append(views, newProjectView(p, name))
	}
	return views, nil
}

func (s *ProjectService) clientName(ctx context.Context, clientID string) string {
	u, err := s.users.FindByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && !errors.Is(err, repository.ErrInvalidID) {
			s.log.Warn("resolving project owner failed", zap.String("client_id", clientID), zap.Error(err))
		}
		return fallbackClientName
	}
	if u.FullName != "" {
		return u.FullName
	}
	if u.Username != "" {
		return u.Username
	}
	return fallbackClientName
}

func newProjectView(p models.Project, clientName string) ProjectView {
	v := ProjectView{
		ID:                p.ID.Hex(),
		ClientID:          p.ClientID.Hex(),
		ClientName:        clientName,
		Title:             p.Title,
		Description:       p.Description,
		Requirements:      p.Requirements,
		AdditionalDetails: p.AdditionalDetails,
		Budget:            p.Budget,
		Timeframe:         p.Timeframe,
		Status:            string(p.Status),
		Skills:            p.Skills,
		CreatedAt:         p.CreatedAt,
	}
	if v.Title == "" {
		v.Title = fallbackTitle
	}
	if v.Description == "" {
		v.Description = fallbackDescription
	}
	if v.Budget == "" {
		v.Budget = models.DefaultBudget
	}
	if v.Timeframe == "" {
		v.Timeframe = models.DefaultTimeframe
	}
	if v.Status == "" {
		v.Status = string(models.ProjectStatusOpen)
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	return v
}

func (s *ProjectService) ListByClient(ctx context.Context, clientID string) ([]models.Project, error) {
	return s.projects.FindByClientID(ctx, clientID)
}

func (s *ProjectService) Update(ctx context.Context, id string, patch bson.M) (*models.Project, error) {
	if len(patch) == 0 {
		return s.projects.FindByID(ctx, id)
	}
	delete(patch, "_id")
	return s.projects.UpdateFields(ctx, id, patch)
}

func (s *ProjectService) Delete(ctx context.Context, id string) (*models.Project, error) {
	return s.projects.Delete(ctx, id)
}

// DeleteMany removes the given projects and returns the number deleted.
func (s *ProjectService) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.projects.DeleteMany(ctx, ids)
}

// GetSkills returns the project's stored skill list, never nil.
func (s *ProjectService) GetSkills(ctx context.Context, id string) ([]string, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Skills == nil {
		return []string{}, nil
	}
	return p.Skills, nil
}

// AddSkill appends a skill to the project's skill list, deduplicated.
func (s *ProjectService) AddSkill(ctx context.Context, id, skill string) (*models.Project, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, validationErr("skill", "skill is required")
	}
	return s.projects.AddSkill(ctx, id, skill)
}
