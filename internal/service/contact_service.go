package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

type CreateContactInput struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	InquiryType string
}

type ContactService struct {
	repo repository.ContactRepository
	log  *zap.Logger
}

func NewContactService(repo repository.ContactRepository, log *zap.Logger) *ContactService {
	return &ContactService{repo: repo, log: log}
}

func (s *ContactService) Create(ctx context.Context, in CreateContactInput) (*models.ContactMessage, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if name == "" {
		return nil, validationErr("name", "name is required")
	}
	if email == "" {
		return nil, validationErr("email", "email is required")
	}
	if message == "" {
		return nil, validationErr("message", "message is required")
	}
	return s.repo.Insert(ctx, &models.ContactMessage{
		Name:        name,
		Email:       email,
		Subject:     strings.TrimSpace(in.Subject),
		Message:     message,
		InquiryType: strings.TrimSpace(in.InquiryType),
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.FindAll(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	return s.repo.MarkRead(ctx, id)
}
