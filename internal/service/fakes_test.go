package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
	"github.com/XLmonzurulislam/ByteStation-SDF/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository with the same error contract
// as the Mongo implementation.
type fakeUserRepo struct {
	users   map[string]models.User
	failErr error
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{}}
}

func (f *fakeUserRepo) add(u models.User) string {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID.Hex()] = u
	return u.ID.Hex()
}

func (f *fakeUserRepo) Insert(_ context.Context, u *models.User) (*models.User, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return nil, repository.ErrDuplicate
		}
	}
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindAll(_ context.Context, userType models.UserType) ([]models.User, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := []models.User{}
	for _, u := range f.users {
		if userType == "" || u.UserType == userType {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateFields(_ context.Context, id string, fields bson.M) (*models.User, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	f.updates++
	for k, v := range fields {
		switch k {
		case "full_name":
			u.FullName = v.(string)
		case "company":
			u.Company = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "is_verified":
			u.IsVerified = v.(bool)
		}
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeUserRepo) Exists(_ context.Context, id string) (bool, error) {
	if f.failErr != nil {
		return false, f.failErr
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, repository.ErrInvalidID
	}
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserRepo) CountByType(_ context.Context, userType models.UserType) (int64, error) {
	var n int64
	for _, u := range f.users {
		if u.UserType == userType {
			n++
		}
	}
	return n, nil
}

type fakeProjectRepo struct {
	projects map[string]models.Project
	failErr  error
	inserts  int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: map[string]models.Project{}}
}

func (f *fakeProjectRepo) add(p models.Project) string {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.projects[p.ID.Hex()] = p
	return p.ID.Hex()
}

func (f *fakeProjectRepo) Insert(_ context.Context, p *models.Project) (*models.Project, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.inserts++
	p.ID = primitive.NewObjectID()
	f.projects[p.ID.Hex()] = *p
	return p, nil
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id string) (*models.Project, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (f *fakeProjectRepo) FindAll(_ context.Context, status models.ProjectStatus) ([]models.Project, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	out := []models.Project{}
	for _, p := range f.projects {
		if status == "" || p.Status == status {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjectRepo) FindByClientID(_ context.Context, clientID string) ([]models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	out := []models.Project{}
	for _, p := range f.projects {
		if p.ClientID == objID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProjectRepo) UpdateFields(_ context.Context, id string, fields bson.M) (*models.Project, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "title":
			p.Title = v.(string)
		case "status":
			p.Status = models.ProjectStatus(v.(string))
		case "budget":
			p.Budget = v.(string)
		}
	}
	f.projects[id] = p
	return &p, nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id string) (*models.Project, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.projects, id)
	return &p, nil
}

func (f *fakeProjectRepo) DeleteMany(_ context.Context, ids []string) (int64, error) {
	if f.failErr != nil {
		return 0, f.failErr
	}
	var n int64
	for _, id := range ids {
		if _, ok := f.projects[id]; ok {
			delete(f.projects, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeProjectRepo) AddSkill(_ context.Context, id, skill string) (*models.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for _, s := range p.Skills {
		if s == skill {
			return &p, nil
		}
	}
	p.Skills = append(p.Skills, skill)
	f.projects[id] = p
	return &p, nil
}

func (f *fakeProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, repository.ErrInvalidID
	}
	_, ok := f.projects[id]
	return ok, nil
}

type fakeReviewRepo struct {
	reviews map[string]models.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: map[string]models.Review{}}
}

func (f *fakeReviewRepo) Insert(_ context.Context, r *models.Review) (*models.Review, error) {
	r.ID = primitive.NewObjectID()
	f.reviews[r.ID.Hex()] = *r
	return r, nil
}

func (f *fakeReviewRepo) FindByHackerID(_ context.Context, hackerID string) ([]models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(hackerID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.HackerID == objID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindFeatured(_ context.Context) ([]models.Review, error) {
	out := []models.Review{}
	for _, r := range f.reviews {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) SetFeatured(_ context.Context, id string, featured bool) (*models.Review, error) {
	r, ok := f.reviews[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	r.Featured = featured
	f.reviews[id] = r
	return &r, nil
}

type fakeApplicationRepo struct {
	apps map[string]models.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[string]models.Application{}}
}

func (f *fakeApplicationRepo) Insert(_ context.Context, a *models.Application) (*models.Application, error) {
	for _, existing := range f.apps {
		if existing.ProjectID == a.ProjectID && existing.HackerID == a.HackerID {
			return nil, repository.ErrDuplicate
		}
	}
	a.ID = primitive.NewObjectID()
	f.apps[a.ID.Hex()] = *a
	return a, nil
}

func (f *fakeApplicationRepo) FindByProjectID(_ context.Context, projectID string) ([]models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	out := []models.Application{}
	for _, a := range f.apps {
		if a.ProjectID == objID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) FindByHackerID(_ context.Context, hackerID string) ([]models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(hackerID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	out := []models.Application{}
	for _, a := range f.apps {
		if a.HackerID == objID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a.Status = status
	f.apps[id] = a
	return &a, nil
}

type fakeContactRepo struct {
	msgs map[string]models.ContactMessage
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{msgs: map[string]models.ContactMessage{}}
}

func (f *fakeContactRepo) Insert(_ context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	m.ID = primitive.NewObjectID()
	f.msgs[m.ID.Hex()] = *m
	return m, nil
}

func (f *fakeContactRepo) FindAll(_ context.Context) ([]models.ContactMessage, error) {
	out := []models.ContactMessage{}
	for _, m := range f.msgs {
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeContactRepo) MarkRead(_ context.Context, id string) (*models.ContactMessage, error) {
	m, ok := f.msgs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	m.IsRead = true
	f.msgs[id] = m
	return &m, nil
}
