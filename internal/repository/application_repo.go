package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/XLmonzurulislam/ByteStation-SDF/internal/models"
)

type mongoApplicationRepo struct {
	col *mongo.Collection
}

// NewMongoApplicationRepo builds the applications repository. The compound
// unique index keeps one application per (project, hacker) pair.
func NewMongoApplicationRepo(db *mongo.Database, collection string) ApplicationRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "project_id", Value: 1}, {Key: "hacker_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "hacker_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	return &mongoApplicationRepo{col: col}
}

func (r *mongoApplicationRepo) Insert(ctx context.Context, a *models.Application) (*models.Application, error) {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	a.ID = res.InsertedID.(primitive.ObjectID)
	return a, nil
}

func (r *mongoApplicationRepo) FindByProjectID(ctx context.Context, projectID string) ([]models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(projectID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, bson.M{"project_id": objID})
}

func (r *mongoApplicationRepo) FindByHackerID(ctx context.Context, hackerID string) ([]models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(hackerID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, bson.M{"hacker_id": objID})
}

func (r *mongoApplicationRepo) find(ctx context.Context, filter bson.M) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Application{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoApplicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var a models.Application
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
