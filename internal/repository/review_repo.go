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

type mongoReviewRepo struct {
	col *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database, collection string) ReviewRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "hacker_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	})
	return &mongoReviewRepo{col: col}
}

func (r *mongoReviewRepo) Insert(ctx context.Context, rev *models.Review) (*models.Review, error) {
	if rev.CreatedAt.IsZero() {
		rev.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, rev)
	if err != nil {
		return nil, err
	}
	rev.ID = res.InsertedID.(primitive.ObjectID)
	return rev, nil
}

func (r *mongoReviewRepo) FindByHackerID(ctx context.Context, hackerID string) ([]models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(hackerID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, bson.M{"hacker_id": objID})
}

func (r *mongoReviewRepo) FindFeatured(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{"featured": true})
}

func (r *mongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoReviewRepo) SetFeatured(ctx context.Context, id string, featured bool) (*models.Review, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var rev models.Review
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"featured": featured}}, opts).Decode(&rev)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}
