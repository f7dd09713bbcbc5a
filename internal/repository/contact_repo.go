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

type mongoContactRepo struct {
	col *mongo.Collection
}

func NewMongoContactRepo(db *mongo.Database, collection string) ContactRepository {
	return &mongoContactRepo{col: db.Collection(collection)}
}

func (r *mongoContactRepo) Insert(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return nil, err
	}
	m.ID = res.InsertedID.(primitive.ObjectID)
	return m, nil
}

func (r *mongoContactRepo) FindAll(ctx context.Context) ([]models.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.ContactMessage{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoContactRepo) MarkRead(ctx context.Context, id string) (*models.ContactMessage, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var m models.ContactMessage
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"is_read": true}}, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}
