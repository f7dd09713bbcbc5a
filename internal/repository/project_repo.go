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

type mongoProjectRepo struct {
	col *mongo.Collection
}

func NewMongoProjectRepo(db *mongo.Database, collection string) ProjectRepository {
	col := db.Collection(collection)
	_, _ = col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return &mongoProjectRepo{col: col}
}

func (r *mongoProjectRepo) Insert(ctx context.Context, p *models.Project) (*models.Project, error) {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	res, err := r.col.InsertOne(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *mongoProjectRepo) FindByID(ctx context.Context, id string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var p models.Project
	if err := r.col.FindOne(ctx, bson.M{"_id": objID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoProjectRepo) FindAll(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *mongoProjectRepo) FindByClientID(ctx context.Context, clientID string) ([]models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(clientID)
	if err != nil {
		return nil, ErrInvalidID
	}
	return r.find(ctx, bson.M{"client_id": objID})
}

func (r *mongoProjectRepo) find(ctx context.Context, filter bson.M) ([]models.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []models.Project{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *mongoProjectRepo) UpdateFields(ctx context.Context, id string, fields bson.M) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": fields}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoProjectRepo) Delete(ctx context.Context, id string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var p models.Project
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": objID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// DeleteMany removes every project whose ID is in ids and reports how many
// documents were actually deleted. IDs that do not parse count as unmatched.
func (r *mongoProjectRepo) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}
	if len(objIDs) == 0 {
		return 0, nil
	}
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *mongoProjectRepo) AddSkill(ctx context.Context, id, skill string) (*models.Project, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Project
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$addToSet": bson.M{"skills": skill}}, opts).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *mongoProjectRepo) Exists(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrInvalidID
	}
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": objID}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
