package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/outliner-coach/letmeknowme/internal/model"
)

// ContentRepo stores the display content table, one document per key
type ContentRepo interface {
	Get(ctx context.Context) (model.Content, error)
	Upsert(ctx context.Context, content model.Content) error
}

type contentEntry struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type contentRepo struct {
	collection *mongo.Collection
}

// NewContentRepo creates a MongoDB-backed content repository
func NewContentRepo(db *mongo.Database) ContentRepo {
	return &contentRepo{
		collection: db.Collection("content"),
	}
}

func (r *contentRepo) Get(ctx context.Context) (model.Content, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []contentEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	content := make(model.Content, len(entries))
	for _, e := range entries {
		content[e.Key] = e.Value
	}
	return content, nil
}

func (r *contentRepo) Upsert(ctx context.Context, content model.Content) error {
	if len(content) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(content))
	for key, value := range content {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": key}).
			SetReplacement(contentEntry{Key: key, Value: value}).
			SetUpsert(true))
	}

	_, err := r.collection.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
