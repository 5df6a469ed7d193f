package repository

import (
	"context"
	"errors"
	"time"

	"whiteboard-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CanvasRepositoryInterface interface {
	SaveCanvas(ctx context.Context, canvas models.Canvas) error
	FindAllCanvases(ctx context.Context) ([]models.Canvas, error)
	FindCanvasByID(ctx context.Context, id string) (models.Canvas, error)
	TouchCanvas(ctx context.Context, id string, ts time.Time) error
}

type CanvasRepository struct {
	collection *mongo.Collection
}

func NewCanvasRepository(collection *mongo.Collection) *CanvasRepository {
	return &CanvasRepository{collection: collection}
}

func (r *CanvasRepository) SaveCanvas(ctx context.Context, canvas models.Canvas) error {
	_, err := r.collection.InsertOne(ctx, canvas)
	return err
}

func (r *CanvasRepository) FindAllCanvases(ctx context.Context) ([]models.Canvas, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	canvases := []models.Canvas{}
	if err = cursor.All(ctx, &canvases); err != nil {
		return nil, err
	}
	return canvases, nil
}

func (r *CanvasRepository) FindCanvasByID(ctx context.Context, id string) (models.Canvas, error) {
	var canvas models.Canvas
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&canvas)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return canvas, models.ErrCanvasNotFound
	}
	return canvas, err
}

// TouchCanvas bumps updated_at unconditionally. A missing canvas matches
// nothing and is reported as models.ErrCanvasNotFound so callers can log it.
func (r *CanvasRepository) TouchCanvas(ctx context.Context, id string, ts time.Time) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"updated_at": ts}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrCanvasNotFound
	}
	return nil
}
