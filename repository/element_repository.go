package repository

import (
	"context"
	"errors"
	"time"

	"whiteboard-server/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ElementRepositoryInterface interface {
	InsertElement(ctx context.Context, element models.Element) error
	FindElementsByCanvasID(ctx context.Context, canvasID string) ([]models.Element, error)
	UpdateElement(ctx context.Context, canvasID, elementID string, patch models.ElementPatch, ts time.Time) (models.Element, error)
	DeleteElement(ctx context.Context, canvasID, elementID string) (models.Element, error)
}

type ElementRepository struct {
	collection *mongo.Collection
}

func NewElementRepository(collection *mongo.Collection) *ElementRepository {
	return &ElementRepository{collection: collection}
}

func elementKey(canvasID, elementID string) bson.M {
	return bson.M{"canvas_id": canvasID, "element_id": elementID}
}

func (r *ElementRepository) InsertElement(ctx context.Context, element models.Element) error {
	_, err := r.collection.InsertOne(ctx, element)
	return err
}

// FindElementsByCanvasID returns an empty slice for an unknown canvas; it
// does not check canvas existence itself.
func (r *ElementRepository) FindElementsByCanvasID(ctx context.Context, canvasID string) ([]models.Element, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"canvas_id": canvasID})
	if err != nil {
		return nil, err
	}
	elements := []models.Element{}
	if err = cursor.All(ctx, &elements); err != nil {
		return nil, err
	}
	return elements, nil
}

// UpdateElement applies a partial update and returns the element as written.
// FindOneAndUpdate is used so a missing target surfaces as models.ErrElementNotFound
// instead of a silently matched-nothing write.
func (r *ElementRepository) UpdateElement(ctx context.Context, canvasID, elementID string, patch models.ElementPatch, ts time.Time) (models.Element, error) {
	var updated models.Element
	set, err := BuildElementUpdate(patch, ts)
	if err != nil {
		return updated, err
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = r.collection.FindOneAndUpdate(ctx,
		elementKey(canvasID, elementID),
		bson.M{"$set": set},
		opts,
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return updated, models.ErrElementNotFound
	}
	return updated, err
}

// DeleteElement returns the element's prior state. Deleting twice yields
// models.ErrElementNotFound on the second call.
func (r *ElementRepository) DeleteElement(ctx context.Context, canvasID, elementID string) (models.Element, error) {
	var deleted models.Element
	err := r.collection.FindOneAndDelete(ctx, elementKey(canvasID, elementID)).Decode(&deleted)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return deleted, models.ErrElementNotFound
	}
	return deleted, err
}
