package repository

import (
	"time"

	"whiteboard-server/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrEmptyUpdate is a validation failure: the patch carried nothing to write.
var ErrEmptyUpdate = models.NewValidationError("no updatable fields provided")

// BuildElementUpdate turns a typed patch into a $set document. Only fields
// the caller actually set are included; updated_at is always stamped with
// the operation's timestamp, which the service shares with the parent-canvas
// touch. The patch type cannot carry immutable fields, so nothing here needs
// a denylist check.
func BuildElementUpdate(patch models.ElementPatch, ts time.Time) (bson.M, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	set := bson.M{}
	if patch.X != nil {
		set["x"] = *patch.X
	}
	if patch.Y != nil {
		set["y"] = *patch.Y
	}
	if patch.Width != nil {
		set["width"] = *patch.Width
	}
	if patch.Height != nil {
		set["height"] = *patch.Height
	}
	if patch.Text != nil {
		set["text"] = *patch.Text
	}
	if patch.Fill != nil {
		set["fill"] = *patch.Fill
	}
	if patch.Stroke != nil {
		set["stroke"] = *patch.Stroke
	}
	if patch.StrokeWidth != nil {
		set["stroke_width"] = *patch.StrokeWidth
	}
	if patch.FontSize != nil {
		set["font_size"] = *patch.FontSize
	}
	if patch.FontFamily != nil {
		set["font_family"] = *patch.FontFamily
	}
	set["updated_at"] = ts
	return set, nil
}
