package models

import (
	"fmt"
	"time"
)

type ElementType string

const (
	ElementRectangle ElementType = "rectangle"
	ElementText      ElementType = "text"
)

// Element is stored in the elements collection under the composite key
// (canvas_id, element_id). The element key is exposed to clients as "id".
type Element struct {
	ElementID   string      `bson:"element_id" json:"id"`
	CanvasID    string      `bson:"canvas_id" json:"canvasId"`
	Type        ElementType `bson:"type" json:"type"`
	X           float64     `bson:"x" json:"x"`
	Y           float64     `bson:"y" json:"y"`
	Width       *float64    `bson:"width,omitempty" json:"width,omitempty"`
	Height      *float64    `bson:"height,omitempty" json:"height,omitempty"`
	Text        *string     `bson:"text,omitempty" json:"text,omitempty"`
	Fill        string      `bson:"fill" json:"fill"`
	Stroke      *string     `bson:"stroke,omitempty" json:"stroke,omitempty"`
	StrokeWidth *float64    `bson:"stroke_width,omitempty" json:"strokeWidth,omitempty"`
	FontSize    *float64    `bson:"font_size,omitempty" json:"fontSize,omitempty"`
	FontFamily  *string     `bson:"font_family,omitempty" json:"fontFamily,omitempty"`
	CreatedAt   time.Time   `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updatedAt"`
}

// ElementInput is the creation payload. Ids and timestamps are always
// server-generated, so they have no place here.
type ElementInput struct {
	Type        ElementType `json:"type"`
	X           *float64    `json:"x"`
	Y           *float64    `json:"y"`
	Width       *float64    `json:"width"`
	Height      *float64    `json:"height"`
	Text        *string     `json:"text"`
	Fill        string      `json:"fill"`
	Stroke      *string     `json:"stroke"`
	StrokeWidth *float64    `json:"strokeWidth"`
	FontSize    *float64    `json:"fontSize"`
	FontFamily  *string     `json:"fontFamily"`
}

func (in ElementInput) Validate() error {
	if in.Type == "" || in.X == nil || in.Y == nil {
		return NewValidationError("type, x, and y are required")
	}
	switch in.Type {
	case ElementRectangle:
		if in.Width == nil || in.Height == nil {
			return NewValidationError("rectangle requires width and height")
		}
	case ElementText:
		if in.Text == nil {
			return NewValidationError("text element requires text content")
		}
	default:
		return NewValidationError(fmt.Sprintf("unknown element type %q", in.Type))
	}
	return nil
}

// ElementPatch is a typed partial update. Only the mutable fields of an
// Element appear here; id, canvasId, type and the timestamps cannot be
// expressed at all, so client-supplied values for them are dropped before
// any store write is built. A nil pointer means the field is untouched.
type ElementPatch struct {
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	Width       *float64 `json:"width"`
	Height      *float64 `json:"height"`
	Text        *string  `json:"text"`
	Fill        *string  `json:"fill"`
	Stroke      *string  `json:"stroke"`
	StrokeWidth *float64 `json:"strokeWidth"`
	FontSize    *float64 `json:"fontSize"`
	FontFamily  *string  `json:"fontFamily"`
}

// IsEmpty reports whether no field is set.
func (p ElementPatch) IsEmpty() bool {
	return p.X == nil && p.Y == nil && p.Width == nil && p.Height == nil &&
		p.Text == nil && p.Fill == nil && p.Stroke == nil &&
		p.StrokeWidth == nil && p.FontSize == nil && p.FontFamily == nil
}
