// Package render turns a canvas's elements plus the board's interaction
// state into flat visual primitives. It is a pure function of its inputs;
// rasterization belongs to whatever draws the primitives.
package render

import (
	"whiteboard-server/board"
	"whiteboard-server/models"
)

type PrimitiveKind int

const (
	PrimitiveRect PrimitiveKind = iota
	PrimitiveText
	PrimitiveDraftRect
	PrimitiveSelection
)

type Primitive struct {
	Kind        PrimitiveKind
	ElementID   string
	X, Y        float64
	Width       float64
	Height      float64
	Text        string
	Fill        string
	Stroke      string
	StrokeWidth float64
	FontSize    float64
	FontFamily  string
	Dashed      bool
}

const (
	selectionStroke  = "#4f86f7"
	selectionPadding = 2.0
	draftStroke      = "gray"
	textRenderSize   = 16.0
)

// Frame is the slice of session state the renderer needs.
type Frame struct {
	Elements  []models.Element
	Draft     *board.DraftRect
	Selection string
}

// Snapshot captures a Frame from a live session.
func Snapshot(s *board.Session) Frame {
	frame := Frame{
		Elements:  s.Elements(),
		Selection: s.Selection(),
	}
	if draft, ok := s.Draft(); ok {
		frame.Draft = &draft
	}
	return frame
}

// Render emits element primitives in list order, then the draft rectangle,
// then the selection outline, so decorations always draw on top.
func Render(frame Frame) []Primitive {
	primitives := make([]Primitive, 0, len(frame.Elements)+2)

	var selected *models.Element
	for i := range frame.Elements {
		el := frame.Elements[i]
		primitives = append(primitives, elementPrimitive(el))
		if el.ElementID == frame.Selection {
			selected = &frame.Elements[i]
		}
	}

	if frame.Draft != nil {
		x, y, w, h := frame.Draft.Normalized()
		primitives = append(primitives, Primitive{
			Kind:        PrimitiveDraftRect,
			X:           x,
			Y:           y,
			Width:       w,
			Height:      h,
			Stroke:      draftStroke,
			StrokeWidth: 1,
			Dashed:      true,
		})
	}

	if selected != nil {
		x, y, w, h := board.ElementBounds(*selected)
		primitives = append(primitives, Primitive{
			Kind:        PrimitiveSelection,
			ElementID:   selected.ElementID,
			X:           x - selectionPadding,
			Y:           y - selectionPadding,
			Width:       w + 2*selectionPadding,
			Height:      h + 2*selectionPadding,
			Stroke:      selectionStroke,
			StrokeWidth: 1,
			Dashed:      true,
		})
	}

	return primitives
}

func elementPrimitive(el models.Element) Primitive {
	switch el.Type {
	case models.ElementText:
		p := Primitive{
			Kind:      PrimitiveText,
			ElementID: el.ElementID,
			X:         el.X,
			Y:         el.Y,
			Fill:      el.Fill,
			FontSize:  textRenderSize,
		}
		if el.Text != nil {
			p.Text = *el.Text
		}
		if el.FontSize != nil {
			p.FontSize = *el.FontSize
		}
		if el.FontFamily != nil {
			p.FontFamily = *el.FontFamily
		}
		return p
	default:
		p := Primitive{
			Kind:      PrimitiveRect,
			ElementID: el.ElementID,
			X:         el.X,
			Y:         el.Y,
			Fill:      el.Fill,
		}
		if el.Width != nil {
			p.Width = *el.Width
		}
		if el.Height != nil {
			p.Height = *el.Height
		}
		if el.Stroke != nil {
			p.Stroke = *el.Stroke
		}
		if el.StrokeWidth != nil {
			p.StrokeWidth = *el.StrokeWidth
		}
		return p
	}
}
