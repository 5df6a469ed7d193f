package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"whiteboard-server/board"
	"whiteboard-server/models"
)

func f(v float64) *float64 { return &v }
func str(v string) *string { return &v }

func TestRender_ElementsInOrder(t *testing.T) {
	frame := Frame{
		Elements: []models.Element{
			{ElementID: "r1", Type: models.ElementRectangle, X: 1, Y: 2, Width: f(3), Height: f(4), Fill: "blue"},
			{ElementID: "t1", Type: models.ElementText, X: 10, Y: 20, Text: str("hello"), Fill: "black", FontSize: f(20)},
		},
	}

	primitives := Render(frame)
	assert.Len(t, primitives, 2)

	assert.Equal(t, PrimitiveRect, primitives[0].Kind)
	assert.Equal(t, "r1", primitives[0].ElementID)
	assert.Equal(t, 3.0, primitives[0].Width)
	assert.Equal(t, "blue", primitives[0].Fill)

	assert.Equal(t, PrimitiveText, primitives[1].Kind)
	assert.Equal(t, "hello", primitives[1].Text)
	assert.Equal(t, 20.0, primitives[1].FontSize)
}

func TestRender_DraftRectNormalizedAndDashed(t *testing.T) {
	frame := Frame{
		Draft: &board.DraftRect{AnchorX: 10, AnchorY: 10, DX: -5, DY: -5},
	}

	primitives := Render(frame)
	assert.Len(t, primitives, 1)

	draft := primitives[0]
	assert.Equal(t, PrimitiveDraftRect, draft.Kind)
	assert.True(t, draft.Dashed)
	assert.Equal(t, 5.0, draft.X)
	assert.Equal(t, 5.0, draft.Y)
	assert.Equal(t, 5.0, draft.Width)
	assert.Equal(t, 5.0, draft.Height)
}

func TestRender_SelectionOutlineOnTop(t *testing.T) {
	frame := Frame{
		Elements: []models.Element{
			{ElementID: "r1", Type: models.ElementRectangle, X: 10, Y: 10, Width: f(30), Height: f(40), Fill: "blue"},
			{ElementID: "r2", Type: models.ElementRectangle, X: 50, Y: 50, Width: f(10), Height: f(10), Fill: "red"},
		},
		Selection: "r1",
	}

	primitives := Render(frame)
	assert.Len(t, primitives, 3)

	outline := primitives[len(primitives)-1]
	assert.Equal(t, PrimitiveSelection, outline.Kind)
	assert.Equal(t, "r1", outline.ElementID)
	assert.Equal(t, 8.0, outline.X)
	assert.Equal(t, 8.0, outline.Y)
	assert.Equal(t, 34.0, outline.Width)
	assert.Equal(t, 44.0, outline.Height)
	assert.True(t, outline.Dashed)
}

func TestRender_SelectionOutlineMatchesHitBounds(t *testing.T) {
	el := models.Element{
		ElementID: "t1", Type: models.ElementText,
		X: 10, Y: 20,
		Text: str("hello"), Fill: "black", FontSize: f(24),
	}
	frame := Frame{Elements: []models.Element{el}, Selection: "t1"}

	primitives := Render(frame)
	outline := primitives[len(primitives)-1]
	assert.Equal(t, PrimitiveSelection, outline.Kind)

	// The outline hugs the same box the pointer can hit.
	x, y, w, h := board.ElementBounds(el)
	assert.Equal(t, x-2, outline.X)
	assert.Equal(t, y-2, outline.Y)
	assert.Equal(t, w+4, outline.Width)
	assert.Equal(t, h+4, outline.Height)
}

func TestRender_UnknownSelectionIgnored(t *testing.T) {
	frame := Frame{
		Elements:  []models.Element{{ElementID: "r1", Type: models.ElementRectangle, X: 0, Y: 0, Width: f(1), Height: f(1), Fill: "blue"}},
		Selection: "ghost",
	}
	assert.Len(t, Render(frame), 1)
}

func TestSnapshot_CapturesSessionState(t *testing.T) {
	session := board.NewSession("canvas-1", []models.Element{
		{ElementID: "r1", Type: models.ElementRectangle, X: 0, Y: 0, Width: f(50), Height: f(50), Fill: "blue"},
	})
	session.PointerDown(10, 10) // select r1

	frame := Snapshot(session)
	assert.Len(t, frame.Elements, 1)
	assert.Equal(t, "r1", frame.Selection)
	assert.Nil(t, frame.Draft)

	session.SetTool(board.ToolRectangle)
	session.PointerDown(100, 100)
	session.PointerMove(120, 130)

	frame = Snapshot(session)
	assert.NotNil(t, frame.Draft)
	assert.Equal(t, 20.0, frame.Draft.DX)
	assert.Equal(t, 30.0, frame.Draft.DY)
}
