package controllers_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"whiteboard-server/models"
)

func rectanglePayload(x, y, w, h float64) map[string]any {
	return map[string]any{
		"type":   "rectangle",
		"x":      x,
		"y":      y,
		"width":  w,
		"height": h,
		"fill":   "blue",
	}
}

func textPayload(x, y float64, text string) map[string]any {
	return map[string]any{
		"type": "text",
		"x":    x,
		"y":    y,
		"text": text,
		"fill": "black",
	}
}

func createTestElement(t *testing.T, app *fiber.App, canvasID string, payload map[string]any) models.Element {
	t.Helper()

	status, data := doJSON(t, app, "POST", "/canvases/"+canvasID+"/elements", payload)
	assert.Equal(t, fiber.StatusCreated, status)

	var element models.Element
	assert.NoError(t, json.Unmarshal(data, &element))
	return element
}

func TestCreateElement_RectangleRoundTrip(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")

	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))
	assert.NotEmpty(t, element.ElementID)
	assert.Equal(t, canvas.ID, element.CanvasID)
	assert.Equal(t, models.ElementRectangle, element.Type)
	assert.Equal(t, 10.0, element.X)
	assert.Equal(t, 20.0, element.Y)
	assert.Equal(t, 30.0, *element.Width)
	assert.Equal(t, 40.0, *element.Height)
	assert.Equal(t, "blue", element.Fill)
	assert.Equal(t, element.CreatedAt, element.UpdatedAt)

	status, data := doJSON(t, app, "GET", "/canvases/"+canvas.ID+"/elements", nil)
	assert.Equal(t, fiber.StatusOK, status)

	var elements []models.Element
	assert.NoError(t, json.Unmarshal(data, &elements))
	assert.Len(t, elements, 1)
	assert.Equal(t, element.ElementID, elements[0].ElementID)
	assert.Equal(t, 30.0, *elements[0].Width)
}

func TestCreateElement_RectangleMissingWidth(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")

	payload := rectanglePayload(10, 20, 30, 40)
	delete(payload, "width")
	status, _ := doJSON(t, app, "POST", "/canvases/"+canvas.ID+"/elements", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateElement_TextMissingText(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")

	payload := textPayload(50, 50, "hello")
	delete(payload, "text")
	status, _ := doJSON(t, app, "POST", "/canvases/"+canvas.ID+"/elements", payload)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateElement_CanvasNotFound(t *testing.T) {
	app, _, _ := setupApp()

	status, _ := doJSON(t, app, "POST", "/canvases/no-such-canvas/elements", rectanglePayload(0, 0, 1, 1))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestGetElements_UnknownCanvasIsEmpty(t *testing.T) {
	app, _, _ := setupApp()

	status, data := doJSON(t, app, "GET", "/canvases/no-such-canvas/elements", nil)
	assert.Equal(t, fiber.StatusOK, status)

	var elements []models.Element
	assert.NoError(t, json.Unmarshal(data, &elements))
	assert.Empty(t, elements)
}

func TestUpdateElement_PartialFields(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	status, data := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/"+element.ElementID,
		map[string]any{"x": 99.0, "fill": "red"})
	assert.Equal(t, fiber.StatusOK, status)

	var updated models.Element
	assert.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, 99.0, updated.X)
	assert.Equal(t, "red", updated.Fill)
	assert.Equal(t, 20.0, updated.Y)
	assert.Equal(t, 30.0, *updated.Width)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUpdateElement_ImmutableFieldsDropped(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	status, data := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/"+element.ElementID,
		map[string]any{
			"id":       "hijacked",
			"canvasId": "other-canvas",
			"type":     "text",
			"x":        5.0,
		})
	assert.Equal(t, fiber.StatusOK, status)

	var updated models.Element
	assert.NoError(t, json.Unmarshal(data, &updated))
	assert.Equal(t, element.ElementID, updated.ElementID)
	assert.Equal(t, canvas.ID, updated.CanvasID)
	assert.Equal(t, models.ElementRectangle, updated.Type)
	assert.Equal(t, 5.0, updated.X)
}

func TestUpdateElement_OnlyImmutableFields(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	status, _ := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/"+element.ElementID,
		map[string]any{"id": "hijacked", "createdAt": "2020-01-01T00:00:00Z"})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateElement_EmptyBody(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	status, _ := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/"+element.ElementID,
		map[string]any{})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateElement_NotFound(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")

	status, _ := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/no-such-element",
		map[string]any{"x": 1.0})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDeleteElement_ThenGone(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	status, data := doJSON(t, app, "DELETE", "/canvases/"+canvas.ID+"/elements/"+element.ElementID, nil)
	assert.Equal(t, fiber.StatusOK, status)

	var result struct {
		Message        string         `json:"message"`
		DeletedElement models.Element `json:"deletedElement"`
	}
	assert.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, element.ElementID, result.DeletedElement.ElementID)

	status, data = doJSON(t, app, "GET", "/canvases/"+canvas.ID+"/elements", nil)
	assert.Equal(t, fiber.StatusOK, status)
	var elements []models.Element
	assert.NoError(t, json.Unmarshal(data, &elements))
	assert.Empty(t, elements)

	// Second delete is a NotFound, not a silent no-op.
	status, _ = doJSON(t, app, "DELETE", "/canvases/"+canvas.ID+"/elements/"+element.ElementID, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestElementMutationsTouchCanvas(t *testing.T) {
	app, _, _ := setupApp()
	canvas := createTestCanvas(t, app, "Board")
	element := createTestElement(t, app, canvas.ID, rectanglePayload(10, 20, 30, 40))

	fetch := func() models.Canvas {
		status, data := doJSON(t, app, "GET", "/canvases/"+canvas.ID, nil)
		assert.Equal(t, fiber.StatusOK, status)
		var result struct {
			Canvas models.Canvas `json:"canvas"`
		}
		assert.NoError(t, json.Unmarshal(data, &result))
		return result.Canvas
	}

	afterCreate := fetch()
	assert.False(t, afterCreate.UpdatedAt.Before(canvas.UpdatedAt))

	status, _ := doJSON(t, app, "PUT", "/canvases/"+canvas.ID+"/elements/"+element.ElementID,
		map[string]any{"x": 1.0})
	assert.Equal(t, fiber.StatusOK, status)
	afterUpdate := fetch()
	assert.False(t, afterUpdate.UpdatedAt.Before(afterCreate.UpdatedAt))

	status, _ = doJSON(t, app, "DELETE", "/canvases/"+canvas.ID+"/elements/"+element.ElementID, nil)
	assert.Equal(t, fiber.StatusOK, status)
	afterDelete := fetch()
	assert.False(t, afterDelete.UpdatedAt.Before(afterUpdate.UpdatedAt))
}
