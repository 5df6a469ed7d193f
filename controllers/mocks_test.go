package controllers_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"whiteboard-server/models"
	"whiteboard-server/repository"
)

type MockCanvasRepository struct {
	data map[string]models.Canvas
	mu   sync.RWMutex

	touchErr error
}

func NewMockCanvasRepository() *MockCanvasRepository {
	return &MockCanvasRepository{
		data: make(map[string]models.Canvas),
	}
}

func (m *MockCanvasRepository) SaveCanvas(_ context.Context, canvas models.Canvas) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if canvas.Name == "fail" {
		return errors.New("failed to save canvas")
	}
	m.data[canvas.ID] = canvas
	return nil
}

func (m *MockCanvasRepository) FindAllCanvases(_ context.Context) ([]models.Canvas, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	canvases := []models.Canvas{}
	for _, canvas := range m.data {
		canvases = append(canvases, canvas)
	}
	return canvases, nil
}

func (m *MockCanvasRepository) FindCanvasByID(_ context.Context, id string) (models.Canvas, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	canvas, ok := m.data[id]
	if !ok {
		return models.Canvas{}, models.ErrCanvasNotFound
	}
	return canvas, nil
}

func (m *MockCanvasRepository) TouchCanvas(_ context.Context, id string, ts time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.touchErr != nil {
		return m.touchErr
	}
	canvas, ok := m.data[id]
	if !ok {
		return models.ErrCanvasNotFound
	}
	canvas.UpdatedAt = ts
	m.data[id] = canvas
	return nil
}

type MockElementRepository struct {
	data map[string]map[string]models.Element
	mu   sync.RWMutex
}

func NewMockElementRepository() *MockElementRepository {
	return &MockElementRepository{
		data: make(map[string]map[string]models.Element),
	}
}

func (m *MockElementRepository) InsertElement(_ context.Context, element models.Element) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[element.CanvasID] == nil {
		m.data[element.CanvasID] = make(map[string]models.Element)
	}
	m.data[element.CanvasID][element.ElementID] = element
	return nil
}

func (m *MockElementRepository) FindElementsByCanvasID(_ context.Context, canvasID string) ([]models.Element, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	elements := []models.Element{}
	for _, element := range m.data[canvasID] {
		elements = append(elements, element)
	}
	return elements, nil
}

func (m *MockElementRepository) UpdateElement(_ context.Context, canvasID, elementID string, patch models.ElementPatch, ts time.Time) (models.Element, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if patch.IsEmpty() {
		return models.Element{}, repository.ErrEmptyUpdate
	}
	element, ok := m.data[canvasID][elementID]
	if !ok {
		return models.Element{}, models.ErrElementNotFound
	}
	if patch.X != nil {
		element.X = *patch.X
	}
	if patch.Y != nil {
		element.Y = *patch.Y
	}
	if patch.Width != nil {
		element.Width = patch.Width
	}
	if patch.Height != nil {
		element.Height = patch.Height
	}
	if patch.Text != nil {
		element.Text = patch.Text
	}
	if patch.Fill != nil {
		element.Fill = *patch.Fill
	}
	if patch.Stroke != nil {
		element.Stroke = patch.Stroke
	}
	if patch.StrokeWidth != nil {
		element.StrokeWidth = patch.StrokeWidth
	}
	if patch.FontSize != nil {
		element.FontSize = patch.FontSize
	}
	if patch.FontFamily != nil {
		element.FontFamily = patch.FontFamily
	}
	element.UpdatedAt = ts
	m.data[canvasID][elementID] = element
	return element, nil
}

func (m *MockElementRepository) DeleteElement(_ context.Context, canvasID, elementID string) (models.Element, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	element, ok := m.data[canvasID][elementID]
	if !ok {
		return models.Element{}, models.ErrElementNotFound
	}
	delete(m.data[canvasID], elementID)
	return element, nil
}
