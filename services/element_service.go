package services

import (
	"context"
	"errors"
	"log"
	"time"

	"whiteboard-server/models"
	"whiteboard-server/repository"

	"github.com/google/uuid"
)

type ElementService struct {
	canvasRepo  repository.CanvasRepositoryInterface
	elementRepo repository.ElementRepositoryInterface
}

func NewElementService(canvasRepo repository.CanvasRepositoryInterface, elementRepo repository.ElementRepositoryInterface) *ElementService {
	return &ElementService{canvasRepo: canvasRepo, elementRepo: elementRepo}
}

// CreateElement validates the payload, checks the parent canvas exists,
// persists the element and touches the canvas with the same timestamp.
func (s *ElementService) CreateElement(ctx context.Context, canvasID string, input models.ElementInput) (models.Element, error) {
	if err := input.Validate(); err != nil {
		return models.Element{}, err
	}
	if _, err := s.canvasRepo.FindCanvasByID(ctx, canvasID); err != nil {
		return models.Element{}, err
	}

	now := time.Now().UTC()
	element := models.Element{
		ElementID:   uuid.NewString(),
		CanvasID:    canvasID,
		Type:        input.Type,
		X:           *input.X,
		Y:           *input.Y,
		Width:       input.Width,
		Height:      input.Height,
		Text:        input.Text,
		Fill:        input.Fill,
		Stroke:      input.Stroke,
		StrokeWidth: input.StrokeWidth,
		FontSize:    input.FontSize,
		FontFamily:  input.FontFamily,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.elementRepo.InsertElement(ctx, element); err != nil {
		return models.Element{}, err
	}
	s.touchCanvas(ctx, "CreateElement", canvasID, now)
	return element, nil
}

func (s *ElementService) ListElements(ctx context.Context, canvasID string) ([]models.Element, error) {
	return s.elementRepo.FindElementsByCanvasID(ctx, canvasID)
}

func (s *ElementService) UpdateElement(ctx context.Context, canvasID, elementID string, patch models.ElementPatch) (models.Element, error) {
	now := time.Now().UTC()
	updated, err := s.elementRepo.UpdateElement(ctx, canvasID, elementID, patch, now)
	if err != nil {
		return models.Element{}, err
	}
	s.touchCanvas(ctx, "UpdateElement", canvasID, now)
	return updated, nil
}

func (s *ElementService) DeleteElement(ctx context.Context, canvasID, elementID string) (models.Element, error) {
	deleted, err := s.elementRepo.DeleteElement(ctx, canvasID, elementID)
	if err != nil {
		return models.Element{}, err
	}
	s.touchCanvas(ctx, "DeleteElement", canvasID, time.Now().UTC())
	return deleted, nil
}

// touchCanvas propagates an element mutation to the parent canvas's
// updated_at. Best effort: the element write already succeeded, so a touch
// failure is logged and swallowed rather than rolled back.
func (s *ElementService) touchCanvas(ctx context.Context, op, canvasID string, ts time.Time) {
	if err := s.canvasRepo.TouchCanvas(ctx, canvasID, ts); err != nil {
		if errors.Is(err, models.ErrCanvasNotFound) {
			log.Printf("[%s] touch skipped, canvas %s missing", op, canvasID)
			return
		}
		log.Printf("[%s] failed to touch canvas %s: %v", op, canvasID, err)
	}
}
