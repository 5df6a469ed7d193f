package services

import (
	"context"
	"strings"
	"time"

	"whiteboard-server/models"
	"whiteboard-server/repository"

	"github.com/google/uuid"
)

type CanvasService struct {
	canvasRepo  repository.CanvasRepositoryInterface
	elementRepo repository.ElementRepositoryInterface
}

func NewCanvasService(canvasRepo repository.CanvasRepositoryInterface, elementRepo repository.ElementRepositoryInterface) *CanvasService {
	return &CanvasService{canvasRepo: canvasRepo, elementRepo: elementRepo}
}

func (s *CanvasService) CreateCanvas(ctx context.Context, name string) (models.Canvas, error) {
	if strings.TrimSpace(name) == "" {
		return models.Canvas{}, models.NewValidationError("canvas name is required")
	}
	now := time.Now().UTC()
	canvas := models.Canvas{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.canvasRepo.SaveCanvas(ctx, canvas); err != nil {
		return models.Canvas{}, err
	}
	return canvas, nil
}

func (s *CanvasService) ListCanvases(ctx context.Context) ([]models.Canvas, error) {
	return s.canvasRepo.FindAllCanvases(ctx)
}

// GetCanvasWithElements fails with models.ErrCanvasNotFound when the canvas is
// absent; a canvas with no elements yields an empty slice.
func (s *CanvasService) GetCanvasWithElements(ctx context.Context, canvasID string) (models.Canvas, []models.Element, error) {
	canvas, err := s.canvasRepo.FindCanvasByID(ctx, canvasID)
	if err != nil {
		return models.Canvas{}, nil, err
	}
	elements, err := s.elementRepo.FindElementsByCanvasID(ctx, canvasID)
	if err != nil {
		return models.Canvas{}, nil, err
	}
	return canvas, elements, nil
}
