package controllers

import (
	"errors"
	"log"

	"whiteboard-server/models"
	"whiteboard-server/services"

	"github.com/gofiber/fiber/v2"
)

type CanvasController struct {
	service *services.CanvasService
}

func NewCanvasController(service *services.CanvasService) *CanvasController {
	return &CanvasController{service: service}
}

func (cc *CanvasController) CreateCanvas(c *fiber.Ctx) error {
	var request struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	canvas, err := cc.service.CreateCanvas(c.Context(), request.Name)
	if err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Reason})
		}
		log.Printf("[CreateCanvas] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create canvas"})
	}

	return c.Status(fiber.StatusCreated).JSON(canvas)
}

func (cc *CanvasController) GetCanvases(c *fiber.Ctx) error {
	canvases, err := cc.service.ListCanvases(c.Context())
	if err != nil {
		log.Printf("[GetCanvases] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch canvases"})
	}
	return c.Status(fiber.StatusOK).JSON(canvases)
}

func (cc *CanvasController) GetCanvasByID(c *fiber.Ctx) error {
	canvasID := c.Params("canvasId")
	canvas, elements, err := cc.service.GetCanvasWithElements(c.Context(), canvasID)
	if err != nil {
		if errors.Is(err, models.ErrCanvasNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Canvas not found"})
		}
		log.Printf("[GetCanvasByID] canvas %s: %v", canvasID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch canvas"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"canvas": canvas, "elements": elements})
}
