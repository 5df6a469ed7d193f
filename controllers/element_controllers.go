package controllers

import (
	"errors"
	"log"

	"whiteboard-server/models"
	"whiteboard-server/services"

	"github.com/gofiber/fiber/v2"
)

type ElementController struct {
	service *services.ElementService
}

func NewElementController(service *services.ElementService) *ElementController {
	return &ElementController{service: service}
}

func (ec *ElementController) CreateElement(c *fiber.Ctx) error {
	canvasID := c.Params("canvasId")

	var input models.ElementInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	element, err := ec.service.CreateElement(c.Context(), canvasID, input)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Reason})
		case errors.Is(err, models.ErrCanvasNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Canvas not found"})
		}
		log.Printf("[CreateElement] canvas %s: %v", canvasID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add element"})
	}

	return c.Status(fiber.StatusCreated).JSON(element)
}

func (ec *ElementController) GetElements(c *fiber.Ctx) error {
	canvasID := c.Params("canvasId")
	elements, err := ec.service.ListElements(c.Context(), canvasID)
	if err != nil {
		log.Printf("[GetElements] canvas %s: %v", canvasID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch elements"})
	}
	return c.Status(fiber.StatusOK).JSON(elements)
}

func (ec *ElementController) UpdateElement(c *fiber.Ctx) error {
	canvasID := c.Params("canvasId")
	elementID := c.Params("elementId")

	var patch models.ElementPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	element, err := ec.service.UpdateElement(c.Context(), canvasID, elementID, patch)
	if err != nil {
		var ve *models.ValidationError
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Reason})
		case errors.Is(err, models.ErrElementNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Element not found"})
		}
		log.Printf("[UpdateElement] canvas %s element %s: %v", canvasID, elementID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update element"})
	}

	return c.Status(fiber.StatusOK).JSON(element)
}

func (ec *ElementController) DeleteElement(c *fiber.Ctx) error {
	canvasID := c.Params("canvasId")
	elementID := c.Params("elementId")

	element, err := ec.service.DeleteElement(c.Context(), canvasID, elementID)
	if err != nil {
		if errors.Is(err, models.ErrElementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Element not found"})
		}
		log.Printf("[DeleteElement] canvas %s element %s: %v", canvasID, elementID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete element"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Element deleted successfully",
		"deletedElement": element,
	})
}
