package routes

import (
	"whiteboard-server/controllers"

	"github.com/gofiber/fiber/v2"
)

func CanvasRoutes(app *fiber.App, canvasController *controllers.CanvasController, elementController *controllers.ElementController) {
	app.Post("/canvases", canvasController.CreateCanvas)
	app.Get("/canvases", canvasController.GetCanvases)
	app.Get("/canvases/:canvasId", canvasController.GetCanvasByID)
	app.Get("/canvases/:canvasId/elements", elementController.GetElements)
	app.Post("/canvases/:canvasId/elements", elementController.CreateElement)
	app.Put("/canvases/:canvasId/elements/:elementId", elementController.UpdateElement)
	app.Delete("/canvases/:canvasId/elements/:elementId", elementController.DeleteElement)
}
