package main

import (
	"context"
	"log"

	"whiteboard-server/configs"
	"whiteboard-server/controllers"
	"whiteboard-server/repository"
	"whiteboard-server/routes"
	"whiteboard-server/services"

	fiberprometheus "github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := configs.Load()
	ctx := context.Background()

	mongoClient, err := configs.ConnectMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("MongoDB connection failed: %v", err)
	}
	defer configs.DisconnectMongo(ctx, mongoClient)

	db := mongoClient.Database(cfg.Mongo.Database)
	canvasCollection := db.Collection("canvases")
	elementCollection := db.Collection("elements")

	var canvasRepo repository.CanvasRepositoryInterface = repository.NewCanvasRepository(canvasCollection)
	if cfg.Redis.Enabled() {
		redisClient := configs.ConnectRedis(cfg.Redis)
		canvasRepo = repository.NewCachedCanvasRepository(canvasRepo, redisClient, cfg.Redis.CacheTTL)
	}
	elementRepo := repository.NewElementRepository(elementCollection)

	canvasService := services.NewCanvasService(canvasRepo, elementRepo)
	elementService := services.NewElementService(canvasRepo, elementRepo)

	canvasController := controllers.NewCanvasController(canvasService)
	elementController := controllers.NewElementController(elementService)

	app := fiber.New()

	p := fiberprometheus.New("whiteboard-server")
	p.RegisterAt(app, "/metrics")
	app.Use(p.Middleware)

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	routes.CanvasRoutes(app, canvasController, elementController)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "UP",
		})
	})

	if cfg.Consul.Enabled() {
		if err := configs.RegisterService(cfg.Consul, cfg.Server.Port); err != nil {
			log.Printf("Consul service registration failed: %v", err)
		}
	}

	log.Printf("Starting server on port %s...", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
