package routes

import (
	"github.com/hellorating/hellorating-api/internal/application/usecases"
	"github.com/hellorating/hellorating-api/internal/domain/repositories"
	"github.com/hellorating/hellorating-api/internal/infrastructure/store"
	"github.com/hellorating/hellorating-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// SetupRoutes monta repositórios, casos de uso e handlers sobre o store
// injetado e registra as rotas da API. Um store nulo mantém as rotas ativas,
// respondendo com o erro de backend não configurado.
func SetupRoutes(app *fiber.App, st store.Store, storeConnected bool) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "ok",
			"message":        "HelloRating API",
			"storeConnected": storeConnected,
		})
	})

	// Repositories
	campaignRepo := repositories.NewCampaignRepository(st)
	responseRepo := repositories.NewResponseRepository(st)

	// Use Cases
	campaignUseCase := usecases.NewCampaignUseCase(campaignRepo)
	surveyUseCase := usecases.NewSurveyUseCase(campaignRepo, responseRepo)
	dashboardUseCase := usecases.NewDashboardUseCase(responseRepo)

	// Handlers
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	api := app.Group("/api")

	// Campaigns routes
	campaigns := api.Group("/campaigns")
	campaigns.Get("/", campaignHandler.GetCampaigns)
	campaigns.Post("/", campaignHandler.CreateCampaign)
	campaigns.Get("/:id", campaignHandler.GetCampaign)
	campaigns.Put("/:id", campaignHandler.UpdateCampaign)
	campaigns.Get("/:id/questions", campaignHandler.GetQuestions)
	campaigns.Put("/:id/questions", campaignHandler.UpdateQuestions)
	campaigns.Get("/:id/dashboard", dashboardHandler.GetDashboard)

	// Surveys routes (public)
	surveys := api.Group("/surveys")
	surveys.Get("/:id", surveyHandler.GetSurvey)
	surveys.Post("/:id/responses", surveyHandler.SubmitResponse)
}
