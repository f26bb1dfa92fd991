package main

import (
	"log"
	"os"
	"time"

	"github.com/hellorating/hellorating-api/internal/infrastructure/store"
	"github.com/hellorating/hellorating-api/internal/interfaces/http/middleware"
	"github.com/hellorating/hellorating-api/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize store
	st, connected := setupStore()

	app := fiber.New(fiber.Config{
		// Set reasonable body limit
		BodyLimit: 10 * 1024 * 1024, // 10MB
		// Configure server for better performance
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, st, connected)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("🚀 HelloRating API running on port %s", port)
	log.Printf("Supabase connected: %v", connected)
	log.Fatal(app.Listen(":" + port))
}

// setupStore decide na inicialização qual store atende as requisições:
// Supabase quando configurado, memória quando DEMO_MODE está ligado, ou nenhum
// (toda operação responderá que o backend não foi configurado).
func setupStore() (store.Store, bool) {
	supabaseStore, err := store.SetupSupabase()
	if err == nil {
		return supabaseStore, true
	}
	log.Printf("⚠️ Supabase not configured: %v", err)

	if os.Getenv("DEMO_MODE") == "true" {
		log.Println("📦 DEMO_MODE enabled, using in-memory store")
		return store.NewMemoryStore(), false
	}

	return nil, false
}
