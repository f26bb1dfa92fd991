package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger é um middleware que registra método, rota, status e duração
// das requisições da API.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		if !strings.HasPrefix(path, "/api") {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[API] %s %s - %d - Duration: %v",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
		)

		return err
	}
}
