package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hellorating/hellorating-api/internal/domain/apperrors"
)

// respondError converte os erros do domínio no status e corpo HTTP
// correspondentes: validação 400 com todas as violações, não encontrado 404,
// store não configurado e falhas do store 500. Qualquer outro erro vira um 500
// genérico com a mensagem do erro.
func respondError(c *fiber.Ctx, message string, err error) error {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "Dados inválidos",
			"details": validationErr.Details,
		})
	}

	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundErr.Error(),
		})
	}

	if errors.Is(err, apperrors.ErrBackendUnavailable) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Supabase client not initialized",
		})
	}

	var storeErr *apperrors.StoreError
	if errors.As(err, &storeErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   message,
			"details": storeErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// respondInvalidBody responde 400 para um corpo que não pôde ser decodificado.
func respondInvalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   "Dados inválidos",
		"details": []string{"corpo da requisição não é um JSON válido"},
	})
}
