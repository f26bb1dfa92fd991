package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hellorating/hellorating-api/internal/application/usecases"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
)

// SurveyHandler lida com as rotas públicas de pesquisa: exibição do
// questionário e submissão de respostas.
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler cria uma nova instância de SurveyHandler.
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// GetSurvey retorna a campanha e suas perguntas para o respondente.
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	id := c.Params("id")

	survey, err := h.surveyUseCase.GetSurvey(id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao buscar pesquisa %s", id), err)
	}
	return c.JSON(survey)
}

// SubmitResponse registra a submissão de um respondente contra a campanha.
func (h *SurveyHandler) SubmitResponse(c *fiber.Ctx) error {
	id := c.Params("id")

	var input entities.ResponseInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}

	response, err := h.surveyUseCase.SubmitResponse(id, input)
	if err != nil {
		return respondError(c, "Erro ao salvar resposta", err)
	}

	log.Printf("Resposta %s registrada para a campanha %s", response.ID, id)
	return c.Status(fiber.StatusCreated).JSON(response)
}
