package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/hellorating/hellorating-api/internal/application/usecases"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
)

// CampaignHandler lida com requisições de gestão de campanhas.
type CampaignHandler struct {
	campaignUseCase *usecases.CampaignUseCase
}

// NewCampaignHandler cria uma nova instância de CampaignHandler.
func NewCampaignHandler(campaignUseCase *usecases.CampaignUseCase) *CampaignHandler {
	return &CampaignHandler{
		campaignUseCase: campaignUseCase,
	}
}

// GetCampaigns retorna todas as campanhas na forma externa.
func (h *CampaignHandler) GetCampaigns(c *fiber.Ctx) error {
	campaigns, err := h.campaignUseCase.GetCampaigns()
	if err != nil {
		return respondError(c, "Erro ao buscar campanhas", err)
	}
	return c.JSON(campaigns)
}

// GetCampaign retorna uma campanha pelo id.
func (h *CampaignHandler) GetCampaign(c *fiber.Ctx) error {
	id := c.Params("id")

	campaign, err := h.campaignUseCase.GetCampaign(id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao buscar campanha %s", id), err)
	}
	return c.JSON(campaign)
}

// CreateCampaign valida e cria uma nova campanha.
func (h *CampaignHandler) CreateCampaign(c *fiber.Ctx) error {
	var input entities.CampaignInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}

	campaign, err := h.campaignUseCase.CreateCampaign(input)
	if err != nil {
		return respondError(c, "Erro ao criar campanha", err)
	}

	log.Printf("Campanha %s criada", campaign.ID)
	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// UpdateCampaign valida e substitui integralmente os campos da campanha.
func (h *CampaignHandler) UpdateCampaign(c *fiber.Ctx) error {
	id := c.Params("id")

	var input entities.CampaignInput
	if err := c.BodyParser(&input); err != nil {
		return respondInvalidBody(c)
	}

	campaign, err := h.campaignUseCase.UpdateCampaign(id, input)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao atualizar campanha %s", id), err)
	}

	log.Printf("Campanha %s atualizada", id)
	return c.JSON(campaign)
}

// GetQuestions retorna as perguntas da campanha em ordem de exibição.
func (h *CampaignHandler) GetQuestions(c *fiber.Ctx) error {
	id := c.Params("id")

	questions, err := h.campaignUseCase.GetQuestions(id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao buscar perguntas da campanha %s", id), err)
	}
	return c.JSON(questions)
}

// UpdateQuestions sobrescreve o questionário da campanha com a sequência
// enviada no corpo, sem merge.
func (h *CampaignHandler) UpdateQuestions(c *fiber.Ctx) error {
	id := c.Params("id")

	var payload struct {
		Questions []entities.Question `json:"questions"`
	}
	if err := c.BodyParser(&payload); err != nil {
		return respondInvalidBody(c)
	}

	questions, err := h.campaignUseCase.ReplaceQuestions(id, payload.Questions)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao atualizar perguntas da campanha %s", id), err)
	}

	log.Printf("Perguntas da campanha %s substituídas (%d itens)", id, len(questions))
	return c.JSON(questions)
}
