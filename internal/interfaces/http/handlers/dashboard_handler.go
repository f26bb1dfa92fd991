package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/hellorating/hellorating-api/internal/application/usecases"
)

// DashboardHandler lida com requisições do dashboard de campanhas.
type DashboardHandler struct {
	dashboardUseCase *usecases.DashboardUseCase
}

// NewDashboardHandler cria uma nova instância de DashboardHandler.
func NewDashboardHandler(dashboardUseCase *usecases.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetDashboard retorna o resumo NPS agregado da campanha.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	id := c.Params("id")

	dashboard, err := h.dashboardUseCase.GetDashboard(id)
	if err != nil {
		return respondError(c, fmt.Sprintf("Erro ao buscar dashboard da campanha %s", id), err)
	}
	return c.JSON(dashboard)
}
