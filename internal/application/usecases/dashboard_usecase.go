package usecases

import (
	"math"

	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/domain/repositories"
)

// Limiares fixos de classificação NPS: nota >= 9 promotor, 7 <= nota < 9
// passivo, nota < 7 detrator.
const (
	promoterThreshold = 9
	passiveThreshold  = 7
)

// Cores fixas de exibição por categoria no gráfico do dashboard.
const (
	colorDetractors = "#ef4444"
	colorPassives   = "#f59e0b"
	colorPromoters  = "#10b981"
)

// DashboardUseCase computa o resumo do dashboard de uma campanha a partir do
// conjunto completo de respostas. Operação de leitura pura, idempotente.
type DashboardUseCase struct {
	responseRepo *repositories.ResponseRepository
}

// NewDashboardUseCase cria uma nova instância de DashboardUseCase.
func NewDashboardUseCase(responseRepo *repositories.ResponseRepository) *DashboardUseCase {
	return &DashboardUseCase{
		responseRepo: responseRepo,
	}
}

// GetDashboard lê todas as respostas da campanha (sem janela de tempo) e
// calcula o resumo agregado.
func (u *DashboardUseCase) GetDashboard(campaignID string) (entities.Dashboard, error) {
	responses, err := u.responseRepo.FindByCampaign(campaignID)
	if err != nil {
		return entities.Dashboard{}, err
	}
	return BuildDashboard(responses), nil
}

// BuildDashboard classifica cada resposta em exatamente um dos três grupos e
// computa o NPS composto e as fatias percentuais. Respostas sem nota entram na
// contagem total mas não em nenhum grupo. Com zero respostas todos os valores
// são 0, sem divisão por zero.
func BuildDashboard(responses []entities.Response) entities.Dashboard {
	var promoters, passives, detractors int

	latest := make([]entities.LatestResponse, 0, len(responses))
	for _, response := range responses {
		category := ""
		if response.NPSScore != nil {
			switch {
			case *response.NPSScore >= promoterThreshold:
				promoters++
				category = "Promotor"
			case *response.NPSScore >= passiveThreshold:
				passives++
				category = "Passivo"
			default:
				detractors++
				category = "Detrator"
			}
		}

		latest = append(latest, entities.LatestResponse{
			ID:       response.ID,
			Name:     response.Name,
			Email:    response.Email,
			Score:    response.NPSScore,
			Category: category,
		})
	}

	total := len(responses)

	var nps float64
	if total > 0 {
		nps = round2(float64(promoters-detractors) / float64(total) * 100)
	}

	return entities.Dashboard{
		NPS:        nps,
		Responses:  total,
		Last10Days: []entities.DailyPoint{},
		NPSPercentage: []entities.CategoryShare{
			{Category: "Detratores", Value: share(detractors, total), Color: colorDetractors},
			{Category: "Passivos", Value: share(passives, total), Color: colorPassives},
			{Category: "Promotores", Value: share(promoters, total), Color: colorPromoters},
		},
		NPSScores:       []entities.ScoreCount{},
		LatestResponses: latest,
	}
}

// share calcula a fatia percentual de um grupo sobre o total, 0 quando não há
// respostas.
func share(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

// round2 arredonda para duas casas decimais.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
