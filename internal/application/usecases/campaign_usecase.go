package usecases

import (
	"github.com/hellorating/hellorating-api/internal/domain/apperrors"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/domain/repositories"
)

// CampaignUseCase implementa os casos de uso de gestão de campanhas.
type CampaignUseCase struct {
	campaignRepo *repositories.CampaignRepository
}

// NewCampaignUseCase cria uma nova instância de CampaignUseCase.
func NewCampaignUseCase(campaignRepo *repositories.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{
		campaignRepo: campaignRepo,
	}
}

// GetCampaigns retorna todas as campanhas.
func (u *CampaignUseCase) GetCampaigns() ([]entities.Campaign, error) {
	return u.campaignRepo.FindAll()
}

// GetCampaign retorna a campanha identificada por id.
func (u *CampaignUseCase) GetCampaign(id string) (entities.Campaign, error) {
	return u.campaignRepo.FindByID(id)
}

// CreateCampaign valida o payload, aplica os valores padrão e persiste a nova
// campanha. Toda violação de validação é reportada antes de qualquer tentativa
// de persistência.
func (u *CampaignUseCase) CreateCampaign(input entities.CampaignInput) (entities.Campaign, error) {
	if details := input.Validate(); len(details) > 0 {
		return entities.Campaign{}, &apperrors.ValidationError{Details: details}
	}
	return u.campaignRepo.Create(input.ToRecord())
}

// UpdateCampaign aplica a mesma validação e os mesmos padrões da criação como
// substituição integral dos campos da campanha: campos opcionais ausentes do
// payload voltam ao valor padrão, não permanecem inalterados.
func (u *CampaignUseCase) UpdateCampaign(id string, input entities.CampaignInput) (entities.Campaign, error) {
	if details := input.Validate(); len(details) > 0 {
		return entities.Campaign{}, &apperrors.ValidationError{Details: details}
	}
	return u.campaignRepo.Update(id, input.ToRecord())
}

// GetQuestions retorna as perguntas da campanha em ordem de exibição.
func (u *CampaignUseCase) GetQuestions(id string) ([]entities.Question, error) {
	return u.campaignRepo.FindQuestions(id)
}

// ReplaceQuestions sobrescreve o questionário da campanha e devolve a nova
// sequência ordenada.
func (u *CampaignUseCase) ReplaceQuestions(id string, questions []entities.Question) ([]entities.Question, error) {
	return u.campaignRepo.ReplaceQuestions(id, questions)
}
