package usecases

import (
	"strings"

	"github.com/hellorating/hellorating-api/internal/domain/apperrors"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/domain/repositories"
)

// SurveyUseCase implementa a superfície pública de pesquisa: exibição do
// questionário e submissão de respostas.
type SurveyUseCase struct {
	campaignRepo *repositories.CampaignRepository
	responseRepo *repositories.ResponseRepository
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase.
func NewSurveyUseCase(campaignRepo *repositories.CampaignRepository, responseRepo *repositories.ResponseRepository) *SurveyUseCase {
	return &SurveyUseCase{
		campaignRepo: campaignRepo,
		responseRepo: responseRepo,
	}
}

// GetSurvey retorna a campanha e suas perguntas para exibição pública.
func (u *SurveyUseCase) GetSurvey(id string) (entities.SurveyView, error) {
	campaign, err := u.campaignRepo.FindByID(id)
	if err != nil {
		return entities.SurveyView{}, err
	}

	questions := campaign.Questions
	entities.SortQuestionsByOrder(questions)

	return entities.SurveyView{
		Campaign:  campaign,
		Questions: questions,
	}, nil
}

// SubmitResponse persiste a submissão de um respondente contra a campanha. A
// forma de answers não é validada contra o questionário por esta camada.
func (u *SurveyUseCase) SubmitResponse(campaignID string, input entities.ResponseInput) (entities.Response, error) {
	answers := strings.TrimSpace(string(input.Answers))
	if input.Email == "" || answers == "" || answers == "null" {
		return entities.Response{}, &apperrors.ValidationError{
			Details: []string{"email e answers são obrigatórios"},
		}
	}

	return u.responseRepo.Insert(input.ToRecord(campaignID))
}
