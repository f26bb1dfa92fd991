package repositories

import (
	"encoding/json"

	"github.com/hellorating/hellorating-api/internal/domain/apperrors"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/infrastructure/store"
)

const campaignsTable = "campanhas"

// CampaignRepository apresenta o contrato externo de campanhas sobre a tabela
// campanhas, cujas colunas seguem a convenção de nomes do backend. Não guarda
// estado mutável entre chamadas; todo o estado vive no store.
type CampaignRepository struct {
	store store.Store
}

// NewCampaignRepository cria uma nova instância de CampaignRepository. Um store
// nulo significa que o backend não foi configurado; nesse caso toda operação
// falha com ErrBackendUnavailable.
func NewCampaignRepository(s store.Store) *CampaignRepository {
	return &CampaignRepository{
		store: s,
	}
}

// FindAll retorna todas as campanhas na forma externa, na ordem devolvida pelo
// store (sem contrato de ordenação).
func (r *CampaignRepository) FindAll() ([]entities.Campaign, error) {
	if r.store == nil {
		return nil, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Select(campaignsTable, nil)
	if err != nil {
		return nil, storeError("erro ao buscar campanhas", err)
	}

	records, err := decodeCampaigns(data)
	if err != nil {
		return nil, err
	}

	campaigns := make([]entities.Campaign, 0, len(records))
	for _, record := range records {
		campaigns = append(campaigns, record.ToCampaign())
	}
	return campaigns, nil
}

// FindByID retorna a campanha identificada por id ou NotFoundError se nenhum
// registro casar.
func (r *CampaignRepository) FindByID(id string) (entities.Campaign, error) {
	if r.store == nil {
		return entities.Campaign{}, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Select(campaignsTable, store.Filter{"id": id})
	if err != nil {
		return entities.Campaign{}, storeError("erro ao buscar campanha "+id, err)
	}

	records, err := decodeCampaigns(data)
	if err != nil {
		return entities.Campaign{}, err
	}

	if len(records) == 0 {
		return entities.Campaign{}, &apperrors.NotFoundError{Resource: "campanha", ID: id}
	}
	return records[0].ToCampaign(), nil
}

// Create persiste o registro já mapeado e devolve a campanha na forma externa,
// capturando o id atribuído pelo store. Nenhum estado parcial é retido em caso
// de falha.
func (r *CampaignRepository) Create(record entities.CampaignRecord) (entities.Campaign, error) {
	if r.store == nil {
		return entities.Campaign{}, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Insert(campaignsTable, record)
	if err != nil {
		return entities.Campaign{}, storeError("erro ao criar campanha", err)
	}

	records, err := decodeCampaigns(data)
	if err != nil {
		return entities.Campaign{}, err
	}

	if len(records) == 0 {
		return entities.Campaign{}, &apperrors.StoreError{Op: "erro ao criar campanha", Message: "store não devolveu o registro inserido"}
	}
	return records[0].ToCampaign(), nil
}

// Update substitui integralmente os campos mapeados do registro que casa com
// id. Campos opcionais ausentes do payload já chegam aqui com seus valores
// padrão: não é um patch esparso.
func (r *CampaignRepository) Update(id string, record entities.CampaignRecord) (entities.Campaign, error) {
	if r.store == nil {
		return entities.Campaign{}, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Update(campaignsTable, store.Filter{"id": id}, record)
	if err != nil {
		return entities.Campaign{}, storeError("erro ao atualizar campanha "+id, err)
	}

	records, err := decodeCampaigns(data)
	if err != nil {
		return entities.Campaign{}, err
	}

	if len(records) == 0 {
		return entities.Campaign{}, &apperrors.NotFoundError{Resource: "campanha", ID: id}
	}
	return records[0].ToCampaign(), nil
}

// FindQuestions retorna as perguntas embutidas na campanha, ordenadas por
// order ascendente.
func (r *CampaignRepository) FindQuestions(id string) ([]entities.Question, error) {
	campaign, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	questions := campaign.Questions
	entities.SortQuestionsByOrder(questions)
	return questions, nil
}

// ReplaceQuestions sobrescreve integralmente a sequência de perguntas da
// campanha (sem merge) e devolve a nova sequência reordenada por order.
func (r *CampaignRepository) ReplaceQuestions(id string, questions []entities.Question) ([]entities.Question, error) {
	if r.store == nil {
		return nil, apperrors.ErrBackendUnavailable
	}

	if questions == nil {
		questions = []entities.Question{}
	}

	patch := map[string]any{"perguntas": questions}
	data, err := r.store.Update(campaignsTable, store.Filter{"id": id}, patch)
	if err != nil {
		return nil, storeError("erro ao atualizar perguntas da campanha "+id, err)
	}

	records, err := decodeCampaigns(data)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &apperrors.NotFoundError{Resource: "campanha", ID: id}
	}

	updated := records[0].Perguntas
	if updated == nil {
		updated = []entities.Question{}
	}
	entities.SortQuestionsByOrder(updated)
	return updated, nil
}

func decodeCampaigns(data []byte) ([]entities.CampaignRecord, error) {
	var records []entities.CampaignRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storeError("erro ao decodificar campanhas", err)
	}
	return records, nil
}

// storeError converte uma falha do store em StoreError, preservando a mensagem
// de diagnóstico original.
func storeError(op string, err error) error {
	return &apperrors.StoreError{Op: op, Message: err.Error()}
}
