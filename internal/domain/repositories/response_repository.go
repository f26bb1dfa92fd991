package repositories

import (
	"encoding/json"

	"github.com/hellorating/hellorating-api/internal/domain/apperrors"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/infrastructure/store"
)

const responsesTable = "respostas"

// ResponseRepository persiste e lê respostas de pesquisa na tabela respostas.
// Respostas são imutáveis após a inserção e lidas em bloco para agregação.
type ResponseRepository struct {
	store store.Store
}

// NewResponseRepository cria uma nova instância de ResponseRepository.
func NewResponseRepository(s store.Store) *ResponseRepository {
	return &ResponseRepository{
		store: s,
	}
}

// Insert persiste a resposta e devolve a forma externa com id e created_at
// atribuídos pelo store.
func (r *ResponseRepository) Insert(record entities.ResponseRecord) (entities.Response, error) {
	if r.store == nil {
		return entities.Response{}, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Insert(responsesTable, record)
	if err != nil {
		return entities.Response{}, storeError("erro ao salvar resposta", err)
	}

	records, err := decodeResponses(data)
	if err != nil {
		return entities.Response{}, err
	}

	if len(records) == 0 {
		return entities.Response{}, &apperrors.StoreError{Op: "erro ao salvar resposta", Message: "store não devolveu o registro inserido"}
	}
	return records[0].ToResponse(), nil
}

// FindByCampaign retorna todas as respostas da campanha, sem janela de tempo,
// na ordem devolvida pelo store.
func (r *ResponseRepository) FindByCampaign(campaignID string) ([]entities.Response, error) {
	if r.store == nil {
		return nil, apperrors.ErrBackendUnavailable
	}

	data, err := r.store.Select(responsesTable, store.Filter{"campanha_id": campaignID})
	if err != nil {
		return nil, storeError("erro ao buscar respostas da campanha "+campaignID, err)
	}

	records, err := decodeResponses(data)
	if err != nil {
		return nil, err
	}

	responses := make([]entities.Response, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}
	return responses, nil
}

func decodeResponses(data []byte) ([]entities.ResponseRecord, error) {
	var records []entities.ResponseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, storeError("erro ao decodificar respostas", err)
	}
	return records, nil
}
