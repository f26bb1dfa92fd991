package entities

import (
	"encoding/json"
	"time"
)

// Response é a forma externa de uma resposta de pesquisa. O payload de answers
// é opaco para esta camada: sua forma é definida pelo questionário da campanha.
type Response struct {
	ID         string          `json:"id"`
	CampaignID string          `json:"campaignId"`
	Email      string          `json:"email"`
	Name       string          `json:"name,omitempty"`
	Answers    json.RawMessage `json:"answers"`
	NPSScore   *float64        `json:"npsScore"`
	CreatedAt  *time.Time      `json:"createdAt,omitempty"`
}

// ResponseRecord é a forma de armazenamento de uma resposta (tabela respostas).
type ResponseRecord struct {
	ID           string          `json:"id,omitempty"`
	CampanhaID   string          `json:"campanha_id"`
	ClienteEmail string          `json:"cliente_email"`
	ClienteNome  string          `json:"cliente_nome,omitempty"`
	Respostas    json.RawMessage `json:"respostas"`
	NotaNPS      *float64        `json:"nota_nps,omitempty"`
	CreatedAt    *time.Time      `json:"created_at,omitempty"`
}

// ResponseInput é o payload de submissão de resposta de um respondente.
type ResponseInput struct {
	Email    string          `json:"email"`
	Name     string          `json:"name"`
	Answers  json.RawMessage `json:"answers"`
	NPSScore *float64        `json:"npsScore"`
}

// ToRecord mapeia a submissão para a forma de armazenamento, vinculada à
// campanha informada na rota.
func (in *ResponseInput) ToRecord(campaignID string) ResponseRecord {
	return ResponseRecord{
		CampanhaID:   campaignID,
		ClienteEmail: in.Email,
		ClienteNome:  in.Name,
		Respostas:    in.Answers,
		NotaNPS:      in.NPSScore,
	}
}

// ToResponse mapeia o registro de armazenamento de volta para a forma externa.
func (r ResponseRecord) ToResponse() Response {
	return Response{
		ID:         r.ID,
		CampaignID: r.CampanhaID,
		Email:      r.ClienteEmail,
		Name:       r.ClienteNome,
		Answers:    r.Respostas,
		NPSScore:   r.NotaNPS,
		CreatedAt:  r.CreatedAt,
	}
}
