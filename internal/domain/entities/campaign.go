package entities

import (
	"encoding/json"
	"sort"
	"strings"
)

// Tipos de pergunta aceitos pelo frontend, cada um com seu widget de resposta.
const (
	QuestionTypeLikeDislike  = "like_dislike"
	QuestionTypeEmotionScale = "emotion_scale"
	QuestionTypeEmotion      = "emotion"
	QuestionTypeStars        = "stars"
	QuestionTypeNPS          = "nps"
)

// QuestionOption representa uma opção de resposta em perguntas de escala ou emoção.
type QuestionOption struct {
	Value any    `json:"value"`
	Emoji string `json:"emoji,omitempty"`
	Label string `json:"label,omitempty"`
}

// Question representa um item do questionário de uma campanha. O identificador é
// opaco (o frontend envia números ou strings) e a ordem de exibição é dada pelo
// campo order.
type Question struct {
	ID      any              `json:"id"`
	Type    string           `json:"type"`
	Text    string           `json:"text"`
	Options []QuestionOption `json:"options"`
	Order   int              `json:"order"`
	IsMain  *bool            `json:"isMain,omitempty"`
}

// Campaign é a forma externa (frontend) de uma campanha.
type Campaign struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	MainMetric      string     `json:"mainMetric"`
	RedirectEnabled bool       `json:"redirectEnabled"`
	RedirectRule    *string    `json:"redirectRule"`
	FeedbackEnabled bool       `json:"feedbackEnabled"`
	FeedbackText    *string    `json:"feedbackText"`
	Questions       []Question `json:"questions"`
	FormaEnvio      *string    `json:"formaEnvio"`
	Status          string     `json:"status"`
	UserID          *string    `json:"userId"`
	Token           *string    `json:"token"`
}

// CampaignRecord é a forma de armazenamento de uma campanha (tabela campanhas).
// Cada campo externo tem um mapeamento bidirecional fixo para uma coluna.
type CampaignRecord struct {
	ID                    string     `json:"id,omitempty"`
	Nome                  string     `json:"nome"`
	Metrica               string     `json:"metrica"`
	RedirecionarGoogle    bool       `json:"redirecionar_google"`
	RegraRedirecionamento *string    `json:"regra_redirecionamento"`
	HabilitarFeedback     bool       `json:"habilitar_feedback"`
	TextoFeedback         *string    `json:"texto_feedback"`
	Perguntas             []Question `json:"perguntas"`
	FormaEnvio            *string    `json:"forma_envio"`
	Status                string     `json:"status"`
	UserID                *string    `json:"user_id"`
	Token                 *string    `json:"token"`
}

// SurveyView é a projeção pública de uma campanha para exibição da pesquisa.
type SurveyView struct {
	Campaign  Campaign   `json:"campaign"`
	Questions []Question `json:"questions"`
}

// CampaignInput é o payload de escrita aceito em criações e atualizações.
// Booleanos são ponteiros para distinguir ausência de false; perguntas ficam em
// json.RawMessage para que um payload malformado não impeça a avaliação das
// demais regras de validação.
type CampaignInput struct {
	Name            string          `json:"name"`
	MainMetric      string          `json:"mainMetric"`
	RedirectEnabled *bool           `json:"redirectEnabled"`
	RedirectRule    *string         `json:"redirectRule"`
	FeedbackEnabled *bool           `json:"feedbackEnabled"`
	FeedbackText    *string         `json:"feedbackText"`
	Questions       json.RawMessage `json:"questions"`
	FormaEnvio      *string         `json:"formaEnvio"`
	Status          string          `json:"status"`
	UserID          *string         `json:"userId"`
	Token           *string         `json:"token"`
}

// Validate avalia todas as regras de escrita e devolve todas as violações
// encontradas, não apenas a primeira.
func (in *CampaignInput) Validate() []string {
	var errs []string

	if strings.TrimSpace(in.Name) == "" {
		errs = append(errs, `Campo "name" é obrigatório e deve ser uma string não vazia`)
	}

	if in.MainMetric == "" {
		errs = append(errs, `Campo "mainMetric" é obrigatório e deve ser uma string`)
	}

	if in.RedirectEnabled == nil {
		errs = append(errs, `Campo "redirectEnabled" deve ser um booleano`)
	}

	if in.FeedbackEnabled == nil {
		errs = append(errs, `Campo "feedbackEnabled" deve ser um booleano`)
	}

	if _, err := in.ParsedQuestions(); err != nil {
		errs = append(errs, `Campo "questions" deve ser um array`)
	}

	return errs
}

// ParsedQuestions decodifica o payload de perguntas; ausência ou null equivalem
// a uma lista vazia.
func (in *CampaignInput) ParsedQuestions() ([]Question, error) {
	raw := strings.TrimSpace(string(in.Questions))
	if raw == "" || raw == "null" {
		return []Question{}, nil
	}

	var questions []Question
	if err := json.Unmarshal(in.Questions, &questions); err != nil {
		return nil, err
	}

	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

// ToRecord mapeia o payload externo para a forma de armazenamento, aplicando os
// valores padrão dos campos opcionais ausentes (redirect/feedback desligados,
// status "active", demais campos null).
func (in *CampaignInput) ToRecord() CampaignRecord {
	record := CampaignRecord{
		Nome:                  in.Name,
		Metrica:               in.MainMetric,
		RegraRedirecionamento: in.RedirectRule,
		TextoFeedback:         in.FeedbackText,
		FormaEnvio:            in.FormaEnvio,
		Status:                "active",
		UserID:                in.UserID,
		Token:                 in.Token,
	}

	if in.RedirectEnabled != nil {
		record.RedirecionarGoogle = *in.RedirectEnabled
	}

	if in.FeedbackEnabled != nil {
		record.HabilitarFeedback = *in.FeedbackEnabled
	}

	if in.Status != "" {
		record.Status = in.Status
	}

	questions, err := in.ParsedQuestions()
	if err != nil {
		questions = []Question{}
	}
	record.Perguntas = questions

	return record
}

// ToCampaign mapeia o registro de armazenamento de volta para a forma externa,
// capturando o id atribuído pelo store.
func (r CampaignRecord) ToCampaign() Campaign {
	questions := r.Perguntas
	if questions == nil {
		questions = []Question{}
	}

	return Campaign{
		ID:              r.ID,
		Name:            r.Nome,
		MainMetric:      r.Metrica,
		RedirectEnabled: r.RedirecionarGoogle,
		RedirectRule:    r.RegraRedirecionamento,
		FeedbackEnabled: r.HabilitarFeedback,
		FeedbackText:    r.TextoFeedback,
		Questions:       questions,
		FormaEnvio:      r.FormaEnvio,
		Status:          r.Status,
		UserID:          r.UserID,
		Token:           r.Token,
	}
}

// SortQuestionsByOrder ordena as perguntas pelo campo order, ascendente,
// preservando a ordem de inserção entre perguntas de mesmo order.
func SortQuestionsByOrder(questions []Question) {
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].Order < questions[j].Order
	})
}
