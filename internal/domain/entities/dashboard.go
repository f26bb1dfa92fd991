package entities

// Dashboard representa a resposta consolidada do dashboard de uma campanha.
// Os campos responseRate, sends, last10Days e npsScores permanecem no payload
// por compatibilidade com o frontend, mas não possuem fonte de dados real
// nesta camada (não há rastreamento de envios nem série temporal).
type Dashboard struct {
	NPS             float64          `json:"nps"`
	ResponseRate    float64          `json:"responseRate"`
	Responses       int              `json:"responses"`
	Sends           int              `json:"sends"`
	Last10Days      []DailyPoint     `json:"last10Days"`
	NPSPercentage   []CategoryShare  `json:"npsPercentage"`
	NPSScores       []ScoreCount     `json:"npsScores"`
	LatestResponses []LatestResponse `json:"latestResponses"`
}

// CategoryShare representa a fatia percentual de uma categoria NPS, com a cor
// fixa de exibição do gráfico.
type CategoryShare struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Color    string  `json:"color"`
}

// ScoreCount representa a contagem de um valor de nota no histograma.
type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// DailyPoint representa um dia na série de envios e respostas.
type DailyPoint struct {
	Day       string `json:"day"`
	Sends     int    `json:"sends"`
	Responses int    `json:"responses"`
}

// LatestResponse é a projeção de uma resposta para a lista do dashboard.
// Category fica vazia quando a resposta não possui nota NPS.
type LatestResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Score    *float64 `json:"score"`
	Category string   `json:"category"`
}
