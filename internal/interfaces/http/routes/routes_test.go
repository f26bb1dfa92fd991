package routes_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hellorating/hellorating-api/internal/domain/entities"
	"github.com/hellorating/hellorating-api/internal/infrastructure/store"
	"github.com/hellorating/hellorating-api/internal/interfaces/http/routes"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app, store.NewMemoryStore(), false)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, data
}

func createCampaign(t *testing.T, app *fiber.App, body string) entities.Campaign {
	t.Helper()

	resp, data := doRequest(t, app, fiber.MethodPost, "/api/campaigns", body)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("esperava 201 na criação, obteve %d: %s", resp.StatusCode, data)
	}

	var campaign entities.Campaign
	if err := json.Unmarshal(data, &campaign); err != nil {
		t.Fatal(err)
	}
	return campaign
}

const minimalCampaign = `{"name":"Pesquisa","mainMetric":"NPS","redirectEnabled":false,"feedbackEnabled":false}`

func TestHealthRoute(t *testing.T) {
	app := newTestApp()

	resp, data := doRequest(t, app, fiber.MethodGet, "/", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
	}

	var health struct {
		Status         string `json:"status"`
		Message        string `json:"message"`
		StoreConnected bool   `json:"storeConnected"`
	}
	if err := json.Unmarshal(data, &health); err != nil {
		t.Fatal(err)
	}
	if health.Status != "ok" || health.Message != "HelloRating API" {
		t.Errorf("corpo do health check divergiu: %+v", health)
	}
	if health.StoreConnected {
		t.Error("storeConnected deveria ser false com o store em memória")
	}
}

func TestCreateCampaignValidationListsAllErrors(t *testing.T) {
	app := newTestApp()

	resp, data := doRequest(t, app, fiber.MethodPost, "/api/campaigns", `{}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("esperava 400, obteve %d", resp.StatusCode)
	}

	var body struct {
		Error   string   `json:"error"`
		Details []string `json:"details"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Dados inválidos" {
		t.Errorf("esperava erro %q, obteve %q", "Dados inválidos", body.Error)
	}
	if len(body.Details) != 4 {
		t.Errorf("esperava as 4 violações de uma vez, obteve %v", body.Details)
	}
}

func TestCampaignLifecycle(t *testing.T) {
	app := newTestApp()

	created := createCampaign(t, app, minimalCampaign)
	if created.ID == "" {
		t.Fatal("campanha criada deveria ter id")
	}
	if created.Status != "active" {
		t.Errorf("status padrão deveria ser active, obteve %q", created.Status)
	}

	resp, data := doRequest(t, app, fiber.MethodGet, "/api/campaigns", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200 na listagem, obteve %d", resp.StatusCode)
	}
	var campaigns []entities.Campaign
	if err := json.Unmarshal(data, &campaigns); err != nil {
		t.Fatal(err)
	}
	if len(campaigns) != 1 {
		t.Errorf("esperava 1 campanha, obteve %d", len(campaigns))
	}

	resp, data = doRequest(t, app, fiber.MethodGet, "/api/campaigns/"+created.ID, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200 na busca por id, obteve %d: %s", resp.StatusCode, data)
	}

	resp, data = doRequest(t, app, fiber.MethodPut, "/api/campaigns/"+created.ID,
		`{"name":"Pesquisa renomeada","mainMetric":"NPS","redirectEnabled":false,"feedbackEnabled":false}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200 na atualização, obteve %d: %s", resp.StatusCode, data)
	}
	var updated entities.Campaign
	if err := json.Unmarshal(data, &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Pesquisa renomeada" {
		t.Errorf("nome não foi atualizado: %+v", updated)
	}
}

func TestGetCampaignNotFoundIs404(t *testing.T) {
	app := newTestApp()

	resp, _ := doRequest(t, app, fiber.MethodGet, "/api/campaigns/inexistente", "")
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("esperava 404, obteve %d", resp.StatusCode)
	}
}

func TestQuestionsRoutes(t *testing.T) {
	app := newTestApp()

	created := createCampaign(t, app,
		`{"name":"Pesquisa","mainMetric":"NPS","redirectEnabled":false,"feedbackEnabled":false,`+
			`"questions":[{"id":"b","type":"stars","text":"Atendimento?","order":2},{"id":"a","type":"nps","text":"Recomendaria?","order":1}]}`)

	resp, data := doRequest(t, app, fiber.MethodGet, "/api/campaigns/"+created.ID+"/questions", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", resp.StatusCode, data)
	}
	var questions []entities.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		t.Fatal(err)
	}
	if len(questions) != 2 || questions[0].ID != "a" {
		t.Errorf("perguntas deveriam vir ordenadas por order, obteve %v", questions)
	}

	resp, data = doRequest(t, app, fiber.MethodPut, "/api/campaigns/"+created.ID+"/questions", `{"questions":[]}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, &questions); err != nil {
		t.Fatal(err)
	}
	if len(questions) != 0 {
		t.Errorf("substituição por lista vazia deveria zerar o questionário, obteve %v", questions)
	}

	resp, data = doRequest(t, app, fiber.MethodGet, "/api/campaigns/"+created.ID+"/questions", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d", resp.StatusCode)
	}
	if err := json.Unmarshal(data, &questions); err != nil {
		t.Fatal(err)
	}
	if len(questions) != 0 {
		t.Errorf("esperava questionário vazio após substituição, obteve %v", questions)
	}
}

func TestSurveyRoutes(t *testing.T) {
	app := newTestApp()

	created := createCampaign(t, app, minimalCampaign)

	resp, data := doRequest(t, app, fiber.MethodGet, "/api/surveys/"+created.ID, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", resp.StatusCode, data)
	}
	var survey entities.SurveyView
	if err := json.Unmarshal(data, &survey); err != nil {
		t.Fatal(err)
	}
	if survey.Campaign.ID != created.ID {
		t.Errorf("pesquisa deveria embutir a campanha %s, obteve %+v", created.ID, survey.Campaign)
	}

	resp, data = doRequest(t, app, fiber.MethodPost, "/api/surveys/"+created.ID+"/responses",
		`{"email":"cliente@example.com","answers":{"q1":9},"npsScore":9}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("esperava 201 na submissão, obteve %d: %s", resp.StatusCode, data)
	}
	var response entities.Response
	if err := json.Unmarshal(data, &response); err != nil {
		t.Fatal(err)
	}
	if response.CampaignID != created.ID || response.ID == "" {
		t.Errorf("resposta divergiu: %+v", response)
	}

	resp, _ = doRequest(t, app, fiber.MethodPost, "/api/surveys/"+created.ID+"/responses", `{"email":"sem-answers@example.com"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("submissão sem answers deveria responder 400, obteve %d", resp.StatusCode)
	}
}

func TestDashboardRoute(t *testing.T) {
	app := newTestApp()

	created := createCampaign(t, app, minimalCampaign)

	for _, score := range []string{"9", "9", "7", "3", "2"} {
		resp, data := doRequest(t, app, fiber.MethodPost, "/api/surveys/"+created.ID+"/responses",
			`{"email":"cliente@example.com","answers":{"q1":`+score+`},"npsScore":`+score+`}`)
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("esperava 201 na submissão, obteve %d: %s", resp.StatusCode, data)
		}
	}

	resp, data := doRequest(t, app, fiber.MethodGet, "/api/campaigns/"+created.ID+"/dashboard", "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("esperava 200, obteve %d: %s", resp.StatusCode, data)
	}

	var dashboard entities.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		t.Fatal(err)
	}
	if dashboard.Responses != 5 {
		t.Errorf("esperava 5 respostas, obteve %d", dashboard.Responses)
	}
	if dashboard.NPS != 0 {
		t.Errorf("esperava nps 0, obteve %v", dashboard.NPS)
	}
	if len(dashboard.NPSPercentage) != 3 || dashboard.NPSPercentage[0].Value != 40 ||
		dashboard.NPSPercentage[1].Value != 20 || dashboard.NPSPercentage[2].Value != 40 {
		t.Errorf("fatias divergiram: %+v", dashboard.NPSPercentage)
	}
	if len(dashboard.LatestResponses) != 5 {
		t.Errorf("esperava 5 latestResponses, obteve %d", len(dashboard.LatestResponses))
	}
}

func TestRoutesWithoutStoreRespond500(t *testing.T) {
	app := fiber.New()
	routes.SetupRoutes(app, nil, false)

	resp, data := doRequest(t, app, fiber.MethodGet, "/api/campaigns", "")
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("esperava 500 sem store, obteve %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatal(err)
	}
	if body.Error != "Supabase client not initialized" {
		t.Errorf("esperava a mensagem de backend não configurado, obteve %q", body.Error)
	}
}
