package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"devhub-server/internal/config"
	"devhub-server/internal/domain/assistant"
)

type stubCompleter struct {
	reply string
}

func (s *stubCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return s.reply, nil
}

func (s *stubCompleter) Chat(ctx context.Context, messages []assistant.ChatMessage) (string, error) {
	return s.reply, nil
}

func newAssistantRouter(cfg *config.Config, reply string) *gin.Engine {
	service := assistant.NewService(&stubCompleter{reply: reply}, nopLogger())
	handler := NewAssistantHandler(cfg, service, nopLogger())

	router := gin.New()
	router.GET("/api/quote", handler.Quote)
	router.POST("/api/chat", handler.Chat)
	router.POST("/api/ai-answer", handler.Answer)
	router.POST("/api/json", handler.GenerateJSON)
	return router
}

func TestBetaDisabledGatesAIRoutes(t *testing.T) {
	cfg := testConfig()
	cfg.BetaFeaturesEnabled = false
	router := newAssistantRouter(cfg, "ignored")

	for _, route := range []string{"/api/chat", "/api/ai-answer", "/api/json"} {
		w := postJSON(router, route, `{"messages":[{"role":"user","content":"hi"}],"query":"x","description":"y"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404 coming soon", route, w.Code)
		}
		var body struct {
			Beta bool `json:"beta"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || !body.Beta {
			t.Errorf("%s: body = %s, want beta marker", route, w.Body.String())
		}
	}
}

func TestQuoteNotGatedByBetaFlag(t *testing.T) {
	cfg := testConfig()
	cfg.BetaFeaturesEnabled = false
	router := newAssistantRouter(cfg, "Keep shipping.")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/quote", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Quote string `json:"quote"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Quote != "Keep shipping." {
		t.Errorf("quote = %q", body.Quote)
	}
}

func TestChatWithBetaEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.BetaFeaturesEnabled = true
	router := newAssistantRouter(cfg, "hello there")

	w := postJSON(router, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var body struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Reply != "hello there" {
		t.Errorf("reply = %q", body.Reply)
	}
}

func TestGenerateJSONServesRawDocument(t *testing.T) {
	cfg := testConfig()
	cfg.BetaFeaturesEnabled = true
	router := newAssistantRouter(cfg, "```json\n{\"ok\":true}\n```")

	w := postJSON(router, "/api/json", `{"description":"a status object"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if w.Body.String() != `{"ok":true}` {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestChatEmptyHistoryIs400(t *testing.T) {
	cfg := testConfig()
	cfg.BetaFeaturesEnabled = true
	router := newAssistantRouter(cfg, "unused")

	w := postJSON(router, "/api/chat", `{"messages":[{"role":"user","content":"  "}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
