package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"devhub-server/internal/domain/catalog"
)

func newCatalogRouter(repo catalog.Repository) *gin.Engine {
	service := catalog.NewService(repo, nopLogger())
	handler := NewCatalogHandler(service, nopLogger())

	router := gin.New()
	router.GET("/api/search", handler.Search)
	router.GET("/api/resources", handler.Resources)
	router.GET("/api/learning-paths", handler.LearningPaths)
	router.GET("/api/learning-paths/:skill", handler.LearningPathBySkill)
	return router
}

func TestSearchEndpoint(t *testing.T) {
	repo := &stubRepository{
		results: []catalog.SearchResult{
			{ID: "1", Title: "React Hooks Guide", Category: "frontend"},
		},
	}
	router := newCatalogRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=React", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Query   string                 `json:"query"`
		Results []catalog.SearchResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Query != "React" || len(body.Results) != 1 {
		t.Errorf("body = %+v", body)
	}
}

func TestSearchBlankQueryReturnsEmpty(t *testing.T) {
	repo := &stubRepository{
		results: []catalog.SearchResult{{ID: "1", Title: "should not appear"}},
	}
	router := newCatalogRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/search?q=%20%20", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Results []catalog.SearchResult `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 0 {
		t.Errorf("results = %v, want empty for blank query", body.Results)
	}
}

func TestLearningPathBySkillNotFound(t *testing.T) {
	router := newCatalogRouter(&stubRepository{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/learning-paths/underwater-basket-weaving", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var body struct {
		Code  string `json:"code"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != learningPathNotFoundUUID {
		t.Errorf("code = %q, want %q", body.Code, learningPathNotFoundUUID)
	}
	if body.Error != "learning path not found" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestLearningPathBySkillSlugConversion(t *testing.T) {
	repo := &stubRepository{
		paths: []catalog.LearningPath{
			{ID: "p1", Title: "Full Stack Path", Skill: "Full Stack"},
		},
	}
	router := newCatalogRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/learning-paths/full-stack", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for slugged skill", w.Code)
	}
	var path catalog.LearningPath
	if err := json.Unmarshal(w.Body.Bytes(), &path); err != nil {
		t.Fatal(err)
	}
	if path.Skill != "Full Stack" {
		t.Errorf("skill = %q", path.Skill)
	}
}
