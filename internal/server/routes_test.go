package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"
	"github.com/jvs-dev/memory-game-guadalupe/internal/game"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := catalog.NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	hub := NewHub(catalog.NewAccessor(store), game.NewWallScheduler())
	return NewRouter(store, "sqlite", "", hub)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "sqlite") {
		t.Errorf("health body should name the backend: %s", w.Body.String())
	}
}

func TestCreateAndListCards(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cards",
		`{"identity":"Lion","image":"/img/lion.png","points":10,"author":"ana"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/cards", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", w.Code)
	}

	var cards []catalog.Card
	if err := json.Unmarshal(w.Body.Bytes(), &cards); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(cards) != 1 || cards[0].Identity != "Lion" {
		t.Errorf("unexpected list: %+v", cards)
	}
}

func TestListCardsEmptyIsArray(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/cards", "")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty list body = %q, want []", got)
	}
}

func TestCreateCardValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "not-json"},
		{"missing identity", `{"image":"/img/x.png","points":10}`},
		{"missing image", `{"identity":"X","points":10}`},
		{"invalid points", `{"identity":"X","image":"/img/x.png","points":15}`},
		{"zero points", `{"identity":"X","image":"/img/x.png"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, http.MethodPost, "/api/cards", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestCreateCardLastWriteWins(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cards",
		`{"identity":"Lion","image":"/img/a.png","points":10}`)
	w := doJSON(t, router, http.MethodPost, "/api/cards",
		`{"identity":"Lion","image":"/img/b.png","points":20}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("replace status = %d, want 201", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/cards", "")
	var cards []catalog.Card
	json.Unmarshal(w.Body.Bytes(), &cards)
	if len(cards) != 1 || cards[0].Image != "/img/b.png" || cards[0].Points != 20 {
		t.Errorf("last write did not win: %+v", cards)
	}
}

func TestDeleteCardIdempotent(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/cards",
		`{"identity":"Lion","image":"/img/lion.png","points":10}`)

	w := doJSON(t, router, http.MethodDelete, "/api/cards/Lion", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/cards/Lion", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("repeat delete status = %d, want 204", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/cards/never-existed", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("missing-card delete status = %d, want 204", w.Code)
	}
}
