package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/catalog"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/config"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/domain"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/interaction"
	"github.com/AhmedElhoceny/Recommendation-AI-System/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	cat, err := catalog.New([]domain.Product{
		{ProductID: "P001", Name: "Wireless Bluetooth Headphones", Category: "Electronics", Price: 79.99, Rating: 4.5, Views: 9540, Purchases: 412},
		{ProductID: "P002", Name: "Smart Fitness Watch", Category: "Electronics", Price: 129.99, Rating: 4.3, Views: 8220, Purchases: 387},
		{ProductID: "P003", Name: "Running Shoes", Category: "Sports", Price: 119.99, Rating: 4.7, Views: 9876, Purchases: 543},
		{ProductID: "P004", Name: "Espresso Machine", Category: "Home & Kitchen", Price: 249.99, Rating: 4.6, Views: 5240, Purchases: 173},
	})
	if err != nil {
		t.Fatal(err)
	}

	limits := config.LimitsConfig{
		DefaultRecommendations: 5,
		MaxRecommendations:     50,
		DefaultPageSize:        10,
		MaxPageSize:            100,
	}

	svc := service.NewRecommendationService(cat, interaction.NewLog(), limits)
	handler := NewRecommendationHandler(svc, limits, zap.NewNop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(t *testing.T, router chi.Router, method, target string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response %q: %v", w.Body.String(), err)
	}
	return body
}

func assertErrorBody(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantKind string) map[string]interface{} {
	t.Helper()

	if w.Code != wantStatus {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, wantStatus, w.Body.String())
	}
	body := decodeBody(t, w)
	if body["error"] != wantKind {
		t.Errorf("error kind = %v, want %q", body["error"], wantKind)
	}
	if msg, ok := body["message"].(string); !ok || msg == "" {
		t.Errorf("missing human-readable message: %v", body)
	}
	return body
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
	if body["service"] != "E-Commerce Recommendation API" {
		t.Errorf("service field = %v", body["service"])
	}
	if body["version"] != "v1" {
		t.Errorf("version field = %v", body["version"])
	}
}

func TestGetRecommendations_NewUser(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/recommendations/user123?limit=2", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["user_id"] != "user123" {
		t.Errorf("user_id = %v", body["user_id"])
	}
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestGetRecommendations_InvalidLimit(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/recommendations/u1?limit=0",
		"/api/v1/recommendations/u1?limit=-2",
		"/api/v1/recommendations/u1?limit=51",
		"/api/v1/recommendations/u1?limit=abc",
	} {
		w := doRequest(t, router, http.MethodGet, target, nil)
		assertErrorBody(t, w, http.StatusBadRequest, "Validation Error")
	}
}

func TestGetSimilar(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/similar/P001?limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["product_id"] != "P001" {
		t.Errorf("product_id = %v", body["product_id"])
	}
	similar, ok := body["similar_products"].([]interface{})
	if !ok || len(similar) != 1 {
		t.Fatalf("similar_products = %v", body["similar_products"])
	}
	item := similar[0].(map[string]interface{})
	if item["product_id"] != "P002" {
		t.Errorf("most similar = %v, want P002", item["product_id"])
	}
	score, ok := item["similarity_score"].(float64)
	if !ok || score <= 0 || score > 1 {
		t.Errorf("similarity_score = %v, want value in (0, 1]", item["similarity_score"])
	}
}

func TestGetSimilar_UnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/similar/P999", nil)
	assertErrorBody(t, w, http.StatusNotFound, "Not Found")
}

func TestGetTrending(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/trending?limit=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	trending, ok := body["trending_products"].([]interface{})
	if !ok || len(trending) != 3 {
		t.Fatalf("trending_products = %v", body["trending_products"])
	}
	first := trending[0].(map[string]interface{})
	if _, ok := first["views"]; !ok {
		t.Error("trending item missing views")
	}
	if _, ok := first["purchases"]; !ok {
		t.Error("trending item missing purchases")
	}
}

func TestGetTrending_DefaultLimit(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/trending", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	// Catalog has 4 products, below the default page size of 10.
	body := decodeBody(t, w)
	if body["count"] != float64(4) {
		t.Errorf("count = %v, want 4", body["count"])
	}
}

func TestGetByCategory(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/category/electronics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["category"] != "Electronics" {
		t.Errorf("category = %v, want canonical Electronics", body["category"])
	}
	if body["count"] != float64(2) {
		t.Errorf("count = %v, want 2", body["count"])
	}
}

func TestGetByCategory_EscapedName(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/category/Home%20%26%20Kitchen", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["category"] != "Home & Kitchen" {
		t.Errorf("category = %v, want Home & Kitchen", body["category"])
	}
	if body["count"] != float64(1) {
		t.Errorf("count = %v, want 1", body["count"])
	}
}

func TestGetByCategory_Invalid(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/category/Foo", nil)
	body := assertErrorBody(t, w, http.StatusBadRequest, "Validation Error")

	if msg, _ := body["message"].(string); !bytes.Contains([]byte(msg), []byte("category")) {
		t.Errorf("message does not name the category field: %v", body["message"])
	}
}

func TestAddInteraction_ThenRecommendations(t *testing.T) {
	router := newTestRouter(t)

	payload := []byte(`{"user_id":"u1","product_id":"P001","interaction_type":"purchase","rating":5.0}`)
	w := doRequest(t, router, http.MethodPost, "/api/v1/interaction", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["message"] != "Interaction recorded successfully" {
		t.Errorf("message = %v", body["message"])
	}
	if body["user_id"] != "u1" || body["product_id"] != "P001" || body["interaction_type"] != "purchase" {
		t.Errorf("unexpected echo: %v", body)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/recommendations/u1?limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}

	body = decodeBody(t, w)
	recommendations, ok := body["recommendations"].([]interface{})
	if !ok || len(recommendations) == 0 {
		t.Fatalf("expected non-empty recommendations, got %v", body["recommendations"])
	}
	for _, raw := range recommendations {
		item := raw.(map[string]interface{})
		if item["product_id"] == "P001" {
			t.Error("recommendations include the purchased product")
		}
	}
}

func TestAddInteraction_DefaultsToView(t *testing.T) {
	router := newTestRouter(t)

	payload := []byte(`{"user_id":"u1","product_id":"P002"}`)
	w := doRequest(t, router, http.MethodPost, "/api/v1/interaction", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["interaction_type"] != "view" {
		t.Errorf("interaction_type = %v, want view", body["interaction_type"])
	}
}

func TestAddInteraction_Rejections(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name       string
		payload    string
		wantStatus int
		wantKind   string
	}{
		{"missing user_id", `{"product_id":"P001"}`, http.StatusBadRequest, "Validation Error"},
		{"missing product_id", `{"user_id":"u1"}`, http.StatusBadRequest, "Validation Error"},
		{"bad interaction type", `{"user_id":"u1","product_id":"P001","interaction_type":"click"}`, http.StatusBadRequest, "Validation Error"},
		{"rating above range", `{"user_id":"u1","product_id":"P001","rating":7.5}`, http.StatusBadRequest, "Validation Error"},
		{"empty body", ``, http.StatusBadRequest, "Validation Error"},
		{"malformed json", `{"user_id":`, http.StatusBadRequest, "Validation Error"},
		{"unknown product", `{"user_id":"u1","product_id":"P999"}`, http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/interaction", []byte(tt.payload))
			assertErrorBody(t, w, tt.wantStatus, tt.wantKind)
		})
	}
}
