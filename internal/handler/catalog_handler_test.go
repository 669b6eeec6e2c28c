package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloudshop/internal/pricing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewCatalogHandler(pricing.DefaultRates).RegisterCatalogRoutes(r.Group("/api"))
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp Response
	if w.Header().Get("Content-Type") != "" && strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestListServers(t *testing.T) {
	r := newCatalogRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/api/servers", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	tiers, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, tiers, 4)
}

func TestGetServer(t *testing.T) {
	r := newCatalogRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/api/servers/2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	tier, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Standard", tier["name"])
}

func TestGetServer_NotFound(t *testing.T) {
	r := newCatalogRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/api/servers/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Message)
}

func TestGetServer_BadID(t *testing.T) {
	r := newCatalogRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/api/servers/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestCalculate(t *testing.T) {
	r := newCatalogRouter()

	body := `{"cpu":2,"memory":4,"disk":100,"bandwidth":200,"ports":5,"months":12}`
	w, resp := doRequest(t, r, http.MethodPost, "/api/calculate", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, resp.Success)

	quote, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 160.0, quote["monthlyCost"])
	assert.Equal(t, 1920.0, quote["totalCost"])
}

func TestCalculate_MissingFields(t *testing.T) {
	r := newCatalogRouter()

	w, resp := doRequest(t, r, http.MethodPost, "/api/calculate", `{"cpu":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}

func TestCalculate_RejectsNonPositiveValues(t *testing.T) {
	r := newCatalogRouter()

	body := `{"cpu":-1,"memory":4,"disk":100,"bandwidth":200,"ports":5,"months":12}`
	w, resp := doRequest(t, r, http.MethodPost, "/api/calculate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
}
