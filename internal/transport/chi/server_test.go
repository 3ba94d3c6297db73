package chi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domcat "github.com/stylesift/stylesift/internal/domain/catalog"
	catalogrepo "github.com/stylesift/stylesift/internal/repository/catalog"
	healthuc "github.com/stylesift/stylesift/internal/usecase/health"
	searchuc "github.com/stylesift/stylesift/internal/usecase/search"
)

func mustItem(t *testing.T, title, desc, category string, colors []string, price, rating float64) domcat.Item {
	t.Helper()
	item, err := domcat.New(title, desc, "TestBrand", category, nil, colors, price, rating, 12)
	require.NoError(t, err)
	return item
}

func testServer(t *testing.T) *chi.Mux {
	t.Helper()
	repo := catalogrepo.FromItems([]domcat.Item{
		mustItem(t, "Satin Wedding Guest Dress", "Elegant dress.", "dress", []string{"navy"}, 149, 4.7),
		mustItem(t, "Winter Wool Coat", "Warm coat for winter.", "outerwear", []string{"grey"}, 210, 4.4),
		mustItem(t, "Casual Tee", "Everyday tee.", "top", []string{"white"}, 19, 4.1),
	})
	searchSvc := searchuc.New(repo)
	healthSvc := healthuc.New(repo, nil)
	server := NewServer(searchSvc, healthSvc, zap.NewNop())

	r := chi.NewRouter()
	server.Routes(r)
	return r
}

func doSearch(t *testing.T, r http.Handler, url string) (*httptest.ResponseRecorder, searchResponse) {
	t.Helper()
	req := httptest.NewRequest("GET", url, http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp searchResponse
	if rr.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	}
	return rr, resp
}

func TestSearchCatalog_Filtered(t *testing.T) {
	r := testServer(t)

	rr, resp := doSearch(t, r, "/api/v1/search?q=winter+wedding+guest+dress+under+%24150")
	require.Equal(t, http.StatusOK, rr.Code)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "Satin Wedding Guest Dress", resp.Results[0].Title)
	assert.Equal(t, 1, resp.Total)

	require.NotNil(t, resp.Constraints)
	require.NotNil(t, resp.Constraints.BudgetMax)
	assert.Equal(t, 150.0, *resp.Constraints.BudgetMax)
	assert.Equal(t, []string{"dress"}, resp.Constraints.Categories)
	assert.Nil(t, resp.Constraints.Colors)
}

func TestSearchCatalog_Raw(t *testing.T) {
	r := testServer(t)

	// raw skips the constraint filter: the over-budget coat stays.
	rr, resp := doSearch(t, r, "/api/v1/search?q=winter+wedding+guest+dress+under+%24150&raw=true")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Len(t, resp.Results, 2)
	assert.Nil(t, resp.Constraints)
}

func TestSearchCatalog_NoMatches(t *testing.T) {
	r := testServer(t)

	rr, resp := doSearch(t, r, "/api/v1/search?q=zebra+print+umbrella")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.NotNil(t, resp.Results, "results must be an empty array, not null")
	assert.Empty(t, resp.Results)
	assert.Equal(t, 0, resp.Total)
}

func TestSearchCatalog_EmptyQuery(t *testing.T) {
	r := testServer(t)

	rr, resp := doSearch(t, r, "/api/v1/search?q=")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, resp.Results)
}

func TestSearchCatalog_TopK(t *testing.T) {
	r := testServer(t)

	rr, resp := doSearch(t, r, "/api/v1/search?q=winter+dress+tee+coat&top_k=1&raw=true")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, resp.Results, 1)
	assert.Equal(t, 1, resp.TopK)
}

func TestSearchCatalog_BadTopK(t *testing.T) {
	r := testServer(t)

	rr, _ := doSearch(t, r, "/api/v1/search?q=dress&top_k=abc")
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSearchCatalog_ZeroTopK(t *testing.T) {
	r := testServer(t)

	rr, resp := doSearch(t, r, "/api/v1/search?q=dress&top_k=0")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, resp.Results)
}

func TestSearchCatalog_LoadErrorIs500(t *testing.T) {
	repo := catalogrepo.New("/does/not/exist.json")
	server := NewServer(searchuc.New(repo), healthuc.New(repo, nil), zap.NewNop())
	r := chi.NewRouter()
	server.Routes(r)

	rr, _ := doSearch(t, r, "/api/v1/search?q=dress")
	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetHealth(t *testing.T) {
	r := testServer(t)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

func TestGetHealth_DegradedIs503(t *testing.T) {
	repo := catalogrepo.New("/does/not/exist.json")
	server := NewServer(searchuc.New(repo), healthuc.New(repo, nil), zap.NewNop())
	r := chi.NewRouter()
	server.Routes(r)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestIndex_ServesPage(t *testing.T) {
	r := testServer(t)

	req := httptest.NewRequest("GET", "/", http.NoBody)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rr.Body.String(), "stylesift")
}
