package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/session"
)

type stubCatalog struct {
	catalog *item.Catalog
	status  session.Status
	news    []domain.NewsItem
	diffErr error
}

func (s *stubCatalog) Catalog() *item.Catalog { return s.catalog }
func (s *stubCatalog) Status() session.Status { return s.status }

func (s *stubCatalog) News(context.Context) ([]domain.NewsItem, error) {
	return s.news, nil
}

func (s *stubCatalog) Diff(context.Context) ([]string, error) {
	if s.diffErr != nil {
		return nil, s.diffErr
	}
	return []string{"・Sword"}, nil
}

func newStubCatalog() *stubCatalog {
	return &stubCatalog{
		catalog: item.NewCatalog([]domain.Item{
			{Basic: domain.BasicInfo{Name: "Sword", Serial: 3, DropLevel: 500, Category: "剣"}},
			{Basic: domain.BasicInfo{Name: "Axe", Serial: 4, DropLevel: 1200, Category: "斧"}},
		}),
		status: session.Status{Attempted: true, Loaded: true, ItemCount: 2},
		news:   []domain.NewsItem{{Date: "2024-01-01", Content: "hello"}},
	}
}

func newTestServer(catalog CatalogService) *Server {
	return NewServer(Options{Port: 8080, SuggestionLimit: 5, HighTierDropLevel: 1000}, catalog)
}

func TestNewServer_Addr(t *testing.T) {
	assert.Equal(t, ":8080", newTestServer(newStubCatalog()).Addr())
}

func TestRouter_Routes(t *testing.T) {
	srv := newTestServer(newStubCatalog())

	tests := []struct {
		path   string
		status int
	}{
		{"/healthz", http.StatusOK},
		{"/readyz", http.StatusOK},
		{"/version", http.StatusOK},
		{"/metrics", http.StatusOK},
		{"/api/v1/items", http.StatusOK},
		{"/api/v1/items?sort=price&order=desc", http.StatusOK},
		{"/api/v1/items?sort=bogus", http.StatusBadRequest},
		{"/api/v1/items/suggest?q=S", http.StatusOK},
		{"/api/v1/items/categories", http.StatusOK},
		{"/api/v1/items/1", http.StatusOK},
		{"/api/v1/items/2", http.StatusNotFound},
		{"/api/v1/items/abc", http.StatusBadRequest},
		{"/api/v1/items/serial/4", http.StatusOK},
		{"/api/v1/catalog/status", http.StatusOK},
		{"/api/v1/news", http.StatusOK},
		{"/api/v1/news/latest", http.StatusOK},
		{"/api/v1/diff", http.StatusOK},
		{"/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_SerialRouteTakesPrecedence(t *testing.T) {
	srv := newTestServer(newStubCatalog())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/items/serial/3", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, "Sword", body.Items[0].Name)
}

func TestRouter_NotReady(t *testing.T) {
	catalog := newStubCatalog()
	catalog.catalog = item.Empty()
	catalog.status = session.Status{Attempted: true, Error: session.UserMsgLoadFailed}
	srv := newTestServer(catalog)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/items", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total":0,"offset":0,"limit":100,"items":[]}`, rec.Body.String())
}

func TestRouter_DiffUnavailable(t *testing.T) {
	catalog := newStubCatalog()
	catalog.diffErr = fmt.Errorf("%w: diff.txt", domain.ErrResourceUnavailable)
	srv := newTestServer(catalog)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/diff", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_SecurityHeaders(t *testing.T) {
	srv := newTestServer(newStubCatalog())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/items", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}
