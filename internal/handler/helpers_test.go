package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/session"
)

// fakeCatalog is a fixed CatalogSource
type fakeCatalog struct {
	catalog *item.Catalog
	status  session.Status
}

func (f *fakeCatalog) Catalog() *item.Catalog { return f.catalog }
func (f *fakeCatalog) Status() session.Status { return f.status }

// MockFeedSource mocks FeedSource
type MockFeedSource struct {
	mock.Mock
}

func (m *MockFeedSource) News(ctx context.Context) ([]domain.NewsItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockFeedSource) Diff(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func stat(n int) *domain.Number {
	v := domain.Number(n)
	return &v
}

func testCatalog() *item.Catalog {
	return item.NewCatalog([]domain.Item{
		{
			Basic: domain.BasicInfo{
				Name: "★Sword<c:red></c>", Serial: 11, MinDamage: 10, MaxDamage: 20,
				Price: 300, DropLevel: 500, Category: "剣", AttackRange: "前方",
			},
			RequiredStats:  domain.RequiredStats{Level: stat(10), Strength: stat(20)},
			CreationTraits: []string{"\u0001氷属性\u0002"},
		},
		{
			Basic:         domain.BasicInfo{Name: "Axe", Serial: 12, DropLevel: 1200, Price: 100, Category: "斧"},
			RequiredStats: domain.RequiredStats{Level: stat(40)},
		},
		{
			Basic: domain.BasicInfo{Name: "Long Sword", Serial: 11, DropLevel: 800, Price: 900, Category: "剣"},
		},
	})
}

func newTestItemHandler() *ItemHandler {
	return NewItemHandler(&fakeCatalog{
		catalog: testCatalog(),
		status:  session.Status{Attempted: true, Loaded: true, ItemCount: 3, Source: "items.json"},
	}, ItemHandlerConfig{SuggestionLimit: 5, HighTierDropLevel: domain.DefaultHighTierDropLevel})
}

// newItemRouter mounts the item routes the same way the server does
func newItemRouter(h *ItemHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/items", h.HandleSearch)
	r.Get("/items/suggest", h.HandleSuggest)
	r.Get("/items/categories", h.HandleCategories)
	r.Get("/items/serial/{serial}", h.HandleGetBySerial)
	r.Get("/items/{index}", h.HandleGetItem)
	r.Get("/catalog/status", h.HandleCatalogStatus)
	return r
}

func serve(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}
