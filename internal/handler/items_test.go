package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/session"
)

func itemNames(items []ItemView) []string {
	out := make([]string, len(items))
	for i, v := range items {
		out[i] = v.Name
	}
	return out
}

func TestHandleSearch(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	tests := []struct {
		name   string
		target string
		total  int
		want   []string
	}{
		{"default sort is ascending drop level", "/items", 3, []string{"Sword", "Long Sword", "Axe"}},
		{"descending", "/items?order=desc", 3, []string{"Axe", "Long Sword", "Sword"}},
		{"name filter", "/items?q=Sword", 2, []string{"Sword", "Long Sword"}},
		{"query is not trimmed", "/items?q=%20Sword", 1, []string{"Long Sword"}},
		{"category filter", "/items?category=%E5%89%A3&sort=price&order=desc", 2, []string{"Long Sword", "Sword"}},
		{"pagination", "/items?offset=1&limit=1", 3, []string{"Long Sword"}},
		{"offset past the end", "/items?offset=10", 3, []string{}},
		{"no match", "/items?q=Mace", 0, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, router, tt.target)
			require.Equal(t, http.StatusOK, rr.Code)

			resp := decode[SearchResponse](t, rr)
			assert.Equal(t, tt.total, resp.Total)
			assert.Equal(t, tt.want, itemNames(resp.Items))
		})
	}
}

func TestHandleSearch_ItemView(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	resp := decode[SearchResponse](t, serve(t, router, "/items?q=Axe"))
	require.Len(t, resp.Items, 1)

	axe := resp.Items[0]
	assert.True(t, axe.HighTier)
	assert.Equal(t, 1200, axe.DropLevel)
	require.Len(t, axe.RequiredStats, len(domain.StatNames))

	level := axe.RequiredStats[0]
	assert.Equal(t, domain.StatLevel, level.Name)
	require.NotNil(t, level.Value)
	assert.Equal(t, 40, *level.Value)

	strength := axe.RequiredStats[1]
	assert.Equal(t, domain.StatStrength, strength.Name)
	assert.Nil(t, strength.Value)
	assert.Equal(t, domain.MissingStatDisplay, strength.Display)

	assert.NotNil(t, axe.CreationTraits)
	assert.NotNil(t, axe.UniqueTraits)
}

func TestHandleSearch_InvalidParams(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	rr := serve(t, router, "/items?sort=weight&order=up&offset=x&limit=0")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	resp := decode[ValidationErrorResponse](t, rr)
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Contains(t, resp.Fields, "sort")
	assert.Contains(t, resp.Fields, "order")
	assert.Equal(t, ErrMsgNotAnInteger, resp.Fields["offset"])
	assert.Contains(t, resp.Fields, "limit")
}

func TestHandleSearch_EmptyCatalog(t *testing.T) {
	h := NewItemHandler(&fakeCatalog{catalog: item.Empty()}, ItemHandlerConfig{})

	rr := serve(t, newItemRouter(h), "/items?q=x")
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[SearchResponse](t, rr)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Items)
	assert.JSONEq(t, `{"total":0,"offset":0,"limit":100,"items":[]}`, rr.Body.String())
}

func TestHandleSuggest(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	t.Run("empty query returns nothing", func(t *testing.T) {
		rr := serve(t, router, "/items/suggest?q=")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"suggestions":[]}`, rr.Body.String())
	})

	t.Run("matches in catalog order", func(t *testing.T) {
		resp := decode[SuggestResponse](t, serve(t, router, "/items/suggest?q=Sw"))
		assert.Equal(t, []string{"Sword", "Long Sword"}, resp.Suggestions)
	})

	t.Run("limit", func(t *testing.T) {
		resp := decode[SuggestResponse](t, serve(t, router, "/items/suggest?q=Sw&limit=1"))
		assert.Equal(t, []string{"Sword"}, resp.Suggestions)
	})

	t.Run("limit too large", func(t *testing.T) {
		rr := serve(t, router, "/items/suggest?q=Sw&limit=1000")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleCategories(t *testing.T) {
	rr := serve(t, newItemRouter(newTestItemHandler()), "/items/categories")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"剣", "斧"}, decode[CategoriesResponse](t, rr).Categories)
}

func TestHandleCategories_RoundTripThroughFilter(t *testing.T) {
	h := NewItemHandler(&fakeCatalog{
		catalog: item.NewCatalog([]domain.Item{
			{Basic: domain.BasicInfo{Name: "Staff", Category: "杖 "}},
			{Basic: domain.BasicInfo{Name: "Rod", Category: "杖"}},
			{Basic: domain.BasicInfo{Name: "Shield", Category: " 盾"}},
		}),
		status: session.Status{Attempted: true, Loaded: true},
	}, ItemHandlerConfig{})
	router := newItemRouter(h)

	categories := decode[CategoriesResponse](t, serve(t, router, "/items/categories")).Categories
	require.Len(t, categories, 3)

	for _, category := range categories {
		rr := serve(t, router, "/items?category="+url.QueryEscape(category))
		require.Equal(t, http.StatusOK, rr.Code)

		resp := decode[SearchResponse](t, rr)
		require.Equal(t, 1, resp.Total, "category %q", category)
		assert.Equal(t, category, resp.Items[0].Category)
	}
}

func TestHandleGetItem(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	t.Run("found", func(t *testing.T) {
		rr := serve(t, router, "/items/0")
		require.Equal(t, http.StatusOK, rr.Code)

		view := decode[ItemView](t, rr)
		assert.Equal(t, "Sword", view.Name)
		assert.Equal(t, "★Sword<c:red></c>", view.RawName)
		assert.Equal(t, []string{"氷属性"}, view.CreationTraits)
		assert.Equal(t, "前方", view.AttackRange)
		assert.False(t, view.HighTier)
	})

	t.Run("out of range", func(t *testing.T) {
		rr := serve(t, router, "/items/3")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrMsgItemNotFoundError)
	})

	t.Run("not an integer", func(t *testing.T) {
		rr := serve(t, router, "/items/abc")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), ErrMsgInvalidIndex)
	})
}

func TestHandleGetBySerial(t *testing.T) {
	router := newItemRouter(newTestItemHandler())

	rr := serve(t, router, "/items/serial/11")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Sword", "Long Sword"}, itemNames(decode[ItemsResponse](t, rr).Items))

	missing := serve(t, router, "/items/serial/99")
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Contains(t, missing.Body.String(), ErrMsgItemNotFoundError)
	assert.Equal(t, http.StatusBadRequest, serve(t, router, "/items/serial/x").Code)
}

func TestHandleCatalogStatus(t *testing.T) {
	h := NewItemHandler(&fakeCatalog{
		catalog: item.Empty(),
		status:  session.Status{Attempted: true, Source: "items.json", Error: session.UserMsgParseFailed},
	}, ItemHandlerConfig{})

	rr := serve(t, newItemRouter(h), "/catalog/status")
	require.Equal(t, http.StatusOK, rr.Code)

	st := decode[session.Status](t, rr)
	assert.True(t, st.Attempted)
	assert.False(t, st.Loaded)
	assert.Equal(t, session.UserMsgParseFailed, st.Error)
}
