package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/logger"
	"github.com/osse101/BrandishItemSearch/internal/metrics"
	"github.com/osse101/BrandishItemSearch/internal/query"
	"github.com/osse101/BrandishItemSearch/internal/session"
)

// CatalogSource provides the current catalog snapshot and its load status
type CatalogSource interface {
	Catalog() *item.Catalog
	Status() session.Status
}

// ItemHandlerConfig tunes item responses
type ItemHandlerConfig struct {
	SuggestionLimit   int
	HighTierDropLevel int
}

// ItemHandler serves catalog queries
type ItemHandler struct {
	catalog CatalogSource
	cfg     ItemHandlerConfig
}

// NewItemHandler creates an ItemHandler
func NewItemHandler(catalog CatalogSource, cfg ItemHandlerConfig) *ItemHandler {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = query.DefaultSuggestionLimit
	}
	return &ItemHandler{catalog: catalog, cfg: cfg}
}

// SearchResponse is one page of search results
type SearchResponse struct {
	Total  int        `json:"total"`
	Offset int        `json:"offset"`
	Limit  int        `json:"limit"`
	Items  []ItemView `json:"items"`
}

// SuggestResponse lists matching display names
type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// CategoriesResponse lists the distinct categories
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// ItemsResponse lists items without pagination
type ItemsResponse struct {
	Items []ItemView `json:"items"`
}

// HandleSearch filters and sorts the catalog
// @Summary Search items
// @Description Filters by name substring and category, sorts by a numeric field and returns one page
// @Tags items
// @Produce json
// @Param q query string false "Name substring (case-sensitive)"
// @Param category query string false "Exact category"
// @Param sort query string false "Sort key" Enums(drop_level, price, min_damage, max_damage, level)
// @Param order query string false "Sort direction" Enums(asc, desc)
// @Param offset query int false "Offset" minimum(0)
// @Param limit query int false "Page size" minimum(1) maximum(500)
// @Success 200 {object} SearchResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items [get]
func (h *ItemHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	req, ok := parseSearchRequest(w, r)
	if !ok {
		return
	}

	metrics.RecordQuery(metrics.OperationSearch)
	results := query.Run(h.catalog.Catalog(), req.State())
	page := query.Page(results, req.Offset, req.Limit)

	logger.FromContext(r.Context()).Debug(LogMsgSearchCompleted,
		"query", req.Query,
		"category", req.Category,
		"total", len(results),
		"returned", len(page))

	respondJSON(w, http.StatusOK, SearchResponse{
		Total:  len(results),
		Offset: req.Offset,
		Limit:  req.Limit,
		Items:  newItemViews(page, h.cfg.HighTierDropLevel),
	})
}

// HandleSuggest returns display names for type-ahead
// @Summary Suggest item names
// @Description Returns up to limit display names containing q. An empty q returns no suggestions.
// @Tags items
// @Produce json
// @Param q query string false "Name substring"
// @Param limit query int false "Maximum suggestions" minimum(1) maximum(50)
// @Success 200 {object} SuggestResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/items/suggest [get]
func (h *ItemHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	req, ok := parseSuggestRequest(w, r, h.cfg.SuggestionLimit)
	if !ok {
		return
	}

	if req.Query == "" {
		respondJSON(w, http.StatusOK, SuggestResponse{Suggestions: []string{}})
		return
	}

	metrics.RecordQuery(metrics.OperationSuggest)
	respondJSON(w, http.StatusOK, SuggestResponse{
		Suggestions: query.SuggestNames(h.catalog.Catalog(), req.Query, req.Limit),
	})
}

// HandleCategories lists the distinct categories
// @Summary List categories
// @Tags items
// @Produce json
// @Success 200 {object} CategoriesResponse
// @Router /api/v1/items/categories [get]
func (h *ItemHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	metrics.RecordQuery(metrics.OperationCategories)
	respondJSON(w, http.StatusOK, CategoriesResponse{
		Categories: query.DistinctCategories(h.catalog.Catalog()),
	})
}

// HandleGetItem returns one item by snapshot index
// @Summary Get item
// @Tags items
// @Produce json
// @Param index path int true "Snapshot index"
// @Success 200 {object} ItemView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/{index} [get]
func (h *ItemHandler) HandleGetItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, URLParamIndex))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidIndex)
		return
	}

	metrics.RecordQuery(metrics.OperationLookup)
	entry, ok := h.catalog.Catalog().At(index)
	if !ok {
		respondServiceError(w, fmt.Errorf("%w: index %d", domain.ErrItemNotFound, index))
		return
	}

	respondJSON(w, http.StatusOK, newItemView(entry, h.cfg.HighTierDropLevel))
}

// HandleGetBySerial returns every item with the given serial
// @Summary Get items by serial
// @Description Serials are not unique, so this can return several items
// @Tags items
// @Produce json
// @Param serial path int true "Serial"
// @Success 200 {object} ItemsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/items/serial/{serial} [get]
func (h *ItemHandler) HandleGetBySerial(w http.ResponseWriter, r *http.Request) {
	serial, err := strconv.Atoi(chi.URLParam(r, URLParamSerial))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSerial)
		return
	}

	metrics.RecordQuery(metrics.OperationLookup)
	entries := h.catalog.Catalog().BySerial(serial)
	if len(entries) == 0 {
		respondServiceError(w, fmt.Errorf("%w: serial %d", domain.ErrItemNotFound, serial))
		return
	}

	respondJSON(w, http.StatusOK, ItemsResponse{Items: newItemViews(entries, h.cfg.HighTierDropLevel)})
}

// HandleCatalogStatus reports the catalog load status
// @Summary Catalog status
// @Description Distinguishes a loaded empty catalog from a failed load
// @Tags catalog
// @Produce json
// @Success 200 {object} session.Status
// @Router /api/v1/catalog/status [get]
func (h *ItemHandler) HandleCatalogStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Status())
}
