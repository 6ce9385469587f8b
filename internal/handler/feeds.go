package handler

import (
	"context"
	"net/http"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/feed"
	"github.com/osse101/BrandishItemSearch/internal/logger"
	"github.com/osse101/BrandishItemSearch/internal/source"
)

// FeedSource provides the news and diff feeds
type FeedSource interface {
	News(ctx context.Context) ([]domain.NewsItem, error)
	Diff(ctx context.Context) ([]string, error)
}

// FeedHandler serves the news and diff feeds
type FeedHandler struct {
	feeds FeedSource
}

// NewFeedHandler creates a FeedHandler
func NewFeedHandler(feeds FeedSource) *FeedHandler {
	return &FeedHandler{feeds: feeds}
}

// DiffResponse is the diff feed as entries and as one display block
type DiffResponse struct {
	Entries []string `json:"entries"`
	Text    string   `json:"text"`
}

// HandleGetNews returns the news feed, newest first
// @Summary News feed
// @Description Returns news newest first. A missing or empty news file returns 404 with an empty list.
// @Tags feeds
// @Produce json
// @Success 200 {array} domain.NewsItem
// @Failure 404 {array} domain.NewsItem
// @Router /api/v1/news [get]
func (h *FeedHandler) HandleGetNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.feeds.News(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgFeedRequestFailed, "feed", "news", "error", err)
		if source.IsUnavailable(err) {
			respondJSON(w, http.StatusNotFound, []domain.NewsItem{})
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, news)
}

// HandleGetLatestNews returns the newest news item
// @Summary Latest news
// @Tags feeds
// @Produce json
// @Success 200 {object} domain.NewsItem
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/news/latest [get]
func (h *FeedHandler) HandleGetLatestNews(w http.ResponseWriter, r *http.Request) {
	news, err := h.feeds.News(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgFeedRequestFailed, "feed", "news", "error", err)
		if source.IsUnavailable(err) {
			respondError(w, http.StatusNotFound, ErrMsgNewsUnavailable)
			return
		}
		respondServiceError(w, err)
		return
	}

	latest, ok := feed.Latest(news)
	if !ok {
		respondError(w, http.StatusNotFound, ErrMsgNoNews)
		return
	}
	respondJSON(w, http.StatusOK, latest)
}

// HandleGetDiff returns the items changed since the previous catalog version
// @Summary Diff feed
// @Tags feeds
// @Produce json
// @Success 200 {object} DiffResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/diff [get]
func (h *FeedHandler) HandleGetDiff(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feeds.Diff(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgFeedRequestFailed, "feed", "diff", "error", err)
		if source.IsUnavailable(err) {
			respondError(w, http.StatusNotFound, ErrMsgDiffUnavailable)
			return
		}
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, DiffResponse{
		Entries: entries,
		Text:    feed.FormatDiffBlock(entries),
	})
}
