// Package session owns the loaded catalog snapshot and the on-demand feeds.
package session

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/feed"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/logger"
	"github.com/osse101/BrandishItemSearch/internal/metrics"
	"github.com/osse101/BrandishItemSearch/internal/source"
)

// Sources are the locations of the three resources
type Sources struct {
	Catalog string
	News    string
	Diff    string
}

// Options configures a Session
type Options struct {
	Sources   Sources
	CacheSize int
	CacheTTL  time.Duration
}

// Status describes the current catalog snapshot
type Status struct {
	Attempted bool      `json:"attempted"`
	Loaded    bool      `json:"loaded"`
	ItemCount int       `json:"item_count"`
	LoadedAt  time.Time `json:"loaded_at,omitzero"`
	Source    string    `json:"source"`
	Error     string    `json:"error,omitempty"`
}

type snapshot struct {
	catalog  *item.Catalog
	loadedAt time.Time
	err      error
}

// Session holds one immutable catalog snapshot at a time. Readers never block:
// the snapshot is swapped atomically by Load. Concurrent loads of the same
// resource share a single fetch.
type Session struct {
	fetcher source.Fetcher
	parser  item.Parser
	sources Sources

	current atomic.Pointer[snapshot]
	group   singleflight.Group

	news *expirable.LRU[string, []domain.NewsItem]
	diff *expirable.LRU[string, []string]
}

// New creates a session. Nothing is loaded until Load is called.
func New(fetcher source.Fetcher, parser item.Parser, opts Options) *Session {
	size := opts.CacheSize
	if size <= 0 {
		size = DefaultFeedCacheSize
	}
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultFeedCacheTTL
	}

	return &Session{
		fetcher: fetcher,
		parser:  parser,
		sources: opts.Sources,
		news:    expirable.NewLRU[string, []domain.NewsItem](size, nil, ttl),
		diff:    expirable.NewLRU[string, []string](size, nil, ttl),
	}
}

// Load fetches, decodes and parses the catalog and replaces the snapshot.
// On failure the snapshot becomes an empty catalog carrying the error, so
// queries keep working against zero items.
func (s *Session) Load(ctx context.Context) error {
	_, err, _ := s.group.Do(keyCatalog+s.sources.Catalog, func() (interface{}, error) {
		return nil, s.load(ctx)
	})
	return err
}

func (s *Session) load(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCatalogLoadStarted, "source", s.sources.Catalog)
	start := time.Now()

	catalog, err := s.fetchCatalog(ctx)
	duration := time.Since(start)
	metrics.RecordCatalogLoad(err, duration, catalog.Len())

	if err != nil {
		log.Error(LogMsgCatalogLoadFailed, "source", s.sources.Catalog, "error", err, "duration", duration)
		s.current.Store(&snapshot{catalog: item.Empty(), loadedAt: time.Now(), err: err})
		return err
	}

	if catalog.Len() == 0 {
		log.Warn(LogMsgCatalogEmpty, "source", s.sources.Catalog)
	}
	log.Info(LogMsgCatalogLoaded, "source", s.sources.Catalog, "items", catalog.Len(), "duration", duration)
	s.current.Store(&snapshot{catalog: catalog, loadedAt: time.Now()})
	return nil
}

func (s *Session) fetchCatalog(ctx context.Context) (*item.Catalog, error) {
	raw, err := s.fetcher.Fetch(ctx, s.sources.Catalog)
	if err != nil {
		return nil, err
	}
	return s.parser.Load(raw)
}

// Catalog returns the current snapshot, never nil
func (s *Session) Catalog() *item.Catalog {
	if snap := s.current.Load(); snap != nil {
		return snap.catalog
	}
	return item.Empty()
}

// Status reports whether a load happened and how it went
func (s *Session) Status() Status {
	st := Status{Source: s.sources.Catalog}

	snap := s.current.Load()
	if snap == nil {
		return st
	}

	st.Attempted = true
	st.LoadedAt = snap.loadedAt
	st.ItemCount = snap.catalog.Len()
	if snap.err != nil {
		st.Error = UserMessage(snap.err)
		return st
	}
	st.Loaded = true
	return st
}

// News returns the news feed, newest first. An empty news file counts as unavailable.
func (s *Session) News(ctx context.Context) ([]domain.NewsItem, error) {
	location := s.sources.News
	if news, ok := s.news.Get(location); ok {
		metrics.RecordFeedCacheHit(metrics.FeedNews)
		logger.FromContext(ctx).Debug(LogMsgFeedCacheHit, "feed", metrics.FeedNews)
		return news, nil
	}

	v, err, _ := s.group.Do(keyNews+location, func() (interface{}, error) {
		raw, err := s.fetcher.Fetch(ctx, location)
		if err == nil {
			err = source.RequireContent(raw)
		}
		metrics.RecordFeedFetch(metrics.FeedNews, err)
		if err != nil {
			return nil, err
		}

		news := feed.ParseNews(ctx, string(raw))
		s.news.Add(location, news)
		return news, nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFeedLoadFailed, "feed", metrics.FeedNews, "error", err)
		return nil, err
	}
	return v.([]domain.NewsItem), nil
}

// Diff returns the diff feed entries, each prefixed with the bullet glyph
func (s *Session) Diff(ctx context.Context) ([]string, error) {
	location := s.sources.Diff
	if entries, ok := s.diff.Get(location); ok {
		metrics.RecordFeedCacheHit(metrics.FeedDiff)
		logger.FromContext(ctx).Debug(LogMsgFeedCacheHit, "feed", metrics.FeedDiff)
		return entries, nil
	}

	v, err, _ := s.group.Do(keyDiff+location, func() (interface{}, error) {
		raw, err := s.fetcher.Fetch(ctx, location)
		var entries []string
		if err == nil {
			entries, err = feed.DecodeDiff(raw)
		}
		metrics.RecordFeedFetch(metrics.FeedDiff, err)
		if err != nil {
			return nil, err
		}

		s.diff.Add(location, entries)
		return entries, nil
	})
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFeedLoadFailed, "feed", metrics.FeedDiff, "error", err)
		return nil, err
	}
	return v.([]string), nil
}

// InvalidateFeeds drops cached feeds so the next request refetches them
func (s *Session) InvalidateFeeds() {
	s.news.Purge()
	s.diff.Purge()
}

// UserMessage maps a load error to the message shown to users
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, domain.ErrFormat) {
		return UserMsgParseFailed
	}
	return UserMsgLoadFailed
}
