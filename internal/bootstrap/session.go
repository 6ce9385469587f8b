package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BrandishItemSearch/internal/config"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/session"
	"github.com/osse101/BrandishItemSearch/internal/source"
)

// NewSession wires the fetcher, parser and session described by cfg
func NewSession(cfg *config.Config) *session.Session {
	for _, warning := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "detail", warning)
	}

	return session.New(source.NewFetcher(cfg.FetchTimeout), item.NewParser(), session.Options{
		Sources: session.Sources{
			Catalog: cfg.CatalogSource,
			News:    cfg.NewsSource,
			Diff:    cfg.DiffSource,
		},
		CacheSize: cfg.FeedCacheSize,
		CacheTTL:  cfg.FeedCacheTTL,
	})
}

// LoadCatalog performs the startup catalog load. A failure is logged and the
// service keeps running with an empty catalog; readiness reports the error.
func LoadCatalog(ctx context.Context, s *session.Session) {
	ctx, cancel := context.WithTimeout(ctx, InitialLoadTimeout)
	defer cancel()

	if err := s.Load(ctx); err != nil {
		slog.Error(LogMsgInitialLoadFailed, "error", err, "message", session.UserMessage(err))
		return
	}
	slog.Info(LogMsgInitialLoadDone, "items", s.Catalog().Len())
}
