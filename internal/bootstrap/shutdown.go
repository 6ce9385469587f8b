package bootstrap

import (
	"context"
	"log/slog"
)

// Stopper is anything with a graceful, context-bounded stop
type Stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the HTTP server and drops cached feeds.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, server Stopper, feeds interface{ InvalidateFeeds() }) {
	slog.Info(LogMsgShuttingDownServer)

	if err := server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if feeds != nil {
		feeds.InvalidateFeeds()
	}

	slog.Info(LogMsgServerStopped)
}
