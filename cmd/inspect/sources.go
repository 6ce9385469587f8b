package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/osse101/BrandishItemSearch/internal/config"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/source"
)

// sourceFlags are the resource flags shared by every command
type sourceFlags struct {
	catalog string
	news    string
	diff    string
	timeout time.Duration
}

// newFlagSet returns a flag set pre-populated with the resource flags.
// Defaults come from the same environment variables the server reads.
func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *sourceFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)

	sf := &sourceFlags{}
	fs.StringVar(&sf.catalog, "catalog", envOr(config.EnvCatalogSource, config.DefaultCatalogSource), "catalog snapshot path or URL")
	fs.StringVar(&sf.news, "news", envOr(config.EnvNewsSource, config.DefaultNewsSource), "news feed path or URL")
	fs.StringVar(&sf.diff, "diff", envOr(config.EnvDiffSource, config.DefaultDiffSource), "diff feed path or URL")
	fs.DurationVar(&sf.timeout, "timeout", config.DefaultFetchTimeout, "fetch timeout")
	return fs, sf
}

func (sf *sourceFlags) fetch(location string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), sf.timeout)
	defer cancel()
	return source.NewFetcher(sf.timeout).Fetch(ctx, location)
}

// loadCatalog fetches and parses the catalog snapshot
func (sf *sourceFlags) loadCatalog() (*item.Catalog, error) {
	raw, err := sf.fetch(sf.catalog)
	if err != nil {
		return nil, err
	}
	catalog, err := item.NewParser().Load(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sf.catalog, err)
	}
	return catalog, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
