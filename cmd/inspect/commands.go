package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/osse101/BrandishItemSearch/internal/config"
	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/feed"
	"github.com/osse101/BrandishItemSearch/internal/item"
	"github.com/osse101/BrandishItemSearch/internal/naming"
	"github.com/osse101/BrandishItemSearch/internal/query"
	"github.com/osse101/BrandishItemSearch/internal/sjis"
	"github.com/osse101/BrandishItemSearch/internal/source"
	"github.com/osse101/BrandishItemSearch/internal/validation"
)

var errUsage = errors.New("invalid arguments")

// =============================================================================
// search
// =============================================================================

type SearchCommand struct{}

func (c *SearchCommand) Name() string { return "search" }

func (c *SearchCommand) Description() string {
	return "Filter and sort the catalog (-q, -category, -sort, -order, -limit)"
}

func (c *SearchCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	text := fs.String("q", "", "name substring")
	category := fs.String("category", "", "exact category")
	sortKey := fs.String("sort", query.SortKeyDropLevel, "sort key: "+strings.Join(query.SortKeys, ", "))
	order := fs.String("order", query.Ascending, "asc or desc")
	limit := fs.Int("limit", 0, "maximum rows (0 = all)")
	threshold := fs.Int("high-tier", config.DefaultHighTierDropLevel, "drop level marked as high tier")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if !query.IsValidSortKey(*sortKey) {
		return fmt.Errorf("unknown sort key %q", *sortKey)
	}

	catalog, err := sf.loadCatalog()
	if err != nil {
		return err
	}

	results := query.Run(catalog, query.State{
		Text:     *text,
		Category: *category,
		Sort:     query.Sort{Key: *sortKey, Direction: strings.ToLower(*order)},
	})
	page := query.Page(results, 0, *limit)

	PrintHeader(fmt.Sprintf("%d of %d items", len(page), len(results)))
	printTable(page, *threshold)
	return nil
}

func printTable(entries []item.Entry, threshold int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tCATEGORY\tDROP\tPRICE\tDAMAGE\tLV\tSTR\t")
	for _, e := range entries {
		name := e.Name
		if query.IsHighTier(e, threshold) {
			name = "* " + name
		}
		b := e.Item.Basic
		stats := e.Item.RequiredStats
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s-%s\t%s\t%s\t\n",
			e.Index, name, b.Category, b.DropLevel, b.Price, b.MinDamage, b.MaxDamage,
			stats.Display(domain.StatLevel), stats.Display(domain.StatStrength))
	}
	_ = w.Flush()
}

// =============================================================================
// suggest
// =============================================================================

type SuggestCommand struct{}

func (c *SuggestCommand) Name() string { return "suggest" }

func (c *SuggestCommand) Description() string { return "Suggest item names for a partial query" }

func (c *SuggestCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	limit := fs.Int("limit", config.DefaultSuggestionLimit, "maximum suggestions")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		fmt.Println("Usage: inspect suggest [flags] <text>")
		return errUsage
	}

	catalog, err := sf.loadCatalog()
	if err != nil {
		return err
	}
	for _, name := range query.SuggestNames(catalog, fs.Arg(0), *limit) {
		fmt.Println(name)
	}
	return nil
}

// =============================================================================
// categories
// =============================================================================

type CategoriesCommand struct{}

func (c *CategoriesCommand) Name() string { return "categories" }

func (c *CategoriesCommand) Description() string { return "List the distinct item categories" }

func (c *CategoriesCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	catalog, err := sf.loadCatalog()
	if err != nil {
		return err
	}
	for _, category := range query.DistinctCategories(catalog) {
		fmt.Println(category)
	}
	return nil
}

// =============================================================================
// show
// =============================================================================

type ShowCommand struct{}

func (c *ShowCommand) Name() string { return "show" }

func (c *ShowCommand) Description() string { return "Show one item by catalog index" }

func (c *ShowCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 1 {
		fmt.Println("Usage: inspect show [flags] <index>")
		return errUsage
	}
	index, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("index must be an integer: %w", err)
	}

	catalog, err := sf.loadCatalog()
	if err != nil {
		return err
	}
	entry, ok := catalog.At(index)
	if !ok {
		return fmt.Errorf("%w: index %d", domain.ErrItemNotFound, index)
	}

	b := entry.Item.Basic
	PrintHeader(entry.Name)
	fmt.Printf("Serial:       %s\n", b.Serial)
	fmt.Printf("Category:     %s\n", b.Category)
	fmt.Printf("Damage:       %s - %s\n", b.MinDamage, b.MaxDamage)
	fmt.Printf("Price:        %s\n", b.Price)
	fmt.Printf("Drop level:   %s\n", b.DropLevel)
	fmt.Printf("Attack range: %s\n", b.AttackRange)
	fmt.Printf("Attack speed: %s\n", b.AttackSpeed)
	for _, stat := range domain.StatNames {
		fmt.Printf("  %-12s %s\n", stat, entry.Item.RequiredStats.Display(stat))
	}
	for _, line := range naming.NormalizeLines(entry.Item.CreationTraits) {
		fmt.Printf("  + %s\n", line)
	}
	for _, line := range naming.NormalizeLines(entry.Item.UniqueTraits) {
		fmt.Printf("  ! %s\n", line)
	}
	return nil
}

// =============================================================================
// diff
// =============================================================================

type DiffCommand struct{}

func (c *DiffCommand) Name() string { return "diff" }

func (c *DiffCommand) Description() string { return "Print the items changed since the previous version" }

func (c *DiffCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	raw, err := sf.fetch(sf.diff)
	if err != nil {
		return err
	}
	entries, err := feed.DecodeDiff(raw)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		PrintInfo("No changes")
		return nil
	}
	fmt.Println(feed.FormatDiffBlock(entries))
	return nil
}

// =============================================================================
// news
// =============================================================================

type NewsCommand struct{}

func (c *NewsCommand) Name() string { return "news" }

func (c *NewsCommand) Description() string { return "Print the news feed, newest first" }

func (c *NewsCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	latest := fs.Bool("latest", false, "print only the newest item")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	raw, err := sf.fetch(sf.news)
	if err != nil {
		return err
	}
	if err := source.RequireContent(raw); err != nil {
		return err
	}

	news := feed.ParseNews(context.Background(), string(raw))
	if *latest {
		newest, ok := feed.Latest(news)
		if !ok {
			PrintWarning("No news")
			return nil
		}
		news = []domain.NewsItem{newest}
	}
	for _, n := range news {
		fmt.Printf("%s  %s\n", n.Date, n.Content)
	}
	return nil
}

// =============================================================================
// validate
// =============================================================================

type ValidateCommand struct{}

func (c *ValidateCommand) Name() string { return "validate" }

func (c *ValidateCommand) Description() string {
	return "Check that the catalog decodes and matches the snapshot schema"
}

func (c *ValidateCommand) Run(args []string) error {
	fs, sf := newFlagSet(c.Name(), os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errUsage
	}

	PrintHeader("Validate " + sf.catalog)

	raw, err := sf.fetch(sf.catalog)
	if err != nil {
		return err
	}
	PrintSuccess("Fetched %d bytes", len(raw))

	text, err := sjis.Decode(raw)
	if err != nil {
		return err
	}
	PrintSuccess("Decoded as Shift-JIS")

	if err := validation.NewEmbeddedValidator().ValidateBytes([]byte(text), validation.CatalogSchema); err != nil {
		return err
	}
	PrintSuccess("Matches %s", validation.CatalogSchema)

	catalog, err := item.NewParser().Parse(text)
	if err != nil {
		return err
	}
	PrintSuccess("Parsed %d items in %d categories", catalog.Len(), len(query.DistinctCategories(catalog)))
	return nil
}
