package feed

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/osse101/BrandishItemSearch/internal/domain"
	"github.com/osse101/BrandishItemSearch/internal/logger"
)

// ParseNews parses `<date>:<content>` lines into news items, newest first.
//
// A line is split on its first delimiter, so content may itself contain colons.
// Lines without a delimiter, or with an empty date or content, are logged and
// skipped. Dates that match none of NewsDateLayouts sort after every dated item,
// keeping their relative order.
func ParseNews(ctx context.Context, text string) []domain.NewsItem {
	log := logger.FromContext(ctx)

	news := []domain.NewsItem{}
	for i, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}

		date, content, found := strings.Cut(line, NewsDelimiter)
		date = strings.TrimSpace(date)
		content = strings.TrimSpace(content)

		var reason string
		switch {
		case !found:
			reason = ReasonMissingDelimiter
		case date == "":
			reason = ReasonEmptyDate
		case content == "":
			reason = ReasonEmptyContent
		}
		if reason != "" {
			log.Warn(LogMsgInvalidNewsLine, "line", i+1, "reason", reason, "text", line)
			continue
		}

		news = append(news, domain.NewsItem{Date: date, Content: content})
	}

	SortNews(news)
	log.Debug(LogMsgNewsParsed, "count", len(news))
	return news
}

// SortNews orders news latest first in place
func SortNews(news []domain.NewsItem) {
	slices.SortStableFunc(news, func(a, b domain.NewsItem) int {
		ta, okA := ParseNewsDate(a.Date)
		tb, okB := ParseNewsDate(b.Date)
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return 0
		}
	})
}

// ParseNewsDate parses a news date with the first matching layout
func ParseNewsDate(s string) (time.Time, bool) {
	for _, layout := range NewsDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Latest returns the newest item of a sorted news list
func Latest(news []domain.NewsItem) (domain.NewsItem, bool) {
	if len(news) == 0 {
		return domain.NewsItem{}, false
	}
	return news[0], true
}
