package feed

// DiffBullet prefixes every diff entry
const DiffBullet = "・"

// NewsDelimiter separates the date from the content on a news line
const NewsDelimiter = ":"

// NewsDateLayouts are the date formats tried, in order, when sorting news
var NewsDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006/1/2",
	"2006-1-2",
	"2006.01.02",
}

// Log messages
const (
	LogMsgInvalidNewsLine = "Skipping invalid news line"
	LogMsgNewsParsed      = "News feed parsed"
)

// Reasons attached to skipped news lines
const (
	ReasonMissingDelimiter = "missing delimiter"
	ReasonEmptyDate        = "empty date"
	ReasonEmptyContent     = "empty content"
)
