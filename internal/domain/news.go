package domain

// NewsItem is one entry of the news feed
type NewsItem struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}
