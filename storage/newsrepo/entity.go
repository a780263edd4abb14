package newsrepo

import (
	"strings"
	"time"
)

// NewsItem is one announcement persisted by the backend. Items are append
// only: never updated, never deleted.
type NewsItem struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title" validate:"required"`
	Message   string    `json:"message" db:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at" validate:"required"`
}

func NewNewsItem(title, message string) NewsItem {
	return NewsItem{
		Title:     strings.TrimSpace(title),
		Message:   strings.TrimSpace(message),
		CreatedAt: time.Now().UTC(),
	}
}
