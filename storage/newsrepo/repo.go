package newsrepo

import "context"

// Repo is the news repository service.
type Repo interface {
	CreateNews(ctx context.Context, item NewsItem) (inserted NewsItem, err error)

	// ListNews returns every item, newest first.
	ListNews(ctx context.Context) (items []NewsItem, err error)
}
