package httptyped

import (
	"time"

	"github.com/festibalparty/festibal-push-backend/storage/newsrepo"
)

// NewsEntity is the transport shape of one news item. It is decoupled from the
// storage entity so wire field names stay stable.
type NewsEntity struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewsEntityFromRepo(item newsrepo.NewsItem) NewsEntity {
	return NewsEntity{
		ID:        item.ID,
		Title:     item.Title,
		Message:   item.Message,
		CreatedAt: item.CreatedAt,
	}
}

func NewsEntitiesFromRepo(items []newsrepo.NewsItem) []NewsEntity {
	out := make([]NewsEntity, 0, len(items))
	for _, item := range items {
		out = append(out, NewsEntityFromRepo(item))
	}

	return out
}
