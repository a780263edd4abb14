package newsrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/festibalparty/festibal-push-backend/storage"
)

// RepoMemory keeps news in a process-local slice. Each instance owns its own
// data so tests can construct independent repos.
type RepoMemory struct {
	mu     sync.RWMutex
	nextID int64
	items  []NewsItem
}

var _ Repo = (*RepoMemory)(nil)

func Memory() *RepoMemory {
	return &RepoMemory{}
}

func (m *RepoMemory) CreateNews(_ context.Context, item NewsItem) (inserted NewsItem, err error) {
	if item.Title == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrNewsTitleRequired)
		return
	}

	if item.Message == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrNewsMessageRequired)
		return
	}

	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	item.ID = m.nextID
	m.items = append(m.items, item)
	inserted = item
	return
}

func (m *RepoMemory) ListNews(_ context.Context) (items []NewsItem, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items = make([]NewsItem, len(m.items))
	copy(items, m.items)

	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}

		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return
}
