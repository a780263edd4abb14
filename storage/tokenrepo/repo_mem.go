package tokenrepo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sony/sonyflake"

	"github.com/festibalparty/festibal-push-backend/storage"
)

// RepoMemory keeps tokens in a process-local map. Every instance owns its own
// set, nothing is shared between instances and nothing survives a restart.
type RepoMemory struct {
	mu     sync.RWMutex
	tokens map[string]PushToken
	idGen  *sonyflake.Sonyflake
}

var _ Repo = (*RepoMemory)(nil)

func Memory() *RepoMemory {
	return &RepoMemory{
		tokens: make(map[string]PushToken),
		idGen: sonyflake.NewSonyflake(sonyflake.Settings{
			StartTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		}),
	}
}

func (m *RepoMemory) UpsertToken(_ context.Context, token PushToken) (upserted PushToken, err error) {
	if token.Token == "" {
		err = fmt.Errorf("%w: %s", storage.ErrValidation, storage.ErrTokenRequired)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.tokens[token.Token]
	if ok {
		upserted = token.Merge(existing)
		m.tokens[token.Token] = upserted
		return
	}

	id, err := m.idGen.NextID()
	if err != nil {
		err = fmt.Errorf("generate token id error: %w", err)
		return
	}

	token.ID = int64(id)
	m.tokens[token.Token] = token
	upserted = token
	return
}

func (m *RepoMemory) GetTokens(_ context.Context) (tokens []PushToken, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tokens = make([]PushToken, 0, len(m.tokens))
	for _, token := range m.tokens {
		tokens = append(tokens, token)
	}

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].CreatedAt.Before(tokens[j].CreatedAt)
	})

	return
}
