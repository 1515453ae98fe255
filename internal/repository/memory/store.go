package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

// Store хранит коллекции в памяти процесса. Load и Save работают с копиями,
// поэтому вызывающая сторона не может изменить сохранённое состояние в обход Save.
type Store struct {
	mu          sync.RWMutex
	collections *domain.Collections
}

func NewStore() *Store {
	return &Store{collections: domain.NewCollections()}
}

// NewStoreWith создаёт хранилище с начальными данными.
func NewStoreWith(collections *domain.Collections) *Store {
	return &Store{collections: collections.Clone()}
}

func (s *Store) Load(ctx context.Context) (*domain.Collections, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collections.Clone(), nil
}

func (s *Store) Save(ctx context.Context, collections *domain.Collections) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.collections = collections.Clone()
	s.mu.Unlock()

	return nil
}
