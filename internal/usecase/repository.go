package usecase

import (
	"context"

	"github.com/DRSN-tech/dropflow/internal/domain"
)

// Persistence загружает и сохраняет три коллекции целиком.
// Load возвращает пустые коллекции, если ничего не сохранено; Save вызывается после каждой успешной мутации.
type Persistence interface {
	Load(ctx context.Context) (*domain.Collections, error)
	Save(ctx context.Context, collections *domain.Collections) error
}

// CollectionsReader отдаёт неизменяемую копию текущих коллекций для построения представлений.
type CollectionsReader interface {
	Collections() *domain.Collections
}
