package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory implementation of Repository.
type MemoryRepository[T any, P Document[T]] struct {
	items map[string]T
	mu    sync.RWMutex
}

// NewMemoryRepository creates a new instance of MemoryRepository.
func NewMemoryRepository[T any, P Document[T]]() *MemoryRepository[T, P] {
	return &MemoryRepository[T, P]{
		items: make(map[string]T),
	}
}

// Insert adds a new document under a fresh uuid.
func (r *MemoryRepository[T, P]) Insert(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New().String()
	P(entity).SetID(id)
	r.items[id] = *entity
	return nil
}

// Save replaces an existing document.
func (r *MemoryRepository[T, P]) Save(_ context.Context, entity *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := P(entity).GetID()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	r.items[id] = *entity
	return nil
}

// FindByID returns a document by its id.
func (r *MemoryRepository[T, P]) FindByID(_ context.Context, id string) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

// FindAll returns all documents. Map iteration order applies.
func (r *MemoryRepository[T, P]) FindAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]T, 0, len(r.items))
	for _, item := range r.items {
		list = append(list, item)
	}
	return list, nil
}

// FindByField returns the documents whose field equals value.
func (r *MemoryRepository[T, P]) FindByField(_ context.Context, field, value string) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]T, 0)
	for _, item := range r.items {
		if v, ok := P(&item).FieldValue(field); ok && v == value {
			list = append(list, item)
		}
	}
	return list, nil
}

// ExistsByField reports whether any document has field equal to value.
func (r *MemoryRepository[T, P]) ExistsByField(ctx context.Context, field, value string) (bool, error) {
	list, err := r.FindByField(ctx, field, value)
	if err != nil {
		return false, err
	}
	return len(list) > 0, nil
}

// ExistsByID reports whether a document with id is stored.
func (r *MemoryRepository[T, P]) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.items[id]
	return ok, nil
}

// DeleteByID removes a document by its id.
func (r *MemoryRepository[T, P]) DeleteByID(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}
