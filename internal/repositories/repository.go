package repositories

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no document matches the given id.
var ErrNotFound = errors.New("document not found")

// Document is the contract every stored entity satisfies through its
// pointer type.
type Document[T any] interface {
	*T
	TableName() string
	GetID() string
	SetID(id string)
	FieldValue(field string) (string, bool)
}

// Repository defines document-store access for one entity collection.
type Repository[T any] interface {
	// Insert assigns a new id to entity and stores it.
	Insert(ctx context.Context, entity *T) error
	// Save replaces the stored document with the same id.
	Save(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	// FindAll returns every document in store order.
	FindAll(ctx context.Context) ([]T, error)
	FindByField(ctx context.Context, field, value string) ([]T, error)
	ExistsByField(ctx context.Context, field, value string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	DeleteByID(ctx context.Context, id string) error
}
