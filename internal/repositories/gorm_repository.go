package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMRepository is a GORM implementation of Repository.
type GORMRepository[T any, P Document[T]] struct {
	db *gorm.DB
}

// NewGORMRepository creates a new instance of GORMRepository.
func NewGORMRepository[T any, P Document[T]](db *gorm.DB) *GORMRepository[T, P] {
	return &GORMRepository[T, P]{
		db: db,
	}
}

// Migrate creates or updates the table backing T, including its indexes.
func (r *GORMRepository[T, P]) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(new(T)); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", r.table(), err)
	}
	return nil
}

func (r *GORMRepository[T, P]) table() string {
	return P(new(T)).TableName()
}

func fieldEquals(field, value string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: field}, Value: value}
}

// Insert creates a new row under a fresh uuid.
func (r *GORMRepository[T, P]) Insert(ctx context.Context, entity *T) error {
	P(entity).SetID(uuid.New().String())
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.table(), err)
	}
	return nil
}

// Save updates every column of an existing row.
func (r *GORMRepository[T, P]) Save(ctx context.Context, entity *T) error {
	// Save would insert a missing row, so update with all columns selected instead.
	res := r.db.WithContext(ctx).Model(entity).Select("*").Updates(entity)
	if res.Error != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.table(), P(entity).GetID(), res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID retrieves a single row by its id.
func (r *GORMRepository[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s by id %s: %w", r.table(), id, err)
	}
	return &item, nil
}

// FindAll retrieves all rows.
func (r *GORMRepository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	list := make([]T, 0)
	if err := r.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", r.table(), err)
	}
	return list, nil
}

// FindByField retrieves the rows whose column equals value.
func (r *GORMRepository[T, P]) FindByField(ctx context.Context, field, value string) ([]T, error) {
	list := make([]T, 0)
	if err := r.db.WithContext(ctx).Where(fieldEquals(field, value)).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.table(), field, err)
	}
	return list, nil
}

// ExistsByField reports whether any row has column equal to value.
func (r *GORMRepository[T, P]) ExistsByField(ctx context.Context, field, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where(fieldEquals(field, value)).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count %s by %s: %w", r.table(), field, err)
	}
	return count > 0, nil
}

// ExistsByID reports whether a row with id exists.
func (r *GORMRepository[T, P]) ExistsByID(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count %s by id: %w", r.table(), err)
	}
	return count > 0, nil
}

// DeleteByID deletes a row by its id.
func (r *GORMRepository[T, P]) DeleteByID(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.table(), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
