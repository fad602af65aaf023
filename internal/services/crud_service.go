package services

import (
	"context"
	"errors"
	"fmt"

	"practico/internal/apperrors"
	"practico/internal/repositories"

	"github.com/rs/zerolog"
)

// UniqueKey names a field whose value must be distinct across a collection.
type UniqueKey[Req any] struct {
	Field string
	Value func(Req) string
}

// Definition describes how one entity type maps between request, stored
// entity and response.
type Definition[T, Req, Resp any] struct {
	// Resource is the singular name used in errors and events.
	Resource string
	// Unique is nil when the entity has no uniqueness constraint.
	Unique     *UniqueKey[Req]
	NewEntity  func(Req) T
	Apply      func(*T, Req)
	ToResponse func(*T) Resp
}

// CRUDService implements create, list, get, update and delete for one entity
// type on top of a Repository.
type CRUDService[T any, P repositories.Document[T], Req, Resp any] struct {
	repo      repositories.Repository[T]
	def       Definition[T, Req, Resp]
	publisher EventPublisher
	log       zerolog.Logger
}

// NewCRUDService creates a CRUDService. publisher may be nil.
func NewCRUDService[T any, P repositories.Document[T], Req, Resp any](
	repo repositories.Repository[T],
	def Definition[T, Req, Resp],
	publisher EventPublisher,
	log zerolog.Logger,
) *CRUDService[T, P, Req, Resp] {
	return &CRUDService[T, P, Req, Resp]{
		repo:      repo,
		def:       def,
		publisher: publisher,
		log:       log.With().Str("resource", def.Resource).Logger(),
	}
}

// Create stores a new entity built from req.
func (s *CRUDService[T, P, Req, Resp]) Create(ctx context.Context, req Req) (Resp, error) {
	var zero Resp
	if s.def.Unique != nil {
		if err := s.ensureUnused(ctx, s.def.Unique.Value(req)); err != nil {
			return zero, err
		}
	}

	entity := s.def.NewEntity(req)
	if err := s.repo.Insert(ctx, &entity); err != nil {
		return zero, fmt.Errorf("failed to create %s: %w", s.def.Resource, err)
	}
	s.publish(ctx, ActionCreated, &entity)
	return s.def.ToResponse(&entity), nil
}

// List returns every entity in store order.
func (s *CRUDService[T, P, Req, Resp]) List(ctx context.Context) ([]Resp, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.def.Resource, err)
	}
	out := make([]Resp, 0, len(items))
	for i := range items {
		out = append(out, s.def.ToResponse(&items[i]))
	}
	return out, nil
}

// Get returns the entity with id.
func (s *CRUDService[T, P, Req, Resp]) Get(ctx context.Context, id string) (Resp, error) {
	var zero Resp
	entity, err := s.find(ctx, id)
	if err != nil {
		return zero, err
	}
	return s.def.ToResponse(entity), nil
}

// Update overwrites every mutable field of the entity with id.
func (s *CRUDService[T, P, Req, Resp]) Update(ctx context.Context, id string, req Req) (Resp, error) {
	var zero Resp
	entity, err := s.find(ctx, id)
	if err != nil {
		return zero, err
	}

	if s.def.Unique != nil {
		current, _ := P(entity).FieldValue(s.def.Unique.Field)
		if next := s.def.Unique.Value(req); next != current {
			if err := s.ensureUnused(ctx, next); err != nil {
				return zero, err
			}
		}
	}

	s.def.Apply(entity, req)
	if err := s.repo.Save(ctx, entity); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return zero, apperrors.NewNotFound(s.def.Resource, id)
		}
		return zero, fmt.Errorf("failed to update %s %s: %w", s.def.Resource, id, err)
	}
	s.publish(ctx, ActionUpdated, entity)
	return s.def.ToResponse(entity), nil
}

// Delete removes the entity with id.
func (s *CRUDService[T, P, Req, Resp]) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check %s %s: %w", s.def.Resource, id, err)
	}
	if !exists {
		return apperrors.NewNotFound(s.def.Resource, id)
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.NewNotFound(s.def.Resource, id)
		}
		return fmt.Errorf("failed to delete %s %s: %w", s.def.Resource, id, err)
	}
	s.publishEvent(ctx, ChangeEvent{Resource: s.def.Resource, Action: ActionDeleted, ID: id})
	return nil
}

func (s *CRUDService[T, P, Req, Resp]) find(ctx context.Context, id string) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewNotFound(s.def.Resource, id)
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", s.def.Resource, id, err)
	}
	return entity, nil
}

// ensureUnused fails with a ConflictError when value is already taken.
// The check and the following write are not atomic.
func (s *CRUDService[T, P, Req, Resp]) ensureUnused(ctx context.Context, value string) error {
	field := s.def.Unique.Field
	taken, err := s.repo.ExistsByField(ctx, field, value)
	if err != nil {
		return fmt.Errorf("failed to check %s %s: %w", s.def.Resource, field, err)
	}
	if taken {
		return apperrors.NewConflict(s.def.Resource, field, value)
	}
	return nil
}

func (s *CRUDService[T, P, Req, Resp]) publish(ctx context.Context, action string, entity *T) {
	s.publishEvent(ctx, ChangeEvent{
		Resource: s.def.Resource,
		Action:   action,
		ID:       P(entity).GetID(),
		Data:     s.def.ToResponse(entity),
	})
}
