package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

// SurrealRepository is a SurrealDB implementation of Repository. Records are
// addressed as table:⟨uuid⟩ and every statement is parameterized.
type SurrealRepository[T any, P Document[T]] struct {
	db    *surrealdb.DB
	table string
}

// NewSurrealRepository creates a new instance of SurrealRepository.
func NewSurrealRepository[T any, P Document[T]](db *surrealdb.DB) *SurrealRepository[T, P] {
	return &SurrealRepository[T, P]{
		db:    db,
		table: P(new(T)).TableName(),
	}
}

// EnsureIndexes defines a non-unique index per lookup field. Field names come
// from the models package, never from requests.
func (r *SurrealRepository[T, P]) EnsureIndexes(ctx context.Context, fields ...string) error {
	for _, field := range fields {
		stmt := fmt.Sprintf("DEFINE INDEX IF NOT EXISTS %s_%s_idx ON TABLE %s FIELDS %s", r.table, field, r.table, field)
		if _, err := surrealdb.Query[any](ctx, r.db, stmt, nil); err != nil {
			return fmt.Errorf("failed to define index on %s.%s: %w", r.table, field, err)
		}
	}
	return nil
}

func (r *SurrealRepository[T, P]) query(ctx context.Context, sql string, vars map[string]any) ([]T, error) {
	vars["tb"] = r.table
	res, err := surrealdb.Query[[]map[string]any](ctx, r.db, sql, vars)
	if err != nil {
		return nil, err
	}
	list := make([]T, 0)
	if res == nil || len(*res) == 0 {
		return list, nil
	}
	for _, row := range (*res)[0].Result {
		item, err := decodeRow[T](row)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, nil
}

// Insert creates a record under a fresh uuid.
func (r *SurrealRepository[T, P]) Insert(ctx context.Context, entity *T) error {
	id := uuid.New().String()
	content, err := toContent(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.table, err)
	}
	_, err = r.query(ctx, "CREATE type::thing($tb, $id) CONTENT $content", map[string]any{"id": id, "content": content})
	if err != nil {
		return fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	P(entity).SetID(id)
	return nil
}

// Save replaces the content of an existing record.
func (r *SurrealRepository[T, P]) Save(ctx context.Context, entity *T) error {
	id := P(entity).GetID()
	content, err := toContent(entity)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.table, err)
	}
	list, err := r.query(ctx, "UPDATE type::thing($tb, $id) CONTENT $content", map[string]any{"id": id, "content": content})
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", r.table, id, err)
	}
	if len(list) == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByID retrieves a record by its id.
func (r *SurrealRepository[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	list, err := r.query(ctx, "SELECT * FROM type::thing($tb, $id)", map[string]any{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by id %s: %w", r.table, id, err)
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return &list[0], nil
}

// FindAll retrieves every record of the table.
func (r *SurrealRepository[T, P]) FindAll(ctx context.Context) ([]T, error) {
	list, err := r.query(ctx, "SELECT * FROM type::table($tb)", map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("failed to get all %s: %w", r.table, err)
	}
	return list, nil
}

// FindByField retrieves the records whose field equals value.
func (r *SurrealRepository[T, P]) FindByField(ctx context.Context, field, value string) ([]T, error) {
	list, err := r.query(ctx, "SELECT * FROM type::table($tb) WHERE type::field($field) = $value",
		map[string]any{"field": field, "value": value})
	if err != nil {
		return nil, fmt.Errorf("failed to find %s by %s: %w", r.table, field, err)
	}
	return list, nil
}

// ExistsByField reports whether any record has field equal to value.
func (r *SurrealRepository[T, P]) ExistsByField(ctx context.Context, field, value string) (bool, error) {
	list, err := r.query(ctx, "SELECT * FROM type::table($tb) WHERE type::field($field) = $value LIMIT 1",
		map[string]any{"field": field, "value": value})
	if err != nil {
		return false, fmt.Errorf("failed to check %s by %s: %w", r.table, field, err)
	}
	return len(list) > 0, nil
}

// ExistsByID reports whether a record with id exists.
func (r *SurrealRepository[T, P]) ExistsByID(ctx context.Context, id string) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteByID removes a record by its id.
func (r *SurrealRepository[T, P]) DeleteByID(ctx context.Context, id string) error {
	list, err := r.query(ctx, "DELETE type::thing($tb, $id) RETURN BEFORE", map[string]any{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.table, id, err)
	}
	if len(list) == 0 {
		return ErrNotFound
	}
	return nil
}

// toContent converts entity into a record body without its id. Whole
// numbers stay integers so stock is not stored as a float.
func toContent[T any](entity *T) (map[string]any, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	delete(fields, "id")
	for key, value := range fields {
		n, ok := value.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			fields[key] = i
		} else if f, err := n.Float64(); err == nil {
			fields[key] = f
		}
	}
	return fields, nil
}

// decodeRow maps a selected record onto T, flattening the record id to its
// key part.
func decodeRow[T any](row map[string]any) (T, error) {
	var item T
	if key, ok := recordKey(row["id"]); ok {
		row["id"] = key
	} else {
		delete(row, "id")
	}
	raw, err := json.Marshal(row)
	if err != nil {
		return item, err
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, err
	}
	return item, nil
}

func recordKey(v any) (string, bool) {
	switch id := v.(type) {
	case surrealmodels.RecordID:
		return fmt.Sprint(id.ID), true
	case *surrealmodels.RecordID:
		if id == nil {
			return "", false
		}
		return fmt.Sprint(id.ID), true
	case string:
		if i := strings.Index(id, ":"); i >= 0 {
			id = id[i+1:]
		}
		return strings.Trim(id, "⟨⟩`"), true
	}
	return "", false
}
