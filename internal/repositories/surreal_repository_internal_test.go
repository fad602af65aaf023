package repositories

import (
	"testing"

	"practico/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestToContent(t *testing.T) {
	category := "Peripherals"
	content, err := toContent(&models.Product{ID: "p1", Name: "Mouse", Price: 25.5, Stock: 3, Category: &category})
	require.NoError(t, err)

	assert.NotContains(t, content, "id")
	assert.Equal(t, "Mouse", content["name"])
	assert.Equal(t, 25.5, content["price"])
	assert.Equal(t, int64(3), content["stock"])
	assert.Equal(t, "Peripherals", content["category"])
	assert.Contains(t, content, "description")
	assert.Nil(t, content["description"])
}

func TestDecodeRow(t *testing.T) {
	t.Run("record id value", func(t *testing.T) {
		row := map[string]any{
			"id":        surrealmodels.NewRecordID("customers", "c-1"),
			"firstName": "Juan",
			"lastName":  "Perez",
			"email":     "juan@example.com",
			"phone":     nil,
		}
		c, err := decodeRow[models.Customer](row)
		require.NoError(t, err)
		assert.Equal(t, models.Customer{ID: "c-1", FirstName: "Juan", LastName: "Perez", Email: "juan@example.com"}, c)
	})

	t.Run("record id pointer", func(t *testing.T) {
		rid := surrealmodels.NewRecordID("products", "p-1")
		p, err := decodeRow[models.Product](map[string]any{"id": &rid, "name": "Mouse", "price": 1.5, "stock": uint64(2)})
		require.NoError(t, err)
		assert.Equal(t, "p-1", p.ID)
		assert.Equal(t, 2, p.Stock)
	})

	t.Run("string id", func(t *testing.T) {
		e, err := decodeRow[models.Employee](map[string]any{"id": "employees:⟨0d9f-11⟩", "position": "Developer"})
		require.NoError(t, err)
		assert.Equal(t, "0d9f-11", e.ID)
	})
}
