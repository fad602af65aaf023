package storage_test

import (
	"context"
	"testing"
	"time"

	"practico/internal/config"
	"practico/internal/models"
	"practico/internal/storage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	store, err := storage.Open(context.Background(), config.StoreConfig{Driver: config.DriverMemory, Timeout: time.Second}, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close(context.Background())

	assert.Equal(t, config.DriverMemory, store.Driver)
	assert.NotNil(t, store.Customers)
	assert.NotNil(t, store.Employees)
	assert.NotNil(t, store.Products)
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{
		Driver:     config.DriverSQLite,
		Timeout:    5 * time.Second,
		SQLitePath: "file:storage_open?mode=memory&cache=shared",
	}
	store, err := storage.Open(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	defer store.Close(ctx)

	e := &models.Employee{FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com", Position: "Developer"}
	require.NoError(t, store.Employees.Insert(ctx, e))

	devs, err := store.Employees.FindByPosition(ctx, "Developer")
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, e.ID, devs[0].ID)

	exists, err := store.Customers.ExistsByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.False(t, exists, "email uniqueness is scoped per entity type")
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := storage.Open(context.Background(), config.StoreConfig{Driver: "cassandra", Timeout: time.Second}, zerolog.Nop())
	assert.Error(t, err)
}
