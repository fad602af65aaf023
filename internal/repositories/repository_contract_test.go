package repositories_test

import (
	"context"
	"fmt"
	"testing"

	"practico/internal/models"
	"practico/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// testCustomerContract exercises the Repository contract on a customer store.
func testCustomerContract(t *testing.T, base repositories.Repository[models.Customer]) {
	ctx := context.Background()
	repo := repositories.NewCustomerRepository(base)

	juan := &models.Customer{FirstName: "Juan", LastName: "Perez", Email: "juan@example.com"}
	require.NoError(t, repo.Insert(ctx, juan))
	assert.NotEmpty(t, juan.ID)

	maria := &models.Customer{FirstName: "Maria", LastName: "Lopez", Email: "maria@example.com", Phone: strPtr("70112233")}
	require.NoError(t, repo.Insert(ctx, maria))
	assert.NotEqual(t, juan.ID, maria.ID)

	found, err := repo.FindByID(ctx, juan.ID)
	require.NoError(t, err)
	assert.Equal(t, juan, found)
	assert.Nil(t, found.Phone)
	assert.Nil(t, found.Address)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Customer{*juan, *maria}, all)

	exists, err := repo.ExistsByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	byEmail, err := repo.FindByEmail(ctx, "maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, maria.ID, byEmail.ID)
	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	maria.Address = strPtr("Av. 20 Octubre")
	maria.Phone = nil
	require.NoError(t, repo.Save(ctx, maria))
	found, err = repo.FindByID(ctx, maria.ID)
	require.NoError(t, err)
	assert.Equal(t, maria, found)

	ghost := &models.Customer{ID: "missing", FirstName: "Ghost", LastName: "User", Email: "ghost@example.com"}
	assert.ErrorIs(t, repo.Save(ctx, ghost), repositories.ErrNotFound)

	exists, err = repo.ExistsByID(ctx, juan.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.DeleteByID(ctx, juan.ID))
	exists, err = repo.ExistsByID(ctx, juan.ID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.ErrorIs(t, repo.DeleteByID(ctx, juan.ID), repositories.ErrNotFound)
}

func testEmployeeContract(t *testing.T, base repositories.Repository[models.Employee]) {
	ctx := context.Background()
	repo := repositories.NewEmployeeRepository(base)

	for i, position := range []string{"Developer", "Developer", "Manager"} {
		e := &models.Employee{FirstName: "E", LastName: fmt.Sprint(i), Email: fmt.Sprintf("e%d@example.com", i), Position: position}
		require.NoError(t, repo.Insert(ctx, e))
	}

	devs, err := repo.FindByPosition(ctx, "Developer")
	require.NoError(t, err)
	assert.Len(t, devs, 2)

	none, err := repo.FindByPosition(ctx, "Intern")
	require.NoError(t, err)
	assert.Empty(t, none)

	exists, err := repo.ExistsByEmail(ctx, "e2@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func testProductContract(t *testing.T, repo repositories.ProductRepository) {
	ctx := context.Background()

	p := &models.Product{Name: "Mouse", Price: 0, Stock: 0}
	require.NoError(t, repo.Insert(ctx, p))

	found, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, found.Price)
	assert.Equal(t, 0, found.Stock)
	assert.Nil(t, found.Description)

	p.Price = 25.5
	p.Stock = 7
	p.Category = strPtr("Peripherals")
	require.NoError(t, repo.Save(ctx, p))
	found, err = repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, found)
}

func TestMemoryRepository(t *testing.T) {
	t.Run("customers", func(t *testing.T) {
		testCustomerContract(t, repositories.NewMemoryRepository[models.Customer]())
	})
	t.Run("employees", func(t *testing.T) {
		testEmployeeContract(t, repositories.NewMemoryRepository[models.Employee]())
	})
	t.Run("products", func(t *testing.T) {
		testProductContract(t, repositories.NewMemoryRepository[models.Product]())
	})
}

// openSQLite opens a shared in-memory SQLite database private to one test.
func openSQLite(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestGORMRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("customers", func(t *testing.T) {
		repo := repositories.NewGORMRepository[models.Customer](openSQLite(t, "gorm_customers"))
		require.NoError(t, repo.Migrate(ctx))
		testCustomerContract(t, repo)
	})
	t.Run("employees", func(t *testing.T) {
		repo := repositories.NewGORMRepository[models.Employee](openSQLite(t, "gorm_employees"))
		require.NoError(t, repo.Migrate(ctx))
		testEmployeeContract(t, repo)
	})
	t.Run("products", func(t *testing.T) {
		repo := repositories.NewGORMRepository[models.Product](openSQLite(t, "gorm_products"))
		require.NoError(t, repo.Migrate(ctx))
		testProductContract(t, repo)
	})
}
