// Package storage opens the configured backend and builds the three entity
// repositories on top of it.
package storage

import (
	"context"
	"fmt"

	"practico/internal/config"
	"practico/internal/models"
	"practico/internal/repositories"

	"github.com/rs/zerolog"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Repositories groups the per-entity repositories.
type Repositories struct {
	Customers *repositories.CustomerRepository
	Employees *repositories.EmployeeRepository
	Products  repositories.ProductRepository
}

// Store is an open backend together with its repositories.
type Store struct {
	Repositories
	Driver string
	close  func(ctx context.Context) error
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// NewMemoryRepositories returns empty in-memory repositories.
func NewMemoryRepositories() Repositories {
	return Repositories{
		Customers: repositories.NewCustomerRepository(repositories.NewMemoryRepository[models.Customer]()),
		Employees: repositories.NewEmployeeRepository(repositories.NewMemoryRepository[models.Employee]()),
		Products:  repositories.NewMemoryRepository[models.Product](),
	}
}

// Open connects to the backend named by cfg.Driver and prepares its
// collections and lookup indexes.
func Open(ctx context.Context, cfg config.StoreConfig, log zerolog.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	log.Info().Str("driver", cfg.Driver).Msg("opening store")
	switch cfg.Driver {
	case config.DriverMemory:
		return &Store{Repositories: NewMemoryRepositories(), Driver: cfg.Driver}, nil
	case config.DriverMongo:
		return openMongo(ctx, cfg)
	case config.DriverSurreal:
		return openSurreal(ctx, cfg)
	case config.DriverPostgres:
		return openGORM(ctx, cfg.Driver, postgres.Open(cfg.PostgresDSN))
	case config.DriverSQLite:
		return openGORM(ctx, cfg.Driver, sqlite.Open(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}

func openMongo(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	db := client.Database(cfg.MongoDatabase)

	customers := repositories.NewMongoRepository[models.Customer](db.Collection(models.CustomerCollection))
	employees := repositories.NewMongoRepository[models.Employee](db.Collection(models.EmployeeCollection))
	products := repositories.NewMongoRepository[models.Product](db.Collection(models.ProductCollection))

	if err := customers.EnsureIndexes(ctx, models.FieldEmail); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	if err := employees.EnsureIndexes(ctx, models.FieldEmail, models.FieldPosition); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Store{
		Repositories: Repositories{
			Customers: repositories.NewCustomerRepository(customers),
			Employees: repositories.NewEmployeeRepository(employees),
			Products:  products,
		},
		Driver: config.DriverMongo,
		close:  client.Disconnect,
	}, nil
}

func openSurreal(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.SurrealURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SurrealDB: %w", err)
	}
	fail := func(err error) (*Store, error) {
		_ = db.Close(context.Background())
		return nil, err
	}

	if cfg.SurrealUser != "" {
		if _, err := db.SignIn(ctx, surrealdb.Auth{Username: cfg.SurrealUser, Password: cfg.SurrealPassword}); err != nil {
			return fail(fmt.Errorf("failed to authenticate to SurrealDB: %w", err))
		}
	}
	if err := db.Use(ctx, cfg.SurrealNamespace, cfg.SurrealDatabase); err != nil {
		return fail(fmt.Errorf("failed to use namespace/database: %w", err))
	}

	customers := repositories.NewSurrealRepository[models.Customer](db)
	employees := repositories.NewSurrealRepository[models.Employee](db)
	products := repositories.NewSurrealRepository[models.Product](db)

	if err := customers.EnsureIndexes(ctx, models.FieldEmail); err != nil {
		return fail(err)
	}
	if err := employees.EnsureIndexes(ctx, models.FieldEmail, models.FieldPosition); err != nil {
		return fail(err)
	}

	return &Store{
		Repositories: Repositories{
			Customers: repositories.NewCustomerRepository(customers),
			Employees: repositories.NewEmployeeRepository(employees),
			Products:  products,
		},
		Driver: config.DriverSurreal,
		close:  db.Close,
	}, nil
}

func openGORM(ctx context.Context, driver string, dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	customers := repositories.NewGORMRepository[models.Customer](db)
	employees := repositories.NewGORMRepository[models.Employee](db)
	products := repositories.NewGORMRepository[models.Product](db)

	for _, migrate := range []func(context.Context) error{customers.Migrate, employees.Migrate, products.Migrate} {
		if err := migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return &Store{
		Repositories: Repositories{
			Customers: repositories.NewCustomerRepository(customers),
			Employees: repositories.NewEmployeeRepository(employees),
			Products:  products,
		},
		Driver: driver,
		close:  func(context.Context) error { return sqlDB.Close() },
	}, nil
}
