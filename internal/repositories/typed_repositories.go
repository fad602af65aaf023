package repositories

import (
	"context"

	"practico/internal/models"
)

// CustomerRepository adds email lookups to the customer collection.
type CustomerRepository struct {
	Repository[models.Customer]
}

// NewCustomerRepository wraps a generic customer repository.
func NewCustomerRepository(base Repository[models.Customer]) *CustomerRepository {
	return &CustomerRepository{Repository: base}
}

// ExistsByEmail reports whether a customer uses email.
func (r *CustomerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.ExistsByField(ctx, models.FieldEmail, email)
}

// FindByEmail returns the first customer using email.
func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return first(r.FindByField(ctx, models.FieldEmail, email))
}

// EmployeeRepository adds email and position lookups to the employee collection.
type EmployeeRepository struct {
	Repository[models.Employee]
}

// NewEmployeeRepository wraps a generic employee repository.
func NewEmployeeRepository(base Repository[models.Employee]) *EmployeeRepository {
	return &EmployeeRepository{Repository: base}
}

// ExistsByEmail reports whether an employee uses email.
func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.ExistsByField(ctx, models.FieldEmail, email)
}

// FindByEmail returns the first employee using email.
func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	return first(r.FindByField(ctx, models.FieldEmail, email))
}

// FindByPosition returns every employee holding position.
func (r *EmployeeRepository) FindByPosition(ctx context.Context, position string) ([]models.Employee, error) {
	return r.FindByField(ctx, models.FieldPosition, position)
}

// ProductRepository is the product collection. Products have no lookups.
type ProductRepository = Repository[models.Product]

func first[T any](list []T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, ErrNotFound
	}
	return &list[0], nil
}
