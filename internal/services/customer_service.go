package services

import (
	"practico/internal/models"
	"practico/internal/repositories"

	"github.com/rs/zerolog"
)

// CustomerService handles business logic related to customers.
type CustomerService = CRUDService[models.Customer, *models.Customer, models.CustomerRequest, models.CustomerResponse]

// CustomerDefinition maps customers and keeps their email unique.
var CustomerDefinition = Definition[models.Customer, models.CustomerRequest, models.CustomerResponse]{
	Resource: "customer",
	Unique: &UniqueKey[models.CustomerRequest]{
		Field: models.FieldEmail,
		Value: func(r models.CustomerRequest) string { return r.Email },
	},
	NewEntity: func(r models.CustomerRequest) models.Customer {
		var c models.Customer
		applyCustomer(&c, r)
		return c
	},
	Apply: applyCustomer,
	ToResponse: func(c *models.Customer) models.CustomerResponse {
		return models.CustomerResponse{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			Address:   c.Address,
		}
	},
}

func applyCustomer(c *models.Customer, r models.CustomerRequest) {
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Email = r.Email
	c.Phone = r.Phone
	c.Address = r.Address
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo repositories.Repository[models.Customer], publisher EventPublisher, log zerolog.Logger) *CustomerService {
	return NewCRUDService[models.Customer, *models.Customer](repo, CustomerDefinition, publisher, log)
}
