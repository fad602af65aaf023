// Package handlers exposes the services over HTTP.
package handlers

import (
	"practico/internal/models"
	"practico/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

type (
	CustomerHandler = CRUDHandler[models.CustomerRequest, models.CustomerResponse]
	EmployeeHandler = CRUDHandler[models.EmployeeRequest, models.EmployeeResponse]
	ProductHandler  = CRUDHandler[models.ProductRequest, models.ProductResponse]
)

// NewCustomerHandler serves /customers.
func NewCustomerHandler(s Service[models.CustomerRequest, models.CustomerResponse], v *validation.Validator, log zerolog.Logger) *CustomerHandler {
	return NewCRUDHandler("/customers", s, v, log)
}

// NewEmployeeHandler serves /employees.
func NewEmployeeHandler(s Service[models.EmployeeRequest, models.EmployeeResponse], v *validation.Validator, log zerolog.Logger) *EmployeeHandler {
	return NewCRUDHandler("/employees", s, v, log)
}

// NewProductHandler serves /products.
func NewProductHandler(s Service[models.ProductRequest, models.ProductResponse], v *validation.Validator, log zerolog.Logger) *ProductHandler {
	return NewCRUDHandler("/products", s, v, log)
}

// Registrar is anything that can mount its routes on a router.
type Registrar interface {
	RegisterRoutes(router fiber.Router)
}
