package services

import (
	"practico/internal/models"
	"practico/internal/repositories"

	"github.com/rs/zerolog"
)

// EmployeeService handles business logic related to employees.
type EmployeeService = CRUDService[models.Employee, *models.Employee, models.EmployeeRequest, models.EmployeeResponse]

// EmployeeDefinition maps employees and keeps their email unique.
var EmployeeDefinition = Definition[models.Employee, models.EmployeeRequest, models.EmployeeResponse]{
	Resource: "employee",
	Unique: &UniqueKey[models.EmployeeRequest]{
		Field: models.FieldEmail,
		Value: func(r models.EmployeeRequest) string { return r.Email },
	},
	NewEntity: func(r models.EmployeeRequest) models.Employee {
		var e models.Employee
		applyEmployee(&e, r)
		return e
	},
	Apply: applyEmployee,
	ToResponse: func(e *models.Employee) models.EmployeeResponse {
		return models.EmployeeResponse{
			ID:        e.ID,
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Email:     e.Email,
			Phone:     e.Phone,
			Position:  e.Position,
		}
	},
}

func applyEmployee(e *models.Employee, r models.EmployeeRequest) {
	e.FirstName = r.FirstName
	e.LastName = r.LastName
	e.Email = r.Email
	e.Phone = r.Phone
	e.Position = r.Position
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repositories.Repository[models.Employee], publisher EventPublisher, log zerolog.Logger) *EmployeeService {
	return NewCRUDService[models.Employee, *models.Employee](repo, EmployeeDefinition, publisher, log)
}
