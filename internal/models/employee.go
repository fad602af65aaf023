package models

import "practico/internal/validation"

// Employee represents an employee record.
type Employee struct {
	ID        string  `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string  `json:"firstName" bson:"firstName" gorm:"type:varchar(100);not null"`
	LastName  string  `json:"lastName" bson:"lastName" gorm:"type:varchar(100);not null"`
	Email     string  `json:"email" bson:"email" gorm:"type:varchar(255);index"`
	Phone     *string `json:"phone" bson:"phone,omitempty" gorm:"type:varchar(50)"`
	Position  string  `json:"position" bson:"position" gorm:"type:varchar(100);index"`
}

func (Employee) TableName() string { return EmployeeCollection }

func (e *Employee) GetID() string   { return e.ID }
func (e *Employee) SetID(id string) { e.ID = id }

// FieldValue returns the value of a lookup field.
func (e *Employee) FieldValue(field string) (string, bool) {
	switch field {
	case FieldEmail:
		return e.Email, true
	case FieldPosition:
		return e.Position, true
	}
	return "", false
}

// EmployeeRequest is the body accepted by create and update.
type EmployeeRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Position  string  `json:"position"`
}

// Validate checks the structural rules of the request.
func (r EmployeeRequest) Validate(v *validation.Validator) error {
	return v.Check().
		Required("firstName", r.FirstName).
		Required("lastName", r.LastName).
		Required("email", r.Email).
		Email("email", r.Email).
		Required("position", r.Position).
		Err()
}

// EmployeeResponse is the body returned to callers.
type EmployeeResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Position  string  `json:"position"`
}
