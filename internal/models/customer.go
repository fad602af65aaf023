package models

import "practico/internal/validation"

// Customer represents a customer record.
type Customer struct {
	ID        string  `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	FirstName string  `json:"firstName" bson:"firstName" gorm:"type:varchar(100);not null"`
	LastName  string  `json:"lastName" bson:"lastName" gorm:"type:varchar(100);not null"`
	Email     string  `json:"email" bson:"email" gorm:"type:varchar(255);index"`
	Phone     *string `json:"phone" bson:"phone,omitempty" gorm:"type:varchar(50)"`
	Address   *string `json:"address" bson:"address,omitempty" gorm:"type:varchar(255)"`
}

func (Customer) TableName() string { return CustomerCollection }

func (c *Customer) GetID() string   { return c.ID }
func (c *Customer) SetID(id string) { c.ID = id }

// FieldValue returns the value of a lookup field.
func (c *Customer) FieldValue(field string) (string, bool) {
	if field == FieldEmail {
		return c.Email, true
	}
	return "", false
}

// CustomerRequest is the body accepted by create and update.
type CustomerRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// Validate checks the structural rules of the request.
func (r CustomerRequest) Validate(v *validation.Validator) error {
	return v.Check().
		Required("firstName", r.FirstName).
		Required("lastName", r.LastName).
		Required("email", r.Email).
		Email("email", r.Email).
		Err()
}

// CustomerResponse is the body returned to callers.
type CustomerResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}
