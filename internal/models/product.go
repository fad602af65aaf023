package models

import "practico/internal/validation"

// Product represents a product in the catalog.
type Product struct {
	ID          string  `json:"id" bson:"_id" gorm:"primaryKey;type:varchar(36)"`
	Name        string  `json:"name" bson:"name" gorm:"type:varchar(100);not null"`
	Description *string `json:"description" bson:"description,omitempty" gorm:"type:varchar(500)"`
	Price       float64 `json:"price" bson:"price"`
	Stock       int     `json:"stock" bson:"stock"`
	Category    *string `json:"category" bson:"category,omitempty" gorm:"type:varchar(100)"`
}

func (Product) TableName() string { return ProductCollection }

func (p *Product) GetID() string   { return p.ID }
func (p *Product) SetID(id string) { p.ID = id }

// FieldValue returns the value of a lookup field. Products have none.
func (p *Product) FieldValue(string) (string, bool) { return "", false }

// ProductRequest is the body accepted by create and update. Price and Stock
// are pointers so a missing value can be told apart from zero.
type ProductRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
}

// Validate checks the structural rules of the request.
func (r ProductRequest) Validate(v *validation.Validator) error {
	return v.Check().
		Required("name", r.Name).
		DecimalMin("price", r.Price, 0).
		IntMin("stock", r.Stock, 0).
		Err()
}

// ProductResponse is the body returned to callers.
type ProductResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    *string `json:"category"`
}
