package models

// Collection (table) names, one per entity type.
const (
	CustomerCollection = "customers"
	EmployeeCollection = "employees"
	ProductCollection  = "products"
)

// Lookup fields shared by the stores. The same name is used as JSON key,
// BSON key and column name.
const (
	FieldEmail    = "email"
	FieldPosition = "position"
)
