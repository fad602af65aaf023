package models_test

import (
	"testing"

	"practico/internal/apperrors"
	"practico/internal/models"
	"practico/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.Field)
	}
	return out
}

func TestCustomerRequest_Validate(t *testing.T) {
	v := validation.New()

	valid := models.CustomerRequest{FirstName: "Juan", LastName: "Perez", Email: "juan@example.com"}
	assert.NoError(t, valid.Validate(v))

	assert.ElementsMatch(t, []string{"firstName", "lastName", "email"}, fields(t, models.CustomerRequest{}.Validate(v)))

	badEmail := valid
	badEmail.Email = "invalid-email"
	assert.Equal(t, []string{"email"}, fields(t, badEmail.Validate(v)))
}

func TestEmployeeRequest_Validate(t *testing.T) {
	v := validation.New()

	valid := models.EmployeeRequest{FirstName: "Ana", LastName: "Rojas", Email: "ana@example.com", Position: "Developer"}
	assert.NoError(t, valid.Validate(v))

	noPosition := valid
	noPosition.Position = " "
	assert.Equal(t, []string{"position"}, fields(t, noPosition.Validate(v)))
}

func TestProductRequest_Validate(t *testing.T) {
	v := validation.New()
	price, stock := 0.0, 0

	zero := models.ProductRequest{Name: "Mouse", Price: &price, Stock: &stock}
	assert.NoError(t, zero.Validate(v), "zero price and stock are accepted")

	negPrice, negStock := -0.01, -1
	assert.Equal(t, []string{"price"}, fields(t, models.ProductRequest{Name: "Mouse", Price: &negPrice, Stock: &stock}.Validate(v)))
	assert.Equal(t, []string{"stock"}, fields(t, models.ProductRequest{Name: "Mouse", Price: &price, Stock: &negStock}.Validate(v)))
	assert.ElementsMatch(t, []string{"name", "price", "stock"}, fields(t, models.ProductRequest{}.Validate(v)))
}

func TestFieldValue(t *testing.T) {
	c := &models.Customer{Email: "c@example.com"}
	value, ok := c.FieldValue(models.FieldEmail)
	assert.True(t, ok)
	assert.Equal(t, "c@example.com", value)
	_, ok = c.FieldValue(models.FieldPosition)
	assert.False(t, ok)

	e := &models.Employee{Position: "Manager"}
	value, ok = e.FieldValue(models.FieldPosition)
	assert.True(t, ok)
	assert.Equal(t, "Manager", value)

	_, ok = (&models.Product{}).FieldValue(models.FieldEmail)
	assert.False(t, ok)
}
