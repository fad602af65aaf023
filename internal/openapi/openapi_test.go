package openapi_test

import (
	"testing"

	"practico/internal/openapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type document struct {
	OpenAPI string                    `yaml:"openapi"`
	Paths   map[string]map[string]any `yaml:"paths"`
}

func TestYAML_DescribesEveryCollection(t *testing.T) {
	var doc document
	require.NoError(t, yaml.Unmarshal(openapi.YAML, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)

	for _, collection := range []string{"customers", "employees", "products"} {
		list := doc.Paths["/api/"+collection]
		require.NotNil(t, list, collection)
		assert.Contains(t, list, "post")
		assert.Contains(t, list, "get")

		item := doc.Paths["/api/"+collection+"/{id}"]
		require.NotNil(t, item, collection)
		assert.Contains(t, item, "get")
		assert.Contains(t, item, "put")
		assert.Contains(t, item, "delete")
	}
}

func TestYAML_ConflictOnlyWhereEmailIsUnique(t *testing.T) {
	var doc document
	require.NoError(t, yaml.Unmarshal(openapi.YAML, &doc))

	responses := func(path, method string) map[string]any {
		op, ok := doc.Paths[path][method].(map[string]any)
		require.True(t, ok, "%s %s", method, path)
		r, ok := op["responses"].(map[string]any)
		require.True(t, ok, "%s %s", method, path)
		return r
	}

	assert.Contains(t, responses("/api/customers", "post"), "409")
	assert.Contains(t, responses("/api/employees/{id}", "put"), "409")
	assert.NotContains(t, responses("/api/products", "post"), "409")
	assert.Contains(t, responses("/api/products/{id}", "delete"), "204")
}
