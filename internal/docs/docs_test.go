package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	// Act
	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]any `json:"paths"`
	}

	// Assert
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	assert.Equal(t, "Inventory Catalog API", doc.Info.Title)
	assert.Contains(t, doc.Paths, "/category/{categoryId}/products/{ids}")
	assert.Contains(t, doc.Paths["/category/{categoryId}/products/{ids}"], "delete")
	assert.Contains(t, doc.Paths["/product/id/{id}"], "put")
	assert.Len(t, doc.Paths, 11)
}
