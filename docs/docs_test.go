package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	_ "github.com/jhoicas/sellout-api/docs"
)

func TestSpecRegistrada(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var spec struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "2.0", spec.Swagger)
	assert.Contains(t, spec.Paths["/api/promociones/analisis"], "post")
	assert.Contains(t, spec.Paths["/api/promociones/analisis/narrativa"], "post")
	assert.Contains(t, spec.Paths["/api/promociones/analisis/pdf"], "post")
	assert.Contains(t, spec.Paths["/api/ventas/resumen"], "get")
}
