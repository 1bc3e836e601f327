package validator_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sellout-api/pkg/validator"
)

type filtro struct {
	Desde string `query:"desde" validate:"required,datetime=2006-01-02"`
	Top   int    `query:"top" validate:"gte=0,lte=100"`
}

type solicitud struct {
	Productos []string `json:"producto_ids" validate:"required,min=1,dive,required"`
	Dias      int      `json:"dias_post_promo" validate:"min=1,max=180"`
	Filtro    filtro   `json:"filtro"`
}

func TestValidate_OK(t *testing.T) {
	err := validator.Validate(solicitud{
		Productos: []string{"SKU-1"},
		Dias:      14,
		Filtro:    filtro{Desde: "2025-01-31", Top: 10},
	})
	assert.NoError(t, err)
}

func TestValidate_CamposConNombreJSON(t *testing.T) {
	err := validator.Validate(solicitud{Dias: 0, Filtro: filtro{Desde: "31/01/2025", Top: 500}})
	require.Error(t, err)

	var ve *validator.ValidationError
	require.True(t, errors.As(err, &ve))

	fields := ve.Fields()
	assert.Equal(t, "es obligatorio", fields["producto_ids"])
	assert.Equal(t, "debe ser al menos 1", fields["dias_post_promo"])
	assert.Equal(t, "debe tener formato 2006-01-02", fields["filtro.desde"])
	assert.Equal(t, "debe ser menor o igual a 100", fields["filtro.top"])
	assert.Contains(t, err.Error(), "dias_post_promo debe ser al menos 1")
}
