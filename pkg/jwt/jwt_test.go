package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/sellout-api/pkg/jwt"
)

const (
	secret = "test-secret-key-for-unit-tests"
	issuer = "sellout-api-test"
)

var analista = pkgjwt.Identidad{UserID: "u-1", TenantID: "tenant-cafe", Role: "analista"}

func TestGenerateYParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, issuer, analista, 60)
	require.NoError(t, err)

	got, err := pkgjwt.Parse(secret, issuer, tok)
	require.NoError(t, err)
	assert.Equal(t, analista, got)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, issuer, analista, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, issuer, tok)
	assert.Error(t, err)
}

func TestParse_SecretOEmisorIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, issuer, analista, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", issuer, tok)
	assert.Error(t, err)

	_, err = pkgjwt.Parse(secret, "otro-emisor", tok)
	assert.Error(t, err)
}

func TestParse_SinTenantEsInvalido(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, issuer, pkgjwt.Identidad{UserID: "u-1", Role: "admin"}, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, issuer, tok)
	assert.Error(t, err)
}
