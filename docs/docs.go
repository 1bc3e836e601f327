// Package docs publica la especificación OpenAPI de la API.
package docs

import (
	_ "embed"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var Spec []byte

type spec struct{}

func (spec) ReadDoc() string { return string(Spec) }

func init() {
	swag.Register(swag.Name, spec{})
}
