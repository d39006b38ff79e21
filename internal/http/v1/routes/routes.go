package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-playground/internal/http/v1/hello"
	"github.com/janisto/hello-playground/internal/http/v1/playground"
)

// Prefix is the path prefix of every versioned operation.
const Prefix = "/v1"

// Register wires all v1 operations into api under Prefix.
func Register(api huma.API) {
	v1 := huma.NewGroup(api, Prefix)
	hello.Register(v1)
	playground.Register(v1)
}
