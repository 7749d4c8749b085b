// Package api holds the OpenAPI document of the shop HTTP API.
package api

import _ "embed"

// OpenAPI is the raw OpenAPI 3 document served and enforced by the HTTP adapter.
//
//go:embed openapi.json
var OpenAPI []byte
