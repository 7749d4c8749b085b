// Package docs registers the shop OpenAPI document with swag so that
// echo-swagger can serve it under /swagger.
package docs

import (
	"shop/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shop",
	Description:      "Order management: members, items, orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.OpenAPI),
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
