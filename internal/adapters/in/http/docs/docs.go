// Package docs registers the OpenAPI document with swag so that echo-swagger can serve it
// under /swagger/doc.json.
package docs

import (
	"logistics/internal/adapters/in/http/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         api.BasePath,
	Schemes:          []string{},
	Title:            "Logistics API",
	Description:      "Order lifecycle of a delivery logistics service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.RawSpec()),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
