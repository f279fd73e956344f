// Package docs registers the OpenAPI description served at /swagger.
// Regenerate with: swag init -g internal/server/server.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/v1/ratings/combine": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Combine disability ratings",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/server.CombineRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CombinedRating"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/projections/compound": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "Project an investment account",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/projections/income": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projections"],
                "summary": "Project COLA-adjusted income streams",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/compensation": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["benefits"],
                "summary": "Look up monthly VA compensation",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/server.CompensationRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/crsc/classify": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["benefits"],
                "summary": "Classify conditions for CRSC",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/offsets": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["benefits"],
                "summary": "Compute the VA waiver and CRDP/CRSC restoration",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/pension": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["benefits"],
                "summary": "Compute monthly retired pay",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/budget": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["planning"],
                "summary": "Break down a monthly budget",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/evidence/confidence": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["claims"],
                "summary": "Score claim evidence",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"type": "object"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/scenarios/run": {
            "post": {
                "description": "Pass save=true to record the run in history",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Run a full scenario configuration",
                "parameters": [
                    {"in": "body", "name": "request", "required": true, "schema": {"type": "object"}},
                    {"type": "boolean", "description": "Save the run", "name": "save", "in": "query"},
                    {"type": "string", "description": "History label", "name": "label", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "List saved runs",
                "parameters": [{"type": "integer", "default": 20, "description": "Maximum runs", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/v1/history/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scenarios"],
                "summary": "Load a saved run",
                "parameters": [{"type": "string", "description": "Run id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "config.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "domain.CombinedRating": {
            "type": "object",
            "properties": {
                "ratings": {"type": "array", "items": {"type": "integer"}},
                "exact": {"type": "string"},
                "combined": {"type": "integer"},
                "bilateral_factor": {"type": "string"}
            }
        },
        "server.CombineRequest": {
            "type": "object",
            "properties": {
                "ratings": {"type": "array", "items": {"type": "integer"}},
                "conditions": {"type": "array", "items": {"type": "object"}}
            }
        },
        "server.CompensationRequest": {
            "type": "object",
            "properties": {"rating": {"type": "integer"}, "dependents": {"type": "integer"}}
        },
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/config.FieldError"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Benefits Engine API",
	Description:      "Disability rating, compensation, offset and projection calculations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
