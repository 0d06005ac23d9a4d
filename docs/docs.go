// Package docs registers the OpenAPI description served under /swagger.
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
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.registerRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.authResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/v1/trackings/batch": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Looks up to 50 parcels concurrently. Each item carries its own result or error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trackings"],
                "summary": "Track several parcels",
                "parameters": [
                    {"description": "Tracking numbers", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.batchTrackingRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.batchTrackingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/trackings/{tracking_number}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Fetches the parcel from La Poste and returns its delivery phase and key events.",
                "produces": ["application/json"],
                "tags": ["trackings"],
                "summary": "Track a parcel",
                "parameters": [
                    {"type": "string", "description": "La Poste tracking number (e.g. 6A12345678912)", "name": "tracking_number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.trackingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/watches": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Clients see their own watches, admins see all of them.",
                "produces": ["application/json"],
                "tags": ["watches"],
                "summary": "List watches",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.listWatchesResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Registers a tracking number for periodic refresh. The first refresh is queued immediately.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["watches"],
                "summary": "Watch a parcel",
                "parameters": [
                    {"description": "Watch details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.addWatchRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.watchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/watches/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["watches"],
                "summary": "Get a watch",
                "parameters": [
                    {"type": "string", "description": "Watch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.watchResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["watches"],
                "summary": "Stop watching a parcel",
                "parameters": [
                    {"type": "string", "description": "Watch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        },
        "/v1/watches/{id}/snapshot": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["watches"],
                "summary": "Latest stored snapshot of a watched parcel",
                "parameters": [
                    {"type": "string", "description": "Watch id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.trackingResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/handler.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handler.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handler.registerRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["admin", "client"]},
                "client_id": {"type": "string"}
            }
        },
        "handler.authResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "user": {"type": "object"}}
        },
        "handler.batchTrackingRequest": {
            "type": "object",
            "properties": {"tracking_numbers": {"type": "array", "maxItems": 50, "items": {"type": "string"}}}
        },
        "handler.eventResponse": {
            "type": "object",
            "properties": {
                "order": {"type": "integer"},
                "date": {"type": "string"},
                "label": {"type": "string"},
                "status": {"type": "string"},
                "code": {"type": "string"}
            }
        },
        "handler.timelineStepResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "short_label": {"type": "string"},
                "long_label": {"type": "string"},
                "completed": {"type": "boolean"},
                "country": {"type": "string"}
            }
        },
        "handler.trackingResponse": {
            "type": "object",
            "properties": {
                "tracking_number": {"type": "string"},
                "product": {"type": "string"},
                "holder": {"type": "integer"},
                "is_final": {"type": "boolean"},
                "delivery_status": {"type": "string"},
                "delivery_step": {"type": "integer"},
                "shipping_event": {"$ref": "#/definitions/handler.eventResponse"},
                "first_event": {"$ref": "#/definitions/handler.eventResponse"},
                "last_event": {"$ref": "#/definitions/handler.eventResponse"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/handler.eventResponse"}},
                "timeline": {"type": "array", "items": {"$ref": "#/definitions/handler.timelineStepResponse"}},
                "new_events": {"type": "integer"},
                "skipped_events": {"type": "integer"},
                "fetched_at": {"type": "string"}
            }
        },
        "handler.batchItemResponse": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "tracking": {"$ref": "#/definitions/handler.trackingResponse"},
                "error": {"type": "string"}
            }
        },
        "handler.batchTrackingResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.batchItemResponse"}},
                "succeeded": {"type": "integer"},
                "failed": {"type": "integer"}
            }
        },
        "handler.addWatchRequest": {
            "type": "object",
            "properties": {"tracking_number": {"type": "string"}, "label": {"type": "string", "maxLength": 100}}
        },
        "handler.watchResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "tracking_number": {"type": "string"},
                "client_id": {"type": "string"},
                "label": {"type": "string"},
                "delivery_status": {"type": "string"},
                "last_event": {"$ref": "#/definitions/handler.eventResponse"},
                "active": {"type": "boolean"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "handler.listWatchesResponse": {
            "type": "object",
            "properties": {
                "watches": {"type": "array", "items": {"$ref": "#/definitions/handler.watchResponse"}},
                "total": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Parcel Tracking API",
	Description:      "Tracks La Poste parcels, infers their delivery phase and watches them for updates.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
