// Package docs holds the Swagger document served under /swagger/. Keep it in step
// with the handler annotations when routes change.
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
        "/api/v1/catalog/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["catalog"],
                "summary": "Catalog load status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.Status"}}
                }
            }
        },
        "/api/v1/diff": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Diff feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.DiffResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/items": {
            "get": {
                "description": "Filters by name substring and exact category, sorts, then pages",
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Search the catalog",
                "parameters": [
                    {"type": "string", "description": "Name substring", "name": "q", "in": "query"},
                    {"type": "string", "description": "Exact category", "name": "category", "in": "query"},
                    {"enum": ["drop_level", "price", "min_damage", "max_damage", "level"], "type": "string", "description": "Sort key", "name": "sort", "in": "query"},
                    {"enum": ["asc", "desc"], "type": "string", "description": "Sort direction", "name": "order", "in": "query"},
                    {"type": "integer", "description": "Offset", "name": "offset", "in": "query"},
                    {"type": "integer", "description": "Page size (1-500)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SearchResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/items/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Distinct categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.CategoriesResponse"}}
                }
            }
        },
        "/api/v1/items/serial/{serial}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Items by serial",
                "parameters": [
                    {"type": "integer", "description": "Serial", "name": "serial", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ItemsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/items/suggest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Name suggestions",
                "parameters": [
                    {"type": "string", "description": "Name substring", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Maximum suggestions (1-50)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.SuggestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/items/{index}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["items"],
                "summary": "Item by catalog index",
                "parameters": [
                    {"type": "integer", "description": "Catalog index", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.ItemView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/api/v1/news": {
            "get": {
                "description": "Returns news newest first. A missing or empty news file returns 404 with an empty list.",
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "News feed",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.NewsItem"}}},
                    "404": {"description": "Not Found", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.NewsItem"}}}
                }
            }
        },
        "/api/v1/news/latest": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feeds"],
                "summary": "Latest news",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.NewsItem"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns OK if the service is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/readyz": {
            "get": {
                "description": "Returns OK once the catalog has loaded; 503 before the first load or after a failed one",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.HealthResponse"}}
                }
            }
        },
        "/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.VersionInfo"}}
                }
            }
        }
    },
    "definitions": {
        "domain.NewsItem": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "handler.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.DiffResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"type": "string"}},
                "text": {"type": "string"}
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "handler.HealthResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.ItemView": {
            "type": "object",
            "properties": {
                "attack_range": {"type": "string"},
                "attack_speed": {"type": "string"},
                "category": {"type": "string"},
                "creation_traits": {"type": "array", "items": {"type": "string"}},
                "drop_level": {"type": "integer"},
                "high_tier": {"type": "boolean"},
                "index": {"type": "integer"},
                "max_damage": {"type": "integer"},
                "min_damage": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "raw_name": {"type": "string"},
                "required_stats": {"type": "array", "items": {"$ref": "#/definitions/handler.StatView"}},
                "serial": {"type": "integer"},
                "unique_traits": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ItemsResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.ItemView"}}
            }
        },
        "handler.SearchResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/handler.ItemView"}},
                "limit": {"type": "integer"},
                "offset": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "handler.StatView": {
            "type": "object",
            "properties": {
                "display": {"type": "string"},
                "name": {"type": "string"},
                "value": {"type": "integer"}
            }
        },
        "handler.SuggestResponse": {
            "type": "object",
            "properties": {
                "suggestions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "handler.VersionInfo": {
            "type": "object",
            "properties": {
                "build_time": {"type": "string"},
                "git_commit": {"type": "string"},
                "go_version": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "session.Status": {
            "type": "object",
            "properties": {
                "attempted": {"type": "boolean"},
                "error": {"type": "string"},
                "item_count": {"type": "integer"},
                "loaded": {"type": "boolean"},
                "loaded_at": {"type": "string"},
                "source": {"type": "string"}
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
	Title:            "Brandish Item Search API",
	Description:      "Search, filter and sort the Brandish item catalog, plus the news and diff feeds.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
