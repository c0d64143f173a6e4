// Package docs registers the OpenAPI description served at /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "API info",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/portfolio": {
            "get": {
                "description": "Returns the owner's personal info. data is null until the store is seeded.",
                "produces": ["application/json"],
                "tags": ["portfolio"],
                "summary": "Portfolio",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/skills": {
            "get": {
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Skills grouped by category",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["skills"],
                "summary": "Create skill",
                "parameters": [{"description": "skill; level must be within 0..100", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createSkillRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ValidationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Active projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Create project",
                "parameters": [{"description": "project", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createProjectRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ValidationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/projects/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "Project by id",
                "parameters": [{"type": "string", "description": "project id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/education": {
            "get": {
                "produces": ["application/json"],
                "tags": ["education"],
                "summary": "Education records",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["education"],
                "summary": "Create education record",
                "parameters": [{"description": "education record", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.createEducationRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ValidationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/contact": {
            "get": {
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Contact messages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit contact message",
                "parameters": [{"description": "message", "name": "input", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.contactRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/presenter.ValidationResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        },
        "/seed-data": {
            "post": {
                "description": "Writes the demo portfolio, skills, projects and education unless a portfolio already exists.",
                "produces": ["application/json"],
                "tags": ["seed"],
                "summary": "Seed demo data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/presenter.Envelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.Envelope"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.contactRequest": {
            "type": "object",
            "required": ["email", "message", "name", "subject"],
            "properties": {
                "email": {"type": "string"},
                "message": {"type": "string"},
                "name": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "handlers.createEducationRequest": {
            "type": "object",
            "required": ["board", "degree", "institution", "performance", "stream", "year"],
            "properties": {
                "board": {"type": "string"},
                "degree": {"type": "string"},
                "description": {"type": "string"},
                "institution": {"type": "string"},
                "order": {"type": "integer"},
                "performance": {"type": "string"},
                "stream": {"type": "string"},
                "year": {"type": "string"}
            }
        },
        "handlers.createProjectRequest": {
            "type": "object",
            "required": ["description", "duration", "features", "github", "image", "liveDemo", "technologies", "title"],
            "properties": {
                "description": {"type": "string"},
                "duration": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "github": {"type": "string"},
                "image": {"type": "string"},
                "liveDemo": {"type": "string"},
                "responsibilities": {"type": "array", "items": {"type": "string"}},
                "technologies": {"type": "array", "items": {"type": "string"}},
                "title": {"type": "string"}
            }
        },
        "handlers.createSkillRequest": {
            "type": "object",
            "required": ["category", "categoryType", "level", "name"],
            "properties": {
                "category": {"type": "string"},
                "categoryType": {"type": "string"},
                "level": {"type": "integer", "maximum": 100, "minimum": 0},
                "name": {"type": "string"}
            }
        },
        "presenter.Envelope": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "presenter.ValidationResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "detail": {"type": "array", "items": {"$ref": "#/definitions/validate.FieldError"}},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "validate.FieldError": {
            "type": "object",
            "properties": {
                "constraint": {"type": "string"},
                "field": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Space Portfolio API",
	Description:      "Content API behind the space-themed personal portfolio site.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
