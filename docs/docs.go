// Package docs holds the swagger descriptor served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/alexa": {
            "post": {
                "description": "Accepts a voice-platform request envelope and answers with a response envelope. An undecodable envelope yields the generic failure response, never a transport error.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Skill"],
                "summary": "Voice platform endpoint",
                "parameters": [
                    {
                        "description": "Request envelope",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/alexa.RequestEnvelope"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/alexa.ResponseEnvelope"}}
                }
            }
        },
        "/proxy": {
            "post": {
                "description": "Same semantics as the voice endpoint, but a payload that cannot be decoded is answered with 500.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Skill"],
                "summary": "HTTP proxy endpoint",
                "parameters": [
                    {
                        "description": "Request envelope",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/alexa.RequestEnvelope"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/alexa.ResponseEnvelope"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "503": {"description": "Completion client unavailable", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        }
    },
    "definitions": {
        "alexa.RequestEnvelope": {
            "type": "object",
            "properties": {
                "version": {"type": "string"},
                "session": {"type": "object", "properties": {"new": {"type": "boolean"}, "sessionId": {"type": "string"}}},
                "context": {"type": "object"},
                "request": {
                    "type": "object",
                    "properties": {
                        "type": {"type": "string", "example": "IntentRequest"},
                        "requestId": {"type": "string"},
                        "locale": {"type": "string", "example": "ja-JP"},
                        "intent": {"type": "object"}
                    }
                }
            }
        },
        "alexa.ResponseEnvelope": {
            "type": "object",
            "properties": {
                "version": {"type": "string", "example": "1.0"},
                "response": {
                    "type": "object",
                    "properties": {
                        "outputSpeech": {"type": "object"},
                        "card": {"type": "object"},
                        "directives": {"type": "array", "items": {"type": "object"}},
                        "shouldEndSession": {"type": "boolean"}
                    }
                }
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "Internal Server Error"}}
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Montblanc Assistant API",
	Description:      "Voice assistant skill backed by a chat completion service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
