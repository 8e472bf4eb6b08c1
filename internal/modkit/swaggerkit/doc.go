package swaggerkit

// doc is maintained by hand next to the handlers it describes
const doc = `{
  "openapi": "3.0.3",
  "info": {"title": "biblia API", "version": "1.0.0",
    "description": "Resolves Portuguese scripture references and returns passage text"},
  "servers": [{"url": "/api/v1"}],
  "paths": {
    "/bible": {"get": {"summary": "Look up a passage", "tags": ["Bible"],
      "parameters": [{"name": "ref", "in": "query", "schema": {"type": "string", "maxLength": 120},
        "example": "João 3:16"}],
      "responses": {"200": {"description": "ok"}, "400": {"description": "invalid ref"},
        "502": {"description": "provider failure"}}}},
    "/bible/lookup": {"post": {"summary": "Look up a passage", "tags": ["Bible"],
      "requestBody": {"content": {"application/json": {"schema": {"type": "object",
        "properties": {"ref": {"type": "string", "maxLength": 120}}}}}},
      "responses": {"200": {"description": "ok"}}}},
    "/catalog": {"get": {"summary": "Book catalog, optionally filtered", "tags": ["Catalog"],
      "parameters": [{"name": "q", "in": "query", "schema": {"type": "string"}}],
      "responses": {"200": {"description": "ok"}}}},
    "/catalog/books/{id}": {"get": {"summary": "One book with its chapters", "tags": ["Catalog"],
      "parameters": [{"name": "id", "in": "path", "required": true, "schema": {"type": "string"}}],
      "responses": {"200": {"description": "ok"}, "404": {"description": "unknown book"}}}},
    "/meta/health": {"get": {"tags": ["Meta"], "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "responses": {"200": {"description": "ok"}}}},
    "/meta/config": {"get": {"summary": "Provider configuration with the key masked", "tags": ["Meta"],
      "responses": {"200": {"description": "ok"}}}}
  }
}`
