package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Class Schedule Creator API",
        "description": "Resource planning and timetable generation for a four-year high school",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Course catalog, graduation paths and facilities"},
        {"name": "Planning", "description": "Minimum resource calculation"},
        {"name": "Scheduling", "description": "Timetable generation and export"},
        {"name": "Capacity", "description": "Feasibility against actual facilities"}
    ],
    "paths": {
        "/catalog/courses": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List catalog courses",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "level", "in": "query", "type": "string", "enum": ["REGULAR", "HONORS", "AP"]},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "pageSize", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/courses/{code}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one course by code",
                "parameters": [
                    {"name": "code", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/paths": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List graduation paths with per-year course plans",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/catalog/facilities": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Describe the actual room inventory",
                "parameters": [
                    {"name": "maxClassSize", "in": "query", "type": "integer", "default": 25}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/resource-plan": {
            "post": {
                "tags": ["Planning"],
                "summary": "Compute the minimum classrooms and teachers for a scenario",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentScenario"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid scenario", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "422": {"description": "Catalog infeasible", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/resource-plan/export": {
            "get": {
                "tags": ["Planning"],
                "summary": "Export the resource plan as CSV or PDF",
                "parameters": [
                    {"name": "MINIMUM", "in": "query", "type": "integer"},
                    {"name": "PRE_MED", "in": "query", "type": "integer"},
                    {"name": "ENGINEERING", "in": "query", "type": "integer"},
                    {"name": "maxClassSize", "in": "query", "type": "integer", "default": 25},
                    {"name": "periodsPerDay", "in": "query", "type": "integer", "default": 6},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Invalid scenario", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule": {
            "post": {
                "tags": ["Scheduling"],
                "summary": "Build a complete timetable for a scenario",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BuildScheduleRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid scenario", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{runId}": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "Fetch a retained schedule run",
                "parameters": [
                    {"name": "runId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{runId}/export": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "Export one semester of a run as CSV or PDF",
                "parameters": [
                    {"name": "runId", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer", "enum": [1, 2], "default": 1},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/schedule/{runId}/teachers/export": {
            "get": {
                "tags": ["Scheduling"],
                "summary": "Export per-teacher section loads for one semester of a run",
                "parameters": [
                    {"name": "runId", "in": "path", "required": true, "type": "string"},
                    {"name": "semester", "in": "query", "type": "integer", "enum": [1, 2], "default": 1},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/capacity/check": {
            "post": {
                "tags": ["Capacity"],
                "summary": "Check a scenario against the actual room inventory",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollmentScenario"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/capacity/max-enrollment": {
            "get": {
                "tags": ["Capacity"],
                "summary": "Find the largest uniform per-path enrollment that fits",
                "parameters": [
                    {"name": "maxClassSize", "in": "query", "type": "integer", "default": 25},
                    {"name": "periodsPerDay", "in": "query", "type": "integer", "default": 6}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "EnrollmentScenario": {
            "type": "object",
            "required": ["enrollment", "maxClassSize", "periodsPerDay"],
            "properties": {
                "enrollment": {
                    "type": "object",
                    "additionalProperties": {"type": "integer"},
                    "description": "Students per graduation path (MINIMUM, PRE_MED, ENGINEERING)"
                },
                "maxClassSize": {"type": "integer"},
                "periodsPerDay": {"type": "integer"}
            }
        },
        "BuildScheduleRequest": {
            "type": "object",
            "required": ["enrollment", "maxClassSize", "periodsPerDay"],
            "properties": {
                "enrollment": {
                    "type": "object",
                    "additionalProperties": {"type": "integer"}
                },
                "maxClassSize": {"type": "integer"},
                "periodsPerDay": {"type": "integer"},
                "classrooms": {"type": "array", "items": {"type": "object"}},
                "teachers": {"type": "array", "items": {"type": "object"}},
                "useActualFacilities": {"type": "boolean"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "pageSize": {"type": "integer"},
                "totalItems": {"type": "integer"},
                "totalPages": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
