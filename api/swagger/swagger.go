package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Sysasistencia API",
        "description": "Event attendance backend: sessions, small groups, attendance and navigation menus",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and identity"},
        {"name": "People", "description": "People catalogue"},
        {"name": "Events", "description": "General events and their sessions"},
        {"name": "Groups", "description": "Capacity-bounded small groups"},
        {"name": "Participants", "description": "Group memberships"},
        {"name": "Attendance", "description": "Attendance registration and reports"},
        {"name": "Menu", "description": "Per-user navigation menus"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/personas": {
            "get": {
                "tags": ["People"],
                "summary": "List people",
                "parameters": [
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "kind", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["People"],
                "summary": "Create person",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePersonRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/personas/{id}": {
            "get": {
                "tags": ["People"],
                "summary": "Get person",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/eventos": {
            "get": {
                "tags": ["Events"],
                "summary": "List general events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Events"],
                "summary": "Create general event",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGeneralEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/eventos/{id}/reporte": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Attendance report for a general event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/eventos/{id}/reporte/export": {
            "get": {
                "tags": ["Attendance"],
                "summary": "Export attendance report",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/sesiones": {
            "post": {
                "tags": ["Events"],
                "summary": "Create session",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateSessionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sesiones/{id}/cerrar": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Close session and schedule absence sweep",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "202": {"description": "Sweep scheduled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos": {
            "post": {
                "tags": ["Groups"],
                "summary": "Create small group",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGroupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/grupos/{id}/participantes": {
            "get": {
                "tags": ["Participants"],
                "summary": "List group members",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Participants"],
                "summary": "Enroll a participant",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EnrollParticipantRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Capacity exceeded or duplicate", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/participantes/{id}": {
            "delete": {
                "tags": ["Participants"],
                "summary": "Remove a participant",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Removed"}
                }
            }
        },
        "/asistencias": {
            "post": {
                "tags": ["Attendance"],
                "summary": "Register attendance",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterAttendanceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already registered", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/menu/web": {
            "get": {
                "tags": ["Menu"],
                "summary": "Web navigation menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/menu/movil": {
            "get": {
                "tags": ["Menu"],
                "summary": "Mobile navigation menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "CreatePersonRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "document_number": {"type": "string"},
                "institutional_email": {"type": "string"},
                "personal_email": {"type": "string"},
                "student_code": {"type": "string"},
                "kind": {"type": "string", "enum": ["STUDENT", "GUEST"]}
            },
            "required": ["full_name", "document_number", "institutional_email", "kind"]
        },
        "CreateGeneralEventRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "program_id": {"type": "string"}
            },
            "required": ["name", "program_id"]
        },
        "CreateSessionRequest": {
            "type": "object",
            "properties": {
                "general_event_id": {"type": "string"},
                "name": {"type": "string"},
                "date": {"type": "string", "example": "2025-09-01"},
                "start_time": {"type": "string", "example": "09:00"},
                "tolerance_minutes": {"type": "integer"}
            },
            "required": ["general_event_id", "name", "date", "start_time"]
        },
        "CreateGroupRequest": {
            "type": "object",
            "properties": {
                "general_event_id": {"type": "string"},
                "name": {"type": "string"},
                "leader_id": {"type": "string"},
                "capacity": {"type": "integer"}
            },
            "required": ["general_event_id", "name", "leader_id", "capacity"]
        },
        "EnrollParticipantRequest": {
            "type": "object",
            "properties": {
                "person_id": {"type": "string"}
            },
            "required": ["person_id"]
        },
        "RegisterAttendanceRequest": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "person_id": {"type": "string"},
                "remark": {"type": "string"},
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            },
            "required": ["session_id", "person_id"]
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"}
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
