package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academy API",
        "description": "Course platform API with session auth for students and instructors",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Unified login, signup, logout"},
        {"name": "Courses", "description": "Public course catalog"},
        {"name": "Enrollments", "description": "Student course enrollment"},
        {"name": "Pricing", "description": "Subscription tiers"},
        {"name": "Content", "description": "Marketing pages content"},
        {"name": "Contact", "description": "Contact form"},
        {"name": "Profile", "description": "Student profile"},
        {"name": "Instructor", "description": "Instructor portal"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate as a student or instructor",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"},
                    "404": {"description": "Instructor not found or inactive"}
                }
            }
        },
        "/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a student account",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Username or email already taken"}
                }
            }
        },
        "/logout": {
            "post": {
                "tags": ["Authentication"],
                "summary": "End the current session",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List catalog courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/courses-details/{course_id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Course detail with curriculum and instructor",
                "parameters": [
                    {"name": "course_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/pricing-plans": {
            "get": {
                "tags": ["Pricing"],
                "summary": "List active pricing plans with derived totals",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/enroll-course/{course_id}": {
            "post": {
                "tags": ["Enrollments"],
                "summary": "Enroll the current student in a course",
                "parameters": [
                    {"name": "course_id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "success or already_enrolled", "schema": {"$ref": "#/definitions/EnrollResult"}},
                    "401": {"description": "Not logged in"},
                    "404": {"description": "Course not found"}
                }
            }
        },
        "/my-courses": {
            "get": {
                "tags": ["Enrollments"],
                "summary": "List the current student's enrolled courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/instructor/dashboard": {
            "get": {
                "tags": ["Instructor"],
                "summary": "Instructor dashboard aggregates",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Wrong role"}
                }
            }
        },
        "/instructor/messages": {
            "get": {
                "tags": ["Contact"],
                "summary": "List contact submissions, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "403": {"description": "Wrong role"}
                }
            }
        },
        "/instructor/reports/enrollments": {
            "get": {
                "tags": ["Instructor"],
                "summary": "Download the enrollment roster as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "course_id", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string", "enum": ["trial", "paid"]}
                ],
                "responses": {
                    "200": {"description": "Report file"},
                    "400": {"description": "Unsupported format"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password", "user_type"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"},
                "user_type": {"type": "string", "enum": ["student", "instructor"]}
            }
        },
        "SignupRequest": {
            "type": "object",
            "required": ["username", "email", "password", "full_name"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "full_name": {"type": "string"},
                "phone": {"type": "string"},
                "country": {"type": "string"},
                "city": {"type": "string"},
                "note": {"type": "string"}
            }
        },
        "EnrollResult": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["success", "already_enrolled"]},
                "message": {"type": "string"}
            }
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
