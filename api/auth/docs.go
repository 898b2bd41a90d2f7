// Package auth registers the swagger document for the authentication
// service. Regenerate with `swag init` after changing handler annotations.
package auth

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{escape .Title}}",
        "description": "{{escape .Description}}",
        "contact": {"name": "WeSports Team"},
        "license": {"name": "MIT", "url": "https://opensource.org/licenses/MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/auth/register": {
            "post": {
                "tags": ["Registration"],
                "summary": "Start Registration",
                "description": "Begins email sign-up by sending a 6-digit verification code to the address. Limited to 5 codes per address per hour.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.RegisterStartRequest"}}],
                "responses": {
                    "200": {"description": "status, message, nextStep", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "invalid email", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "409": {"description": "account already exists", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "429": {"description": "code budget exhausted", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/verify-otp": {
            "post": {
                "tags": ["Registration"],
                "summary": "Verify Email Code",
                "description": "Checks the emailed 6-digit code. Codes expire after 10 minutes and allow 3 attempts. On success returns a 5-minute registration token used to set the password.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.VerifyOTPRequest"}}],
                "responses": {
                    "200": {"description": "status, message, registrationToken, nextStep", "schema": {"$ref": "#/definitions/authsdk.VerifyOTPResponse"}},
                    "400": {"description": "missing, expired or wrong code", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "429": {"description": "reverify budget exhausted", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/setup-password": {
            "post": {
                "tags": ["Registration"],
                "summary": "Set Password",
                "description": "Completes credential creation using the registration token from verification. Returns a full access/refresh token pair on success.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.SetupPasswordRequest"}}],
                "responses": {
                    "200": {"description": "status, message, tokens, user, nextStep", "schema": {"$ref": "#/definitions/authsdk.AuthResponse"}},
                    "400": {"description": "weak password or mismatch", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "401": {"description": "invalid or expired registration token", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "409": {"description": "password already configured", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/select-role": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Registration"],
                "summary": "Select Role",
                "description": "Records the platform role for the authenticated user. Only PLAYER is accepted.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.SelectRoleRequest"}}],
                "responses": {
                    "200": {"description": "status, message, nextStep", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "unsupported role", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "401": {"description": "missing or invalid access token", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/profile-form": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Registration"],
                "summary": "Submit Profile Form",
                "description": "Saves the identity fields collected after role selection and advances to onboarding.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.ProfileFormRequest"}}],
                "responses": {
                    "200": {"description": "status, message, nextStep", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "missing names or bad birthday", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "401": {"description": "missing or invalid access token", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Login",
                "description": "Authenticates an email+password account and returns an access/refresh token pair. Accounts that have not finished registration are told which step to resume.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.LoginRequest"}}],
                "responses": {
                    "200": {"description": "status, message, tokens, user, nextStep", "schema": {"$ref": "#/definitions/authsdk.AuthResponse"}},
                    "401": {"description": "invalid email or password", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "403": {"description": "unverified, incomplete or inactive account", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/refresh": {
            "post": {
                "tags": ["Auth"],
                "summary": "Refresh Tokens",
                "description": "Exchanges a valid refresh token for a new access/refresh pair. The presented token is revoked in the same exchange; replaying it fails.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "status, message, tokens, user", "schema": {"$ref": "#/definitions/authsdk.AuthResponse"}},
                    "401": {"description": "invalid, expired or revoked refresh token", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Logout",
                "description": "Revokes the presented refresh token. Always succeeds, including for tokens that are already expired, revoked or unparseable.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.LogoutRequest"}}],
                "responses": {
                    "200": {"description": "status, message", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/status": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Onboarding"],
                "summary": "Onboarding Status",
                "description": "Reports wizard progress with per-field flags so clients can resume mid-way.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "currentStep and completion flags", "schema": {"$ref": "#/definitions/authsdk.OnboardingStatus"}},
                    "401": {"description": "missing or invalid access token", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/gender": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Onboarding"],
                "summary": "Set Gender",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.GenderRequest"}}],
                "responses": {
                    "200": {"description": "status, message", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "invalid gender", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/position": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Onboarding"],
                "summary": "Set Playing Position",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.PositionRequest"}}],
                "responses": {
                    "200": {"description": "status, message", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "invalid position", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/category": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Onboarding"],
                "summary": "Set Competition Category",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/authsdk.CategoryRequest"}}],
                "responses": {
                    "200": {"description": "status, message", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}},
                    "400": {"description": "invalid category", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/complete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Onboarding"],
                "summary": "Complete Onboarding",
                "description": "Marks the wizard finished. The step marker is terminal; repeat calls are harmless.",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "status, message, nextStep", "schema": {"$ref": "#/definitions/authsdk.StepResponse"}}
                }
            }
        },
        "/v1/onboarding/positions": {
            "get": {
                "tags": ["Onboarding"],
                "summary": "List Playing Positions",
                "produces": ["application/json"],
                "responses": {"200": {"description": "position codes", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/v1/onboarding/categories": {
            "get": {
                "tags": ["Onboarding"],
                "summary": "List Competition Categories",
                "produces": ["application/json"],
                "responses": {"200": {"description": "category codes", "schema": {"type": "array", "items": {"type": "string"}}}}
            }
        },
        "/v1/languages": {
            "get": {
                "tags": ["Languages"],
                "summary": "List Languages",
                "description": "Returns the active platform languages, ordered by code.",
                "produces": ["application/json"],
                "responses": {"200": {"description": "code, name, nativeName", "schema": {"type": "array", "items": {"$ref": "#/definitions/authsdk.Language"}}}}
            }
        },
        "/livez": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check Endpoint",
                "produces": ["application/json"],
                "responses": {"200": {"description": "status, uptime, version", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}}}
            }
        },
        "/readyz": {
            "get": {
                "tags": ["Health"],
                "summary": "Readiness Check Endpoint",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "status, uptime, version, checks", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}},
                    "503": {"description": "service not ready", "schema": {"$ref": "#/definitions/authsdk.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "authsdk.RegisterStartRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "language": {"type": "string", "description": "optional hint, e.g. \"fr\""}
            }
        },
        "authsdk.VerifyOTPRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "otp": {"type": "string"}
            }
        },
        "authsdk.SetupPasswordRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "confirmPassword": {"type": "string"},
                "registrationToken": {"type": "string"}
            }
        },
        "authsdk.SelectRoleRequest": {
            "type": "object",
            "properties": {"role": {"type": "string"}}
        },
        "authsdk.ProfileFormRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "birthday": {"type": "string", "description": "ISO 8601 (YYYY-MM-DD)"},
                "phone": {"type": "string"},
                "nationality": {"type": "string"},
                "residence": {"type": "string"},
                "spokenLanguages": {"type": "array", "items": {"type": "string"}}
            }
        },
        "authsdk.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "authsdk.RefreshRequest": {
            "type": "object",
            "properties": {"refreshToken": {"type": "string"}}
        },
        "authsdk.LogoutRequest": {
            "type": "object",
            "properties": {"refreshToken": {"type": "string"}}
        },
        "authsdk.GenderRequest": {
            "type": "object",
            "properties": {"gender": {"type": "string"}}
        },
        "authsdk.PositionRequest": {
            "type": "object",
            "properties": {"position": {"type": "string"}}
        },
        "authsdk.CategoryRequest": {
            "type": "object",
            "properties": {"category": {"type": "string"}}
        },
        "authsdk.StepResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "nextStep": {"type": "string"}
            }
        },
        "authsdk.VerifyOTPResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "registrationToken": {"type": "string"},
                "nextStep": {"type": "string"}
            }
        },
        "authsdk.AuthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "message": {"type": "string"},
                "accessToken": {"type": "string"},
                "refreshToken": {"type": "string"},
                "tokenType": {"type": "string"},
                "expiresIn": {"type": "integer"},
                "user": {"$ref": "#/definitions/authsdk.UserInfo"},
                "nextStep": {"type": "string"}
            }
        },
        "authsdk.UserInfo": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "role": {"type": "string"},
                "registrationStep": {"type": "string"}
            }
        },
        "authsdk.OnboardingStatus": {
            "type": "object",
            "properties": {
                "currentStep": {"type": "string"},
                "emailVerified": {"type": "boolean"},
                "passwordSet": {"type": "boolean"},
                "roleSelected": {"type": "boolean"},
                "profileCompleted": {"type": "boolean"},
                "genderSet": {"type": "boolean"},
                "positionSet": {"type": "boolean"},
                "categorySet": {"type": "boolean"},
                "completed": {"type": "boolean"},
                "nextStep": {"type": "string"}
            }
        },
        "authsdk.Language": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "name": {"type": "string"},
                "nativeName": {"type": "string"}
            }
        },
        "authsdk.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"},
                "checks": {"$ref": "#/definitions/authsdk.HealthChecks"}
            }
        },
        "authsdk.HealthChecks": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "signer": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT access token. Format: \"Bearer {token}\".",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "WeSports Authentication Service API",
	Description:      "User registration, authentication and onboarding for the WeSports recruitment platform.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
