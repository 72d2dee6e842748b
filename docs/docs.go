// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init` after changing handler annotations.
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
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "用户登录接口",
                "parameters": [
                    {"description": "login request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginReq"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/auth/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "用户登出接口",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/bank/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "账户概览",
                "parameters": [
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/bank/transactions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "交易记录查询",
                "parameters": [
                    {"type": "string", "description": "matched against beneficiary and note", "name": "search", "in": "query"},
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/bank/transfer": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bank"],
                "summary": "转账",
                "parameters": [
                    {"description": "transfer request body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.TransferReq"}},
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/messages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["message"],
                "summary": "留言列表",
                "parameters": [
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["message"],
                "summary": "发布留言",
                "parameters": [
                    {"description": "message body", "name": "req", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.PostMessageReq"}},
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/messages/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["message"],
                "summary": "删除留言",
                "parameters": [
                    {"type": "integer", "description": "message id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "jwt", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        },
        "/api/v1/mode": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "当前安全模式",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CommonResp"}}}
            }
        }
    },
    "definitions": {
        "dto.CommonResp": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
            }
        },
        "dto.LoginReq": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "maxLength": 191},
                "password": {"type": "string", "maxLength": 128}
            }
        },
        "dto.TransferReq": {
            "type": "object",
            "required": ["amount", "beneficiary"],
            "properties": {
                "amount": {"type": "string", "maxLength": 32},
                "beneficiary": {"type": "string", "maxLength": 255},
                "note": {"type": "string", "maxLength": 255}
            }
        },
        "dto.PostMessageReq": {
            "type": "object",
            "required": ["content"],
            "properties": {
                "content": {"type": "string", "maxLength": 1000}
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
	Title:            "bankdemo API",
	Description:      "Dual-mode banking demo. The same routes run with injectable or parameterised queries depending on SECURITY_MODE.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
