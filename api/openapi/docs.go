// Package openapi 网关的 Swagger 文档，由 swag 注册后经 /swagger/*any 提供
package openapi

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
        "/auth/authorize": {
            "get": {
                "tags": ["认证"],
                "summary": "获取授权地址",
                "parameters": [{"type": "string", "name": "state", "in": "query"}],
                "responses": {"200": {"description": "获取成功", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["认证"],
                "summary": "用授权码登录",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.LoginRequest"}}],
                "responses": {
                    "200": {"description": "登录成功", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "请求参数无效", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "授权码无效", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["认证"],
                "summary": "登出",
                "responses": {"200": {"description": "登出成功", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["账户"],
                "summary": "获取当前登录用户",
                "responses": {
                    "200": {"description": "获取成功", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "未登录", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["账户"],
                "summary": "修改个人资料",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ProfileUpdateRequest"}}],
                "responses": {
                    "200": {"description": "更新成功", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "没有需要更新的字段", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/photos": {
            "get": {
                "tags": ["图片"],
                "summary": "图片列表",
                "parameters": [
                    {"type": "string", "name": "order_by", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "获取成功", "schema": {"$ref": "#/definitions/response.Response"}},
                    "502": {"description": "上游不可用", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/photos/{id}/download": {
            "post": {
                "tags": ["图片"],
                "summary": "下载图片",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "request", "in": "body", "schema": {"$ref": "#/definitions/dto.DownloadRequest"}}
                ],
                "responses": {
                    "200": {"description": "下载任务已提交", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "图片不存在", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/collections": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["合集"],
                "summary": "创建合集",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CollectionRequest"}}],
                "responses": {
                    "200": {"description": "创建成功", "schema": {"$ref": "#/definitions/response.Response"}},
                    "401": {"description": "未登录", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/search/photos": {
            "get": {
                "tags": ["搜索"],
                "summary": "搜索图片",
                "parameters": [
                    {"type": "string", "name": "q", "in": "query"},
                    {"type": "string", "name": "order_by", "in": "query"},
                    {"type": "string", "name": "color", "in": "query"},
                    {"type": "string", "name": "orientation", "in": "query"},
                    {"type": "string", "name": "content_filter", "in": "query"},
                    {"type": "string", "name": "collections", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "per_page", "in": "query"}
                ],
                "responses": {"200": {"description": "搜索成功", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "dto.LoginRequest": {
            "type": "object",
            "required": ["code"],
            "properties": {"code": {"type": "string"}}
        },
        "dto.DownloadRequest": {
            "type": "object",
            "properties": {"quality": {"type": "string", "enum": ["raw", "full", "regular", "small", "thumb"]}}
        },
        "dto.CollectionRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "private": {"type": "boolean"}
            }
        },
        "dto.ProfileUpdateRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "url": {"type": "string"},
                "location": {"type": "string"},
                "bio": {"type": "string"},
                "instagram_username": {"type": "string"}
            }
        },
        "response.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "integer"},
                        "message": {"type": "string"},
                        "type": {"type": "string"}
                    }
                }
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
	Host:             "127.0.0.1:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Splash-Go API",
	Description:      "图片浏览网关 API 服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
