// Package docs holds the Swagger document served at /swagger.
// Keep it in step with the godoc annotations on the handlers.
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
		"/health": {
			"get": {
				"tags": [
					"system"
				],
				"summary": "Health check",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a new user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/auth/user/{id}": {
			"get": {
				"tags": [
					"auth"
				],
				"summary": "Get user by ID",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/suggestions/{user_id}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Who to follow",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/search/{query}": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Search users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "query",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{user_id}/profile": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "Get user profile",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"users"
				],
				"summary": "Update own profile",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/users/{user_id}/follow/{target_id}": {
			"post": {
				"tags": [
					"users"
				],
				"summary": "Follow or unfollow",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "target_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{user_id}/followers": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List followers",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{user_id}/following": {
			"get": {
				"tags": [
					"users"
				],
				"summary": "List followed users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/users/{user_id}/activity": {
			"get": {
				"tags": [
					"activity"
				],
				"summary": "Get user activity",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					},
					{
						"enum": [
							"like",
							"comment",
							"follow"
						],
						"type": "string",
						"name": "type",
						"in": "query"
					}
				]
			}
		},
		"/users/{user_id}/activity/dismiss": {
			"post": {
				"tags": [
					"activity"
				],
				"summary": "Dismiss notifications",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"activity"
				],
				"summary": "Clear dismissed notifications",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/posts": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Create a post",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/posts/feed/{user_id}": {
			"get": {
				"tags": [
					"feed"
				],
				"summary": "Get home feed",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "user_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/posts/{post_id}": {
			"get": {
				"tags": [
					"posts"
				],
				"summary": "Get post by ID",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"posts"
				],
				"summary": "Delete own post",
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/posts/{post_id}/like": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Like or unlike a post",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/posts/{post_id}/reply": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Reply to a post",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/posts/{post_id}/comment": {
			"post": {
				"tags": [
					"posts"
				],
				"summary": "Comment on a post",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object"
						}
					}
				]
			}
		},
		"/posts/{post_id}/comment/{comment_id}": {
			"delete": {
				"tags": [
					"posts"
				],
				"summary": "Delete own comment",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"type": "string",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"name": "comment_id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/upload/profile": {
			"post": {
				"tags": [
					"upload"
				],
				"summary": "Upload a profile picture",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "file",
						"name": "profilePicture",
						"in": "formData",
						"required": true
					}
				]
			}
		},
		"/upload/media": {
			"post": {
				"tags": [
					"upload"
				],
				"summary": "Upload post media",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"type": "file",
						"name": "media",
						"in": "formData",
						"required": true
					}
				]
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and JWT token.",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "SocialHub API",
	Description:      "Posts, follows, feed and activity for the SocialHub client",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
