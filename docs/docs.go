// Package docs registers the swagger specification served at /swagger.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler
// annotations.
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
        "/users": {
            "post": {"tags": ["auth"], "summary": "Register a new user"}
        },
        "/auth": {
            "post": {"tags": ["auth"], "summary": "Login"},
            "get": {"tags": ["auth"], "summary": "Get the authenticated user"}
        },
        "/posts": {
            "post": {"tags": ["posts"], "summary": "Create a post"},
            "get": {"tags": ["posts"], "summary": "List all posts"}
        },
        "/posts/{id}": {
            "get": {"tags": ["posts"], "summary": "Get a post"},
            "delete": {"tags": ["posts"], "summary": "Delete a post"}
        },
        "/posts/like/{id}": {
            "put": {"tags": ["posts"], "summary": "Like a post"}
        },
        "/posts/unlike/{id}": {
            "put": {"tags": ["posts"], "summary": "Unlike a post"}
        },
        "/posts/comment/{id}": {
            "post": {"tags": ["posts"], "summary": "Comment on a post"}
        },
        "/posts/comment/{id}/{commentId}": {
            "delete": {"tags": ["posts"], "summary": "Delete a comment"}
        },
        "/profile": {
            "get": {"tags": ["profile"], "summary": "List all profiles"},
            "post": {"tags": ["profile"], "summary": "Create or update own profile"},
            "delete": {"tags": ["profile"], "summary": "Delete own account, profile and posts"}
        },
        "/profile/me": {
            "get": {"tags": ["profile"], "summary": "Get own profile"}
        },
        "/profile/user/{id}": {
            "get": {"tags": ["profile"], "summary": "Get a profile by user id"}
        },
        "/profile/experience": {
            "put": {"tags": ["profile"], "summary": "Add a profile experience entry"}
        },
        "/profile/experience/{id}": {
            "delete": {"tags": ["profile"], "summary": "Remove a profile experience entry"}
        },
        "/profile/education": {
            "put": {"tags": ["profile"], "summary": "Add a profile education entry"}
        },
        "/profile/education/{id}": {
            "delete": {"tags": ["profile"], "summary": "Remove a profile education entry"}
        },
        "/profile/github/{username}": {
            "get": {"tags": ["profile"], "summary": "List a user's GitHub repositories"}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Social API",
	Description:      "Developer social network backend: accounts, profiles, posts, likes and comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
