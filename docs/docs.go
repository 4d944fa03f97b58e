// Package docs holds the swagger document served under /swagger.
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
        "/posts/{slug}": {
            "get": {
                "description": "Get a single published post by slug or id",
                "produces": ["application/json"],
                "tags": ["posts"],
                "summary": "Get post by slug",
                "parameters": [
                    {"type": "string", "description": "Post slug or id", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PostDTO"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/posts/{slug}/related": {
            "get": {
                "description": "Published posts sharing at least one tag with the seed post",
                "produces": ["application/json"],
                "tags": ["related"],
                "summary": "Related posts",
                "parameters": [
                    {"type": "string", "description": "Seed post slug or id", "name": "slug", "in": "path", "required": true},
                    {"type": "string", "description": "Ordering, see /related/order-options", "name": "order_by", "in": "query"},
                    {"type": "string", "description": "Maximum results (^[0-9]+$, 0 = no limit)", "name": "limit", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Category ids to exclude", "name": "exclude_categories", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Category ids to restrict to", "name": "include_categories", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Post ids to exclude", "name": "exclude_posts", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "csv", "description": "Tag ids to exclude", "name": "exclude_tags", "in": "query"},
                    {"type": "string", "description": "RFC3339 lower bound", "name": "published_after", "in": "query"},
                    {"type": "string", "description": "RFC3339 upper bound", "name": "published_before", "in": "query"},
                    {"type": "integer", "description": "Minimum number of shared tags", "name": "min_shared_tags", "in": "query"},
                    {"type": "string", "description": "Page used to build post URLs", "name": "post_page", "in": "query"},
                    {"type": "string", "description": "Page used to build category URLs", "name": "category_page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RelatedPostsDTO"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponseDTO"}}
                }
            }
        },
        "/related/order-options": {
            "get": {
                "description": "Allowed related posts orderings, sorted by label",
                "produces": ["application/json"],
                "tags": ["related"],
                "summary": "Ordering options",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.OrderOptionDTO"}}}
                }
            }
        }
    },
    "definitions": {
        "dto.CategoryDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "c-dev"},
                "name": {"type": "string", "example": "Development"},
                "slug": {"type": "string", "example": "development"},
                "url": {"type": "string", "example": "/blog/category/development"}
            }
        },
        "dto.ErrorResponseDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not found"}
            }
        },
        "dto.OrderOptionDTO": {
            "type": "object",
            "properties": {
                "label": {"type": "string", "example": "Published (descending)"},
                "value": {"type": "string", "example": "published_at desc"}
            }
        },
        "dto.PostDTO": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoryDTO"}},
                "excerpt": {"type": "string"},
                "id": {"type": "string", "example": "p-1"},
                "published_at": {"type": "string"},
                "slug": {"type": "string", "example": "hello-go"},
                "tags": {"type": "array", "items": {"$ref": "#/definitions/dto.TagDTO"}},
                "title": {"type": "string", "example": "Hello Go"},
                "url": {"type": "string", "example": "/blog/post/hello-go"}
            }
        },
        "dto.RelatedPostsDTO": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/dto.PostDTO"}},
                "limit": {"type": "integer", "example": 3},
                "order_by": {"type": "string", "example": "relevance desc"},
                "seed": {"type": "string", "example": "hello-go"}
            }
        },
        "dto.TagDTO": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "t-go"},
                "name": {"type": "string", "example": "Go"},
                "slug": {"type": "string", "example": "go"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Blog Taxonomy API",
	Description:      "Related posts resolution over tags and categories",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
