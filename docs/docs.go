// Package docs registers the OpenAPI document served under /swagger.
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
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Every habit with its stats for a view day",
                "parameters": [
                    {"type": "string", "description": "view day, YYYY-MM-DD", "name": "date", "in": "query"},
                    {"type": "boolean", "description": "hide vice habits", "name": "exclude_vices", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/habit.DashboardResponse"}}
                }
            }
        },
        "/habits": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "List habits",
                "parameters": [
                    {"type": "string", "description": "binary, numeric or vice", "name": "type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/habit.Habit"}}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Create a habit",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/habit.Habit"}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/habits/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Habit with week, month and year charts",
                "parameters": [
                    {"type": "string", "description": "habit id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "reference day, YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/habit.HabitDetailsResponse"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/habits/{id}/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["habits"],
                "summary": "Streak, ring and history strip for one habit",
                "parameters": [
                    {"type": "string", "description": "habit id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "view day, YYYY-MM-DD", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/habit.HabitSummary"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/habits/{id}/logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Raw daily logs of a habit",
                "parameters": [
                    {"type": "string", "description": "habit id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dailylog.DailyLog"}}}
                }
            },
            "post": {
                "consumes": ["application/json", "application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "Add to a habit's value for a day",
                "parameters": [
                    {"type": "string", "description": "habit id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dailylog.LogResult"}},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "habit.Habit": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string", "enum": ["binary", "numeric", "vice"]},
                "target": {"type": "number"},
                "unit": {"type": "string"},
                "color": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "stats.HistoryDay": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "full_date": {"type": "string"},
                "completed": {"type": "boolean"},
                "is_today": {"type": "boolean"},
                "fill_percent": {"type": "number"}
            }
        },
        "stats.Series": {
            "type": "object",
            "properties": {
                "labels": {"type": "array", "items": {"type": "string"}},
                "values": {"type": "array", "items": {"type": "number"}},
                "total": {"type": "number"}
            }
        },
        "stats.ChartData": {
            "type": "object",
            "properties": {
                "week": {"$ref": "#/definitions/stats.Series"},
                "month": {"$ref": "#/definitions/stats.Series"},
                "year": {"$ref": "#/definitions/stats.Series"}
            }
        },
        "habit.HabitSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "target": {"type": "number"},
                "unit": {"type": "string"},
                "color": {"type": "string"},
                "streak": {"type": "integer"},
                "fill_percent": {"type": "number"},
                "is_completed": {"type": "boolean"},
                "today_value": {"type": "number"},
                "shield_material": {"type": "string", "enum": ["wood", "iron", "gold", "energy"]},
                "history": {"type": "array", "items": {"$ref": "#/definitions/stats.HistoryDay"}}
            }
        },
        "habit.DashboardResponse": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "habits": {"type": "array", "items": {"$ref": "#/definitions/habit.HabitSummary"}}
            }
        },
        "habit.HabitDetailsResponse": {
            "type": "object",
            "properties": {
                "habit": {"$ref": "#/definitions/habit.Habit"},
                "date": {"type": "string"},
                "chart_data": {"$ref": "#/definitions/stats.ChartData"}
            }
        },
        "dailylog.DailyLog": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "habit_id": {"type": "string"},
                "date": {"type": "string"},
                "value": {"type": "number"},
                "historical_target": {"type": "number"}
            }
        },
        "dailylog.LogResult": {
            "type": "object",
            "properties": {
                "habit_id": {"type": "string"},
                "date": {"type": "string"},
                "value": {"type": "number"},
                "event": {"type": "string", "enum": ["completed", "deflected"]}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Habits API",
	Description:      "Habit tracking: daily logs, streaks, shields and charts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
