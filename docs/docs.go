// Package docs регистрирует swagger-спецификацию HTTP API для swaggo/http-swagger.
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
        "/dashboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "Сводка дашборда",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.dashboardResponse"}}
                }
            }
        },
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Список товаров",
                "parameters": [{"type": "string", "description": "Поиск по названию", "name": "q", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.productResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Создание товара",
                "parameters": [{"description": "Товар", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.productRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.productResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/products/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Изменение товара",
                "parameters": [
                    {"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true},
                    {"description": "Товар", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.productRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.productResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Товар не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["products"],
                "summary": "Удаление товара",
                "parameters": [{"type": "string", "description": "ID товара", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Товар не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/suppliers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["suppliers"],
                "summary": "Список поставщиков",
                "parameters": [{"type": "string", "description": "Поиск", "name": "q", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.supplierResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suppliers"],
                "summary": "Создание поставщика",
                "parameters": [{"description": "Поставщик", "name": "supplier", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.supplierRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.supplierResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/suppliers/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["suppliers"],
                "summary": "Изменение поставщика",
                "parameters": [
                    {"type": "string", "description": "ID поставщика", "name": "id", "in": "path", "required": true},
                    {"description": "Поставщик", "name": "supplier", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.supplierRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.supplierResponse"}},
                    "404": {"description": "Поставщик не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["suppliers"],
                "summary": "Удаление поставщика",
                "parameters": [{"type": "string", "description": "ID поставщика", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Поставщик не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Список заказов",
                "parameters": [
                    {"type": "string", "description": "all | pending | processing | shipped | delivered", "name": "status", "in": "query"},
                    {"type": "string", "description": "Поиск", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.orderResponse"}}},
                    "400": {"description": "Неизвестный статус", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Создание заказа",
                "parameters": [{"description": "Заказ", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.orderRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.orderResponse"}},
                    "400": {"description": "Ошибка валидации", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Изменение заказа",
                "parameters": [
                    {"type": "string", "description": "ID заказа", "name": "id", "in": "path", "required": true},
                    {"description": "Заказ", "name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.orderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.orderResponse"}},
                    "404": {"description": "Заказ не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["orders"],
                "summary": "Удаление заказа",
                "parameters": [{"type": "string", "description": "ID заказа", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Заказ не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/orders/{id}/status": {
            "patch": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Смена статуса заказа",
                "parameters": [
                    {"type": "string", "description": "ID заказа", "name": "id", "in": "path", "required": true},
                    {"description": "Новый статус", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.statusRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Неизвестный статус", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "404": {"description": "Заказ не найден", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/calculator/profit": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Расчёт прибыли с продажи",
                "parameters": [
                    {"type": "string", "description": "Себестоимость", "name": "cost", "in": "query"},
                    {"type": "string", "description": "Цена продажи", "name": "sell_price", "in": "query"},
                    {"type": "string", "description": "Доставка", "name": "shipping", "in": "query"},
                    {"type": "string", "description": "Комиссия, %", "name": "fees", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.profitResponse"}}
                }
            }
        },
        "/calculator/markup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calculator"],
                "summary": "Рекомендуемая цена",
                "parameters": [
                    {"type": "string", "description": "Себестоимость", "name": "cost", "in": "query"},
                    {"type": "string", "description": "Целевая маржа, %", "name": "margin", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.markupResponse"}}
                }
            }
        }
    },
    "definitions": {
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "field": {"type": "string"}
            }
        },
        "http.productRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "cost": {"type": "string", "example": "10.00"},
                "price": {"type": "string", "example": "25.00"},
                "supplier_id": {"type": "string"},
                "stock": {"type": "string", "enum": ["in_stock", "low_stock", "out_of_stock"]},
                "description": {"type": "string"}
            }
        },
        "http.supplierRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "rating": {"type": "integer"},
                "shipping_days": {"type": "integer"},
                "notes": {"type": "string"}
            }
        },
        "http.orderRequest": {
            "type": "object",
            "properties": {
                "customer": {"type": "string"},
                "email": {"type": "string"},
                "product_id": {"type": "string"},
                "quantity": {"type": "integer"},
                "status": {"type": "string", "enum": ["pending", "processing", "shipped", "delivered"]},
                "address": {"type": "string"}
            }
        },
        "http.statusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "processing", "shipped", "delivered"]}
            }
        },
        "http.productResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "cost": {"type": "number"},
                "price": {"type": "number"},
                "unit_profit": {"type": "number"},
                "margin_percent": {"type": "number"},
                "supplier_id": {"type": "string"},
                "supplier_name": {"type": "string"},
                "stock": {"type": "string"},
                "stock_label": {"type": "string"},
                "description": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.supplierResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "rating": {"type": "integer"},
                "shipping_days": {"type": "integer"},
                "notes": {"type": "string"},
                "product_count": {"type": "integer"},
                "created_at": {"type": "string"}
            }
        },
        "http.orderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "short_id": {"type": "string"},
                "customer": {"type": "string"},
                "email": {"type": "string"},
                "product_id": {"type": "string"},
                "product_name": {"type": "string"},
                "unit_price": {"type": "number"},
                "unit_cost": {"type": "number"},
                "quantity": {"type": "integer"},
                "amount": {"type": "number"},
                "profit": {"type": "number"},
                "status": {"type": "string"},
                "status_label": {"type": "string"},
                "address": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "http.totalsResponse": {
            "type": "object",
            "properties": {
                "revenue": {"type": "number"},
                "profit": {"type": "number"},
                "margin_percent": {"type": "number"},
                "order_count": {"type": "integer"},
                "pending_count": {"type": "integer"}
            }
        },
        "http.topProductResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "margin_percent": {"type": "number"}
            }
        },
        "http.dashboardResponse": {
            "type": "object",
            "properties": {
                "totals": {"$ref": "#/definitions/http.totalsResponse"},
                "product_count": {"type": "integer"},
                "supplier_count": {"type": "integer"},
                "recent_orders": {"type": "array", "items": {"$ref": "#/definitions/http.orderResponse"}},
                "top_products": {"type": "array", "items": {"$ref": "#/definitions/http.topProductResponse"}}
            }
        },
        "http.profitResponse": {
            "type": "object",
            "properties": {
                "gross_profit": {"type": "number"},
                "fees": {"type": "number"},
                "net_profit": {"type": "number"},
                "margin_percent": {"type": "number"}
            }
        },
        "http.markupResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "suggested_price": {"type": "number"},
                "expected_profit": {"type": "number"}
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
	Title:            "Dropflow API",
	Description:      "Товары, поставщики, заказы и сводные показатели для дропшиппинга.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
