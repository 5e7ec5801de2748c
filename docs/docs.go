// Package docs registers the OpenAPI description served at /swagger.
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
        "/company": {
            "get": {"tags": ["company"], "summary": "Get the issuing company profile", "responses": {"200": {"description": "OK"}, "409": {"description": "Company not configured"}}},
            "put": {"tags": ["company"], "summary": "Create or update the issuing company profile", "responses": {"200": {"description": "OK"}, "400": {"description": "Validation failed"}}}
        },
        "/customers": {
            "get": {"tags": ["customers"], "summary": "List or search customers", "parameters": [{"type": "string", "name": "q", "in": "query"}, {"type": "integer", "name": "offset", "in": "query"}, {"type": "integer", "name": "limit", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["customers"], "summary": "Create a customer", "responses": {"201": {"description": "Created"}, "400": {"description": "Validation failed"}}}
        },
        "/customers/{id}": {
            "get": {"tags": ["customers"], "summary": "Get a customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["customers"], "summary": "Update a customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["customers"], "summary": "Deactivate a customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/products": {
            "get": {"tags": ["products"], "summary": "List or search products", "parameters": [{"type": "string", "name": "q", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["products"], "summary": "Create a product", "responses": {"201": {"description": "Created"}}}
        },
        "/products/{id}": {
            "get": {"tags": ["products"], "summary": "Get a product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["products"], "summary": "Update a product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["products"], "summary": "Deactivate a product", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/states": {
            "get": {"tags": ["states"], "summary": "List states and union territories", "responses": {"200": {"description": "OK"}}}
        },
        "/states/{code}": {
            "get": {"tags": ["states"], "summary": "Get a state by GST code", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices": {
            "get": {"tags": ["invoices"], "summary": "List invoices", "parameters": [{"type": "string", "name": "customer_id", "in": "query"}, {"type": "string", "name": "status", "in": "query"}, {"type": "string", "name": "from", "in": "query"}, {"type": "string", "name": "to", "in": "query"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["invoices"], "summary": "Issue an invoice", "responses": {"201": {"description": "Created"}, "409": {"description": "Company not configured"}}}
        },
        "/invoices/export": {
            "get": {"tags": ["invoices"], "summary": "Export the invoice register", "parameters": [{"enum": ["csv", "xlsx"], "type": "string", "name": "format", "in": "query"}, {"type": "string", "name": "from", "in": "query", "required": true}, {"type": "string", "name": "to", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{id}": {
            "get": {"tags": ["invoices"], "summary": "Get an invoice with its items", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{id}/status": {
            "put": {"tags": ["invoices"], "summary": "Change invoice status", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Invalid transition"}}}
        },
        "/invoices/{id}/pdf": {
            "get": {"tags": ["invoices"], "summary": "Get a presigned download URL", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["invoices"], "summary": "Render and store the invoice PDF", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{id}/pdf/file": {
            "get": {"tags": ["invoices"], "summary": "Download the invoice PDF", "produces": ["application/pdf"], "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/invoices/{id}/send": {
            "post": {"tags": ["invoices"], "summary": "Email the invoice to the customer", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "502": {"description": "Email failed"}}}
        },
        "/gst/calculate": {
            "post": {"tags": ["gst"], "summary": "Split GST on a taxable amount", "responses": {"200": {"description": "OK"}}}
        },
        "/gst/line-item": {
            "post": {"tags": ["gst"], "summary": "Calculate one invoice line", "responses": {"200": {"description": "OK"}}}
        },
        "/gst/totals": {
            "post": {"tags": ["gst"], "summary": "Calculate invoice totals", "responses": {"200": {"description": "OK"}}}
        },
        "/gst/gstin/{gstin}": {
            "get": {"tags": ["gst"], "summary": "Validate a GSTIN", "parameters": [{"type": "string", "name": "gstin", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/gst/hsn-sac/{code}": {
            "get": {"tags": ["gst"], "summary": "Validate an HSN or SAC code", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}, {"enum": ["GOODS", "SERVICES"], "type": "string", "name": "supply", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/gst/invoice-number/preview": {
            "get": {"tags": ["gst"], "summary": "Preview the next invoice number", "parameters": [{"type": "string", "name": "format", "in": "query"}, {"type": "string", "name": "date", "in": "query"}], "responses": {"200": {"description": "OK"}}}
        },
        "/gst/amount-in-words": {
            "get": {"tags": ["gst"], "summary": "Spell an amount in Indian English", "parameters": [{"type": "number", "name": "amount", "in": "query", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/gst/rates": {
            "get": {"tags": ["gst"], "summary": "List standard GST rates", "responses": {"200": {"description": "OK"}}}
        },
        "/stats/counts": {
            "get": {"tags": ["stats"], "summary": "Entity counts", "responses": {"200": {"description": "OK"}}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Payvlo GST Invoicing API",
	Description:      "GST-compliant invoicing for Indian businesses.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
