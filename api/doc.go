// Package api provides the HTTP API layer for the CredCheck application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
// - POST /analyze: score one article from a URL or pasted text
// - POST /scan: discover and score the articles linked from a site front page
// - GET /healthz: liveness probe
//
// The OpenAPI 3.0 spec is served at /openapi.json and an interactive
// docs UI at /docs.
//
// # Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type ScanRequest struct {
//	    URL   string `json:"url" required:"true" format:"uri"`
//	    Limit int    `json:"limit,omitempty" minimum:"1" maximum:"25" default:"10"`
//	}
//
// Cross-field rules that tags cannot express, such as the url/text
// exclusivity on /analyze, live on the request DTO's Validate method.
//
// # Middleware
//
// Requests pass through CORS, request logging and per-IP rate limiting
// before reaching a handler. The logging middleware assigns each request
// a UUID exposed in the X-Request-ID response header.
package api
