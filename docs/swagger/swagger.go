// Package swagger Places Directory Service API.
//
// Location-backed directory of geocoded places owned by companies or
// individuals, with radius-bounded nearest-first proximity queries.
// Access is gated by a static API-key allowlist.
//
//	Schemes: http
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-API-Key
//	     in: header
//
// swagger:meta
package swagger
