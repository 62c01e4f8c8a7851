// Package http implements the JSON REST surface of the inventory server.
//
// It wires chi routes to the service layer, resolves the caller of every
// protected request in the auth middleware and translates service errors
// into status codes through a single error table. Request tracing, access
// logging, panic recovery and per-request timeouts are handled here before
// requests reach the services.
package http
