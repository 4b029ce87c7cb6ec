// Package server holds the HTTP server configuration.
//
// The server itself is assembled in the start command: Fiber app, ray-id and
// auth middleware, request logging, swagger UI and feature routes.
package server
