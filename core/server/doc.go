// Package server holds the HTTP server configuration.
//
// The start command reads Config for the listen port, the API key checked by
// the auth middleware and whether write endpoints are exposed.
package server
