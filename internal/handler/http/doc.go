// Package http implements the HTTP transport layer of the vault server.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication and access logging are
// handled in this package before requests are delegated to the service layer.
package http
