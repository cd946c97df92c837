// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, and response compression are handled in this package before
// requests are delegated to the service layer. Error sentinels bubbling up
// from the service and store layers are translated here into HTTP status
// codes with user-presentable French messages.
package http
