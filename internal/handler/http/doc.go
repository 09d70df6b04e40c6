// Package http implements the REST transport of the empanada service.
//
// It wires the chi router, the request handlers and the middleware chain.
// Request tracing, access logging, panic recovery, request timeouts and
// bearer-token authentication are handled here before requests are
// delegated to the service layer. Every error response is a JSON body of the
// form {"detail": "..."}.
package http
