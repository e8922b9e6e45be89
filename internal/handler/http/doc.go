// Package http implements the REST API of DevConnector.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer. Failures
// are answered with field-keyed JSON bodies such as
// {"postnotfound":"No post found"}.
package http
