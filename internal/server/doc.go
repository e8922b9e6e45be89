// Package server runs the DevConnector transports: the REST API over HTTP
// and the gRPC health service. Both stop together on SIGINT, SIGTERM or
// SIGQUIT.
package server
