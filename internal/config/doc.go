// Package config loads the settings of both DevConnector binaries.
//
// Values come from the environment, then command-line flags, then an
// optional JSON file named by -c/CONFIG; each later source overrides the
// non-zero fields of the earlier ones and the result is validated before
// use. [GetStructuredConfig] serves the API server (listen addresses, the
// Postgres DSN, token signing and the posts section). [GetClientConfig]
// serves the terminal client (API address, session database, log file).
package config
