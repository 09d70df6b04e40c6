// Package server runs the HTTP server of the application.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown on SIGINT, SIGTERM or SIGQUIT.
package server
