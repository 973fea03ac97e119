// Package server runs the agent's loopback HTTP server.
//
// It owns the server lifecycle: refusing non-loopback bind addresses,
// startup, signal handling, and graceful shutdown with an in-flight
// request drain.
package server
