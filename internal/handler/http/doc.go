// Package http implements the loopback HTTP transport of the agent.
//
// It exposes route wiring, request handlers, and middleware used by the
// REST API the desktop shell talks to. Cross-cutting concerns such as
// request tracing, access logging, and response compression are handled
// in this package before requests are delegated to the service layer.
// The agent binds loopback only; there is no authentication surface.
package http
