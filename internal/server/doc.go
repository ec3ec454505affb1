// Package server wires and runs the web client's HTTP server.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown, so that in-flight page renders and backend calls finish before
// the process exits.
package server
