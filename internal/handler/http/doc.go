// Package http implements the HTTP presentation layer of the web client.
//
// It exposes route wiring, the page handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression,
// browser sessions, and per-IP rate limiting are handled in this package
// before requests are delegated to the service layer.
package http
