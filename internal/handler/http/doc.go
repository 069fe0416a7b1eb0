// Package http implements the JSON REST API of the cipher server.
//
// Routes:
//
//	GET    /api/version/   plain-text server version
//	GET    /api/methods    method catalog
//	POST   /api/transform  run a transform, record it in the history
//	POST   /api/strength   score a text
//	GET    /api/history    rolling history, newest first
//	DELETE /api/history    clear the history
//
// Every request passes through panic recovery, trace ID assignment, access
// logging and gzip handling before reaching the handlers.
package http
