// Package api serves the solve pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                      liveness and version
//	GET  /v1/circuits                  names of the builtin circuits
//	GET  /v1/circuits/{name}           one builtin circuit
//	POST /v1/solve?max_paths=N         solve a circuit given as JSON; 201 + record
//	GET  /v1/solve                     recent records, newest first
//	GET  /v1/solve/{id}                one record
//	GET  /v1/solve/{id}/svg?ordering=I diagram of both networks with ordering I overlaid
//
// Errors are returned as {"error": {"code": "...", "message": "..."}} with
// a status derived from the error code.
package api
