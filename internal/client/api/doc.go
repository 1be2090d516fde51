// Package api is the HTTP wrapper around the marketplace REST API.
//
// Every call is issued with credentials included: the client keeps a cookie
// jar for the server session and attaches the stored access token as a
// bearer token, read from a TokenSource on each request. File endpoints are
// sent as multipart forms, everything else as JSON.
//
// # Errors
//
// A non-2xx response is returned as *Error carrying the raw response body.
// Transport failures wrap ErrUnavailable; 401 responses match
// ErrUnauthorized under errors.Is.
package api
