// Package api defines the request and response messages of the Total Manager
// RPC services. Messages travel as JSON; field names are snake_case.
//
// Timestamps are Unix seconds. Calendar dates are "YYYY-MM-DD" strings.
// Optional fields in update requests are pointers: nil leaves the stored
// value unchanged.
//
// Request structs carry validate tags checked by the service layer with
// github.com/go-playground/validator/v10.
package api

// Empty is the response of operations that return nothing.
type Empty struct{}
