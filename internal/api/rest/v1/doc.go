// Package v1 is the HTTP binding of the key ring: gin handlers that translate
// JSON requests into key ring operations and error classes into status codes.
package v1
