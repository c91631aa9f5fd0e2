// Package keys defines the key ring: stored RSA key halves, the query
// used to list them, and the repository and service contracts around them.
package keys
