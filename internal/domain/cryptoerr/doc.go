// Package cryptoerr holds the error classes shared by the big integer, prime generation
// and RSA key packages. Callers match them with errors.Is; every layer above wraps them
// with additional context using fmt.Errorf and %w.
package cryptoerr
