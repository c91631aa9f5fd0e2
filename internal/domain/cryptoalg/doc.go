// Package cryptoalg defines the processor contracts the application and CLI layers use to run
// cryptographic operations, keeping them independent of the concrete implementations in the
// infrastructure layer.
package cryptoalg
