// Package rsakey implements textbook RSA on arbitrary-precision integers: the immutable
// RSAKey with its apply transform and "modulus,exponent" text form, key pair derivation,
// and the coercion of caller values (hex strings or *big.Int) into and out of the
// monomorphic bigint core.
//
// Nothing here pads, hashes or stores keys. Apply is the raw map value^exponent mod modulus
// and is used with either half of a pair in either direction.
package rsakey
