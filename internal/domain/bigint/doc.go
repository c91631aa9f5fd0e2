// Package bigint implements the arbitrary-precision non-negative integer used by the RSA key
// code: canonical word storage, case-insensitive hexadecimal import with lowercase export,
// fixed-length little-endian byte buffers, comparison and modular exponentiation.
//
// A BigInteger is an immutable value. Its zero value is the number zero and is ready to use.
package bigint
