// Package prime generates probable primes of an exact bit length for RSA key derivation.
//
// Candidates are drawn from a RandomSource, forced odd with their two top bits set, sieved
// against the odd primes up to 53 and then tested with math/big's Miller-Rabin plus
// Baillie-PSW check. The search is bounded; exhausting it fails with
// cryptoerr.ErrKeyGenerationFailed instead of looping forever.
package prime
