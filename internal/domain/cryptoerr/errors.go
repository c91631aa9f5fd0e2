package cryptoerr

import "errors"

// ErrInvalidFormat reports malformed key text or malformed hex given to the big integer parser.
var ErrInvalidFormat = errors.New("invalid format")

// ErrInvalidHexInput reports a malformed hex string passed to apply.
var ErrInvalidHexInput = errors.New("invalid hex input")

// ErrNegativeValueUnsupported reports a negative integer where only unsigned magnitudes are accepted.
var ErrNegativeValueUnsupported = errors.New("negative values are not supported")

// ErrUnsupportedValueType reports an apply input that is neither a hex string nor an integer.
var ErrUnsupportedValueType = errors.New("unsupported value type")

// ErrUninitializedKey reports a transform attempted with a key whose modulus or exponent is zero.
var ErrUninitializedKey = errors.New("key is not initialized")

// ErrInvalidKeySize reports a key size that is not a power of two in [16, 16384].
var ErrInvalidKeySize = errors.New("invalid key size")

// ErrKeyGenerationFailed reports that the bounded prime / exponent search was exhausted.
var ErrKeyGenerationFailed = errors.New("key generation failed")

// ErrDivisionByZero guards modular arithmetic against a zero modulus.
var ErrDivisionByZero = errors.New("division by zero")

// ErrBufferTooSmall reports a byte encoding request shorter than the magnitude.
var ErrBufferTooSmall = errors.New("buffer too small")
