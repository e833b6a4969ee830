// Package errs collects the sentinel error kinds shared across the
// accumulator packages, so callers can errors.Is against a stable kind
// rather than matching on message text.
package errs

import "errors"

var (
	// ErrModulusMismatch is returned when an arithmetic operation is asked
	// to combine operands defined over different moduli, or when a witness,
	// accumulator and public key disagree on modulus at verification time.
	ErrModulusMismatch = errors.New("accumulator: operand moduli do not match")

	// ErrParse is returned when a numeric string (e.g. a line of a random
	// bigint file) cannot be parsed.
	ErrParse = errors.New("accumulator: malformed numeric input")

	// ErrCrypto is returned when key generation cannot produce valid key
	// material of the requested size.
	ErrCrypto = errors.New("accumulator: key generation failed")

	// ErrPairing is returned when a pairing result fails an internal
	// well-formedness check.
	ErrPairing = errors.New("accumulator: pairing output invariant violated")

	// ErrIO is returned for truncated or unreadable key/scalar files.
	ErrIO = errors.New("accumulator: truncated or unreadable file")
)
