// Package otp generates the 4-digit pairing codes exchanged out-of-band
// between customer and driver to authorize trip start. The codes are
// human-readable pairing codes, not auth secrets, so math/rand is enough.
package otp

import (
	"math/rand"
	"strconv"
)

// Generate returns a uniformly random 4-digit code in [1000, 9999].
// The range excludes leading zeros.
func Generate() string {
	return strconv.Itoa(1000 + rand.Intn(9000))
}
