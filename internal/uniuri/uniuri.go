// Package uniuri generates cryptographically secure random strings used as
// bearer tokens. Values are drawn from crypto/rand with rejection sampling,
// so every character of the alphabet is equally likely.
package uniuri

import "crypto/rand"

// StdChars is the alphabet of generated strings: unpadded base62, safe in
// URLs, headers and cookies without escaping.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789")

// StdLen is the default length, ~95 bits of entropy over StdChars.
const StdLen = 16

// New returns a random string of the standard length.
func New() string {
	return NewLen(StdLen)
}

// NewLen returns a random string of the given length over StdChars.
func NewLen(length int) string {
	return NewLenChars(length, StdChars)
}

// NewLenChars returns a random string of the given length over the given
// alphabet (2..256 characters). It panics when the system random source
// fails; a console that cannot mint unguessable tokens must not serve.
func NewLenChars(length int, chars []byte) string {
	if length == 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > 256 {
		panic("uniuri: charset length out of range")
	}

	// Largest byte value that keeps the modulo unbiased.
	maxRb := 255 - (256 % clen)

	out := make([]byte, length)
	buf := make([]byte, length+length/2+16)

	i := 0
	for {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, rb := range buf {
			if int(rb) > maxRb {
				continue
			}

			out[i] = chars[int(rb)%clen]
			i++

			if i == length {
				return string(out)
			}
		}
	}
}
