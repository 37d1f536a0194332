package testkit

import (
	"math/rand"
	"time"
)

// Base58Alphabet is the Bitcoin base-58 alphabet.
const Base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// RNG provides a deterministic random number generator.
// If seed is 0, it uses the current time.
func RNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RandomString returns length characters drawn from alphabet.
func RandomString(r *rand.Rand, alphabet string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

// ValidAddress returns a well-formed address of the given length: a '1'
// followed by base-58 characters.
func ValidAddress(r *rand.Rand, length int) string {
	if length < 1 {
		return ""
	}
	return "1" + RandomString(r, Base58Alphabet, length-1)
}

// WrongPrefixAddress returns a string of the given length whose first
// character is a base-58 character other than '1'.
func WrongPrefixAddress(r *rand.Rand, length int) string {
	if length < 1 {
		return ""
	}
	first := Base58Alphabet[1+r.Intn(len(Base58Alphabet)-1)]
	return string(first) + RandomString(r, Base58Alphabet, length-1)
}

// PrintableString returns length printable ASCII characters, including ones
// outside the base-58 alphabet.
func PrintableString(r *rand.Rand, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = byte(0x21 + r.Intn(0x7e-0x21+1))
	}
	return string(b)
}
