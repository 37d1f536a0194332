package address

import (
	"fmt"
	"unicode/utf8"
)

const (
	shortHead = 6
	// Older docs describe the last 4 characters; 5 is what has always
	// been emitted and consumers see that format.
	shortTail = 5
)

// Short returns a display form made of the first 6 and last 5 characters
// joined by "...". The Test sentinel is returned as is.
//
// Short panics if the value is shorter than 6 bytes, which can only happen if
// validation was bypassed, or if either cut would split a multi-byte
// character.
func (a Address) Short() string {
	if a.value == Test {
		return a.value
	}
	if len(a.value) < shortHead {
		panic(fmt.Sprintf("address: Short on unvalidated value %q (%d bytes)", a.value, len(a.value)))
	}
	tail := len(a.value) - shortTail
	if (len(a.value) > shortHead && !utf8.RuneStart(a.value[shortHead])) || !utf8.RuneStart(a.value[tail]) {
		panic(fmt.Sprintf("address: Short would split a multi-byte character in %q", a.value))
	}
	return a.value[:shortHead] + "..." + a.value[tail:]
}
