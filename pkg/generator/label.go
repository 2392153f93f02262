package generator

import (
	"fmt"
	"runtime"
	"strings"
	"unicode"
)

// windowsReserved are characters Windows refuses in file names.
const windowsReserved = `<>:"|?*`

// ValidateLabel checks that label can be used verbatim as a file base name.
func ValidateLabel(label string) error {
	switch label {
	case "", ".", "..":
		return fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	if c, ok := badChar(label); ok {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidLabel, label, c)
	}
	return nil
}

// validateAlphabet rejects characters that can never appear in a file name,
// so a batch fails before creating any directory.
func validateAlphabet(alphabet string) error {
	if c, ok := badChar(alphabet); ok {
		return fmt.Errorf("%w: alphabet contains %q", ErrInvalidLabel, c)
	}
	return nil
}

func badChar(s string) (rune, bool) {
	for _, c := range s {
		if c == '/' || c == 0 {
			return c, true
		}
		if runtime.GOOS == "windows" {
			if c == '\\' || unicode.IsControl(c) || strings.ContainsRune(windowsReserved, c) {
				return c, true
			}
		}
	}
	return 0, false
}
