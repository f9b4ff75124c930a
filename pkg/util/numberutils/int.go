package numberutils

import (
	"strconv"
	"strings"
	"unicode"
)

// IsDigits checks if the given string is non-empty and contains only ASCII digits (0-9).
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// ToUint converts a positive decimal identifier. Signs, blanks and zero are rejected.
func ToUint(s string) (uint, bool) {
	s = strings.TrimSpace(s)
	if !IsDigits(s) {
		return 0, false
	}
	value, err := strconv.ParseUint(s, 10, strconv.IntSize)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// ToUintPtr is ToUint for optional values: it returns nil when s is not a valid identifier.
func ToUintPtr(s string) *uint {
	value, ok := ToUint(s)
	if !ok {
		return nil
	}
	return &value
}
