package validation

import (
	"fmt"
	"strings"
	"unicode"
)

const maxLayoutNameLength = 64

// ValidateLayoutName checks a saved layout name: non-empty, printable, no
// path separators.
func ValidateLayoutName(value string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{"layout name cannot be empty"}
	}
	if len(value) > maxLayoutNameLength {
		return []string{fmt.Sprintf("layout name must be at most %d bytes", maxLayoutNameLength)}
	}
	if strings.ContainsAny(value, `/\`) {
		return []string{fmt.Sprintf("layout name %q must not contain path separators", value)}
	}
	for _, r := range value {
		if !unicode.IsPrint(r) {
			return []string{fmt.Sprintf("layout name %q contains a non-printable character", value)}
		}
	}
	return nil
}
