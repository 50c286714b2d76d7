package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var actionNameRE = regexp.MustCompile(`^[a-z_]+::[A-Za-z]+$`)

var keyModifiers = map[string]bool{
	"ctrl":  true,
	"alt":   true,
	"shift": true,
}

// ValidateKeyBinding checks a key sequence in the terminal notation
// ("ctrl+w", "alt+left", "]").
func ValidateKeyBinding(value string) []string {
	if value == "" {
		return []string{"key binding cannot be empty"}
	}
	if strings.TrimSpace(value) != value || strings.Contains(value, " ") {
		return []string{fmt.Sprintf("key binding %q must not contain spaces", value)}
	}
	if value == "+" {
		return nil
	}

	parts := strings.Split(value, "+")
	for _, mod := range parts[:len(parts)-1] {
		if !keyModifiers[mod] {
			return []string{fmt.Sprintf("key binding %q has unknown modifier %q", value, mod)}
		}
	}
	if parts[len(parts)-1] == "" {
		return []string{fmt.Sprintf("key binding %q has no key", value)}
	}
	return nil
}

// ValidateActionName checks the "namespace::Action" form.
func ValidateActionName(value string) []string {
	if !actionNameRE.MatchString(value) {
		return []string{fmt.Sprintf("action %q must look like namespace::Action", value)}
	}
	return nil
}
