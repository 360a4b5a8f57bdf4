package boxes

import (
	"fmt"
	"strings"
)

// Policy decides which characters a box may hold.
type Policy uint8

const (
	// PolicyDigits accepts only ASCII digits 0-9.
	PolicyDigits Policy = iota
	// PolicyAny accepts any non-empty character.
	PolicyAny
)

// Allows reports whether every rune of v is acceptable. Empty input is never
// acceptable.
func (p Policy) Allows(v string) bool {
	if v == "" {
		return false
	}
	if normalizePolicy(p) == PolicyAny {
		return true
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (p Policy) String() string {
	switch p {
	case PolicyDigits:
		return "digits"
	case PolicyAny:
		return "any"
	default:
		return fmt.Sprintf("Policy(%d)", uint8(p))
	}
}

// ParsePolicy parses the names produced by Policy.String.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "digits", "digit", "numeric":
		return PolicyDigits, nil
	case "any", "chars", "text":
		return PolicyAny, nil
	default:
		return PolicyDigits, fmt.Errorf("unknown character policy %q", s)
	}
}

func normalizePolicy(p Policy) Policy {
	switch p {
	case PolicyDigits, PolicyAny:
		return p
	default:
		return PolicyDigits
	}
}
