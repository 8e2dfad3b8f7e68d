package validators

import "strings"

// IsPhoneValid accepts digits with an optional leading +, separators
// allowed. Intentionally loose: the club keeps numbers for humans to
// dial, not for machine routing.
func IsPhoneValid(phone string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')':
			return -1
		}
		return r
	}, phone)

	if strings.HasPrefix(cleaned, "+") {
		cleaned = cleaned[1:]
	}

	if len(cleaned) < 7 || len(cleaned) > 15 {
		return false
	}

	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
