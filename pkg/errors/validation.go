package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxTermLength bounds index terms accepted from users.
const maxTermLength = 256

// ValidateTerm validates a user-supplied index term before it reaches a
// layout. It only rejects text no layout could ever resolve:
//   - No empty terms
//   - No control characters
//   - Maximum length of 256 characters
//
// Whether the term names a real index function is decided by the layout.
func ValidateTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return New(ErrCodeInvalidTerm, "index term cannot be empty")
	}

	if len(term) > maxTermLength {
		return New(ErrCodeInvalidTerm, "index term too long (max %d characters)", maxTermLength)
	}

	for _, r := range term {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidTerm, "index term contains invalid control characters")
		}
	}

	return nil
}

// optionKeyRegex matches option keys such as "width" or "two_start_positions".
var optionKeyRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateOptionKey validates a layout option key supplied on the command
// line or in a configuration file.
func ValidateOptionKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidOption, "option key cannot be empty")
	}

	if !optionKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidOption, "invalid option key: %q", key)
	}

	return nil
}

// ParseOptionAssignment splits a "key=value" assignment and validates the key.
// The value is returned verbatim; layouts coerce it.
func ParseOptionAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", "", New(ErrCodeInvalidOption, "option %q must have the form key=value", s)
	}
	key = strings.TrimSpace(key)
	if err := ValidateOptionKey(key); err != nil {
		return "", "", err
	}
	return key, strings.TrimSpace(value), nil
}
