package errors

import (
	"strings"
	"unicode"
)

// maxKeyLength bounds level keys accepted from flags, env and config.
const maxKeyLength = 256

// ValidateLevelKey validates a level key typed by the user in a flag, the
// PICROSS_LEVEL environment variable or the config file.
//
// A stage document may hold any JSON5 key, including "" and keys with
// control characters; such levels are reachable through the pipeline API
// and the browse picker but not by name from the command line. The rules
// here reject values that would corrupt terminal output or are almost
// certainly typos:
//   - No empty keys
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLevelKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "level key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidKey, "level key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidKey, "level key contains invalid control characters")
		}
	}

	return nil
}

// ValidateFormat checks an output format name against the allowed set.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}
