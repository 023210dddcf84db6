package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds actor names accepted from interactive input.
const maxNameLength = 256

// ValidateActorName validates an actor name typed by a user.
//
// Names must be non-empty after trimming, at most 256 characters, and free
// of control characters. The pipe character is rejected because it is the
// column separator of the data files, so no loaded actor can contain it.
func ValidateActorName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "actor name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidInput, "actor name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "actor name contains invalid control characters")
		}
	}

	if strings.Contains(name, "|") {
		return New(ErrCodeInvalidInput, "actor name cannot contain %q", "|")
	}

	return nil
}

// ValidateRange validates an inclusive [low, high] query range.
// Both bounds must be non-negative and low must not exceed high.
func ValidateRange(low, high int) error {
	if low < 0 || high < 0 {
		return New(ErrCodeInvalidRange, "range bounds must be non-negative (got %d..%d)", low, high)
	}
	if low > high {
		return New(ErrCodeInvalidRange, "low bound %d is greater than high bound %d", low, high)
	}
	return nil
}

// ValidateDataPath validates a data file path from configuration or flags.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateDataPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
