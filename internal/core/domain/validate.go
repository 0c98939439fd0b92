package domain

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MinQueryLength is the shortest accepted search query.
	MinQueryLength = 2

	// MaxQueryLength is the longest accepted search query.
	MaxQueryLength = 256
)

// usernameRegex matches GitHub account names: alphanumeric and single
// hyphens, no leading or trailing hyphen, at most 39 characters.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9]|-[a-zA-Z0-9]){0,38}$`)

// ValidateSearchQuery checks a search query before it reaches the API.
func ValidateSearchQuery(query string) error {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return fmt.Errorf("%w: query is required", ErrInvalidInput)
	}
	if len(trimmed) < MinQueryLength {
		return fmt.Errorf("%w: query must have at least %d characters", ErrInvalidInput, MinQueryLength)
	}
	if len(trimmed) > MaxQueryLength {
		return fmt.Errorf("%w: query is too long", ErrInvalidInput)
	}
	return nil
}

// ValidateUsername checks an account name against GitHub's naming rules.
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)
	if trimmed == "" {
		return fmt.Errorf("%w: username is required", ErrInvalidUsername)
	}
	if len(trimmed) > 39 {
		return fmt.Errorf("%w: %q exceeds 39 characters", ErrInvalidUsername, trimmed)
	}
	if !usernameRegex.MatchString(trimmed) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, trimmed)
	}
	return nil
}
