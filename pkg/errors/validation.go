package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxNameLength bounds table and column names.
const MaxNameLength = 128

// ValidateName checks a table or column name. Names must be non-empty, at
// most MaxNameLength bytes, free of control characters and must not start
// or end with whitespace. Table names must also be free of '.', which
// separates table from column in the "table.column" endpoint form. Anything
// else, including spaces and unicode, is allowed.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "%s name cannot be empty", kind)
	}

	if len(name) > MaxNameLength {
		return New(ErrCodeInvalidName, "%s name too long (max %d characters)", kind, MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "%s name %q contains control characters", kind, name)
		}
	}

	if kind == "table" && strings.ContainsRune(name, '.') {
		return New(ErrCodeInvalidName, "table name %q must not contain '.'", name)
	}

	if strings.TrimSpace(name) != name {
		return New(ErrCodeInvalidName, "%s name %q has leading or trailing whitespace", kind, name)
	}

	return nil
}

// ValidatePath validates a file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	return nil
}

// layoutIDRegex matches the canonical textual form of a UUID.
var layoutIDRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// ValidateLayoutID checks that id looks like a stored layout identifier.
func ValidateLayoutID(id string) error {
	if !layoutIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid layout id: %q", id)
	}
	return nil
}
