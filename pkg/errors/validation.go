package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a user-supplied file path for input or output images
// and recipes.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
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

// ValidateName validates a registry name (shape, sorter or step kind).
// Names are lowercase ASCII words joined by '-'.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "%s name too long (max 64 characters)", kind)
	}
	if strings.Trim(name, "-") != name {
		return New(ErrCodeInvalidInput, "%s name cannot start or end with '-': %q", kind, name)
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			return New(ErrCodeInvalidInput, "invalid %s name: %q", kind, name)
		}
	}
	return nil
}

// ValidateExtent validates a non-negative grid extent such as a width,
// length or padding.
func ValidateExtent(name string, v int) error {
	if v < 0 {
		return New(ErrCodeRange, "%s must be non-negative, got %d", name, v)
	}
	return nil
}
