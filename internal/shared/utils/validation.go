package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Size limits (in bytes)
const (
	MaxMessageSize = 64 * 1024 // single bridge message
	MaxPathLength  = 4096
	MaxNameLength  = 255
)

var (
	// ChannelPattern matches bridge channel names such as fs:readDirectory
	ChannelPattern = regexp.MustCompile(`^[a-z]+:[a-zA-Z]+$`)

	ErrInvalidName = errors.New("invalid name")
	ErrInvalidPath = errors.New("invalid path")
)

// JSONSizeValidator validates JSON size limits
type JSONSizeValidator struct {
	maxSize int
}

// NewJSONSizeValidator creates a new validator with the specified max size
func NewJSONSizeValidator(maxSize int) *JSONSizeValidator {
	return &JSONSizeValidator{maxSize: maxSize}
}

// DefaultJSONValidator returns a validator sized for one bridge message
func DefaultJSONValidator() *JSONSizeValidator {
	return NewJSONSizeValidator(MaxMessageSize)
}

// MaxSize returns the configured limit in bytes
func (v *JSONSizeValidator) MaxSize() int {
	return v.maxSize
}

// ValidateSize checks if the data size is within limits
func (v *JSONSizeValidator) ValidateSize(data []byte) error {
	size := len(data)
	if size > v.maxSize {
		return fmt.Errorf("JSON size %d bytes exceeds maximum %d bytes", size, v.maxSize)
	}
	return nil
}

// ValidateJSON validates both size and JSON structure
func (v *JSONSizeValidator) ValidateJSON(data []byte) error {
	// Check size first (faster than parsing)
	if err := v.ValidateSize(data); err != nil {
		return err
	}

	if !json.Valid(data) {
		return errors.New("invalid JSON")
	}
	return nil
}

// ValidateString validates a string field with length and content checks
func ValidateString(value, fieldName string, minLen, maxLen int, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	if value == "" && !required {
		return nil // Optional field, empty is OK
	}

	length := utf8.RuneCountInString(value)
	if length < minLen {
		return fmt.Errorf("%s must be at least %d characters", fieldName, minLen)
	}
	if length > maxLen {
		return fmt.Errorf("%s must not exceed %d characters", fieldName, maxLen)
	}

	// Check for null bytes (security issue)
	if strings.Contains(value, "\x00") {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateChannel validates a bridge channel name
func ValidateChannel(channel string) error {
	if err := ValidateString(channel, "channel", 3, 64, true); err != nil {
		return err
	}
	if !ChannelPattern.MatchString(channel) {
		return fmt.Errorf("channel %q is malformed", channel)
	}
	return nil
}

// ValidatePath checks that p can be handed to the OS
func ValidatePath(p string) error {
	if err := ValidateString(p, "path", 1, MaxPathLength, true); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPath, err)
	}
	return nil
}

// ValidateEntryName checks that name is a single path component
func ValidateEntryName(name string) error {
	if err := ValidateString(name, "name", 1, MaxNameLength, true); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	}
	return nil
}
