package config

import "fmt"

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}
