package errors

import (
	"fmt"
	"strings"
)

// UnknownCollection reports a collection name that is not registered.
func UnknownCollection(name string, known []string, err error) *CLIError {
	return &CLIError{
		Category: Argument,
		Message:  fmt.Sprintf("unknown collection %q", name),
		Remediation: []string{
			fmt.Sprintf("Valid collections: %s", strings.Join(known, ", ")),
			"Run 'contentcheck collections' to list them",
		},
		Err: err,
	}
}

// UnreadableRecord reports a record document that could not be read or parsed.
func UnreadableRecord(path string, err error) *CLIError {
	return &CLIError{
		Category: Input,
		Message:  err.Error(),
		Remediation: []string{
			fmt.Sprintf("Check that %s exists and holds a single YAML or JSON mapping", path),
		},
		Err: err,
	}
}

// InvalidConfig reports a configuration that failed to load.
func InvalidConfig(err error) *CLIError {
	return &CLIError{
		Category: Configuration,
		Message:  err.Error(),
		Remediation: []string{
			"Fix or remove the offending config file",
			"Unset CONTENTCHECK_* environment variables that carry invalid values",
		},
		Err: err,
	}
}
