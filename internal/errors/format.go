package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatError renders err with a colored category heading, or plain text
// when color output is disabled.
func FormatError(err *CLIError) string {
	if err == nil {
		return ""
	}
	if color.NoColor {
		return FormatErrorPlain(err)
	}
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	return format(err, red(err.Category.String()+":"), yellow("To fix this:"))
}

// FormatErrorPlain renders err without ANSI colors.
func FormatErrorPlain(err *CLIError) string {
	if err == nil {
		return ""
	}
	return format(err, err.Category.String()+":", "To fix this:")
}

func format(err *CLIError, heading, fixHeading string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", heading, err.Message)
	if err.Usage != "" {
		fmt.Fprintf(&sb, "\nUsage: %s\n", err.Usage)
	}
	if len(err.Remediation) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", fixHeading)
		for i, step := range err.Remediation {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, step)
		}
	}
	return sb.String()
}

// FprintError writes the formatted error to w.
func FprintError(w io.Writer, err *CLIError) {
	if err == nil {
		return
	}
	fmt.Fprint(w, FormatError(err))
}
