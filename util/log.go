package util

import (
	"github.com/hauke96/sigolo/v2"
	"github.com/pkg/errors"
	"strings"
)

func LogFatalBug(format string, args ...interface{}) {
	sigolo.Fatalb(1, format+" - This is a bug, please report it", args...)
}

// ConfigureLogging sets the default log level by its name. Unknown names result in an error and leave the level
// untouched.
func ConfigureLogging(level string) error {
	switch strings.ToLower(level) {
	case "trace":
		sigolo.SetDefaultLogLevel(sigolo.LOG_TRACE)
	case "debug":
		sigolo.SetDefaultLogLevel(sigolo.LOG_DEBUG)
	case "info":
		sigolo.SetDefaultLogLevel(sigolo.LOG_INFO)
		sigolo.SetDefaultFormatFunctionAll(sigolo.LogPlain)
	default:
		return errors.Errorf("Unknown logging level '%s'", level)
	}
	return nil
}

// Truncate shortens the text to at most maxLength runes for log output.
func Truncate(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) > maxLength {
		return string(runes[:maxLength]) + "... [truncated]"
	}
	return text
}
