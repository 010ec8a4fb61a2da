package logging

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
)

// DebugEnv enables debug output when set to "true".
const DebugEnv = "CODEDEPLOY_MODEL_DEBUG"

var (
	// Default logger instance
	logger *slog.Logger

	// Patterns for detecting sensitive data
	sensitivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(password|secret|token|key|auth)[\s]*[:=][\s]*[^\s]+`),
		regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
		regexp.MustCompile(`(?i)Basic\s+[A-Za-z0-9+/]+=*`),
		regexp.MustCompile(`AKIA[0-9A-Z]{16}`),           // AWS Access Key
		regexp.MustCompile(`gh[pousr]_[A-Za-z0-9]{36,}`), // GitHub token
		regexp.MustCompile(`[0-9a-zA-Z/+=]{40}`),         // AWS Secret Key pattern
	}

	sensitiveKeys = map[string]bool{
		"password":          true,
		"secret":            true,
		"token":             true,
		"key":               true,
		"auth":              true,
		"credential":        true,
		"access_key":        true,
		"secret_key":        true,
		"access_key_id":     true,
		"secret_access_key": true,
		"client_secret":     true,
		"api_key":           true,
		"githubtoken":       true,
	}
)

func init() {
	logger = New(os.Stderr, os.Getenv(DebugEnv) == "true")
}

// New returns a JSON logger writing to w, at debug level when debug is set.
func New(w io.Writer, debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if debug {
		opts.Level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// SetLogger allows overriding the default logger
func SetLogger(l *slog.Logger) {
	logger = l
}

// GetLogger returns the current logger instance
func GetLogger() *slog.Logger {
	return logger
}

// SanitizeString removes or masks sensitive data from strings
func SanitizeString(s string) string {
	sanitized := s
	for _, pattern := range sensitivePatterns {
		sanitized = pattern.ReplaceAllStringFunc(sanitized, func(match string) string {
			// Extract the key part before the value
			parts := strings.SplitN(match, ":", 2)
			if len(parts) == 2 {
				return parts[0] + ": [REDACTED]"
			}
			parts = strings.SplitN(match, "=", 2)
			if len(parts) == 2 {
				return parts[0] + "=[REDACTED]"
			}
			return "[REDACTED]"
		})
	}
	return sanitized
}

// SanitizeMap creates a sanitized copy of a map, redacting sensitive keys
func SanitizeMap(m map[string]any) map[string]any {
	sanitized := make(map[string]any, len(m))
	for k, v := range m {
		if sensitiveKeys[strings.ToLower(k)] {
			sanitized[k] = "[REDACTED]"
		} else if strVal, ok := v.(string); ok {
			sanitized[k] = SanitizeString(strVal)
		} else {
			sanitized[k] = v
		}
	}
	return sanitized
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// DebugContext logs a debug message with additional context fields
func DebugContext(msg string, contextFields map[string]any, args ...any) {
	logger.Debug(msg, withContext(contextFields, args)...)
}

func withContext(contextFields map[string]any, args []any) []any {
	sanitized := SanitizeMap(contextFields)
	allArgs := make([]any, 0, len(args)+len(sanitized)*2)
	allArgs = append(allArgs, args...)
	for k, v := range sanitized {
		allArgs = append(allArgs, k, v)
	}
	return allArgs
}
