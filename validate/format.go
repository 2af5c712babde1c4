package validate

import (
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email checks that the string looks like a plausible email address.
func Email(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Invalid("email is required")
	}
	if !emailPattern.MatchString(s) {
		return Invalid(fmt.Sprintf("invalid email format: %q", s))
	}
	return Valid()
}

// URL checks that the string parses as an absolute http(s) URL with a host.
func URL(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Invalid("url is required")
	}
	u, err := url.Parse(s)
	if err != nil {
		return Invalid(fmt.Sprintf("invalid url: %v", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Invalid(fmt.Sprintf("unsupported url scheme: %q", u.Scheme))
	}
	if u.Host == "" {
		return Invalid("url is missing a host")
	}
	return Valid()
}

// JSON checks that the string is well-formed JSON.
func JSON(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Invalid("json is required")
	}
	if !json.Valid([]byte(s)) {
		return Invalid("invalid json")
	}
	return Valid()
}

// Cron field syntax: "*", optionally with a step, or a comma list of values
// and ranges, each optionally stepped. Only numeric values - day and month
// names (MON, JAN) are not supported.
var cronFieldPattern = regexp.MustCompile(`^(\*(/\d+)?|\d+(-\d+)?(/\d+)?(,\d+(-\d+)?(/\d+)?)*)$`)

// CronExpression checks a cron schedule of exactly 5 or 6 whitespace-separated
// fields. The first five (minute, hour, day-of-month, month, day-of-week)
// must match the numeric syntax above; an optional sixth field is accepted
// without inspection.
func CronExpression(s string) Result {
	fields := strings.Fields(s)
	if len(fields) != 5 && len(fields) != 6 {
		return Invalid(fmt.Sprintf("cron expression must have 5 or 6 fields, got %d", len(fields)))
	}

	for i, field := range fields[:5] {
		if !cronFieldPattern.MatchString(field) {
			return Invalid(fmt.Sprintf("invalid cron field %d: %q", i+1, field))
		}
	}
	return Valid()
}

// Common injection shapes: stacked destructive statements, UNION-based
// extraction, tautologies and comment truncation. Best-effort heuristics
// only - this is not a SQL parser and false negatives are expected.
var sqlInjectionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i);\s*drop\b`),
	regexp.MustCompile(`(?i);\s*delete\b`),
	regexp.MustCompile(`(?i);\s*truncate\b`),
	regexp.MustCompile(`(?i);\s*update\b`),
	regexp.MustCompile(`(?i);\s*insert\b`),
	regexp.MustCompile(`(?i)union[\s(]+(all\s+)?select`),
	regexp.MustCompile(`(?i)'\s*or\s*'1'\s*=\s*'1`),
	regexp.MustCompile(`(?i)\bor\s+1\s*=\s*1\b`),
	regexp.MustCompile(`(?i)\bexec\s*\(`),
	regexp.MustCompile(`(?i)\bxp_cmdshell\b`),
	regexp.MustCompile(`--\s*$`),
}

// SQLQuery screens a query string for common injection patterns.
func SQLQuery(s string) Result {
	if strings.TrimSpace(s) == "" {
		return Invalid("query is required")
	}
	for _, pattern := range sqlInjectionPatterns {
		if pattern.MatchString(s) {
			return Invalid("query contains a suspicious pattern")
		}
	}
	return Valid()
}

// DefaultConnectionSchemes is the recognized set of data-source URI prefixes.
// Unknown-but-valid schemes are rejected by design; use
// ConnectionStringSchemes to supply a different whitelist.
var DefaultConnectionSchemes = []string{
	"jdbc:",
	"postgresql:",
	"mysql:",
	"mongodb:",
	"redis:",
	"elasticsearch:",
	"snowflake:",
	"databricks:",
}

// ConnectionString checks the string against DefaultConnectionSchemes.
func ConnectionString(s string) Result {
	return ConnectionStringSchemes(s, DefaultConnectionSchemes)
}

// ConnectionStringSchemes checks that the string starts with one of the given
// scheme prefixes.
func ConnectionStringSchemes(s string, schemes []string) Result {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Invalid("connection string is required")
	}

	lowered := strings.ToLower(trimmed)
	for _, scheme := range schemes {
		if strings.HasPrefix(lowered, scheme) {
			return Valid()
		}
	}
	return Invalid(fmt.Sprintf("unrecognized connection scheme in %q", trimmed))
}
