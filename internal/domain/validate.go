package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input length limits.
const (
	TodoTextMin        = 1
	TodoTextMax        = 200
	TodoDescriptionMax = 500
	SearchQueryMax     = 500
)

// safeTextRe allows letters, numbers, whitespace and common punctuation.
var safeTextRe = regexp.MustCompile("^[a-zA-Z0-9\\s\\-_.,!?()\\[\\]{}:;\"'@#$%&*+=<>/\\\\|~`^]*$")

// markupRes match dangerous markup that is stripped during sanitization.
var markupRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script\b.*?</script>`),
	regexp.MustCompile(`(?i)javascript\s*:`),
	regexp.MustCompile(`(?i)on\w+\s*=`),
	regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`),
	regexp.MustCompile(`(?is)<object\b.*?</object>`),
	regexp.MustCompile(`(?is)<embed\b.*?</embed>`),
}

// SanitizeText strips control characters (except tab, newline and
// carriage return) and known dangerous markup, then trims whitespace.
func SanitizeText(input string) string {
	sanitized := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, input)

	for _, re := range markupRes {
		sanitized = re.ReplaceAllString(sanitized, "")
	}

	return strings.TrimSpace(sanitized)
}

// ValidateTodoText validates and sanitizes todo text.
// If sanitization changed anything beyond outer whitespace the input is
// rejected outright rather than silently accepting the cleaned version.
func ValidateTodoText(input string) (string, error) {
	sanitized := SanitizeText(input)

	if sanitized == "" {
		return "", NewValidationError("text", "task text cannot be empty")
	}
	if n := utf8.RuneCountInString(sanitized); n < TodoTextMin {
		return "", NewValidationError("text", fmt.Sprintf("task text must be at least %d character long", TodoTextMin))
	} else if n > TodoTextMax {
		return "", NewValidationError("text", fmt.Sprintf("task text must be %d characters or less", TodoTextMax))
	}
	if !safeTextRe.MatchString(sanitized) {
		return "", NewValidationError("text", "task text contains invalid characters")
	}
	if trimmed := strings.TrimSpace(input); trimmed != "" && sanitized != trimmed {
		return "", NewValidationError("text", "task text contains potentially unsafe content")
	}

	return sanitized, nil
}

// ValidateTodoDescription validates the optional description.
// Blank input is valid and yields the empty string (stored as absent).
func ValidateTodoDescription(input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", nil
	}

	sanitized := SanitizeText(input)

	if utf8.RuneCountInString(sanitized) > TodoDescriptionMax {
		return "", NewValidationError("description", fmt.Sprintf("description must be %d characters or less", TodoDescriptionMax))
	}
	if !safeTextRe.MatchString(sanitized) {
		return "", NewValidationError("description", "description contains invalid characters")
	}
	if trimmed := strings.TrimSpace(input); sanitized != trimmed {
		return "", NewValidationError("description", "description contains potentially unsafe content")
	}

	return sanitized, nil
}

// Accepted todo id shapes: UUID v4, 13+ digit timestamp, or plain
// alphanumeric with - and _.
var (
	uuidIDRe      = regexp.MustCompile(`^(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	timestampIDRe = regexp.MustCompile(`^\d{13,}$`)
	simpleIDRe    = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// ValidateTodoID validates a todo id.
func ValidateTodoID(id string) error {
	if id == "" {
		return NewValidationError("id", "id cannot be empty")
	}
	if !uuidIDRe.MatchString(id) && !timestampIDRe.MatchString(id) && !simpleIDRe.MatchString(id) {
		return NewValidationError("id", "invalid id format")
	}
	return nil
}

// ValidateSearchQuery trims a search query and bounds its length.
// Search never mutates stored content, so no charset restriction applies.
func ValidateSearchQuery(query string) (string, error) {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) > SearchQueryMax {
		return "", NewValidationError("search query", "search query is too long")
	}
	return trimmed, nil
}

// ParseFilterStatus validates a status filter value.
func ParseFilterStatus(s string) (FilterStatus, error) {
	switch FilterStatus(s) {
	case StatusAll, StatusCompleted, StatusIncomplete:
		return FilterStatus(s), nil
	}
	return StatusAll, NewValidationError("status filter", fmt.Sprintf("%q is not one of all, completed, incomplete", s))
}

// ParseFilterPriority validates a priority filter value.
func ParseFilterPriority(s string) (FilterPriority, error) {
	switch FilterPriority(s) {
	case FilterPriorityAll, FilterPriorityHigh, FilterPriorityMedium, FilterPriorityLow:
		return FilterPriority(s), nil
	}
	return FilterPriorityAll, NewValidationError("priority filter", fmt.Sprintf("%q is not one of all, high, medium, low", s))
}

// ParsePriority validates a todo priority value. Empty input defaults
// to medium.
func ParsePriority(s string) (Priority, error) {
	if s == "" {
		return PriorityMedium, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return PriorityMedium, NewValidationError("priority", fmt.Sprintf("%q is not one of high, medium, low", s))
	}
	return p, nil
}
