// Package extract pulls structured candidate fields out of free-form chat
// input using pattern matching. All functions are pure and side-effect free.
package extract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Deliberately permissive: optional country code, optional parenthesized
	// area code, space/dot/hyphen separators. Many malformed-looking but
	// plausible numbers are accepted on purpose.
	phonePattern = regexp.MustCompile(`\b(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}\b`)

	experiencePattern = regexp.MustCompile(`(\d+(?:\.\d+)?(?:-\d+)?)\s*(?:years?|yrs?)`)
	digitsPattern     = regexp.MustCompile(`\d+`)

	techSeparator = regexp.MustCompile(`,|;|\band\b`)
)

var exitKeywords = []string{"exit", "quit", "bye", "goodbye", "end chat", "stop", "terminate"}

// Email returns the first email-shaped substring in text.
func Email(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}

// Phone returns the first phone-shaped substring in text.
func Phone(text string) (string, bool) {
	match := phonePattern.FindString(text)
	return match, match != ""
}

// Experience returns the numeric years-of-experience token from text: an
// integer, decimal or "X-Y" range followed by year/years/yr/yrs. When no such
// token exists it falls back to the first bare digit run anywhere in the text.
func Experience(text string) (string, bool) {
	if m := experiencePattern.FindStringSubmatch(strings.ToLower(text)); m != nil {
		return m[1], true
	}
	if m := digitsPattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// SplitTechStack splits a declared tech stack on commas, semicolons or the
// standalone word "and", trimming each item and dropping empty pieces. Input
// order is preserved.
func SplitTechStack(text string) []string {
	parts := techSeparator.Split(text, -1)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// IsExit reports whether the text contains any exit keyword as a
// case-insensitive substring.
func IsExit(text string) bool {
	lower := strings.ToLower(text)
	for _, keyword := range exitKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
