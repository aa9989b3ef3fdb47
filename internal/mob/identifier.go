package mob

import (
	"regexp"
	"strings"
)

// FallbackIdentifier is returned when a display name yields no usable
// characters.
const FallbackIdentifier = "custom_mob"

var nonIdentifierRun = regexp.MustCompile(`[^a-z0-9]+`)

// Sanitize converts a display name into a stable snake_case identifier safe
// for file paths and cross-references. The same name always yields the same
// identifier and the function is idempotent.
func Sanitize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonIdentifierRun.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return FallbackIdentifier
	}
	return s
}
