package fetch

import (
	"net/url"
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`^(https?://)([a-zA-Z0-9\-.]+\.[a-zA-Z]{2,})(:\d+)?(/\S*)?$`)

// IsURL reports whether the input is a fetchable web address rather than a
// topic or free-text claim. Only absolute http(s) URLs qualify.
func IsURL(input string) bool {
	trimmed := strings.TrimSpace(input)
	if !urlPattern.MatchString(trimmed) {
		return false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
