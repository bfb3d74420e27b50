package logging

import (
	"net/http"
	"regexp"
	"sort"
	"strings"
)

const masked = "***MASKED***"

type sensitivePattern struct {
	regex       *regexp.Regexp
	replacement string
}

var sensitivePatterns = []sensitivePattern{
	{
		regex:       regexp.MustCompile(`(?i)Bearer\s+[A-Za-z0-9\-._~+/]+=*`),
		replacement: "Bearer " + masked,
	},
	{
		regex:       regexp.MustCompile(`(?i)Basic\s+[A-Za-z0-9+/]+=*`),
		replacement: "Basic " + masked,
	},
	{
		regex:       regexp.MustCompile(`(?i)((?:api[_-]?key|access[_-]?token|token|password|secret)=)[^&\s]+`),
		replacement: "${1}" + masked,
	},
}

var sensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// Mask replaces credentials found in s.
func Mask(s string) string {
	for _, p := range sensitivePatterns {
		s = p.regex.ReplaceAllString(s, p.replacement)
	}
	return s
}

// MaskHeader flattens a header for logging, hiding the values of
// credential-bearing fields.
func MaskHeader(header http.Header) []string {
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)

	var out []string
	for _, name := range names {
		value := strings.Join(header[name], ", ")
		if sensitiveHeaders[strings.ToLower(name)] {
			value = masked
		}
		out = append(out, name+": "+value)
	}
	return out
}
