package casefeed

import (
	"regexp"
	"strings"
)

// RewriteCitation rewrites a legal-article citation into its compact
// French form: "Article 5 GDPR" becomes "RGPD5", "Article 6(1) GDPR"
// becomes "RGPD6(1)". Returns "" when nothing remains after the
// rewrite.
func RewriteCitation(text string) string {
	s := strings.ReplaceAll(text, "GDPR", "")
	s = strings.ReplaceAll(s, "Article", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return ""
	}
	return "RGPD" + s
}

// parenSuffixRe matches a trailing parenthetical qualifier, e.g.
// "Garante (Italy)".
var parenSuffixRe = regexp.MustCompile(`\s*\([^)]*\)$`)

// StripAuthorityQualifier removes a trailing "(qualifier)" suffix from
// an authority name.
func StripAuthorityQualifier(name string) string {
	return strings.TrimSpace(parenSuffixRe.ReplaceAllString(strings.TrimSpace(name), ""))
}
