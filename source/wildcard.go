package source

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// patternToGlob lowers the spec's custom '*'/'?' wildcard syntax to a
// doublestar-compatible glob, used only to cheaply confirm a candidate
// path during the filesystem walk: doublestar has no primitive for '?'s
// "zero-or-more up to the next literal" semantics, so both wildcard
// forms become doublestar's single '*' (zero-or-more non-separator
// bytes) here. The precise capture semantics spec §6 actually asks for
// are applied afterward by patternToRegexp.
func patternToGlob(pattern string) string {
	var b strings.Builder
	for _, r := range pattern {
		switch r {
		case '*', '?':
			b.WriteByte('*')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// doublestarMatch is the thin seam over doublestar.Match, matching the
// way internal/corpora and internal/golden call it in the teacher repo.
func doublestarMatch(pattern, name string) (bool, error) {
	return doublestar.Match(pattern, name)
}

// patternToRegexp compiles pattern into an anchored regexp with one
// capturing group per '*'/'?' wildcard, in source order: '*' captures
// zero-or-more non-separator bytes (greedy), '?' captures zero-or-more
// bytes up to the next literal character (lazy), per spec §6.
func patternToRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`([^/]*)`)
		case '?':
			b.WriteString(`([^/]*?)`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteByte('$')
	return regexp.MustCompile(b.String())
}

// ExpandRenameTemplate replaces, in order, each '*' and '?' in template
// with the corresponding entry of captures, per spec §6's rename-path
// expansion rule.
func ExpandRenameTemplate(template string, captures []string) string {
	var b strings.Builder
	i := 0
	for _, r := range template {
		if (r == '*' || r == '?') && i < len(captures) {
			b.WriteString(captures[i])
			i++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
