package analyzer

import (
	"regexp"
	"strings"
)

// LintFinding is one regex-based lint observation over the emitted source.
type LintFinding struct {
	Category string
	Line     int
	Excerpt  string
}

var (
	lowLevelCallPattern       = regexp.MustCompile(`\.call\{[^}]*\}\(|\.call\(`)
	successCheckPattern       = regexp.MustCompile(`require\s*\(|if\s*\(\s*!?\s*success`)
	accessModifierPattern     = regexp.MustCompile(`onlyOwner|nonReentrant|whenNotPaused`)
	publicFuncPattern         = regexp.MustCompile(`function\s+\w+\s*\([^)]*\)\s*(public|external)`)
	deprecatedTransferPattern = regexp.MustCompile(`\.transfer\(|\.send\(`)
	publicStateVarPattern     = regexp.MustCompile(`^\s*(uint256|uint|int|bool|address)\s+public\s+\w+\s*;`)
)

// Run applies four lint checks over the emitted contract text and returns
// every finding in source-line order.
func Run(source string) []LintFinding {
	lines := strings.Split(source, "\n")
	var findings []LintFinding

	for i, line := range lines {
		if lowLevelCallPattern.MatchString(line) {
			next := ""
			if i+1 < len(lines) {
				next = lines[i+1]
			}
			if !successCheckPattern.MatchString(next) {
				findings = append(findings, LintFinding{
					Category: "unchecked-low-level-call",
					Line:     i + 1,
					Excerpt:  strings.TrimSpace(line),
				})
			}
		}

		if publicFuncPattern.MatchString(line) {
			window := windowAfter(lines, i, 200)
			if !accessModifierPattern.MatchString(window) {
				findings = append(findings, LintFinding{
					Category: "missing-access-modifier",
					Line:     i + 1,
					Excerpt:  strings.TrimSpace(line),
				})
			}
		}

		if deprecatedTransferPattern.MatchString(line) {
			findings = append(findings, LintFinding{
				Category: "deprecated-transfer-primitive",
				Line:     i + 1,
				Excerpt:  strings.TrimSpace(line),
			})
		}

		if publicStateVarPattern.MatchString(line) {
			findings = append(findings, LintFinding{
				Category: "public-primitive-state-variable",
				Line:     i + 1,
				Excerpt:  strings.TrimSpace(line),
			})
		}
	}

	return findings
}

// windowAfter returns up to maxChars of text starting at line i, across
// subsequent lines, approximating "the next 200 characters" of source text.
func windowAfter(lines []string, i, maxChars int) string {
	var b strings.Builder
	for j := i; j < len(lines) && b.Len() < maxChars; j++ {
		b.WriteString(lines[j])
		b.WriteString("\n")
	}
	out := b.String()
	if len(out) > maxChars {
		out = out[:maxChars]
	}
	return out
}
