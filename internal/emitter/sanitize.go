package emitter

import "strings"

// Sanitize converts a BPMN element's display name (or its id, if the name is
// empty) into a legal, camelCase operation identifier.
//
// Algorithm: replace non-alphanumerics with spaces, split on whitespace
// runs, lowercase the first character of the first token and uppercase the
// first character of every subsequent token, then prefix a leading digit
// with "f". An empty input produces "unnamedTask". Only the first character
// of each token is touched - the interior of each token passes through
// unchanged rather than being forced to lowercase. That deliberately departs
// from "lowercase the rest of each subsequent token"; touching only the
// first character is what keeps sanitize idempotent
// (sanitize(sanitize(x)) == sanitize(x)) for already-camelCase input.
func Sanitize(name string) string {
	if strings.TrimSpace(name) == "" {
		return "unnamedTask"
	}

	var spaced strings.Builder
	for _, r := range name {
		if isAlphaNumeric(r) {
			spaced.WriteRune(r)
		} else {
			spaced.WriteRune(' ')
		}
	}

	tokens := strings.Fields(spaced.String())
	if len(tokens) == 0 {
		return "unnamedTask"
	}

	var out strings.Builder
	for i, tok := range tokens {
		if i == 0 {
			out.WriteString(lowerFirst(tok))
			continue
		}
		out.WriteString(upperFirst(tok))
	}

	result := out.String()
	if result == "" {
		return "unnamedTask"
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "f" + result
	}
	return result
}

func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func lowerFirst(tok string) string {
	if tok[0] >= 'A' && tok[0] <= 'Z' {
		return string(tok[0]+('a'-'A')) + tok[1:]
	}
	return tok
}

func upperFirst(tok string) string {
	if tok[0] >= 'a' && tok[0] <= 'z' {
		return string(tok[0]-('a'-'A')) + tok[1:]
	}
	return tok
}
