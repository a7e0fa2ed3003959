package oracle

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	fenceRe         = regexp.MustCompile("(?s)```[a-zA-Z]*\\s*(.*?)\\s*```")
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
)

// StripFences returns the body of the first markdown code fence in raw,
// or raw trimmed when there is none.
func StripFences(raw string) string {
	if m := fenceRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(raw)
}

// FirstBalanced returns the first balanced {...} or [...] block in s, whichever
// opens first. Braces inside JSON strings are ignored.
func FirstBalanced(s string) (string, bool) {
	start := strings.IndexAny(s, "{[")
	if start < 0 {
		return "", false
	}
	open := s[start]
	closing := byte('}')
	if open == '[' {
		closing = ']'
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

// DecodeJSON reads a JSON payload of type T out of an oracle response. Fences
// and surrounding prose are tolerated; anything else is a *ParseError.
func DecodeJSON[T any](raw string) (T, error) {
	var out T

	body := StripFences(raw)
	if body == "" {
		return out, newParseError("empty payload", raw, nil)
	}

	if err := json.Unmarshal([]byte(body), &out); err == nil {
		return out, nil
	}

	block, ok := FirstBalanced(body)
	if !ok {
		return out, newParseError("no JSON object or array found", raw, nil)
	}
	if err := json.Unmarshal([]byte(block), &out); err == nil {
		return out, nil
	}

	cleaned := trailingCommaRe.ReplaceAllString(block, "$1")
	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		var zero T
		return zero, newParseError("invalid JSON", raw, err)
	}
	return out, nil
}
