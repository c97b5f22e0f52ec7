// Package ingest loads and normalizes heterogeneous candidate, team, and
// role records into the canonical shapes the scoring engine consumes.
package ingest

import (
	"encoding/json"
	"strings"
)

// skillDelimiters covers the delimiter variants seen in raw records:
// pipe-, comma-, and semicolon-separated skill strings.
func splitDelimited(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ';' || r == ',' || r == '|'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if trimmed := strings.TrimSpace(f); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseSkillField converges the skill-field tagged union onto one slice type
// before any downstream component sees it. Accepted shapes: a string list
// (possibly already canonical), a delimited string, or nil. Unparseable
// values degrade to an empty set rather than failing the build.
func ParseSkillField(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return splitDelimited(v)
	case []string:
		out := make([]string, 0, len(v))
		for _, s := range v {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				if trimmed := strings.TrimSpace(s); trimmed != "" {
					out = append(out, trimmed)
				}
			}
		}
		return out
	default:
		return nil
	}
}

// SkillList is a JSON field that accepts either an array of strings or a
// single delimited string, the two shapes callers actually send.
type SkillList []string

// UnmarshalJSON implements the tolerant decode.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var asList []string
	if err := json.Unmarshal(data, &asList); err == nil {
		*s = ParseSkillField(asList)
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*s = ParseSkillField(asString)
	return nil
}
