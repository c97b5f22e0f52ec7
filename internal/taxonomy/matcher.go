package taxonomy

import (
	"regexp"
	"strings"

	"github.com/cpkonha/talentgraph/internal/types"
)

var nonTokenPattern = regexp.MustCompile(`[^a-z0-9+.\- ]`)

// surfacePatterns holds one compiled whole-word pattern per surface form,
// keyed by canonical tag. Built once at package init; the taxonomy table is
// fixed for the process lifetime.
var surfacePatterns = buildSurfacePatterns()

// canonicalLookup resolves an exact (normalized) tag name or surface form to
// its canonical tag.
var canonicalLookup = buildCanonicalLookup()

func buildSurfacePatterns() map[string][]*regexp.Regexp {
	patterns := make(map[string][]*regexp.Regexp, len(Taxonomy))
	for tag, forms := range Taxonomy {
		compiled := make([]*regexp.Regexp, 0, len(forms))
		for _, form := range forms {
			compiled = append(compiled, regexp.MustCompile(`\b`+regexp.QuoteMeta(form)+`\b`))
		}
		patterns[tag] = compiled
	}
	return patterns
}

func buildCanonicalLookup() map[string]string {
	lookup := make(map[string]string)
	for tag, forms := range Taxonomy {
		lookup[tag] = tag
		for _, form := range forms {
			lookup[form] = tag
		}
	}
	return lookup
}

// NormalizeText lower-cases the input and replaces every character outside
// [a-z0-9+.\- ] with a space.
func NormalizeText(s string) string {
	return nonTokenPattern.ReplaceAllString(strings.ToLower(s), " ")
}

// Extract returns the set of canonical tags mentioned in the text. Each
// surface form matches as a whole word, so "java" never fires inside
// "javascript". Search stops at the first matching surface form per tag; no
// counts are kept. Empty input yields an empty set, never an error.
func Extract(text string) types.SkillSet {
	found := make(types.SkillSet)
	if text == "" {
		return found
	}
	normalized := NormalizeText(text)
	for tag, patterns := range surfacePatterns {
		for _, pattern := range patterns {
			if pattern.MatchString(normalized) {
				found[tag] = true
				break
			}
		}
	}
	return found
}

// CanonicalTag maps one raw skill mention to its canonical tag. Exact matches
// against a tag name or surface form resolve to the tag; anything else comes
// back normalized (lower-cased, trimmed) so unknown skills still compare
// consistently.
func CanonicalTag(raw string) string {
	normalized := strings.TrimSpace(NormalizeText(raw))
	if normalized == "" {
		return ""
	}
	if tag, ok := canonicalLookup[normalized]; ok {
		return tag
	}
	return normalized
}

// CanonicalizeAll maps a slice of raw skill mentions to deduplicated
// canonical tags, preserving first-seen order.
func CanonicalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		tag := CanonicalTag(r)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// CanonicalizeSet is CanonicalizeAll with set output.
func CanonicalizeSet(raw []string) types.SkillSet {
	return types.NewSkillSet(CanonicalizeAll(raw))
}
