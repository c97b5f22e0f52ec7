// Package taxonomy maps free text and raw skill mentions onto a fixed set of
// canonical skill tags. It is the single normalization boundary: every skill
// set used for graph edges, coverage, or team gaps passes through here first.
package taxonomy

import "sort"

// Taxonomy maps each canonical tag to the surface forms (synonyms,
// abbreviations, related terms) that count as a mention of it. Surface-form
// lists are kept unambiguous across tags: "java" and "javascript" are
// separate tags and word-boundary matching keeps them apart.
var Taxonomy = map[string][]string{
	"python":           {"python", "pandas", "numpy", "scikit-learn", "sklearn"},
	"sql":              {"sql", "postgres", "mysql", "sqlite", "snowflake"},
	"data analysis":    {"data analysis", "analytics", "insight", "dashboard", "reporting"},
	"machine learning": {"machine learning", "ml", "classification", "regression", "clustering"},
	"supply chain":     {"supply chain", "inventory", "logistics", "demand planning", "forecasting"},
	"agritech":         {"agritech", "precision farming", "livestock", "feed", "aquaculture"},
	"communication":    {"communication", "present", "presentation", "stakeholder", "client"},
	"java":             {"java", "spring", "jvm"},
	"javascript":       {"javascript", "node.js", "node", "react"},
	"cloud":            {"cloud", "aws", "gcp", "azure"},
}

// Canonical lists the canonical tags in sorted order.
func Canonical() []string {
	tags := make([]string, 0, len(Taxonomy))
	for tag := range Taxonomy {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
