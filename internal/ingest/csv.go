package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cpkonha/talentgraph/internal/types"
)

var validate = validator.New()

// columnAliases maps legacy column headers onto canonical names.
var columnAliases = map[string]string{
	"employeeid":       "id",
	"employee_id":      "id",
	"name":             "name",
	"businessunit":     "business_unit",
	"business unit":    "business_unit",
	"role":             "role",
	"title":            "role",
	"skills":           "skills",
	"skill":            "skills",
	"pastprojects":     "past_projects",
	"performancereviewsummary": "summary",
	"summary":          "summary",
	"o_score":          "O",
	"c_score":          "C",
	"e_score":          "E",
	"a_score":          "A",
	"n_score":          "N",
	"o":                "O",
	"c":                "C",
	"e":                "E",
	"a":                "A",
	"n":                "N",
	"yearsexperience":  "years_experience",
	"years experience": "years_experience",
	"years_experience": "years_experience",
	"id":               "id",
	"resume_text":      "resume_text",
	"team_id":          "team_id",
	"team_name":        "team_name",
	"team_skills":      "team_skills",
}

// readRecords reads a CSV file into header-keyed rows, tolerating blank
// lines and ragged rows.
func readRecords(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var header []string
	var rows []map[string]string
	for _, record := range raw {
		if isBlank(record) {
			continue
		}
		if header == nil {
			header = make([]string, len(record))
			for i, column := range record {
				key := strings.ToLower(strings.TrimSpace(column))
				if canonical, ok := columnAliases[key]; ok {
					header[i] = canonical
				} else {
					header[i] = key
				}
			}
			continue
		}
		row := make(map[string]string, len(header))
		for i, column := range header {
			if column == "" || i >= len(record) {
				continue
			}
			row[column] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// LoadCandidatesCSV loads candidate records, mapping legacy columns and
// filling missing values so the scoring pipeline can run without further
// wrangling. Rows failing validation (missing id or name) are skipped.
func LoadCandidatesCSV(path string) ([]types.Candidate, error) {
	rows, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.Candidate, 0, len(rows))
	for _, row := range rows {
		candidate := types.Candidate{
			ID:          row["id"],
			Name:        row["name"],
			ResumeText:  row["resume_text"],
			SkillsText:  normalizeSkillString(row["skills"]),
			TeamID:      row["team_id"],
			Personality: personalityFromRow(row),
		}

		if years, ok := parseFloat(row["years_experience"]); ok {
			candidate.YearsExperience = years
		} else {
			candidate.YearsExperience = estimateYearsFromTitle(row["role"])
		}

		if candidate.ResumeText == "" {
			candidate.ResumeText = synthesizeResumeText(row)
		}

		if err := validate.Struct(candidate); err != nil {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// LoadTeamsCSV loads team records. Team skills accept pipe-, comma-, or
// semicolon-delimited strings; malformed skill fields degrade to an empty
// set, never a failed load.
func LoadTeamsCSV(path string) ([]types.Team, error) {
	rows, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	teams := make([]types.Team, 0, len(rows))
	for _, row := range rows {
		team := types.Team{
			ID:          row["team_id"],
			Name:        row["team_name"],
			Skills:      splitDelimited(row["team_skills"]),
			Personality: personalityFromRow(row),
		}
		if err := validate.Struct(team); err != nil {
			continue
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// normalizeSkillString rewrites a delimited skill string with a single
// consistent separator.
func normalizeSkillString(raw string) string {
	return strings.Join(splitDelimited(raw), "; ")
}

// personalityFromRow reads the Big Five columns, rescaling legacy 1-5 survey
// values to [0,1] and defaulting missing or unparseable values to 0.5.
func personalityFromRow(row map[string]string) types.Personality {
	return types.Personality{
		Openness:          normalizeTrait(row["O"]),
		Conscientiousness: normalizeTrait(row["C"]),
		Extraversion:      normalizeTrait(row["E"]),
		Agreeableness:     normalizeTrait(row["A"]),
		Neuroticism:       normalizeTrait(row["N"]),
	}
}

func normalizeTrait(raw string) float64 {
	value, ok := parseFloat(raw)
	if !ok {
		return 0.5
	}
	if value > 1 {
		return value / 5.0
	}
	return value
}

func parseFloat(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// estimateYearsFromTitle falls back to a title-keyword heuristic when the
// experience column is missing.
func estimateYearsFromTitle(title string) float64 {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, "head", "director", "chief"):
		return 12.0
	case strings.Contains(lower, "senior"):
		return 9.0
	case containsAny(lower, "manager", "lead"):
		return 7.0
	case containsAny(lower, "specialist", "scientist", "analyst", "engineer", "developer", "consultant", "architect"):
		return 5.0
	case containsAny(lower, "junior", "assistant", "technician", "intern"):
		return 3.0
	default:
		return 5.0
	}
}

func containsAny(s string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// synthesizeResumeText builds a text body from structured columns for
// records that ship without one, so the vector space still has a document
// per candidate.
func synthesizeResumeText(row map[string]string) string {
	name := row["name"]
	if name == "" {
		name = "Candidate"
	}
	unit := row["business_unit"]
	if unit == "" {
		unit = "the organisation"
	}
	role := row["role"]
	if role == "" {
		role = "a team member"
	}
	projects := row["past_projects"]
	if projects == "" {
		projects = "n/a"
	}
	text := fmt.Sprintf("%s works in %s as %s. Key projects: %s. %s", name, unit, role, projects, row["summary"])
	return strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
}
