package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpkonha/talentgraph/internal/engine"
)

var (
	rankConfig   string
	rankResumes  string
	rankTeams    string
	rankRole     string
	rankLimit    int
	rankRequired []string
	rankNice     []string
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates against the role requirements",
	Long:  `Load the role config and candidate/team pools, score every candidate, and print the top results.`,
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVar(&rankConfig, "config", "", "Path to JSON config file")
	rankCmd.Flags().StringVar(&rankResumes, "resumes", "", "Path to candidate CSV")
	rankCmd.Flags().StringVar(&rankTeams, "teams", "", "Path to team CSV")
	rankCmd.Flags().StringVar(&rankRole, "role", "", "Path to role requirements JSON")
	rankCmd.Flags().IntVar(&rankLimit, "limit", 5, "Number of candidates to print")
	rankCmd.Flags().StringSliceVar(&rankRequired, "required", nil, "Override required skills")
	rankCmd.Flags().StringSliceVar(&rankNice, "nice", nil, "Override nice-to-have skills")
	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	if rankLimit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}

	cfg, err := resolveConfig(rankConfig, rankResumes, rankTeams, rankRole, false)
	if err != nil {
		return err
	}
	role, candidates, teams, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	scoringEngine := engine.New(*role, candidates, teams, zap.NewNop())
	profiles := scoringEngine.Rank(rankRequired, rankNice, rankLimit)

	fmt.Printf("Role: %s\n", role.Role)
	fmt.Printf("Required: %s | Nice-to-have: %s\n\n",
		strings.Join(role.RequiredSkills, ", "), strings.Join(role.NiceToHave, ", "))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tFINAL\tSEMANTIC\tREQ COV\tNICE COV\tNETWORK\tYEARS")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.2f\t%.2f\t%.3f\t%.0f\n",
			p.ID, p.Name, p.FinalScore, p.SemanticScore, p.RequiredCoverage,
			p.NiceCoverage, p.NetworkScore, p.YearsExperience)
	}
	return w.Flush()
}
