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
	teamfitConfig    string
	teamfitResumes   string
	teamfitTeams     string
	teamfitRole      string
	teamfitCandidate string
)

var teamfitCmd = &cobra.Command{
	Use:   "teamfit",
	Short: "Recommend a team placement for a candidate",
	Long:  `Score every team for one candidate (the top-ranked candidate by default) and print the recommended placements.`,
	RunE:  runTeamfit,
}

func init() {
	teamfitCmd.Flags().StringVar(&teamfitConfig, "config", "", "Path to JSON config file")
	teamfitCmd.Flags().StringVar(&teamfitResumes, "resumes", "", "Path to candidate CSV")
	teamfitCmd.Flags().StringVar(&teamfitTeams, "teams", "", "Path to team CSV")
	teamfitCmd.Flags().StringVar(&teamfitRole, "role", "", "Path to role requirements JSON")
	teamfitCmd.Flags().StringVar(&teamfitCandidate, "candidate", "", "Candidate id (defaults to the top-ranked candidate)")
	rootCmd.AddCommand(teamfitCmd)
}

func runTeamfit(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(teamfitConfig, teamfitResumes, teamfitTeams, teamfitRole, false)
	if err != nil {
		return err
	}
	role, candidates, teams, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	scoringEngine := engine.New(*role, candidates, teams, zap.NewNop())

	candidateID := teamfitCandidate
	if candidateID == "" {
		top := scoringEngine.Rank(nil, nil, 1)
		if len(top) == 0 {
			return fmt.Errorf("candidate pool is empty")
		}
		candidateID = top[0].ID
		fmt.Printf("Best candidate: %s (%s)\n", top[0].Name, candidateID)
		fmt.Printf("Canonical skills: %s\n\n", strings.Join(top[0].CanonicalSkills, ", "))
	}

	scores, err := scoringEngine.RecommendTeams(candidateID, nil)
	if err != nil {
		return err
	}

	fmt.Println("Recommended team placement:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TEAM\tNAME\tCOVERAGE\tPERSONALITY\tDIVERSITY\tFINAL")
	for _, score := range scores {
		fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
			score.TeamID, score.TeamName, score.Coverage, score.PersonalityFit,
			score.Diversity, score.FinalScore)
	}
	return w.Flush()
}
