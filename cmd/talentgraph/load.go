package main

import (
	"fmt"
	"os"

	"github.com/cpkonha/talentgraph/internal/config"
	"github.com/cpkonha/talentgraph/internal/ingest"
	"github.com/cpkonha/talentgraph/internal/types"
	"github.com/cpkonha/talentgraph/schemas"
)

// loadInputs reads and validates the role config and the candidate/team
// pools named by the configuration.
func loadInputs(cfg *config.Config) (*types.RoleSpec, []types.Candidate, []types.Team, error) {
	if cfg.RoleFile == "" || cfg.ResumesCSV == "" || cfg.TeamsCSV == "" {
		return nil, nil, nil, fmt.Errorf("role_file, resumes_csv, and teams_csv are all required")
	}

	roleData, err := os.ReadFile(cfg.RoleFile)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read role file: %w", err)
	}
	role, err := schemas.ValidateRoleRequirements(roleData)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid role file %s: %w", cfg.RoleFile, err)
	}

	candidates, err := ingest.LoadCandidatesCSV(cfg.ResumesCSV)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load candidates: %w", err)
	}
	teams, err := ingest.LoadTeamsCSV(cfg.TeamsCSV)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}

	return role, candidates, teams, nil
}

// resolveConfig merges the optional config file, environment, and flags.
func resolveConfig(configPath, resumesCSV, teamsCSV, roleFile string, verbose bool) (*config.Config, error) {
	cfg := &config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	// Flags win over file and environment.
	if resumesCSV != "" {
		cfg.ResumesCSV = resumesCSV
	}
	if teamsCSV != "" {
		cfg.TeamsCSV = teamsCSV
	}
	if roleFile != "" {
		cfg.RoleFile = roleFile
	}
	if verbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
