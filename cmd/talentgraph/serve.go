package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpkonha/talentgraph/internal/engine"
	"github.com/cpkonha/talentgraph/internal/observability"
	"github.com/cpkonha/talentgraph/internal/server"
	"github.com/cpkonha/talentgraph/internal/store"
)

var (
	servePort    int
	serveConfig  string
	serveResumes string
	serveTeams   string
	serveRole    string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server exposing candidate search, team evaluation, and relatedness diagnostics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().StringVar(&serveResumes, "resumes", "", "Path to candidate CSV")
	serveCmd.Flags().StringVar(&serveTeams, "teams", "", "Path to team CSV")
	serveCmd.Flags().StringVar(&serveRole, "role", "", "Path to role requirements JSON")
	serveCmd.Flags().BoolVar(&serveVerbose, "verbose", false, "Development-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig, serveResumes, serveTeams, serveRole, serveVerbose)
	if err != nil {
		return err
	}
	// Explicit flag wins over the config file; otherwise the flag default
	// only fills an unset port.
	if cmd.Flags().Changed("port") || cfg.Port == 0 {
		cfg.Port = servePort
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	role, candidates, teams, err := loadInputs(cfg)
	if err != nil {
		return err
	}
	logger.Info("inputs loaded",
		zap.String("role", role.Role),
		zap.Int("candidates", len(candidates)),
		zap.Int("teams", len(teams)),
	)

	scoringEngine := engine.New(*role, candidates, teams, logger)

	var auditStore *store.Store
	if cfg.DatabaseURL != "" {
		auditStore, err = store.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect audit store: %w", err)
		}
		defer auditStore.Close()
		if err := auditStore.EnsureSchema(context.Background()); err != nil {
			return err
		}
		logger.Info("search auditing enabled")
	}

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Engine: scoringEngine,
		Logger: logger,
		Store:  auditStore,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}
	return srv.Start()
}
