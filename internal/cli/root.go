// Package cli defines the teamavail command tree.
package cli

import (
	"context"
	"fmt"

	"team-availability/config"
	"team-availability/internal/repository"
	"team-availability/internal/usecase"
	"team-availability/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the root command. Running it without a subcommand
// prints the availability report.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "teamavail",
		Short: "Weekly team availability",
		Long: `teamavail computes, for each team, the days on which at least one
member is available and prints one line per team sorted by team name.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runReport,
	}

	root.PersistentFlags().String("backend", config.BackendMemory, "storage backend (memory|postgres)")
	root.PersistentFlags().String("log-level", "info", "log level (debug|info|warn|error)")

	root.AddCommand(newReportCommand(), newServeCommand())
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// app bundles the dependencies shared by subcommands.
type app struct {
	cfg  *config.Config
	log  *zap.SugaredLogger
	repo repository.Repository
	uc   usecase.InterfaceUsecase
}

func setup(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()

	cfg, err := config.NewConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Repository.Backend, "error", err)
		_ = repo.OnStop(context.Background())
		_ = log.Sync()
		return nil, fmt.Errorf("repository start: %w", err)
	}

	return &app{
		cfg:  cfg,
		log:  log,
		repo: repo,
		uc:   usecase.New(log, repo, cfg.HTTP.RequestTimeout),
	}, nil
}

func (a *app) close() {
	_ = a.repo.OnStop(context.Background())
	_ = a.log.Sync()
}
