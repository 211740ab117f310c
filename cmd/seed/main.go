// Command seed loads portfolio fixtures into the configured database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/deppfellow/portfolio-backend/internal/database"
	"github.com/deppfellow/portfolio-backend/internal/logger"
	"github.com/deppfellow/portfolio-backend/internal/repository"
	"github.com/deppfellow/portfolio-backend/internal/seed"
	"github.com/deppfellow/portfolio-backend/internal/server"
	"github.com/deppfellow/portfolio-backend/internal/service"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed [dir]",
		Short: "Create work experience and personal projects from fixture files",
		Long: `Reads <dir>/work_experience/work_experience.json and
<dir>/personal_project/personal_project.json and creates every item.
A "description_file" entry is replaced by the contents of that file.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return run(cmd.Context(), dir, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", true, "apply pending Postgres migrations first")

	return cmd
}

func run(ctx context.Context, dir string, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewLogger(cfg.Observability)

	if migrate {
		if err := database.Migrate(ctx, &log, cfg); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	db, err := database.New(cfg, &log, nil)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// No Redis or job workers: seeding never sends contact mail.
	srv := &server.Server{Config: cfg, Logger: &log, DB: db}

	repos, err := repository.NewRepositories(srv)
	if err != nil {
		return fmt.Errorf("failed to create repositories: %w", err)
	}
	services, err := service.NewServices(srv, repos)
	if err != nil {
		return fmt.Errorf("failed to create services: %w", err)
	}

	res, err := seed.New(dir, services.WorkExperience, services.PersonalProjects, &log).Run(ctx)
	if err != nil {
		log.Error().Err(err).
			Int("work_experience", res.WorkExperience).
			Int("personal_projects", res.PersonalProjects).
			Msg("seeding stopped")
		return err
	}

	log.Info().
		Int("work_experience", res.WorkExperience).
		Int("personal_projects", res.PersonalProjects).
		Msg("seeding complete")
	return nil
}
