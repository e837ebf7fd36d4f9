package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/small-engineer/recados-api/internal/adapter/httpadapter"
	"github.com/small-engineer/recados-api/internal/config"
	"github.com/small-engineer/recados-api/internal/infra/mem"
	"github.com/small-engineer/recados-api/internal/logging"
	"github.com/small-engineer/recados-api/internal/usecase/recados"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server (default)",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		return nil, fmt.Errorf("load %s: %w", config.DotEnvFile, err)
	}
	c, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if f := cmd.Flag("port"); f != nil && f.Changed {
		c.Port = port
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		c.LogLevel = logLevel
	}
	if demo {
		c.Seed = append(config.DemoUsers(), c.Seed...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	l := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := recados.NewService(mem.NewUserRepo())
	if err := svc.Seed(ctx, c.Seed); err != nil {
		return err
	}
	if len(c.Seed) > 0 {
		l.Info().Int("users", len(c.Seed)).Msg("seeded users")
	}

	s := httpadapter.NewServer(svc, l)
	if err := s.Run(ctx, c.Addr()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
