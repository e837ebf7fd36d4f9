package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	port     string
	logLevel string
	demo     bool
)

var rootCmd = &cobra.Command{
	Use:   "recados",
	Short: "HTTP API for users and their notes (recados)",
	Long: `recados keeps users and their notes in memory and exposes them over
HTTP/JSON. Nothing is persisted: a restart starts from the seed users only.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgPath, "config", "c", "", "path to a YAML config file")
	pf.StringVarP(&port, "port", "p", "", "listening port (overrides config and PORT)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&demo, "demo", false, "seed the two demo users")
}
