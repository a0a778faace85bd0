package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kelsos/elevenlabs-workspace/internal/config"
	"github.com/kelsos/elevenlabs-workspace/internal/logger"
	"github.com/kelsos/elevenlabs-workspace/internal/output"
	"github.com/kelsos/elevenlabs-workspace/pkg/client"
	"github.com/kelsos/elevenlabs-workspace/pkg/elevenlabs"
	"github.com/kelsos/elevenlabs-workspace/pkg/workspace"
)

// app is the state shared by every subcommand once configuration is loaded
type app struct {
	v          *viper.Viper
	dotenvDirs []string
	stdout     io.Writer
	cfg        *config.Config
	workspace  *workspace.Client
	printer    *output.Printer
}

func (a *app) setup() error {
	files, err := config.ApplyDotenv(a.v, a.dotenvDirs...)
	if err != nil {
		return err
	}
	for _, file := range files {
		logger.Debug("Loaded settings from %s", file)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	if cfg.LogLevel != "" {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			return err
		}
	}

	opts, err := cfg.ClientOptions()
	if err != nil {
		return err
	}
	api, err := elevenlabs.NewClient(cfg.APIKey, opts...)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		logger.Warn("No API key configured, set %s_API_KEY or pass --api-key", config.EnvPrefix)
	}
	logger.Debug("Using API at %s", api.API().BaseURL())

	a.cfg = cfg
	a.workspace = api.Workspace
	a.printer = output.NewPrinter(a.stdout, output.Format(cfg.Output))
	return nil
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	a := &app{v: config.NewViper(), dotenvDirs: config.DotenvDirs(), stdout: stdout}

	rootCmd := &cobra.Command{
		Use:   "elevenlabs-workspace",
		Short: "Manage ElevenLabs workspace settings",
		Long:  `elevenlabs-workspace is a CLI tool for the workspace endpoints of the ElevenLabs API.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("api-key", "", "ElevenLabs API key (env ELEVENLABS_API_KEY)")
	flags.StringP("environment", "e", client.Production.Name, "API environment: production, production_us or production_eu")
	flags.String("base-url", "", "Override the environment base URL")
	flags.IntP("timeout", "t", int(client.DefaultTimeout.Seconds()), "Request timeout in seconds")
	flags.StringP("output", "o", "table", "Output format: table or json")
	flags.String("log-level", "", "Log level: trace, debug, info, warn or error")
	flags.String("log-dir", "logs", "Directory for log files written while the editor is open")

	for key, flag := range map[string]string{
		"api_key":     "api-key",
		"environment": "environment",
		"base_url":    "base-url",
		"timeout":     "timeout",
		"output":      "output",
		"log_level":   "log-level",
		"log_dir":     "log-dir",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(newAutoProvisioningCmd(a))
	rootCmd.AddCommand(newSharingCmd(a))
	rootCmd.AddCommand(newShareOptionsCmd(a))

	return rootCmd
}
