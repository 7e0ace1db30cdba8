// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the replication-scout CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/replication-scout/internal/secrets"
	"github.com/pdiddy/replication-scout/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	defaultTimeout     = 15 * time.Second
	defaultPageTimeout = 10 * time.Second
	defaultUserAgent   = "replication-scout/0.1"
	defaultResultsDir  = "results"
)

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the replication-scout CLI.
var rootCmd = &cobra.Command{
	Use:   "replication-scout",
	Short: "Locate replication packages for academic papers",
	Long: `replication-scout harvests paper metadata from CrossRef for curated
journal registries, classifies each paper's topic, and resolves the paper's
replication package by querying hosting services (publisher article pages,
Zenodo, Harvard Dataverse, OSF, openICPSR) in a venue-dependent order.

Each stage is a subcommand: scan runs the full pipeline over a discipline,
resolve handles a single paper, journals lists the registries, and export
writes the accumulated results as CSV or YAML.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./replication-scout.yaml or ~/.config/replication-scout/config.yaml)")
	rootCmd.PersistentFlags().String("results-dir", "", "base directory for the results store and exports (default results)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("replication-scout")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "replication-scout"))
		}
	}

	viper.SetEnvPrefix("REPLICATION_SCOUT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configurations from config file
// values, built-in defaults, and the secrets directory.
func pipelineConfig() types.PipelineConfig {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not parse config: %v\n", err)
	}

	if cfg.Resolver.Timeout <= 0 {
		cfg.Resolver.Timeout = defaultTimeout
	}
	if cfg.Resolver.PageTimeout <= 0 {
		cfg.Resolver.PageTimeout = defaultPageTimeout
	}
	if cfg.Resolver.UserAgent == "" {
		cfg.Resolver.UserAgent = defaultUserAgent
	}
	if cfg.Harvest.Timeout <= 0 {
		cfg.Harvest.Timeout = defaultTimeout
	}
	if cfg.Harvest.UserAgent == "" {
		cfg.Harvest.UserAgent = defaultUserAgent
	}
	if dir, _ := rootCmd.PersistentFlags().GetString("results-dir"); dir != "" {
		cfg.Results.ResultsDir = dir
	}
	if cfg.Results.ResultsDir == "" {
		cfg.Results.ResultsDir = defaultResultsDir
	}

	secrets.Apply(&cfg, loadedSecrets)

	if cfg.Harvest.Mailto != "" {
		cfg.Harvest.UserAgent = fmt.Sprintf("%s (mailto:%s)", cfg.Harvest.UserAgent, cfg.Harvest.Mailto)
	}
	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
