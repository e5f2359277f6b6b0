// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the patent-search CLI. The serve
// subcommand runs the web application; search and fields query the USPTO
// Data Set API directly from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the patent-search CLI.
var rootCmd = &cobra.Command{
	Use:   "patent-search",
	Short: "Keyword search over USPTO patent data",
	Long: `patent-search runs keyword searches against the USPTO Data Set API.

Use "serve" to start the browser application, where results can be
inspected record by record, selected, printed and downloaded. The "search"
and "fields" subcommands call the same API from the terminal.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./patent-search.yaml or ~/.config/patent-search/config.yaml)")
	rootCmd.PersistentFlags().String("log-env", "local", "logger environment: prod, local or dev")
	rootCmd.PersistentFlags().String("log-level", "", "log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().String("base-url", "", "DSAPI base URL")
	rootCmd.PersistentFlags().String("dataset", "", "DSAPI dataset name")
	rootCmd.PersistentFlags().Bool("insecure", false, "skip TLS certificate verification for the API host")

	_ = viper.BindPFlag("logging.env", rootCmd.PersistentFlags().Lookup("log-env"))
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("search.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("search.dataset", rootCmd.PersistentFlags().Lookup("dataset"))
	_ = viper.BindPFlag("search.insecure_skip_verify", rootCmd.PersistentFlags().Lookup("insecure"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("patent-search")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "patent-search"))
		}
	}

	viper.SetEnvPrefix("PATENT_SEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
