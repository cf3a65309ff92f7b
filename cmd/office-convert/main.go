// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the office-convert CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the office-convert CLI.
var rootCmd = &cobra.Command{
	Use:   "office-convert",
	Short: "Convert documents through a local LibreOffice installation",
	Long: `office-convert shells out to the soffice binary to convert documents
between office formats. It locates the binary, renders a command template,
runs the conversion in an isolated work directory, and moves the output to
the requested destination. Conversions are optionally recorded in a local
history journal.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./office-convert.yaml or ~/.config/office-convert/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("office-convert")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "office-convert"))
		}
	}

	viper.SetEnvPrefix("OFFICE_CONVERT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
