// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sheetdoc CLI.
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

// rootCmd is the base command for the sheetdoc CLI.
var rootCmd = &cobra.Command{
	Use:   "sheetdoc",
	Short: "Extract Excel ranges into Word documents",
	Long: `sheetdoc reads a rectangular cell range from an Excel workbook and renders
it as a styled table in a Word document.

Run a single conversion with "sheetdoc convert", or keep "sheetdoc watch"
running against a drop directory to convert workbooks as they arrive. Both
commands take their range, sheet, and output settings from sheetdoc.yaml;
"sheetdoc init" writes a starter config.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sheetdoc.yaml or ~/.config/sheetdoc/sheetdoc.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sheetdoc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sheetdoc"))
		}
	}

	viper.SetEnvPrefix("SHEETDOC")
	viper.AutomaticEnv()
	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
