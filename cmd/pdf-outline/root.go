// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	outline "github.com/sassoftware/pdf-outline"
)

var (
	cfgFile string
	debugOn bool
)

var rootCmd = &cobra.Command{
	Use:   "pdf-outline",
	Short: "Extract document outlines from PDF files",
	Long: `pdf-outline extracts a structured document outline from PDF files:
the document title plus a leveled list of headings (H1 through H4), each
with the page it appears on. Output is JSON.

Headings are classified structurally (numbering, section markers,
capitalization) with a font-metric fallback for documents whose line
structure does not survive text extraction.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./pdf-outline.yaml)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&debugOn, "debug", false, "enable debug logging",
	)

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(textCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-outline")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PDF_OUTLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newConfig builds the processor config from defaults, config file and
// environment, in increasing precedence.
func newConfig() (*outline.Config, error) {
	cfg := outline.NewDefaultConfig()

	if viper.IsSet("confidence_threshold") {
		cfg.ConfidenceThreshold = viper.GetFloat64("confidence_threshold")
	}
	if viper.IsSet("max_headings") {
		cfg.MaxHeadings = viper.GetInt("max_headings")
	}
	if viper.IsSet("workers_per_doc") {
		cfg.MaxWorkersPerDoc = viper.GetInt("workers_per_doc")
	}
	if viper.IsSet("max_concurrent_docs") {
		cfg.MaxConcurrentDocs = viper.GetInt("max_concurrent_docs")
	}
	if viper.IsSet("worker_timeout") {
		cfg.WorkerTimeout = viper.GetDuration("worker_timeout")
	}
	if viper.IsSet("parsing_mode") {
		cfg.ParsingMode = outline.ParsingMode(viper.GetString("parsing_mode"))
	}
	if viper.IsSet("include_title_heading") {
		cfg.IncludeTitleHeading = viper.GetBool("include_title_heading")
	}
	cfg.DebugOn = debugOn || viper.GetBool("debug")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
