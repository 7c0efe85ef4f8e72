// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	outline "github.com/sassoftware/pdf-outline"
)

var (
	extractInput  string
	extractOutput string
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract the outline of a single PDF",
	Long: `Extract the title and heading outline of one PDF file and write
it as JSON, to a file with -o or to stdout otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig()
		if err != nil {
			return err
		}

		p := outline.NewProcessor(cfg)
		if extractOutput != "" {
			return p.WriteOutlineFile(cmd.Context(), extractInput, extractOutput)
		}

		o, err := p.ExtractOutline(cmd.Context(), extractInput)
		if err != nil {
			return err
		}
		return o.WriteJSON(os.Stdout)
	},
}

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Print a PDF's plain text",
	Long: `Print the document's extracted plain text to stdout, pages
separated by form feeds. Useful for inspecting what the outline
classifiers see.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig()
		if err != nil {
			return err
		}
		text, err := outline.NewProcessor(cfg).ExtractText(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Print a PDF's document information dictionary as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig()
		if err != nil {
			return err
		}
		return outline.NewProcessor(cfg).Metadata(cmd.Context(), args[0], os.Stdout)
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "input PDF file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "output JSON file (default: stdout)")
	if err := extractCmd.MarkFlagRequired("input"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
