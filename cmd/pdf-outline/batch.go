// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	outline "github.com/sassoftware/pdf-outline"
)

var (
	batchInputDir  string
	batchOutputDir string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Extract outlines for every PDF in a directory",
	Long: `Process every *.pdf file in the input directory and write one
JSON outline per document to the output directory, named after the input
file's stem. Failures on individual documents are reported and skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := newConfig()
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(batchInputDir)
		if err != nil {
			return fmt.Errorf("read input directory: %w", err)
		}
		if err := os.MkdirAll(batchOutputDir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		p := outline.NewProcessor(cfg)
		start := time.Now()
		var processed, failed int

		for _, e := range entries {
			if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
				continue
			}
			in := filepath.Join(batchInputDir, e.Name())
			stem := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
			out := filepath.Join(batchOutputDir, stem+".json")

			if err := p.WriteOutlineFile(cmd.Context(), in, out); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.Name(), err)
				continue
			}
			processed++
			fmt.Printf("%s -> %s\n", e.Name(), out)
		}

		fmt.Printf("Processed %d file(s), %d failed in %s\n", processed, failed, time.Since(start).Round(time.Millisecond))
		if processed == 0 && failed == 0 {
			fmt.Println("No PDF files found in", batchInputDir)
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "input", "i", "input", "directory of PDF files")
	batchCmd.Flags().StringVarP(&batchOutputDir, "output", "o", "output", "directory for JSON outlines")
}
