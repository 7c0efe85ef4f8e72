// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sassoftware/pdf-outline/logger"
)

type ParsingMode string

const (
	Strict     ParsingMode = "strict"
	BestEffort ParsingMode = "best-effort"
)

type Config struct {
	MaxConcurrentDocs int           `validate:"min=1,max=10"`
	MaxWorkersPerDoc  int           `validate:"min=1,max=10"`
	WorkerTimeout     time.Duration `validate:"required"`
	ParsingMode       ParsingMode   `validate:"oneof=strict best-effort"`
	MaxRetries        int           `validate:"min=0,max=3"`

	// ConfidenceThreshold gates font-metric heading candidates. A candidate
	// survives only if its confidence is strictly greater than the threshold.
	ConfidenceThreshold float64 `validate:"gt=0,lt=1"`

	// MaxHeadings caps the number of font-metric candidates kept per
	// document, highest confidence first.
	MaxHeadings int `validate:"min=1,max=500"`

	// IncludeTitleHeading keeps the line chosen as the document title in the
	// heading list as well. By default the title is removed from the outline.
	IncludeTitleHeading bool

	DebugOn bool
	Logger  logger.LogFunc
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxConcurrentDocs:   5,
		MaxWorkersPerDoc:    1,
		WorkerTimeout:       5 * time.Second,
		ParsingMode:         BestEffort,
		MaxRetries:          3,
		ConfidenceThreshold: 0.5,
		MaxHeadings:         50,
		IncludeTitleHeading: false,
		DebugOn:             false,
	}
}

func (cfg *Config) Validate() error {
	logger.Debug("Validating Config Object")
	validate := validator.New()
	return validate.Struct(cfg)
}
