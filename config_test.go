// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		shouldErr bool
	}{
		{
			name: "valid config",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         BestEffort,
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: false,
		},
		{
			name: "invalid MaxConcurrentDocs (too low)",
			cfg: &Config{
				MaxConcurrentDocs:   0,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         BestEffort,
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "invalid MaxWorkersPerDoc (too high)",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    11,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         Strict,
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "missing WorkerTimeout",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				ParsingMode:         BestEffort,
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "invalid ParsingMode",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         ParsingMode("lenient"),
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "confidence threshold out of range",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         BestEffort,
				MaxRetries:          1,
				ConfidenceThreshold: 1.0,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "too many retries",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         BestEffort,
				MaxRetries:          4,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         50,
			},
			shouldErr: true,
		},
		{
			name: "max headings over cap",
			cfg: &Config{
				MaxConcurrentDocs:   10,
				MaxWorkersPerDoc:    2,
				WorkerTimeout:       5 * time.Second,
				ParsingMode:         BestEffort,
				MaxRetries:          1,
				ConfidenceThreshold: 0.5,
				MaxHeadings:         501,
			},
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, BestEffort, cfg.ParsingMode)
	assert.Equal(t, 0.5, cfg.ConfidenceThreshold)
	assert.Equal(t, 50, cfg.MaxHeadings)
	assert.False(t, cfg.IncludeTitleHeading)
}
