package app

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"piigen/internal/config"
	"piigen/internal/exporter"
	"piigen/internal/generator"
)

// InputMode selects how the batch size is specified.
type InputMode string

const (
	ModeRecordCount InputMode = "records"
	ModeTargetSize  InputMode = "size"
)

// NamingBasis selects how output filenames are labelled.
type NamingBasis string

const (
	NameByRecords NamingBasis = "records"
	NameBySize    NamingBasis = "size"
)

// RunConfig is the structured input for one run, fully decoupled from the
// console prompts that usually produce it.
type RunConfig struct {
	Mode         InputMode   `validate:"required,oneof=records size"`
	Naming       NamingBasis `validate:"required,oneof=records size"`
	RecordCount  int         `validate:"min=0"`
	TargetSizeMB float64
	Formats      []exporter.Format `validate:"required,min=1,unique,dive,oneof=excel word pdf text"`
}

// Plan is a validated run plan: how many records to generate, the filename
// label, and the formats to emit in fixed order.
type Plan struct {
	RecordCount int
	Label       string
	Formats     []exporter.Format
}

var validate = validator.New()

// ResolveRecordCount computes the batch size for a config: the direct count
// in record mode, the size heuristic in size mode.
func ResolveRecordCount(cfg RunConfig) (int, error) {
	switch cfg.Mode {
	case ModeRecordCount:
		if cfg.RecordCount < 0 {
			return 0, fmt.Errorf("record count must be non-negative, got %d", cfg.RecordCount)
		}
		return cfg.RecordCount, nil
	case ModeTargetSize:
		if cfg.TargetSizeMB <= 0 {
			return 0, fmt.Errorf("target size must be positive, got %g", cfg.TargetSizeMB)
		}
		return generator.EstimateRecordCount(cfg.TargetSizeMB, config.AverageBytesPerRecord), nil
	default:
		return 0, fmt.Errorf("unknown input mode: %s", cfg.Mode)
	}
}

// NeedsConfirmation reports whether a batch is large enough to require an
// explicit go-ahead before generation.
func NeedsConfirmation(recordCount int) bool {
	return recordCount >= config.LargeBatchThreshold
}

// BuildPlan validates the config and turns it into a run plan. It is a pure
// function: no I/O, no prompts.
func BuildPlan(cfg RunConfig) (*Plan, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}

	count, err := ResolveRecordCount(cfg)
	if err != nil {
		return nil, err
	}

	return &Plan{
		RecordCount: count,
		Label:       buildLabel(cfg, count),
		Formats:     orderFormats(cfg.Formats),
	}, nil
}

// buildLabel derives the filename label from the naming preference. Naming
// by size without a target size falls back to a fixed placeholder, matching
// the record-count flow where no size is known.
func buildLabel(cfg RunConfig, count int) string {
	if cfg.Naming == NameBySize {
		if cfg.Mode == ModeTargetSize {
			return fmt.Sprintf("%gMB", cfg.TargetSizeMB)
		}
		return "custom_size"
	}
	return fmt.Sprintf("%d_records", count)
}

// orderFormats returns the selected formats in the fixed export order,
// dropping duplicates.
func orderFormats(selected []exporter.Format) []exporter.Format {
	want := make(map[exporter.Format]bool, len(selected))
	for _, f := range selected {
		want[f] = true
	}

	ordered := make([]exporter.Format, 0, len(want))
	for _, f := range exporter.FormatOrder {
		if want[f] {
			ordered = append(ordered, f)
		}
	}
	return ordered
}
