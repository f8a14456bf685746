package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"piigen/internal/config"
	"piigen/internal/exporter"
	"piigen/internal/generator"
)

// App wires the prompt flow, the generator and the exporter registry into
// one sequential run: collect input, plan, confirm, generate, export.
type App struct {
	out      io.Writer
	prompter *Prompter
	gen      *generator.Generator
	paths    *config.Paths
	registry *exporter.Registry
	logger   *slog.Logger
}

// New builds an App. in and out carry the interactive prompts; user-facing
// result lines are printed to out as well.
func New(cfg *config.Config, in io.Reader, out io.Writer, gen *generator.Generator) *App {
	paths := config.NewPaths(cfg.Output.BaseDir)
	return &App{
		out:      out,
		prompter: NewPrompter(in, out),
		gen:      gen,
		paths:    paths,
		registry: exporter.NewRegistry(paths),
		logger:   slog.Default(),
	}
}

// Run executes one full interactive run. A declined large-batch
// confirmation is a clean cancellation, not an error; every other failure
// is terminal with no retries and no partial-file cleanup.
func (a *App) Run() error {
	logger := a.logger.With(slog.String("run_id", uuid.NewString()))

	mode, err := a.prompter.AskInputMode()
	if err != nil {
		return err
	}

	naming, err := a.prompter.AskNamingBasis()
	if err != nil {
		return err
	}

	runCfg := RunConfig{Mode: mode, Naming: naming}
	switch mode {
	case ModeRecordCount:
		runCfg.RecordCount, err = a.prompter.AskRecordCount()
	case ModeTargetSize:
		runCfg.TargetSizeMB, err = a.prompter.AskTargetSize()
	}
	if err != nil {
		return err
	}

	count, err := ResolveRecordCount(runCfg)
	if err != nil {
		return err
	}

	logger.Info("Resolved batch size",
		slog.String("mode", string(mode)),
		slog.Int("record_count", count),
		slog.String("estimated_output", humanize.Bytes(uint64(count)*uint64(config.AverageBytesPerRecord))))

	if NeedsConfirmation(count) {
		ok, err := a.prompter.ConfirmLargeBatch(count)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Operation canceled.")
			logger.Info("Run cancelled by user", slog.Int("record_count", count))
			return nil
		}
	}

	runCfg.Formats, err = a.prompter.AskFormats()
	if err != nil {
		return err
	}

	plan, err := BuildPlan(runCfg)
	if err != nil {
		return err
	}

	if err := a.paths.EnsureDirectories(); err != nil {
		return err
	}

	batch, err := a.gen.Generate(plan.RecordCount)
	if err != nil {
		return err
	}

	for _, format := range plan.Formats {
		path, err := a.registry.Export(format, batch, plan.Label)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Data exported to %s file: %s\n", displayName(format), path)
	}

	logger.Info("Run complete",
		slog.Int("record_count", plan.RecordCount),
		slog.Int("format_count", len(plan.Formats)),
		slog.String("label", plan.Label))

	return nil
}

// displayName maps a format tag to its user-facing name.
func displayName(format exporter.Format) string {
	switch format {
	case exporter.FormatExcel:
		return "Excel"
	case exporter.FormatWord:
		return "Word"
	case exporter.FormatPDF:
		return "PDF"
	case exporter.FormatText:
		return "Text"
	default:
		return string(format)
	}
}
