package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains all the output paths for one run.
// This is the single source of truth for where each format's files land.
type Paths struct {
	BaseDir string

	ExcelDir string
	WordDir  string
	PDFDir   string
	TextDir  string
}

// NewPaths builds the per-format output directories under the given base.
// Directory structure:
//
//	Testing_PII_Data/
//	  ├── Excel Files/
//	  ├── Word Files/
//	  ├── PDF Files/
//	  └── Text Files/
func NewPaths(baseDir string) *Paths {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	return &Paths{
		BaseDir:  baseDir,
		ExcelDir: filepath.Join(baseDir, ExcelSubdir),
		WordDir:  filepath.Join(baseDir, WordSubdir),
		PDFDir:   filepath.Join(baseDir, PDFSubdir),
		TextDir:  filepath.Join(baseDir, TextSubdir),
	}
}

// EnsureDirectories creates all output directories if they don't exist.
// Idempotent: re-running with existing directories is a no-op.
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.BaseDir,
		p.ExcelDir,
		p.WordDir,
		p.PDFDir,
		p.TextDir,
	}

	logger := slog.Default()

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		logger.Debug("Ensured directory exists",
			slog.String("directory", dir))
	}

	return nil
}
