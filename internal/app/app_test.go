package app

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"piigen/internal/config"
	"piigen/internal/generator"
)

// runApp executes one scripted run against a temp base directory and
// returns that directory and the console transcript.
func runApp(t *testing.T, input string) (string, string, error) {
	t.Helper()

	base := filepath.Join(t.TempDir(), "Testing_PII_Data")
	cfg := config.Default()
	cfg.Output.BaseDir = base

	var out bytes.Buffer
	gen := generator.New(generator.WithSeed(1))

	err := New(cfg, strings.NewReader(input), &out, gen).Run()
	return base, out.String(), err
}

// collectFiles lists all regular files under dir, relative to it.
func collectFiles(t *testing.T, dir string) []string {
	t.Helper()

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(dir, path)
			files = append(files, rel)
		}
		return nil
	})
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return files
}

func TestRun_DirectCountTextOnly(t *testing.T) {
	base, out, err := runApp(t, "1\n1\n5\n4\n")
	require.NoError(t, err)

	files := collectFiles(t, base)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(config.TextSubdir, "customer_responses_5_records.txt"), files[0])

	data, err := os.ReadFile(filepath.Join(base, files[0]))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 5*6, "five records, six lines each")
	assert.Contains(t, out, "Data exported to Text file")
}

func TestRun_SizeModeEstimatesCount(t *testing.T) {
	// 0.001 MB at 125 bytes/record floors to 8 records
	base, _, err := runApp(t, "2\n1\n0.001\n4\n")
	require.NoError(t, err)

	files := collectFiles(t, base)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(config.TextSubdir, "customer_responses_8_records.txt"), files[0])

	data, err := os.ReadFile(filepath.Join(base, files[0]))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 8*6)
}

func TestRun_DeclinedConfirmationWritesNothing(t *testing.T) {
	base, out, err := runApp(t, "1\n1\n20000\nno\n")
	require.NoError(t, err, "a declined confirmation is a clean cancellation")

	assert.Empty(t, collectFiles(t, base))
	assert.Contains(t, out, "Warning")
	assert.Contains(t, out, "Operation canceled.")
}

func TestRun_ConfirmedLargeBatchProceeds(t *testing.T) {
	// Keep the batch at the threshold so the test stays quick enough
	base, _, err := runApp(t, "1\n1\n11700\nyes\n4\n")
	require.NoError(t, err)

	files := collectFiles(t, base)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(config.TextSubdir, "customer_responses_11700_records.txt"), files[0])
}

func TestRun_AllFormatsShareContent(t *testing.T) {
	base, _, err := runApp(t, "1\n1\n3\n0\n")
	require.NoError(t, err)

	files := collectFiles(t, base)
	require.Len(t, files, 4, "one file per format")

	expected := []string{
		filepath.Join(config.ExcelSubdir, "customer_responses_3_records.xlsx"),
		filepath.Join(config.PDFSubdir, "customer_responses_3_records.pdf"),
		filepath.Join(config.TextSubdir, "customer_responses_3_records.txt"),
		filepath.Join(config.WordSubdir, "customer_responses_3_records.docx"),
	}
	assert.ElementsMatch(t, expected, files)

	// Cross-check: the spreadsheet rows match the text file blocks
	xl, err := excelize.OpenFile(filepath.Join(base, config.ExcelSubdir, "customer_responses_3_records.xlsx"))
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 4)

	text, err := os.ReadFile(filepath.Join(base, config.TextSubdir, "customer_responses_3_records.txt"))
	require.NoError(t, err)

	for _, row := range rows[1:] {
		for _, value := range row {
			assert.Contains(t, string(text), value)
		}
	}
}

func TestRun_InvalidInputAborts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad mode", "7\n"},
		{"bad naming", "1\nx\n"},
		{"non-numeric count", "1\n1\nmany\n"},
		{"bad format code", "1\n1\n2\n9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, _, err := runApp(t, tt.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, collectFiles(t, base))
		})
	}
}

func TestRun_SizeNamingLabel(t *testing.T) {
	base, _, err := runApp(t, "2\n2\n0.001\n4\n")
	require.NoError(t, err)

	files := collectFiles(t, base)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(config.TextSubdir, "customer_responses_0.001MB.txt"), files[0])
}
