package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"piigen/internal/config"
	"piigen/internal/exporter"
)

// ErrInvalidInput marks unusable console input. There is no retry loop:
// invalid input aborts the run and re-running the tool is the recovery path.
var ErrInvalidInput = errors.New("invalid input")

// Prompter runs the interactive question flow over an injected reader and
// writer, so tests can script it with plain strings.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// readLine reads one trimmed input line.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// AskInputMode asks whether the batch size comes as a record count or a
// target file size.
func (p *Prompter) AskInputMode() (InputMode, error) {
	fmt.Fprintln(p.out, "Choose input option:")
	fmt.Fprintln(p.out, "1. Specify number of records directly")
	fmt.Fprintln(p.out, "2. Specify desired file size in MB")
	fmt.Fprint(p.out, "Enter your choice (1 or 2): ")

	choice, err := p.readLine()
	if err != nil {
		return "", err
	}

	switch choice {
	case "1":
		return ModeRecordCount, nil
	case "2":
		return ModeTargetSize, nil
	default:
		return "", fmt.Errorf("%w: choice must be 1 or 2, got %q", ErrInvalidInput, choice)
	}
}

// AskNamingBasis asks whether output filenames carry the record count or
// the target size.
func (p *Prompter) AskNamingBasis() (NamingBasis, error) {
	fmt.Fprintln(p.out, "Name the files based on:")
	fmt.Fprintln(p.out, "1. Number of Records")
	fmt.Fprintln(p.out, "2. File Size")
	fmt.Fprint(p.out, "Enter choice (1 or 2): ")

	choice, err := p.readLine()
	if err != nil {
		return "", err
	}

	switch choice {
	case "1":
		return NameByRecords, nil
	case "2":
		return NameBySize, nil
	default:
		return "", fmt.Errorf("%w: choice must be 1 or 2, got %q", ErrInvalidInput, choice)
	}
}

// AskRecordCount asks for the number of records to generate.
func (p *Prompter) AskRecordCount() (int, error) {
	fmt.Fprint(p.out, "Enter the number of records you'd like to generate: ")

	raw, err := p.readLine()
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, raw)
	}
	if count < 0 {
		return 0, fmt.Errorf("%w: record count must be non-negative, got %d", ErrInvalidInput, count)
	}
	return count, nil
}

// AskTargetSize asks for the desired output size in megabytes.
func (p *Prompter) AskTargetSize() (float64, error) {
	fmt.Fprint(p.out, "Enter your desired file size in MB (e.g., 1.5 for 1.5MB): ")

	raw, err := p.readLine()
	if err != nil {
		return 0, err
	}

	size, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, raw)
	}
	if size <= 0 {
		return 0, fmt.Errorf("%w: size must be positive, got %g", ErrInvalidInput, size)
	}
	return size, nil
}

// ConfirmLargeBatch warns about a large batch and asks for an explicit
// go-ahead. Only an affirmative "yes" continues the run.
func (p *Prompter) ConfirmLargeBatch(recordCount int) (bool, error) {
	approx := humanize.Bytes(uint64(recordCount) * uint64(config.AverageBytesPerRecord))
	fmt.Fprintf(p.out, "Warning: generating %d records (about %s of output) might take a long time.\n", recordCount, approx)
	fmt.Fprint(p.out, "Do you want to continue? (yes/no): ")

	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "yes"), nil
}

// AskFormats asks which output formats to emit. Codes: 0 selects all
// formats, 1-4 select Excel, Word, PDF and text individually; multiple
// codes may be separated by spaces or commas.
func (p *Prompter) AskFormats() ([]exporter.Format, error) {
	fmt.Fprintln(p.out, "Choose output formats:")
	fmt.Fprintln(p.out, "0. All formats")
	fmt.Fprintln(p.out, "1. Excel (.xlsx)")
	fmt.Fprintln(p.out, "2. Word (.docx)")
	fmt.Fprintln(p.out, "3. PDF (.pdf)")
	fmt.Fprintln(p.out, "4. Text (.txt)")
	fmt.Fprint(p.out, "Enter format codes (e.g., 0 or 1 3 4): ")

	raw, err := p.readLine()
	if err != nil {
		return nil, err
	}

	codes := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: at least one format code is required", ErrInvalidInput)
	}

	byCode := map[string]exporter.Format{
		"1": exporter.FormatExcel,
		"2": exporter.FormatWord,
		"3": exporter.FormatPDF,
		"4": exporter.FormatText,
	}

	var formats []exporter.Format
	for _, code := range codes {
		if code == "0" {
			return append([]exporter.Format(nil), exporter.FormatOrder...), nil
		}
		format, ok := byCode[code]
		if !ok {
			return nil, fmt.Errorf("%w: format code must be in 0-4, got %q", ErrInvalidInput, code)
		}
		formats = append(formats, format)
	}
	return formats, nil
}
