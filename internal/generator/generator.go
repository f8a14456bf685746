package generator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/schollz/progressbar/v3"
)

// Generator produces batches of synthetic customer records.
type Generator struct {
	faker    *gofakeit.Faker
	progress io.Writer
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed makes generation deterministic for reproducible fixtures.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.faker = gofakeit.New(seed)
	}
}

// WithProgress enables a per-record progress bar written to w.
func WithProgress(w io.Writer) Option {
	return func(g *Generator) {
		g.progress = w
	}
}

// New creates a Generator. Without options, generation is randomly seeded
// and silent.
func New(opts ...Option) *Generator {
	g := &Generator{
		faker: gofakeit.New(0),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces exactly count records. Duplicate values across records
// and fields are permitted and expected at scale. A negative count is an
// error; zero yields an empty batch.
func (g *Generator) Generate(count int) (Batch, error) {
	if count < 0 {
		return nil, fmt.Errorf("record count must be non-negative, got %d", count)
	}

	slog.Info("Generating records", slog.Int("count", count))

	var bar *progressbar.ProgressBar
	if g.progress != nil && count > 0 {
		bar = progressbar.NewOptions(count,
			progressbar.OptionSetWriter(g.progress),
			progressbar.OptionSetDescription("Generating Data"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	batch := make(Batch, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, g.record())
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return batch, nil
}

// record samples one Record. The address is normalized to a single line so
// it stays flat-format safe.
func (g *Generator) record() Record {
	addr := g.faker.Address()
	return Record{
		FullName:     g.faker.Name(),
		Address:      strings.ReplaceAll(addr.Address, "\n", ", "),
		PhoneNumber:  g.faker.PhoneFormatted(),
		EmailAddress: g.faker.Email(),
		Feedback:     g.faker.Sentence(8),
	}
}
