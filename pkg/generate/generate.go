// Package generate runs the full book pipeline: prompt, model call, structuring.
package generate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"velorabook/pkg/booktype"
	"velorabook/pkg/gateway"
	"velorabook/pkg/metrics"
	"velorabook/pkg/prompt"
	"velorabook/pkg/schema"
	"velorabook/pkg/structure"
)

// ErrEmptyBook reports model output that produced no chapters.
var ErrEmptyBook = fmt.Errorf("%w: no chapters in model output", gateway.ErrGenerationFailed)

// Generator is the raw-text boundary the pipeline calls.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Pipeline struct {
	gen Generator
	now func() time.Time
}

func NewPipeline(gen Generator) *Pipeline {
	return &Pipeline{gen: gen, now: time.Now}
}

// Generate builds the prompt for bookType, calls the model and structures the answer.
// Errors are gateway.ErrGenerationFailed, gateway.ErrTimeout or ErrEmptyBook.
func (p *Pipeline) Generate(ctx context.Context, bookType string, answers map[string]string) (schema.Result, error) {
	label := booktype.Parse(bookType).String()
	start := p.now()

	raw, err := p.gen.Generate(ctx, prompt.Build(bookType, answers))
	metrics.GenerationDuration.WithLabelValues(label).Observe(time.Since(start).Seconds())
	if err != nil {
		status := metrics.StatusFailed
		if errors.Is(err, gateway.ErrTimeout) {
			status = metrics.StatusTimeout
		}
		metrics.GenerationTotal.WithLabelValues(label, status).Inc()
		return schema.Result{}, err
	}

	book := structure.Structure(raw, bookType)
	metrics.BookChapters.WithLabelValues(label).Observe(float64(book.TotalChapters))
	if book.TotalChapters == 0 {
		metrics.GenerationTotal.WithLabelValues(label, metrics.StatusEmpty).Inc()
		log.Warn("model output has no chapters", "bookType", bookType, "runes", len([]rune(raw)))
		return schema.Result{}, ErrEmptyBook
	}
	metrics.GenerationTotal.WithLabelValues(label, metrics.StatusSuccess).Inc()

	words := structure.WordCount(raw)
	log.Info("book generated", "bookType", bookType, "chapters", book.TotalChapters, "words", words)

	return schema.Result{
		Book: book,
		Metadata: schema.Metadata{
			BookType:    bookType,
			GeneratedAt: p.now().UTC(),
			WordCount:   words,
		},
	}, nil
}
