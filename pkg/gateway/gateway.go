// Package gateway is the boundary to the external text-generation service.
package gateway

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"

	"velorabook/pkg/inference"
	"velorabook/pkg/prompt"
)

var (
	// ErrGenerationFailed is the only error Generate returns to callers, apart from
	// ErrTimeout which wraps it.
	ErrGenerationFailed = errors.New("generation failed")
	ErrTimeout          = fmt.Errorf("%w: timed out", ErrGenerationFailed)
)

const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.8
)

type Options struct {
	// Model overrides the inferencer's default model when set.
	Model       string
	MaxTokens int64
	// Temperature is sent as is, zero included; nil selects DefaultTemperature.
	Temperature *float64
	// Timeout bounds a whole Generate call, retries included. Zero disables it.
	Timeout time.Duration
	// Attempts is the total number of calls made; values below 2 disable retries.
	Attempts   uint
	RetryDelay time.Duration
	// CountTokens, when set, is used to log the prompt size.
	CountTokens func(string) (int, error)
}

type Gateway struct {
	inf  inference.Inferencer
	opts Options
}

func New(inf inference.Inferencer, opts Options) *Gateway {
	opts.MaxTokens = cmp.Or(opts.MaxTokens, DefaultMaxTokens)
	if opts.Temperature == nil {
		opts.Temperature = openai.Ptr(DefaultTemperature)
	}
	opts.Attempts = max(opts.Attempts, 1)
	opts.RetryDelay = cmp.Or(opts.RetryDelay, time.Second)
	return &Gateway{inf: inf, opts: opts}
}

// Generate sends user to the model with the fixed system instruction and returns the
// raw completion. Provider failures and empty completions come back as
// ErrGenerationFailed; an expired deadline comes back as ErrTimeout.
func (g *Gateway) Generate(ctx context.Context, user string) (string, error) {
	if g.opts.CountTokens != nil {
		if n, err := g.opts.CountTokens(prompt.SystemInstruction + user); err == nil {
			log.Debug("generation prompt", "tokens", n)
		}
	}

	if g.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()
	}

	params := &openai.ChatCompletionNewParams{
		Model:               g.opts.Model,
		MaxCompletionTokens: openai.Int(g.opts.MaxTokens),
		Temperature:         openai.Float(*g.opts.Temperature),
	}

	var text string
	attempt := 0
	err := retry.Do(
		func() error {
			attempt++
			out, err := g.inf.Infer(ctx, params, prompt.SystemInstruction, user)
			if err != nil {
				return err
			}
			out = strings.TrimSpace(out)
			if ok, err := g.inf.Verify(ctx, out); !ok {
				return cmp.Or(err, inference.ErrEmptyResult)
			}
			text = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.opts.Attempts),
		retry.Delay(g.opts.RetryDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Warn("generation attempt failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		log.Error("generation failed", "attempts", attempt, "error", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrTimeout
		}
		return "", ErrGenerationFailed
	}
	return text, nil
}
