package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
)

// Inferencer runs a single system+user completion and checks its result.
type Inferencer interface {
	Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error)
	Verify(ctx context.Context, result string) (bool, error)
}

// ErrEmptyResult is returned by Verify for blank completions.
var ErrEmptyResult = errors.New("empty result")

func verifyText(result string) (bool, error) {
	if result == "" {
		return false, ErrEmptyResult
	}
	return true, nil
}
