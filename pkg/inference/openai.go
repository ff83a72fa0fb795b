package inference

import (
	"cmp"
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// Provider names a text-generation backend.
type Provider string

const (
	ProviderOpenAI   Provider = "openai"
	ProviderGemini   Provider = "gemini"
	ProviderGrok     Provider = "grok"
	ProviderKimi     Provider = "kimi"
	ProviderMoonshot Provider = "moonshot"
	// ProviderLocal is an OpenAI-compatible server such as LM Studio.
	ProviderLocal Provider = "local"
)

type endpoint struct {
	baseURL string
	model   string
}

// OpenAI-compatible providers other than OpenAI itself.
var compatible = map[Provider]endpoint{
	ProviderGrok:     {baseURL: "https://api.x.ai/v1", model: "grok-4-fast-reasoning"},
	ProviderKimi:     {baseURL: "https://api.kimi.com/coding/v1", model: "kimi-for-coding"},
	ProviderMoonshot: {baseURL: "https://api.moonshot.ai/v1", model: "kimi-k2-5"},
	ProviderLocal:    {baseURL: "http://localhost:1234/v1"},
}

// OpenAIInferencer implements Inferencer on the chat completions API of OpenAI or any
// compatible provider.
type OpenAIInferencer struct {
	client   *openai.Client
	provider Provider
	apiKey   string
	model    string
}

// NewOpenAIInferencer creates an inferencer against api.openai.com.
func NewOpenAIInferencer(apiKey string, model string) *OpenAIInferencer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIInferencer{
		client:   &client,
		provider: ProviderOpenAI,
		apiKey:   apiKey,
		model:    model,
	}
}

// NewCompatibleInferencer creates an inferencer for one of the known OpenAI-compatible
// providers. An empty model selects the provider default.
func NewCompatibleInferencer(p Provider, apiKey string, model string) (*OpenAIInferencer, error) {
	ep, ok := compatible[p]
	if !ok {
		return nil, fmt.Errorf("unknown openai-compatible provider %q", p)
	}
	client := openai.NewClient(
		option.WithBaseURL(ep.baseURL),
		option.WithAPIKey(apiKey),
	)
	return &OpenAIInferencer{
		client:   &client,
		provider: p,
		apiKey:   apiKey,
		model:    cmp.Or(model, ep.model),
	}, nil
}

func (o *OpenAIInferencer) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIInferencer) Provider() Provider { return o.provider }

// Infer sends a system and a user message and returns the first choice's content.
// Unset params fall back to 4096 completion tokens and temperature 0.3; an explicit
// zero temperature is sent as is.
func (o *OpenAIInferencer) Infer(ctx context.Context, params *openai.ChatCompletionNewParams, system, user string) (string, error) {
	p := openai.ChatCompletionNewParams{}
	if params != nil {
		p = *params
	}
	p.Model = cmp.Or(p.Model, o.model)
	p.Messages = []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Role: "system",
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: param.Opt[string]{Value: system},
				},
			}},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Role: "user",
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: param.Opt[string]{Value: user},
				},
			},
		},
	}

	p.MaxCompletionTokens = openai.Int(p.MaxCompletionTokens.Or(4096))
	p.Temperature = openai.Float(p.Temperature.Or(0.3))

	resp, err := o.client.Chat.Completions.New(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%s inference error: %w", o.provider, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned")
	}
	if resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty completion content")
	}

	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIInferencer) Verify(ctx context.Context, result string) (bool, error) {
	return verifyText(result)
}
