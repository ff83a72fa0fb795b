package inference

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openai/openai-go/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	var inf Inferencer = NewOpenAIInferencer("key", "gpt-3.5-turbo")

	ok, err := inf.Verify(context.Background(), "")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrEmptyResult)

	ok, err = inf.Verify(context.Background(), "Глава 1")
	assert.True(t, ok)
	assert.NoError(t, err)
}

func TestNewCompatibleInferencer(t *testing.T) {
	grok, err := NewCompatibleInferencer(ProviderGrok, "key", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderGrok, grok.Provider())
	assert.Equal(t, "grok-4-fast-reasoning", grok.model)

	moon, err := NewCompatibleInferencer(ProviderMoonshot, "key", "custom")
	require.NoError(t, err)
	assert.Equal(t, "custom", moon.model)

	_, err = NewCompatibleInferencer(ProviderOpenAI, "key", "")
	assert.Error(t, err)
	_, err = NewCompatibleInferencer(Provider("nope"), "key", "")
	assert.Error(t, err)
}

func TestInferTemperature(t *testing.T) {
	var sent []map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		sent = append(sent, body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","created":0,"model":"m",` +
			`"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Глава 1"}}]}`))
	}))
	defer srv.Close()

	inf := NewOpenAIInferencer("key", "m")
	inf.ChangeBaseURL(srv.URL + "/")

	out, err := inf.Infer(context.Background(), &openai.ChatCompletionNewParams{Temperature: openai.Float(0)}, "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "Глава 1", out)

	_, err = inf.Infer(context.Background(), nil, "system", "user")
	require.NoError(t, err)

	require.Len(t, sent, 2)
	assert.Equal(t, 0.0, sent[0]["temperature"])
	assert.Equal(t, 0.3, sent[1]["temperature"])
	assert.Equal(t, 4096.0, sent[1]["max_completion_tokens"])
}
