package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	glog "github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velorabook/pkg/config"
	"velorabook/pkg/inference"
	"velorabook/pkg/schema"
	"velorabook/pkg/viewer"
)

func TestPickProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want inference.Provider
	}{
		{"no keys", config.Config{}, inference.ProviderLocal},
		{"openai", config.Config{OpenAI: config.Provider{APIKey: "sk"}, Grok: config.Provider{APIKey: "x"}}, inference.ProviderOpenAI},
		{"grok", config.Config{Grok: config.Provider{APIKey: "x"}}, inference.ProviderGrok},
		{"gemini", config.Config{Gemini: config.Provider{APIKey: "g"}}, inference.ProviderGemini},
		{"moonshot", config.Config{Moonshot: config.Provider{APIKey: "m"}}, inference.ProviderMoonshot},
		{"forced", config.Config{LLM: config.LLM{Provider: " Kimi "}, OpenAI: config.Provider{APIKey: "sk"}}, inference.ProviderKimi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pickProvider(&tt.cfg))
		})
	}
}

func TestNewInferencerCompatible(t *testing.T) {
	cfg := &config.Config{Grok: config.Provider{APIKey: "xai", Model: "grok-3"}}
	inf, err := newInferencer(context.Background(), cfg)
	require.NoError(t, err)
	oa, ok := inf.(*inference.OpenAIInferencer)
	require.True(t, ok)
	assert.Equal(t, inference.ProviderGrok, oa.Provider())

	cfg = &config.Config{LLM: config.LLM{Provider: "mistral"}}
	_, err = newInferencer(context.Background(), cfg)
	assert.Error(t, err)
}

func TestOpenStore(t *testing.T) {
	book := schema.Book{
		Title:             "Семейная Хроника",
		Chapters:          []schema.Chapter{{Number: 1, Title: "Начало Истории", Content: "..."}},
		TotalChapters:     1,
		EstimatedReadTime: 1,
	}
	for _, driver := range []string{config.DriverFile, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{Storage: config.Storage{Driver: driver, Path: t.TempDir(), CacheTTL: time.Minute}}
			st, closeFn, err := openStore(cfg)
			require.NoError(t, err)
			defer closeFn()

			ctx := context.Background()
			require.NoError(t, st.Save(ctx, "local", book))
			got, err := st.Load(ctx, "local")
			require.NoError(t, err)
			assert.Equal(t, book, got)
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	assert.Equal(t, glog.DEBUG, setLogLevel("debug"))
	assert.Equal(t, glog.WARN, setLogLevel("warn"))
	assert.Equal(t, glog.INFO, setLogLevel("nonsense"))
	assert.Equal(t, glog.INFO, setLogLevel("info"))
}

func TestPrintBook(t *testing.T) {
	v := viewer.New(viewer.Placeholder())
	var buf bytes.Buffer
	printCover(&buf, v.ShowCover())
	printContents(&buf, v.ShowContents())
	printChapter(&buf, v.GoTo(5))

	out := buf.String()
	assert.Contains(t, out, "Демо Книга")
	assert.Contains(t, out, "(демо-книга)")
	assert.Contains(t, out, "  1. Демо Глава")
	assert.Contains(t, out, "Глава 1 • 1 из 1")
}
