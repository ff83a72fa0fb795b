package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	glog "github.com/labstack/gommon/log"

	"velorabook/pkg/config"
	"velorabook/pkg/gateway"
	"velorabook/pkg/generate"
	"velorabook/pkg/inference"
	"velorabook/pkg/store"
	"velorabook/pkg/utils"
)

// pickProvider returns the configured provider, or the first one with an API key.
// Without any key the local OpenAI-compatible endpoint is used.
func pickProvider(cfg *config.Config) inference.Provider {
	if p := strings.ToLower(strings.TrimSpace(cfg.LLM.Provider)); p != "" {
		return inference.Provider(p)
	}
	switch {
	case cfg.OpenAI.APIKey != "":
		return inference.ProviderOpenAI
	case cfg.Grok.APIKey != "":
		return inference.ProviderGrok
	case cfg.Gemini.APIKey != "":
		return inference.ProviderGemini
	case cfg.Kimi.APIKey != "":
		return inference.ProviderKimi
	case cfg.Moonshot.APIKey != "":
		return inference.ProviderMoonshot
	}
	return inference.ProviderLocal
}

func providerConfig(cfg *config.Config, p inference.Provider) config.Provider {
	switch p {
	case inference.ProviderOpenAI, inference.ProviderLocal:
		return cfg.OpenAI
	case inference.ProviderGemini:
		return cfg.Gemini
	case inference.ProviderGrok:
		return cfg.Grok
	case inference.ProviderKimi:
		return cfg.Kimi
	case inference.ProviderMoonshot:
		return cfg.Moonshot
	}
	return config.Provider{}
}

func newInferencer(ctx context.Context, cfg *config.Config) (inference.Inferencer, error) {
	p := pickProvider(cfg)
	pc := providerConfig(cfg, p)
	log.Info("using text-generation provider", "provider", p, "model", pc.Model)

	switch p {
	case inference.ProviderOpenAI:
		inf := inference.NewOpenAIInferencer(pc.APIKey, pc.Model)
		if pc.BaseURL != "" {
			inf.ChangeBaseURL(pc.BaseURL)
		}
		return inf, nil
	case inference.ProviderGemini:
		inf, err := inference.NewGeminiInferencer(ctx, pc.APIKey, pc.Model)
		if err != nil {
			return nil, err
		}
		return inf, nil
	case inference.ProviderLocal:
		// local servers serve whatever model is loaded
		inf, err := inference.NewCompatibleInferencer(p, pc.APIKey, "")
		if err != nil {
			return nil, err
		}
		if pc.BaseURL != "" {
			inf.ChangeBaseURL(pc.BaseURL)
		}
		return inf, nil
	default:
		inf, err := inference.NewCompatibleInferencer(p, pc.APIKey, pc.Model)
		if err != nil {
			return nil, err
		}
		if pc.BaseURL != "" {
			inf.ChangeBaseURL(pc.BaseURL)
		}
		return inf, nil
	}
}

func newPipeline(ctx context.Context, cfg *config.Config) (*generate.Pipeline, error) {
	inf, err := newInferencer(ctx, cfg)
	if err != nil {
		return nil, err
	}
	gw := gateway.New(inf, gateway.Options{
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: &cfg.Generation.Temperature,
		Timeout:     cfg.Generation.Timeout,
		Attempts:    cfg.Generation.Attempts,
		RetryDelay:  cfg.Generation.RetryDelay,
		CountTokens: utils.NumTokens,
	})
	return generate.NewPipeline(gw), nil
}

// openStore returns the configured store and a function releasing it.
func openStore(cfg *config.Config) (store.Store, func() error, error) {
	var (
		st      store.Store
		closeFn = func() error { return nil }
	)
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		if err := os.MkdirAll(cfg.Storage.Path, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create storage dir: %w", err)
		}
		db, err := store.OpenSQLite(filepath.Join(cfg.Storage.Path, "velorabook.db"))
		if err != nil {
			return nil, nil, err
		}
		st, closeFn = db, db.Close
	default:
		st = store.NewFileStore(cfg.Storage.Path)
	}
	if cfg.Storage.CacheTTL > 0 {
		st = store.NewCached(st, cfg.Storage.CacheTTL)
	}
	log.Info("opened book store", "driver", cfg.Storage.Driver, "path", cfg.Storage.Path)
	return st, closeFn, nil
}

// setLogLevel applies level to the package logger and returns the matching echo level.
func setLogLevel(level string) glog.Lvl {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	switch lvl {
	case log.DebugLevel:
		return glog.DEBUG
	case log.WarnLevel:
		return glog.WARN
	case log.ErrorLevel, log.FatalLevel:
		return glog.ERROR
	default:
		return glog.INFO
	}
}
