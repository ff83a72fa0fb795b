package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"velorabook/pkg/config"
	"velorabook/pkg/server"
	"velorabook/pkg/wizard"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP API: the one-shot generation route, questionnaire sessions
and the book viewer.

Examples:
  velorabook serve
  PORT=3000 velorabook serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		echoLevel := setLogLevel(cfg.Log.Level)

		pipeline, err := newPipeline(ctx, cfg)
		if err != nil {
			return err
		}
		st, closeStore, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeStore(); err != nil {
				log.Error("failed to close store", "error", err)
			}
		}()

		sessions := wizard.NewManager(pipeline, st, wizard.Options{
			Timeout: cfg.Generation.Timeout,
			IdleTTL: cfg.Session.IdleTTL,
		})

		srv := server.NewServer(ctx, pipeline, sessions, st)
		srv.Echo.Logger.SetLevel(echoLevel)

		finishedShutDown := make(chan struct{})
		go func() {
			defer close(finishedShutDown)
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error("shutdown failed", "error", err)
			}
		}()

		if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		<-finishedShutDown
		return nil
	},
}
