package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formwidgets/internal/logger"
	"github.com/goliatone/go-formwidgets/pkg/config"
	"github.com/goliatone/go-formwidgets/pkg/render"
	"github.com/goliatone/go-formwidgets/pkg/renderers/vanilla"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the form page, the phone formatting endpoint and the runtime assets",
	RunE:  runServe,
}

func init() {
	addFormFlags(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (defaults to "+config.EnvAddr+")")
	serveCmd.Flags().String("base-path", "", "mount path for the form and API (defaults to "+config.EnvBasePath+")")
	serveCmd.Flags().String("env-file", "", ".env file to load before reading the environment")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return err
	}
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.LoadEnv(files...)
	if err != nil {
		return err
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Addr = addr
	}
	if base, _ := cmd.Flags().GetString("base-path"); base != "" {
		cfg.BasePath = base
	}

	log := logger.New(cfg.LogLevel)

	renderer, err := vanilla.New()
	if err != nil {
		return err
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	orch, req, err := formPipeline(cmd, registry, renderer.Name())
	if err != nil {
		return err
	}
	handler, err := newServer(serverConfig{
		BasePath:  cfg.BasePath,
		RateLimit: cfg.RateLimit,
		RateBurst: cfg.RateBurst,
		Logger:    log,
		Orch:      orch,
		Request:   req,
		Renderer:  renderer,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("base_path", cfg.BasePath).Msg("serve: listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	log.Info().Msg("serve: shutting down")
	return srv.Shutdown(shutdownCtx)
}
