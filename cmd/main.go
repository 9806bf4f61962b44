package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "github.com/fedutinova/regexsmith/internal/config"
	"github.com/fedutinova/regexsmith/internal/gpt"
	"github.com/fedutinova/regexsmith/internal/pattern"
	"github.com/fedutinova/regexsmith/internal/regexgen"
	"github.com/fedutinova/regexsmith/internal/server"
	httpapi "github.com/fedutinova/regexsmith/internal/transport/http"
)

func main() {
	cfg := appconfig.Load()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	catchAll, err := pattern.ParseCatchAll(cfg.CatchAllPolicy)
	if err != nil {
		slog.Error("invalid catch-all policy", "err", err)
		os.Exit(1)
	}

	var gen gpt.Generator
	if cfg.LLM.APIKey != "" {
		client := gpt.NewClient(gpt.Config{
			APIKey:          cfg.LLM.APIKey,
			BaseURL:         cfg.LLM.BaseURL,
			Model:           cfg.LLM.Model,
			Temperature:     float32(cfg.LLM.Temperature),
			MaxTokens:       cfg.LLM.MaxTokens,
			Timeout:         cfg.LLM.Timeout,
			RetryMaxElapsed: cfg.LLM.RetryMaxElapsed,
		})
		slog.Info("generator configured", "model", client.Model(), "base_url", cfg.LLM.BaseURL)
		gen = client
	} else {
		slog.Warn("DEEPSEEK_API_KEY not set, generation disabled")
	}

	svc := regexgen.New(gen, pattern.NewExtractor(pattern.WithCatchAll(catchAll)))

	slog.Info("starting regexsmith",
		"addr", cfg.HTTPAddr,
		"generator_ready", svc.Configured(),
		"catch_all", catchAll.String(),
		"debug", cfg.Debug)

	handlers := &httpapi.Handlers{
		Service: svc,
		Config:  cfg,
	}
	r := server.NewRouter(handlers)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  90 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	slog.Info("shutting down")

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
