// Package main implements a minimal echo bot: it connects to a chat
// gateway, listens for messages addressed to it, and echoes their text
// back. It doubles as a smoke test for a gateway deployment.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/c360/chatstreams/config"
	"github.com/c360/chatstreams/event"
	"github.com/c360/chatstreams/gateway"
	"github.com/c360/chatstreams/message"
)

const appName = "chatstreams-echo"

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(); err != nil {
		slog.Error("bot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "text", "Log format (text, json)")
	metricsAddr := flag.String("metrics-addr", "", "Address for Prometheus metrics endpoint (empty disables)")
	flag.Parse()

	logger := setupLogger(*logLevel, *logFormat)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	opts := []gateway.Option{gateway.WithLogger(logger)}
	if *metricsAddr != "" {
		opts = append(opts, gateway.WithMetrics(registry))
		go serveMetrics(*metricsAddr, registry, logger)
	}

	client, err := gateway.NewClient(cfg, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close failed", "error", err)
		}
	}()
	logger.Info("echo bot running", "gateway", cfg.Gateway.URL())

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case ev, open := <-client.Events():
			if !open {
				logger.Info("gateway session ended")
				return nil
			}
			handleEvent(ctx, client, ev, logger)
		}
	}
}

func handleEvent(ctx context.Context, client *gateway.Client, ev event.Event, logger *slog.Logger) {
	switch e := ev.(type) {
	case event.FriendMessage:
		text := e.Message.Content.ExtractText()
		if text == "" {
			return
		}
		if _, err := client.SendFriendMessage(ctx, e.Sender.ID, message.FromText(text)); err != nil {
			logger.Warn("echo failed", "target", e.Sender.ID, "error", err)
		}
	case event.GroupMessage:
		// Only echo on explicit request.
		if !e.Message.Content.HasPrefix("!echo ") {
			return
		}
		text := strings.TrimPrefix(e.Message.Content.ExtractText(), "!echo ")
		if _, err := client.SendGroupMessage(ctx, e.Sender.Group.ID, message.FromText(text)); err != nil {
			logger.Warn("echo failed", "group", e.Sender.Group.ID, "error", err)
		}
	case event.BotOfflineDropped:
		logger.Warn("bot dropped offline", "qq", e.QQ)
	}
}

func serveMetrics(addr string, registry *prometheus.Registry, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server failed", "error", err)
	}
}
