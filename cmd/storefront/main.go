package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"Storefront/internal/config"
	"Storefront/internal/storefront"
	"Storefront/internal/web"
	"Storefront/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		kit.NewLogger(service, "info").Fatal("config", zap.Error(err))
	}

	log := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	secret, err := sessionSecret(cfg, log)
	if err != nil {
		log.Fatal("session secret", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := kit.NewMetrics(reg)

	ctx := context.Background()
	app, err := storefront.New(ctx, cfg, log, metrics)
	if err != nil {
		log.Fatal("init storefront", zap.Error(err))
	}

	tokens, err := web.NewVisitorTokens(secret)
	if err != nil {
		log.Fatal("visitor tokens", zap.Error(err))
	}

	s := &web.Server{
		Catalog:  app.Catalog,
		Carts:    app.Carts,
		Checkout: app.Checkout,
		Visitors: tokens,
		Log:      log,
	}

	h := web.NewHandler(s, web.HTTPDeps{
		Log:                 log,
		Service:             service,
		Registry:            reg,
		Metrics:             metrics,
		MetricsEnabled:      cfg.MetricsToken != "",
		MetricsToken:        cfg.MetricsToken,
		CheckoutLimitPerMin: cfg.CheckoutLimitPerMin,
	})

	closeApp := func(context.Context) error { return app.Close() }
	if err := kit.RunHTTPServer(":"+cfg.Port, h, log, closeApp); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// sessionSecret falls back to a random per-process secret when none is set.
// Visitors then lose their carts on restart, so it is only meant for local runs.
func sessionSecret(cfg config.Config, log *zap.Logger) (string, error) {
	if cfg.SessionSecret == "" {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		log.Warn("SESSION_SECRET not set; using an ephemeral secret")
		return hex.EncodeToString(buf), nil
	}
	if err := cfg.RequireSecret(); err != nil {
		return "", err
	}
	return cfg.SessionSecret, nil
}
