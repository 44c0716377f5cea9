// Package storefront assembles the cart, catalog and checkout services from
// configuration. Both the HTTP server and the CLI build on it.
package storefront

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/internal/catalog"
	"Storefront/internal/checkout"
	"Storefront/internal/config"
	"Storefront/internal/storage"
	"Storefront/pkg/kit"
)

type App struct {
	Catalog  *catalog.Catalog
	KV       storage.KV
	Carts    *cart.Service
	Checkout *checkout.Service

	closers []func() error
}

// New opens storage and loads the catalog. Close releases whatever was opened,
// including on a partial failure inside New.
func New(ctx context.Context, cfg config.Config, log *zap.Logger, metrics *kit.Metrics) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{}

	cat, err := a.loadCatalog(ctx, cfg.Catalog)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	a.Catalog = cat

	kv, closeKV, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.KV = kv
	a.closers = append(a.closers, closeKV)

	receipts, err := a.openReceipts(ctx, cfg.Storage)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open receipts: %w", err)
	}

	a.Carts = &cart.Service{
		Store: cart.NewStore(kv, cfg.CartKey, log),
		Renderer: &cart.Renderer{
			Catalog:     cat,
			Currency:    cfg.Currency,
			ShippingFee: cfg.ShippingFee,
		},
		Metrics: metrics,
		Log:     log,
	}
	a.Checkout = &checkout.Service{
		Carts:    a.Carts,
		Gateway:  checkout.StubGateway{Log: log},
		Receipts: receipts,
		Metrics:  metrics,
		Log:      log,
	}

	log.Info("storefront ready",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("products", cat.Len()),
	)
	return a, nil
}

func (a *App) loadCatalog(ctx context.Context, cfg config.Catalog) (*catalog.Catalog, error) {
	switch {
	case cfg.DSN != "":
		db, err := sql.Open("pgx", cfg.DSN)
		if err != nil {
			return nil, err
		}
		// Products are read once; the pool is not kept.
		defer func() { _ = db.Close() }()
		return catalog.LoadPostgres(ctx, db)
	case cfg.File != "":
		return catalog.LoadFile(cfg.File)
	default:
		return catalog.Default()
	}
}

// openReceipts keeps receipts next to the carts when they live in Postgres,
// and in memory otherwise.
func (a *App) openReceipts(ctx context.Context, cfg config.Storage) (checkout.Store, error) {
	if cfg.Driver != storage.DriverPostgres {
		return checkout.NewMemStore(), nil
	}

	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, db.Close)

	s := checkout.NewPostgresStore(db)
	if err := s.Init(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
