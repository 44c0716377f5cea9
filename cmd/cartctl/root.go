package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"Storefront/internal/config"
	"Storefront/internal/storefront"
	"Storefront/pkg/kit"
)

type cli struct {
	visitor string
	verbose bool

	log *zap.Logger
	app *storefront.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "cartctl",
		Short: "Inspect and edit storefront carts",
		Long: `cartctl runs the storefront cart operations against the storage backend
configured through CONFIG_FILE and STORAGE_* environment variables.

Every command acts on the cart of one visitor, selected with --visitor.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.open,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return c.close()
		},
	}

	root.PersistentFlags().StringVar(&c.visitor, "visitor", "cli", "visitor id whose cart is used")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(
		c.productsCmd(),
		c.showCmd(),
		c.addCmd(),
		c.updateCmd(),
		c.removeCmd(),
		c.clearCmd(),
		c.checkoutCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	c.log = kit.NewLogger("cartctl", level)

	app, err := storefront.New(ctx(cmd), cfg, c.log, nil)
	if err != nil {
		return fmt.Errorf("open storefront: %w", err)
	}
	c.app = app
	return nil
}

func (c *cli) close() error {
	if c.log != nil {
		_ = c.log.Sync()
	}
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

func ctx(cmd *cobra.Command) context.Context {
	if cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}
