package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Storefront/internal/cart"
)

func (c *cli) productsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cur := c.app.Carts.Renderer.Currency
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRICE")
			for _, p := range c.app.Catalog.List() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.ID, p.Name, cur.Format(p.Price))
			}
			return tw.Flush()
		},
	}
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the badge, cart rows and checkout summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Carts.Refresh(ctx(cmd), c.visitor, newTermView(cmd.OutOrStdout()))
		},
	}
}

func (c *cli) addCmd() *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product, merging into an existing line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notice, err := c.app.Carts.AddToCart(ctx(cmd), c.visitor, args[0], qty, newTermView(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), notice)
			return nil
		},
	}
	cmd.Flags().IntVarP(&qty, "qty", "q", 1, "quantity to add")
	return cmd
}

func (c *cli) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <product-id> <qty>",
		Short: "Set the quantity of a line; values below 1 become 1",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Carts.UpdateQuantity(ctx(cmd), c.visitor, args[0], cart.ParseQuantity(args[1]), newTermView(cmd.OutOrStdout()))
		},
	}
}

func (c *cli) removeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove every line for a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Carts.RemoveFromCart(ctx(cmd), c.visitor, args[0], newTermView(cmd.OutOrStdout()))
		},
	}
}

func (c *cli) clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Carts.ClearCart(ctx(cmd), c.visitor, newTermView(cmd.OutOrStdout()))
		},
	}
}

func (c *cli) checkoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Submit the demo checkout and clear the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Checkout.Submit(ctx(cmd), c.visitor)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Notice)
			if res.ReceiptID != "" {
				fmt.Fprintln(out, "Receipt: "+res.ReceiptID)
			}
			return nil
		},
	}
}
