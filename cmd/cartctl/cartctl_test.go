package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	require.NoError(t, cmd.Execute(), "cartctl %s: %s", strings.Join(args, " "), out.String())
	return out.String()
}

func useSQLite(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_DSN", filepath.Join(t.TempDir(), "carts.db"))
}

func TestCartctl_AddUpdateShow(t *testing.T) {
	useSQLite(t)

	out := run(t, "add", "core-logo")
	assert.Contains(t, out, "Added to cart.")
	assert.Contains(t, out, "Cart items: 1")

	run(t, "add", "core-logo", "--qty", "2")

	out = run(t, "show")
	assert.Contains(t, out, "Cart items: 3")
	assert.Contains(t, out, "Subtotal: 1260 BDT")
	assert.Contains(t, out, "3 × ELENORM Core Logo Tee — 1260 BDT")
	assert.Contains(t, out, "Total: 1340 BDT (incl. est. 80 BDT shipping)")

	out = run(t, "update", "core-logo", "0")
	assert.Contains(t, out, "Cart items: 1")
}

func TestCartctl_VisitorsAreSeparate(t *testing.T) {
	useSQLite(t)

	run(t, "add", "spider", "--visitor", "a")

	out := run(t, "show", "--visitor", "b")
	assert.Contains(t, out, "Cart items: 0")
	assert.Contains(t, out, "Total: 0 BDT")
}

func TestCartctl_RemoveClearCheckout(t *testing.T) {
	useSQLite(t)

	run(t, "add", "spider")
	run(t, "add", "custom")

	out := run(t, "remove", "spider")
	assert.Contains(t, out, "Cart items: 1")

	out = run(t, "checkout")
	assert.Contains(t, out, "Checkout complete (demo).")
	assert.Contains(t, out, "Receipt: o_")

	out = run(t, "show")
	assert.Contains(t, out, "Your cart is empty.")

	run(t, "add", "spider")
	out = run(t, "clear")
	assert.Contains(t, out, "Cart items: 0")
}

func TestCartctl_Products(t *testing.T) {
	useSQLite(t)

	out := run(t, "products")
	assert.Contains(t, out, "free-palestine")
	assert.Contains(t, out, "480 BDT")
}
