package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Storefront/internal/cart"
	"Storefront/internal/catalog"
	"Storefront/internal/money"
	"Storefront/internal/storage"
)

const visitor = "v_checkout"

func newService(t *testing.T, gw PaymentGateway) (*Service, *MemStore) {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	carts := &cart.Service{
		Store:    cart.NewStore(storage.NewMemStore(), "", nil),
		Renderer: &cart.Renderer{Catalog: cat, Currency: money.BDT, ShippingFee: cart.DefaultShippingFee},
	}
	receipts := NewMemStore()

	return &Service{
		Carts:    carts,
		Gateway:  gw,
		Receipts: receipts,
		Log:      zap.NewNop(),
		now:      func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
	}, receipts
}

func TestSubmit_ClearsCartAndRecordsReceipt(t *testing.T) {
	ctx := context.Background()
	s, receipts := newService(t, StubGateway{})

	_, err := s.Carts.AddToCart(ctx, visitor, "free-palestine", 1, nil)
	require.NoError(t, err)
	_, err = s.Carts.AddToCart(ctx, visitor, "gone", 3, nil)
	require.NoError(t, err)

	res, err := s.Submit(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, Notice, res.Notice)
	assert.Equal(t, "/", res.Redirect)
	require.NotEmpty(t, res.ReceiptID)

	c, err := s.Carts.Cart(ctx, visitor)
	require.NoError(t, err)
	assert.True(t, c.Empty())

	r, ok, err := receipts.Get(ctx, res.ReceiptID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(480), r.Subtotal)
	assert.Equal(t, int64(80), r.Shipping)
	assert.Equal(t, int64(560), r.Total)
	assert.Equal(t, StatusDemo, r.Status)
	assert.Len(t, r.Items, 1, "unknown products are not receipted")
	assert.Equal(t, 2026, r.CreatedAt.Year())
}

func TestSubmit_EmptyCartStillCompletes(t *testing.T) {
	s, _ := newService(t, StubGateway{})

	res, err := s.Submit(context.Background(), visitor)
	require.NoError(t, err)
	assert.Equal(t, Notice, res.Notice)
	assert.Empty(t, res.ReceiptID)
}

type declineGateway struct{}

var errDeclined = errors.New("declined")

func (declineGateway) Charge(context.Context, Receipt) error { return errDeclined }

func TestSubmit_GatewayFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t, declineGateway{})

	_, err := s.Carts.AddToCart(ctx, visitor, "spider", 1, nil)
	require.NoError(t, err)

	_, err = s.Submit(ctx, visitor)
	assert.ErrorIs(t, err, errDeclined)

	c, err := s.Carts.Cart(ctx, visitor)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count())
}
