package checkout

import (
	"context"

	"go.uber.org/zap"
)

// PaymentGateway is the seam for a real payment integration.
type PaymentGateway interface {
	Charge(ctx context.Context, r Receipt) error
}

// StubGateway accepts every receipt without charging anything.
type StubGateway struct {
	Log *zap.Logger
}

func (g StubGateway) Charge(_ context.Context, r Receipt) error {
	if g.Log != nil {
		g.Log.Info("payment gateway not integrated; accepting demo checkout",
			zap.String("receipt_id", r.ID),
			zap.Int64("total", r.Total),
		)
	}
	return nil
}
