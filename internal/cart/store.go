package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"Storefront/internal/storage"
)

// DefaultKey is the storage slot prefix for carts.
const DefaultKey = "elenorm_cart"

// Store reads and writes one cart per visitor as a JSON array of
// {"id", "qty"} objects.
type Store struct {
	KV  storage.KV
	Key string
	Log *zap.Logger
}

func NewStore(kv storage.KV, key string, log *zap.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{KV: kv, Key: key, Log: log}
}

func (s *Store) slot(visitor string) string {
	return s.Key + ":" + visitor
}

// Load returns an empty cart when the slot is missing or holds anything that
// is not a JSON array of lines. Only storage failures are returned as errors.
func (s *Store) Load(ctx context.Context, visitor string) (Cart, error) {
	raw, ok, err := s.KV.Get(ctx, s.slot(visitor))
	if err != nil {
		return Cart{}, fmt.Errorf("load cart: %w", err)
	}
	if !ok || raw == "" {
		return Cart{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		s.Log.Warn("discarding unreadable cart",
			zap.String("visitor", visitor),
			zap.Error(err),
		)
		return Cart{}, nil
	}
	return Cart{Lines: lines}, nil
}

// Save overwrites the slot with the full cart.
func (s *Store) Save(ctx context.Context, visitor string, c Cart) error {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.KV.Set(ctx, s.slot(visitor), string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Clear removes the slot. The next Load sees an empty cart.
func (s *Store) Clear(ctx context.Context, visitor string) error {
	if err := s.KV.Delete(ctx, s.slot(visitor)); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
