package cart

import (
	"context"

	"go.uber.org/zap"

	"Storefront/pkg/kit"
)

// NoticeAdded is shown to the visitor after a successful add.
const NoticeAdded = "Added to cart."

const (
	opAdd    = "add"
	opUpdate = "update"
	opRemove = "remove"
	opClear  = "clear"
)

// Service runs cart operations for one visitor at a time: load, mutate,
// save, then refresh the affected views. A nil View skips rendering.
type Service struct {
	Store    *Store
	Renderer *Renderer
	Metrics  *kit.Metrics
	Log      *zap.Logger
}

func (s *Service) Cart(ctx context.Context, visitor string) (Cart, error) {
	return s.Store.Load(ctx, visitor)
}

// Refresh renders every region the view has from the stored cart.
func (s *Service) Refresh(ctx context.Context, visitor string, v View) error {
	c, err := s.Store.Load(ctx, visitor)
	if err != nil {
		return err
	}
	s.Renderer.RenderAll(v, c)
	return nil
}

// AddToCart returns the confirmation notice for the visitor.
func (s *Service) AddToCart(ctx context.Context, visitor, productID string, qty int, v View) (string, error) {
	c, err := s.Store.Load(ctx, visitor)
	if err != nil {
		return "", err
	}

	c = Add(c, productID, qty)
	if err := s.Store.Save(ctx, visitor, c); err != nil {
		return "", err
	}
	s.Metrics.CartOp(opAdd)
	s.debug("cart add", visitor, productID, qty)

	s.Renderer.RenderBadge(v, c)
	return NoticeAdded, nil
}

// UpdateQuantity is a no-op when the product is not in the cart.
func (s *Service) UpdateQuantity(ctx context.Context, visitor, productID string, qty int, v View) error {
	c, err := s.Store.Load(ctx, visitor)
	if err != nil {
		return err
	}

	c, ok := SetQuantity(c, productID, qty)
	if !ok {
		return nil
	}
	if err := s.Store.Save(ctx, visitor, c); err != nil {
		return err
	}
	s.Metrics.CartOp(opUpdate)
	s.debug("cart update", visitor, productID, qty)

	s.Renderer.RenderCartPage(v, c)
	s.Renderer.RenderBadge(v, c)
	return nil
}

// RemoveFromCart leaves storage untouched when nothing matches, but still
// re-renders.
func (s *Service) RemoveFromCart(ctx context.Context, visitor, productID string, v View) error {
	c, err := s.Store.Load(ctx, visitor)
	if err != nil {
		return err
	}

	c, removed := Remove(c, productID)
	if removed {
		if err := s.Store.Save(ctx, visitor, c); err != nil {
			return err
		}
		s.Metrics.CartOp(opRemove)
		s.debug("cart remove", visitor, productID, 0)
	}

	s.Renderer.RenderCartPage(v, c)
	s.Renderer.RenderBadge(v, c)
	return nil
}

func (s *Service) ClearCart(ctx context.Context, visitor string, v View) error {
	if err := s.Store.Clear(ctx, visitor); err != nil {
		return err
	}
	s.Metrics.CartOp(opClear)

	s.Renderer.RenderCartPage(v, Cart{})
	s.Renderer.RenderBadge(v, Cart{})
	return nil
}

func (s *Service) debug(msg, visitor, productID string, qty int) {
	if s.Log == nil {
		return
	}
	s.Log.Debug(msg,
		zap.String("visitor", visitor),
		zap.String("product_id", productID),
		zap.Int("qty", qty),
	)
}
