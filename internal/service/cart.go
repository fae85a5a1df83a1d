package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/pkg/trm"
)

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	products  ProductRepo
}

func NewCartService(logger *slog.Logger, txManager trm.Manager, carts CartRepo, products ProductRepo) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		carts:     carts,
		products:  products,
	}
}

// GetCart returns the customer's cart, creating an empty one on first
// access. Totals are derived from the lines on every read.
func (s *cartService) GetCart(ctx context.Context, actor entities.User) (entities.CartView, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.CartView{}, err
	}

	var view entities.CartView
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.getOrCreateCart(ctx, actor.ID)
		if err != nil {
			return err
		}
		return s.loadView(ctx, cart, &view)
	})
	return view, err
}

func (s *cartService) AddItem(ctx context.Context, actor entities.User, productID int64, quantity int) (entities.CartView, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.CartView{}, err
	}
	if quantity <= 0 {
		return entities.CartView{}, entities.ErrInvalidQuantity
	}

	var view entities.CartView
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.getOrCreateCart(ctx, actor.ID)
		if err != nil {
			return err
		}

		product, err := s.getAvailableProduct(ctx, productID)
		if err != nil {
			return err
		}

		existing, err := s.carts.GetItem(ctx, cart.ID, productID)
		switch {
		case err == nil:
			// Same product again: grow the line, re-check the combined
			// quantity against current stock.
			newQuantity := existing.Quantity + quantity
			if err := checkStock(product, newQuantity); err != nil {
				return err
			}
			if err := s.carts.UpdateItemQuantity(ctx, cart.ID, productID, newQuantity); err != nil {
				return err
			}
		case errors.Is(err, entities.ErrItemNotFound):
			if err := checkStock(product, quantity); err != nil {
				return err
			}
			if err := s.carts.InsertItem(ctx, cart.ID, productID, quantity); err != nil {
				return err
			}
		default:
			return err
		}

		if err := s.carts.Touch(ctx, cart.ID); err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "item added to cart",
			slog.Int64("customer_id", actor.ID),
			slog.Int64("product_id", productID),
			slog.Int("quantity", quantity),
		)
		return s.loadView(ctx, cart, &view)
	})
	return view, err
}

// UpdateItem overwrites a line's quantity; a non-positive quantity removes
// the line instead.
func (s *cartService) UpdateItem(ctx context.Context, actor entities.User, productID int64, quantity int) (entities.CartView, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, actor, productID)
	}
	if err := requireCustomer(actor); err != nil {
		return entities.CartView{}, err
	}

	var view entities.CartView
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetCartByCustomer(ctx, actor.ID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return entities.ErrItemNotFound
		}
		if err != nil {
			return err
		}

		product, err := s.getAvailableProduct(ctx, productID)
		if err != nil {
			return err
		}
		if err := checkStock(product, quantity); err != nil {
			return err
		}

		if err := s.carts.UpdateItemQuantity(ctx, cart.ID, productID, quantity); err != nil {
			return err
		}
		if err := s.carts.Touch(ctx, cart.ID); err != nil {
			return err
		}
		return s.loadView(ctx, cart, &view)
	})
	return view, err
}

func (s *cartService) RemoveItem(ctx context.Context, actor entities.User, productID int64) (entities.CartView, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.CartView{}, err
	}

	var view entities.CartView
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetCartByCustomer(ctx, actor.ID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return entities.ErrItemNotFound
		}
		if err != nil {
			return err
		}

		if err := s.carts.DeleteItem(ctx, cart.ID, productID); err != nil {
			return err
		}
		if err := s.carts.Touch(ctx, cart.ID); err != nil {
			return err
		}
		return s.loadView(ctx, cart, &view)
	})
	return view, err
}

// Clear empties the cart; clearing a missing or empty cart succeeds.
func (s *cartService) Clear(ctx context.Context, actor entities.User) error {
	if err := requireCustomer(actor); err != nil {
		return err
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetCartByCustomer(ctx, actor.ID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
			return err
		}
		return s.carts.Touch(ctx, cart.ID)
	})
}

// ItemCount sums quantities across lines; a customer with no cart row has
// a count of zero, not an error.
func (s *cartService) ItemCount(ctx context.Context, actor entities.User) (int, error) {
	if err := requireCustomer(actor); err != nil {
		return 0, err
	}

	cart, err := s.carts.GetCartByCustomer(ctx, actor.ID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return s.carts.CountItems(ctx, cart.ID)
}

func (s *cartService) getOrCreateCart(ctx context.Context, customerID int64) (entities.Cart, error) {
	cart, err := s.carts.GetCartByCustomer(ctx, customerID)
	if errors.Is(err, entities.ErrCartNotFound) {
		return s.carts.CreateCart(ctx, customerID)
	}
	return cart, err
}

func (s *cartService) getAvailableProduct(ctx context.Context, productID int64) (entities.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return entities.Product{}, err
	}
	if !product.Active {
		return entities.Product{}, fmt.Errorf("product %s: %w", product.Name, entities.ErrProductUnavailable)
	}
	if product.Stock <= 0 {
		return entities.Product{}, fmt.Errorf("product %s: %w", product.Name, entities.ErrOutOfStock)
	}
	return product, nil
}

func (s *cartService) loadView(ctx context.Context, cart entities.Cart, view *entities.CartView) error {
	lines, err := s.carts.ListLines(ctx, cart.ID)
	if err != nil {
		return err
	}
	*view = entities.CartView{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		Lines:      lines,
		UpdatedAt:  cart.UpdatedAt,
	}
	return nil
}

func checkStock(product entities.Product, quantity int) error {
	if quantity > product.Stock {
		return &entities.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Available:   product.Stock,
			Requested:   quantity,
		}
	}
	return nil
}
