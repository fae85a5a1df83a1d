package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/petshop/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

type cartRepo struct {
	base
}

func NewCartRepo(db *sqlx.DB) *cartRepo {
	return &cartRepo{base: newBase(db)}
}

func (r *cartRepo) GetCartByCustomer(ctx context.Context, customerID int64) (entities.Cart, error) {
	query, args := r.qb.Select("id", "customer_id", "updated_at").
		From("carts").
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	var cart Cart
	err := r.getContext(ctx, &cart, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Cart{}, entities.ErrCartNotFound
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return CartToEntity(cart), nil
}

// CreateCart is an upsert so concurrent first-touch requests for the same
// customer converge on one row.
func (r *cartRepo) CreateCart(ctx context.Context, customerID int64) (entities.Cart, error) {
	query, args := r.qb.Insert("carts").
		Columns("customer_id").
		Values(customerID).
		Suffix("ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id RETURNING id, customer_id, updated_at").
		MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}
	return CartToEntity(cart), nil
}

func (r *cartRepo) ListItems(ctx context.Context, cartID int64) ([]entities.CartItem, error) {
	query, args := r.qb.Select("id", "cart_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		OrderBy("id").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart items: %w", err)
	}

	result := make([]entities.CartItem, 0, len(items))
	for _, it := range items {
		result = append(result, CartItemToEntity(it))
	}
	return result, nil
}

// ListLines joins items with product name and current price for rendering
// the cart. Prices here are informational; checkout re-reads products.
func (r *cartRepo) ListLines(ctx context.Context, cartID int64) ([]entities.CartLine, error) {
	query, args := r.qb.Select(
		"ci.product_id",
		"p.name AS product_name",
		"p.price AS unit_price",
		"ci.quantity").
		From("cart_items ci").
		Join("products p ON p.id = ci.product_id").
		Where(sq.Eq{"ci.cart_id": cartID}).
		OrderBy("ci.id").
		MustSql()

	var lines []CartLine
	if err := r.selectContext(ctx, &lines, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select cart lines: %w", err)
	}

	result := make([]entities.CartLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, CartLineToEntity(l))
	}
	return result, nil
}

func (r *cartRepo) GetItem(ctx context.Context, cartID, productID int64) (entities.CartItem, error) {
	query, args := r.qb.Select("id", "cart_id", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	var item CartItem
	err := r.getContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.CartItem{}, entities.ErrItemNotFound
	}
	if err != nil {
		return entities.CartItem{}, fmt.Errorf("failed to get cart item: %w", err)
	}
	return CartItemToEntity(item), nil
}

func (r *cartRepo) InsertItem(ctx context.Context, cartID, productID int64, quantity int) error {
	query, args := r.qb.Insert("cart_items").
		Columns("cart_id", "product_id", "quantity").
		Values(cartID, productID, quantity).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	return nil
}

func (r *cartRepo) UpdateItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	query, args := r.qb.Update("cart_items").
		Set("quantity", quantity).
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	if affected == 0 {
		return entities.ErrItemNotFound
	}
	return nil
}

func (r *cartRepo) DeleteItem(ctx context.Context, cartID, productID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID, "product_id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete cart item: %w", err)
	}
	if affected == 0 {
		return entities.ErrItemNotFound
	}
	return nil
}

// ClearItems empties the cart; clearing an already-empty cart is fine.
func (r *cartRepo) ClearItems(ctx context.Context, cartID int64) error {
	query, args := r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (r *cartRepo) CountItems(ctx context.Context, cartID int64) (int, error) {
	query, args := r.qb.Select("COALESCE(SUM(quantity), 0)").
		From("cart_items").
		Where(sq.Eq{"cart_id": cartID}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count cart items: %w", err)
	}
	return count, nil
}

func (r *cartRepo) Touch(ctx context.Context, cartID int64) error {
	query, args := r.qb.Update("carts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": cartID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch cart: %w", err)
	}
	return nil
}
