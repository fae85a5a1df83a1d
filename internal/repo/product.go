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

type productRepo struct {
	base
}

func NewProductRepo(db *sqlx.DB) *productRepo {
	return &productRepo{base: newBase(db)}
}

func (r *productRepo) GetProduct(ctx context.Context, productID int64) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "price", "stock", "min_stock", "active", "updated_at").
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// ReserveStock decrements stock atomically. The conditional update closes
// the read-check-write race: a decrement only lands when enough stock is
// still there at write time.
func (r *productRepo) ReserveStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock - ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID, "active": true}).
		Where(sq.GtOrEq{"stock": quantity}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to reserve stock: %w", err)
	}
	if affected > 0 {
		return nil
	}

	// Nothing was updated; re-read to report the precise reason.
	product, err := r.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if !product.Active {
		return fmt.Errorf("product %s: %w", product.Name, entities.ErrProductUnavailable)
	}
	return &entities.InsufficientStockError{
		ProductID:   product.ID,
		ProductName: product.Name,
		Available:   product.Stock,
		Requested:   quantity,
	}
}

// RestoreStock puts cancelled quantities back. No upper bound is applied.
func (r *productRepo) RestoreStock(ctx context.Context, productID int64, quantity int) error {
	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", quantity)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": productID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	if affected == 0 {
		return entities.ErrProductNotFound
	}
	return nil
}
