package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/petshop/checkout-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var addressColumns = []string{
	"id", "customer_id", "address_line1", "address_line2", "landmark",
	"city", "department", "country", "zip_code",
	"is_primary", "is_active", "created_at", "updated_at",
}

type addressRepo struct {
	base
}

func NewAddressRepo(db *sqlx.DB) *addressRepo {
	return &addressRepo{base: newBase(db)}
}

// GetByIDAndCustomer returns an active address owned by the customer.
func (r *addressRepo) GetByIDAndCustomer(ctx context.Context, addressID, customerID int64) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": addressID, "customer_id": customerID, "is_active": true}).
		MustSql()

	var address Address
	err := r.getContext(ctx, &address, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(address), nil
}

// GetByID also returns soft-deleted addresses: sales keep referencing an
// address after the customer removes it.
func (r *addressRepo) GetByID(ctx context.Context, addressID int64) (entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"id": addressID}).
		MustSql()

	var address Address
	err := r.getContext(ctx, &address, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Address{}, entities.ErrAddressNotFound
	}
	if err != nil {
		return entities.Address{}, fmt.Errorf("failed to get address: %w", err)
	}
	return AddressToEntity(address), nil
}

func (r *addressRepo) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Address, error) {
	query, args := r.qb.Select(addressColumns...).
		From("addresses").
		Where(sq.Eq{"customer_id": customerID, "is_active": true}).
		OrderBy("is_primary DESC", "created_at DESC").
		MustSql()

	var addresses []Address
	if err := r.selectContext(ctx, &addresses, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select addresses: %w", err)
	}

	result := make([]entities.Address, 0, len(addresses))
	for _, a := range addresses {
		result = append(result, AddressToEntity(a))
	}
	return result, nil
}

func (r *addressRepo) CountActive(ctx context.Context, customerID int64) (int, error) {
	query, args := r.qb.Select("COUNT(*)").
		From("addresses").
		Where(sq.Eq{"customer_id": customerID, "is_active": true}).
		MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count addresses: %w", err)
	}
	return count, nil
}

func (r *addressRepo) Create(ctx context.Context, a entities.Address) (entities.Address, error) {
	query, args := r.qb.Insert("addresses").
		Columns("customer_id", "address_line1", "address_line2", "landmark",
			"city", "department", "country", "zip_code", "is_primary", "is_active").
		Values(a.CustomerID, a.AddressLine1, nullString(a.AddressLine2), nullString(a.Landmark),
			a.City, a.Department, a.Country, a.ZipCode, a.Primary, true).
		Suffix("RETURNING " + strings.Join(addressColumns, ", ")).
		MustSql()

	var created Address
	if err := r.getContext(ctx, &created, query, args...); err != nil {
		return entities.Address{}, fmt.Errorf("failed to create address: %w", err)
	}
	return AddressToEntity(created), nil
}

func (r *addressRepo) Update(ctx context.Context, a entities.Address) error {
	query, args := r.qb.Update("addresses").
		Set("address_line1", a.AddressLine1).
		Set("address_line2", nullString(a.AddressLine2)).
		Set("landmark", nullString(a.Landmark)).
		Set("city", a.City).
		Set("department", a.Department).
		Set("country", a.Country).
		Set("zip_code", a.ZipCode).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": a.ID, "customer_id": a.CustomerID, "is_active": true}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update address: %w", err)
	}
	if affected == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

func (r *addressRepo) SoftDelete(ctx context.Context, addressID, customerID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_active", false).
		Set("is_primary", false).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": addressID, "customer_id": customerID, "is_active": true}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	if affected == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}

// UnsetPrimary clears the flag on every address of the customer; SetPrimary
// then marks exactly one. The pair runs inside one transaction.
func (r *addressRepo) UnsetPrimary(ctx context.Context, customerID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_primary", false).
		Where(sq.Eq{"customer_id": customerID}).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to unset primary addresses: %w", err)
	}
	return nil
}

func (r *addressRepo) SetPrimary(ctx context.Context, addressID, customerID int64) error {
	query, args := r.qb.Update("addresses").
		Set("is_primary", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": addressID, "customer_id": customerID, "is_active": true}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set primary address: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set primary address: %w", err)
	}
	if affected == 0 {
		return entities.ErrAddressNotFound
	}
	return nil
}
