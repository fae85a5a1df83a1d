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

var saleColumns = []string{
	"id", "invoice_number", "customer_id", "shipping_address_id",
	"total_amount", "status", "payment_method", "delivery_method",
	"delivery_instructions", "created_at", "updated_at",
}

var saleItemColumns = []string{
	"id", "sale_id", "product_id", "product_name", "quantity", "unit_price",
}

var paymentColumns = []string{
	"id", "sale_id", "method", "status", "amount", "payment_url",
	"external_reference", "card_last_four", "installments", "created_at", "paid_at",
}

type saleRepo struct {
	base
	addresses *addressRepo
}

func NewSaleRepo(db *sqlx.DB) *saleRepo {
	return &saleRepo{base: newBase(db), addresses: NewAddressRepo(db)}
}

func (r *saleRepo) CreateSale(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	query, args := r.qb.Insert("sales").
		Columns("invoice_number", "customer_id", "shipping_address_id", "total_amount",
			"status", "payment_method", "delivery_method", "delivery_instructions").
		Values(s.InvoiceNumber, s.CustomerID, s.ShippingAddressID, s.TotalAmount,
			string(s.Status), string(s.PaymentMethod), string(s.DeliveryMethod),
			nullString(s.DeliveryInstructions)).
		Suffix("RETURNING id, created_at, updated_at").
		MustSql()

	var row struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
		UpdatedAt sql.NullTime `db:"updated_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Sale{}, fmt.Errorf("failed to create sale: %w", err)
	}

	s.ID = row.ID
	if row.CreatedAt.Valid {
		s.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		s.UpdatedAt = row.UpdatedAt.Time
	}
	return s, nil
}

func (r *saleRepo) CreateSaleItems(ctx context.Context, saleID int64, items []entities.SaleItem) ([]entities.SaleItem, error) {
	if len(items) == 0 {
		return nil, nil
	}

	q := r.qb.Insert("sale_items").
		Columns("sale_id", "product_id", "product_name", "quantity", "unit_price")

	for _, it := range items {
		q = q.Values(saleID, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice)
	}

	query, args := q.Suffix("RETURNING id").MustSql()

	var ids []int64
	if err := r.selectContext(ctx, &ids, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create sale items: %w", err)
	}

	created := make([]entities.SaleItem, len(items))
	for i, it := range items {
		it.SaleID = saleID
		if i < len(ids) {
			it.ID = ids[i]
		}
		created[i] = it
	}
	return created, nil
}

func (r *saleRepo) CreatePayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	query, args := r.qb.Insert("payments").
		Columns("sale_id", "method", "status", "amount", "payment_url",
			"external_reference", "card_last_four", "installments").
		Values(p.SaleID, string(p.Method), string(p.Status), p.Amount, nullString(p.PaymentURL),
			nullString(p.ExternalReference), nullString(p.CardLastFour), nullInt32(p.Installments)).
		Suffix("RETURNING id, created_at").
		MustSql()

	var row struct {
		ID        int64        `db:"id"`
		CreatedAt sql.NullTime `db:"created_at"`
	}
	if err := r.getContext(ctx, &row, query, args...); err != nil {
		return entities.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	p.ID = row.ID
	if row.CreatedAt.Valid {
		p.CreatedAt = row.CreatedAt.Time
	}
	return p, nil
}

// GetSale loads the full aggregate: sale row, items, payment and the
// captured shipping address.
func (r *saleRepo) GetSale(ctx context.Context, saleID int64) (entities.Sale, error) {
	return r.getSaleWhere(ctx, sq.Eq{"id": saleID})
}

func (r *saleRepo) GetSaleForCustomer(ctx context.Context, saleID, customerID int64) (entities.Sale, error) {
	return r.getSaleWhere(ctx, sq.Eq{"id": saleID, "customer_id": customerID})
}

func (r *saleRepo) GetSaleByInvoice(ctx context.Context, invoiceNumber string) (entities.Sale, error) {
	return r.getSaleWhere(ctx, sq.Eq{"invoice_number": invoiceNumber})
}

func (r *saleRepo) GetSaleByInvoiceForCustomer(ctx context.Context, invoiceNumber string, customerID int64) (entities.Sale, error) {
	return r.getSaleWhere(ctx, sq.Eq{"invoice_number": invoiceNumber, "customer_id": customerID})
}

func (r *saleRepo) getSaleWhere(ctx context.Context, where sq.Eq) (entities.Sale, error) {
	query, args := r.qb.Select(saleColumns...).
		From("sales").
		Where(where).
		MustSql()

	var sale Sale
	err := r.getContext(ctx, &sale, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Sale{}, entities.ErrSaleNotFound
	}
	if err != nil {
		return entities.Sale{}, fmt.Errorf("failed to get sale: %w", err)
	}

	items, err := r.listItemRows(ctx, []int64{sale.ID})
	if err != nil {
		return entities.Sale{}, err
	}

	payment, err := r.getPaymentRow(ctx, sale.ID)
	if err != nil {
		return entities.Sale{}, err
	}

	var address *Address
	addr, err := r.addresses.GetByID(ctx, sale.ShippingAddressID)
	if err == nil {
		address = &Address{
			ID:           addr.ID,
			CustomerID:   addr.CustomerID,
			AddressLine1: addr.AddressLine1,
			AddressLine2: nullString(addr.AddressLine2),
			Landmark:     nullString(addr.Landmark),
			City:         addr.City,
			Department:   addr.Department,
			Country:      addr.Country,
			ZipCode:      addr.ZipCode,
			IsPrimary:    addr.Primary,
			IsActive:     addr.Active,
			CreatedAt:    addr.CreatedAt,
			UpdatedAt:    addr.UpdatedAt,
		}
	} else if !errors.Is(err, entities.ErrAddressNotFound) {
		return entities.Sale{}, err
	}

	return SaleToEntity(sale, items, payment, address), nil
}

func (r *saleRepo) ListByCustomer(ctx context.Context, customerID int64) ([]entities.Sale, error) {
	query, args := r.qb.Select(saleColumns...).
		From("sales").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		MustSql()

	return r.listSales(ctx, query, args)
}

func (r *saleRepo) ListAll(ctx context.Context, status *entities.SaleStatus, limit uint64) ([]entities.Sale, error) {
	q := r.qb.Select(saleColumns...).
		From("sales").
		OrderBy("created_at DESC")
	if status != nil {
		q = q.Where(sq.Eq{"status": string(*status)})
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	query, args := q.MustSql()

	return r.listSales(ctx, query, args)
}

func (r *saleRepo) listSales(ctx context.Context, query string, args []any) ([]entities.Sale, error) {
	var sales []Sale
	if err := r.selectContext(ctx, &sales, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sales: %w", err)
	}
	if len(sales) == 0 {
		return []entities.Sale{}, nil
	}

	ids := make([]int64, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
	}

	items, err := r.listItemRows(ctx, ids)
	if err != nil {
		return nil, err
	}
	itemsMap := make(map[int64][]SaleItem, len(ids))
	for _, it := range items {
		itemsMap[it.SaleID] = append(itemsMap[it.SaleID], it)
	}

	payments, err := r.listPaymentRows(ctx, ids)
	if err != nil {
		return nil, err
	}
	paymentMap := make(map[int64]Payment, len(payments))
	for _, p := range payments {
		paymentMap[p.SaleID] = p
	}

	result := make([]entities.Sale, 0, len(sales))
	for _, s := range sales {
		var payment *Payment
		if p, ok := paymentMap[s.ID]; ok {
			payment = &p
		}
		result = append(result, SaleToEntity(s, itemsMap[s.ID], payment, nil))
	}
	return result, nil
}

func (r *saleRepo) ListItems(ctx context.Context, saleID int64) ([]entities.SaleItem, error) {
	items, err := r.listItemRows(ctx, []int64{saleID})
	if err != nil {
		return nil, err
	}
	result := make([]entities.SaleItem, 0, len(items))
	for _, it := range items {
		result = append(result, SaleItemToEntity(it))
	}
	return result, nil
}

func (r *saleRepo) listItemRows(ctx context.Context, saleIDs []int64) ([]SaleItem, error) {
	query, args := r.qb.Select(saleItemColumns...).
		From("sale_items").
		Where(sq.Eq{"sale_id": saleIDs}).
		OrderBy("id").
		MustSql()

	var items []SaleItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select sale items: %w", err)
	}
	return items, nil
}

func (r *saleRepo) getPaymentRow(ctx context.Context, saleID int64) (*Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"sale_id": saleID}).
		MustSql()

	var payment Payment
	err := r.getContext(ctx, &payment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

func (r *saleRepo) listPaymentRows(ctx context.Context, saleIDs []int64) ([]Payment, error) {
	query, args := r.qb.Select(paymentColumns...).
		From("payments").
		Where(sq.Eq{"sale_id": saleIDs}).
		MustSql()

	var payments []Payment
	if err := r.selectContext(ctx, &payments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select payments: %w", err)
	}
	return payments, nil
}

func (r *saleRepo) UpdateStatus(ctx context.Context, saleID int64, status entities.SaleStatus) error {
	query, args := r.qb.Update("sales").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": saleID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update sale status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update sale status: %w", err)
	}
	if affected == 0 {
		return entities.ErrSaleNotFound
	}
	return nil
}

// CountByStatus returns sale counts grouped by status, optionally scoped
// to one customer.
func (r *saleRepo) CountByStatus(ctx context.Context, customerID *int64) (map[entities.SaleStatus]int, error) {
	q := r.qb.Select("status", "COUNT(*) AS count").
		From("sales").
		GroupBy("status")
	if customerID != nil {
		q = q.Where(sq.Eq{"customer_id": *customerID})
	}
	query, args := q.MustSql()

	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	counts := make(map[entities.SaleStatus]int, len(rows))
	for _, row := range rows {
		counts[entities.SaleStatus(row.Status)] = row.Count
	}
	return counts, nil
}
