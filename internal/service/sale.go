package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/events"
	"github.com/petshop/checkout-service/pkg/trm"
	"github.com/petshop/checkout-service/pkg/utils"
)

// saleService is the administrative side of the sale lifecycle: managers
// and super admins drive sales through the status machine.
type saleService struct {
	logger    *slog.Logger
	txManager trm.Manager
	sales     SaleRepo
	products  ProductRepo
	publisher EventPublisher
	cache     Cache
}

func NewSaleService(
	logger *slog.Logger,
	txManager trm.Manager,
	sales SaleRepo,
	products ProductRepo,
	publisher EventPublisher,
	cache Cache,
) *saleService {
	return &saleService{
		logger:    logger.With(slog.String("service", "sale")),
		txManager: txManager,
		sales:     sales,
		products:  products,
		publisher: publisher,
		cache:     cache,
	}
}

func (s *saleService) ListSales(ctx context.Context, actor entities.User, status *entities.SaleStatus, limit uint64) ([]entities.Sale, error) {
	if err := requireSalesAdmin(actor); err != nil {
		return nil, err
	}
	return s.sales.ListAll(ctx, status, limit)
}

func (s *saleService) GetSale(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error) {
	if err := requireSalesAdmin(actor); err != nil {
		return entities.Sale{}, err
	}
	return s.sales.GetSale(ctx, saleID)
}

// GetSaleByInvoice serves support lookups and is the one cached read;
// every status mutation invalidates the entry.
func (s *saleService) GetSaleByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error) {
	if err := requireSalesAdmin(actor); err != nil {
		return entities.Sale{}, err
	}

	if data, ok := s.cache.Get(saleCacheKey(invoiceNumber)); ok {
		var sale entities.Sale
		if err := sale.Unmarshal(data); err == nil {
			return sale, nil
		}
		s.cache.Delete(saleCacheKey(invoiceNumber))
	}

	sale, err := s.sales.GetSaleByInvoice(ctx, invoiceNumber)
	if err != nil {
		return entities.Sale{}, err
	}

	if data, err := sale.Marshal(); err == nil {
		s.cache.Set(saleCacheKey(invoiceNumber), data)
	}
	return sale, nil
}

// UpdateStatus applies one transition of the sale status machine.
// Cancellation restores the reserved stock in the same transaction;
// delivery is a pure status write.
func (s *saleService) UpdateStatus(ctx context.Context, actor entities.User, saleID int64, next entities.SaleStatus) (entities.Sale, error) {
	if err := requireSalesAdmin(actor); err != nil {
		return entities.Sale{}, err
	}

	var sale entities.Sale
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		sale, err = s.sales.GetSale(ctx, saleID)
		if err != nil {
			return err
		}

		if err := sale.Status.ValidateTransition(next); err != nil {
			return err
		}

		if next == entities.SaleCancelled {
			for _, item := range sale.Items {
				if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}

		return s.sales.UpdateStatus(ctx, sale.ID, next)
	})
	if err != nil {
		return entities.Sale{}, err
	}

	s.cache.Delete(saleCacheKey(sale.InvoiceNumber))
	s.logger.InfoContext(ctx, "sale status updated",
		slog.String("actor", actor.Email),
		slog.String("invoice_number", sale.InvoiceNumber),
		slog.String("from", string(sale.Status)),
		slog.String("to", string(next)),
	)

	eventType := events.OrderStatusChanged
	if next == entities.SaleCancelled {
		eventType = events.OrderCancelled
	}
	s.publishEvent(ctx, events.OrderEvent{
		Type:          eventType,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerID:    sale.CustomerID,
		Status:        string(next),
		TotalAmount:   sale.TotalAmount.StringFixed(2),
		OccurredAt:    time.Now(),
	})

	sale.Status = next
	return sale, nil
}

// CancelSale is administrative cancellation: allowed from any non-terminal
// status, including shipped.
func (s *saleService) CancelSale(ctx context.Context, actor entities.User, saleID int64) error {
	_, err := s.UpdateStatus(ctx, actor, saleID, entities.SaleCancelled)
	return err
}

func (s *saleService) SalesStats(ctx context.Context, actor entities.User) (entities.SalesStats, error) {
	if err := requireSalesAdmin(actor); err != nil {
		return entities.SalesStats{}, err
	}

	counts, err := s.sales.CountByStatus(ctx, nil)
	if err != nil {
		return entities.SalesStats{}, err
	}

	stats := entities.SalesStats{
		Pending:   counts[entities.SalePending],
		Confirmed: counts[entities.SaleConfirmed],
		Paid:      counts[entities.SalePaid],
		Shipped:   counts[entities.SaleShipped],
		Delivered: counts[entities.SaleDelivered],
		Cancelled: counts[entities.SaleCancelled],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *saleService) publishEvent(ctx context.Context, event events.OrderEvent) {
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	err := utils.Retry(cfg, func() error {
		return s.publisher.PublishOrderEvent(ctx, event)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order event",
			slog.String("type", event.Type),
			slog.String("invoice_number", event.InvoiceNumber),
			slog.Any("error", err),
		)
	}
}
