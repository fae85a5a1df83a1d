package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/events"
	"github.com/petshop/checkout-service/pkg/trm"
	"github.com/petshop/checkout-service/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const mercadoPagoCheckoutURL = "https://mercadopago.com/checkout/"

type CreateOrderInput struct {
	AddressID            int64
	PaymentMethod        entities.PaymentMethod
	DeliveryMethod       entities.DeliveryMethod
	DeliveryInstructions string
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	carts     CartRepo
	products  ProductRepo
	addresses AddressRepo
	sales     SaleRepo
	publisher EventPublisher
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	carts CartRepo,
	products ProductRepo,
	addresses AddressRepo,
	sales SaleRepo,
	publisher EventPublisher,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		carts:     carts,
		products:  products,
		addresses: addresses,
		sales:     sales,
		publisher: publisher,
		cache:     cache,
	}
}

// CreateOrderFromCart converts the customer's cart into a sale. Everything
// from address resolution to cart clearing runs in one transaction: a
// failure anywhere leaves cart, inventory and sales untouched.
func (s *orderService) CreateOrderFromCart(ctx context.Context, actor entities.User, input CreateOrderInput) (entities.Sale, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Sale{}, err
	}
	if !input.PaymentMethod.Valid() {
		return entities.Sale{}, fmt.Errorf("unknown payment method %q", input.PaymentMethod)
	}
	if !input.DeliveryMethod.Valid() {
		return entities.Sale{}, fmt.Errorf("unknown delivery method %q", input.DeliveryMethod)
	}

	var sale entities.Sale
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.carts.GetCartByCustomer(ctx, actor.ID)
		if errors.Is(err, entities.ErrCartNotFound) {
			return entities.ErrEmptyCart
		}
		if err != nil {
			return err
		}

		cartItems, err := s.carts.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return entities.ErrEmptyCart
		}

		address, err := s.addresses.GetByIDAndCustomer(ctx, input.AddressID, actor.ID)
		if errors.Is(err, entities.ErrAddressNotFound) {
			return entities.ErrInvalidAddress
		}
		if err != nil {
			return err
		}

		// All-or-nothing validation before any write: unit prices are
		// captured here and frozen for the life of the sale.
		saleItems := make([]entities.SaleItem, 0, len(cartItems))
		total := decimal.Zero
		for _, item := range cartItems {
			product, err := s.products.GetProduct(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !product.Active {
				return fmt.Errorf("product %s: %w", product.Name, entities.ErrProductUnavailable)
			}
			if product.Stock < item.Quantity {
				return &entities.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Available:   product.Stock,
					Requested:   item.Quantity,
				}
			}

			saleItems = append(saleItems, entities.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			})
			total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}

		created, err := s.sales.CreateSale(ctx, entities.Sale{
			InvoiceNumber:        entities.NewInvoiceNumber(actor.ID, time.Now()),
			CustomerID:           actor.ID,
			ShippingAddressID:    address.ID,
			TotalAmount:          total,
			Status:               entities.SalePending,
			PaymentMethod:        input.PaymentMethod,
			DeliveryMethod:       input.DeliveryMethod,
			DeliveryInstructions: input.DeliveryInstructions,
		})
		if err != nil {
			return err
		}

		createdItems, err := s.sales.CreateSaleItems(ctx, created.ID, saleItems)
		if err != nil {
			return err
		}

		for _, item := range createdItems {
			if err := s.products.ReserveStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		payment := entities.Payment{
			SaleID:            created.ID,
			Method:            input.PaymentMethod,
			Status:            entities.PaymentPending,
			Amount:            total,
			ExternalReference: uuid.NewString(),
		}
		if input.PaymentMethod == entities.PaymentMercadoPago {
			payment.PaymentURL = mercadoPagoCheckoutURL + created.InvoiceNumber
		}
		createdPayment, err := s.sales.CreatePayment(ctx, payment)
		if err != nil {
			return err
		}

		if err := s.carts.ClearItems(ctx, cart.ID); err != nil {
			return err
		}
		if err := s.carts.Touch(ctx, cart.ID); err != nil {
			return err
		}

		created.Items = createdItems
		created.ShippingAddress = &address
		created.Payment = &createdPayment
		sale = created
		return nil
	})
	if err != nil {
		return entities.Sale{}, err
	}

	s.logger.InfoContext(ctx, "order created",
		slog.Int64("customer_id", actor.ID),
		slog.String("invoice_number", sale.InvoiceNumber),
		slog.String("total_amount", sale.TotalAmount.StringFixed(2)),
	)
	s.publishEvent(ctx, events.OrderEvent{
		Type:          events.OrderCreated,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerID:    sale.CustomerID,
		Status:        string(sale.Status),
		TotalAmount:   sale.TotalAmount.StringFixed(2),
		OccurredAt:    time.Now(),
	})

	return sale, nil
}

// CancelOrder is the customer-initiated cancellation. It is stricter than
// the administrative path: a shipped order can no longer be cancelled by
// its owner.
func (s *orderService) CancelOrder(ctx context.Context, actor entities.User, saleID int64) error {
	if err := requireCustomer(actor); err != nil {
		return err
	}

	var sale entities.Sale
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		sale, err = s.sales.GetSaleForCustomer(ctx, saleID, actor.ID)
		if errors.Is(err, entities.ErrSaleNotFound) {
			return entities.ErrOrderNotFound
		}
		if err != nil {
			return err
		}

		switch sale.Status {
		case entities.SaleShipped, entities.SaleDelivered:
			return entities.ErrAlreadyShipped
		case entities.SaleCancelled:
			return entities.ErrAlreadyCancelled
		}
		if err := sale.Status.ValidateTransition(entities.SaleCancelled); err != nil {
			return err
		}

		for _, item := range sale.Items {
			if err := s.products.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return s.sales.UpdateStatus(ctx, sale.ID, entities.SaleCancelled)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(saleCacheKey(sale.InvoiceNumber))
	s.logger.InfoContext(ctx, "order cancelled by customer",
		slog.Int64("customer_id", actor.ID),
		slog.String("invoice_number", sale.InvoiceNumber),
	)
	s.publishEvent(ctx, events.OrderEvent{
		Type:          events.OrderCancelled,
		InvoiceNumber: sale.InvoiceNumber,
		CustomerID:    sale.CustomerID,
		Status:        string(entities.SaleCancelled),
		TotalAmount:   sale.TotalAmount.StringFixed(2),
		OccurredAt:    time.Now(),
	})
	return nil
}

func (s *orderService) ListOrders(ctx context.Context, actor entities.User) ([]entities.Sale, error) {
	if err := requireCustomer(actor); err != nil {
		return nil, err
	}
	return s.sales.ListByCustomer(ctx, actor.ID)
}

func (s *orderService) GetOrder(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Sale{}, err
	}

	sale, err := s.sales.GetSaleForCustomer(ctx, saleID, actor.ID)
	if errors.Is(err, entities.ErrSaleNotFound) {
		return entities.Sale{}, entities.ErrOrderNotFound
	}
	return sale, err
}

func (s *orderService) GetOrderByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.Sale{}, err
	}

	sale, err := s.sales.GetSaleByInvoiceForCustomer(ctx, invoiceNumber, actor.ID)
	if errors.Is(err, entities.ErrSaleNotFound) {
		return entities.Sale{}, entities.ErrOrderNotFound
	}
	return sale, err
}

func (s *orderService) OrderStats(ctx context.Context, actor entities.User) (entities.OrderStats, error) {
	if err := requireCustomer(actor); err != nil {
		return entities.OrderStats{}, err
	}

	counts, err := s.sales.CountByStatus(ctx, &actor.ID)
	if err != nil {
		return entities.OrderStats{}, err
	}

	stats := entities.OrderStats{
		Pending:   counts[entities.SalePending] + counts[entities.SaleConfirmed],
		Delivered: counts[entities.SaleDelivered],
		Cancelled: counts[entities.SaleCancelled],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

// publishEvent is best effort: a committed order is never failed because
// the broker is down.
func (s *orderService) publishEvent(ctx context.Context, event events.OrderEvent) {
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

func saleCacheKey(invoiceNumber string) string {
	return "sale:" + invoiceNumber
}
