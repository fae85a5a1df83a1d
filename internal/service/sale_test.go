package service_test

import (
	"context"
	"testing"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/events"
	"github.com/petshop/checkout-service/internal/service"
	mocks "github.com/petshop/checkout-service/internal/service/mocks"
	txMocks "github.com/petshop/checkout-service/pkg/trm/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type saleMocks struct {
	sales     *mocks.MockSaleRepo
	products  *mocks.MockProductRepo
	publisher *mocks.MockEventPublisher
	cache     *mocks.MockCache
	tx        *txMocks.MockManager
}

func newSaleMocks(t *testing.T) saleMocks {
	m := saleMocks{
		sales:     mocks.NewMockSaleRepo(t),
		products:  mocks.NewMockProductRepo(t),
		publisher: mocks.NewMockEventPublisher(t),
		cache:     mocks.NewMockCache(t),
		tx:        txMocks.NewMockManager(t),
	}
	txPassthrough(m.tx)
	return m
}

type saleSvc interface {
	ListSales(ctx context.Context, actor entities.User, status *entities.SaleStatus, limit uint64) ([]entities.Sale, error)
	GetSale(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error)
	GetSaleByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error)
	UpdateStatus(ctx context.Context, actor entities.User, saleID int64, next entities.SaleStatus) (entities.Sale, error)
	CancelSale(ctx context.Context, actor entities.User, saleID int64) error
	SalesStats(ctx context.Context, actor entities.User) (entities.SalesStats, error)
}

func (m saleMocks) newService() saleSvc {
	return service.NewSaleService(newTestLogger(), m.tx, m.sales, m.products, m.publisher, m.cache)
}

var adminSale = entities.Sale{
	ID:            100,
	InvoiceNumber: "INV-1724800000000-42",
	CustomerID:    42,
	Status:        entities.SalePending,
	TotalAmount:   decimal.NewFromInt(80),
	Items: []entities.SaleItem{
		{ProductID: 10, Quantity: 2},
	},
}

func TestSaleService_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		current      entities.SaleStatus
		next         entities.SaleStatus
		wantRestore  bool
		wantErr      error
		wantEvent    string
	}{
		{
			name:      "pending to confirmed",
			current:   entities.SalePending,
			next:      entities.SaleConfirmed,
			wantEvent: events.OrderStatusChanged,
		},
		{
			name:      "confirmed back to pending",
			current:   entities.SaleConfirmed,
			next:      entities.SalePending,
			wantEvent: events.OrderStatusChanged,
		},
		{
			name:      "shipped to delivered is a pure status write",
			current:   entities.SaleShipped,
			next:      entities.SaleDelivered,
			wantEvent: events.OrderStatusChanged,
		},
		{
			name:        "shipped to cancelled restores stock",
			current:     entities.SaleShipped,
			next:        entities.SaleCancelled,
			wantRestore: true,
			wantEvent:   events.OrderCancelled,
		},
		{
			name:    "pending cannot skip to paid",
			current: entities.SalePending,
			next:    entities.SalePaid,
			wantErr: entities.ErrInvalidTransition,
		},
		{
			name:    "delivered is closed",
			current: entities.SaleDelivered,
			next:    entities.SaleCancelled,
			wantErr: entities.ErrSaleClosed,
		},
		{
			name:    "cancelled is closed",
			current: entities.SaleCancelled,
			next:    entities.SalePending,
			wantErr: entities.ErrSaleClosed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newSaleMocks(t)

			sale := adminSale
			sale.Status = tc.current
			m.sales.EXPECT().GetSale(mock.Anything, sale.ID).Return(sale, nil)

			if tc.wantErr == nil {
				if tc.wantRestore {
					m.products.EXPECT().RestoreStock(mock.Anything, int64(10), 2).Return(nil)
				}
				m.sales.EXPECT().UpdateStatus(mock.Anything, sale.ID, tc.next).Return(nil)
				m.cache.EXPECT().Delete("sale:" + sale.InvoiceNumber).Return()
				m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, e events.OrderEvent) error {
						assert.Equal(t, tc.wantEvent, e.Type)
						assert.Equal(t, string(tc.next), e.Status)
						return nil
					})
			}

			got, err := m.newService().UpdateStatus(context.Background(), manager, sale.ID, tc.next)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				m.products.AssertNotCalled(t, "RestoreStock", mock.Anything, mock.Anything, mock.Anything)
				m.sales.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.next, got.Status)
		})
	}
}

func TestSaleService_UpdateStatus_RequiresAdmin(t *testing.T) {
	m := newSaleMocks(t)

	_, err := m.newService().UpdateStatus(context.Background(), customer, 100, entities.SaleConfirmed)
	assert.ErrorIs(t, err, entities.ErrAccessDenied)
}

func TestSaleService_CancelSale(t *testing.T) {
	m := newSaleMocks(t)

	sale := adminSale
	sale.Status = entities.SaleShipped
	m.sales.EXPECT().GetSale(mock.Anything, sale.ID).Return(sale, nil)
	m.products.EXPECT().RestoreStock(mock.Anything, int64(10), 2).Return(nil)
	m.sales.EXPECT().UpdateStatus(mock.Anything, sale.ID, entities.SaleCancelled).Return(nil)
	m.cache.EXPECT().Delete("sale:" + sale.InvoiceNumber).Return()
	m.publisher.EXPECT().PublishOrderEvent(mock.Anything, mock.Anything).Return(nil)

	assert.NoError(t, m.newService().CancelSale(context.Background(), manager, sale.ID))
}

func TestSaleService_GetSaleByInvoice(t *testing.T) {
	key := "sale:" + adminSale.InvoiceNumber

	t.Run("cache hit", func(t *testing.T) {
		m := newSaleMocks(t)

		data, err := adminSale.Marshal()
		require.NoError(t, err)
		m.cache.EXPECT().Get(key).Return(data, true)

		got, err := m.newService().GetSaleByInvoice(context.Background(), manager, adminSale.InvoiceNumber)
		require.NoError(t, err)
		assert.Equal(t, adminSale.ID, got.ID)
		m.sales.AssertNotCalled(t, "GetSaleByInvoice", mock.Anything, mock.Anything)
	})

	t.Run("cache miss fills the cache", func(t *testing.T) {
		m := newSaleMocks(t)

		m.cache.EXPECT().Get(key).Return(nil, false)
		m.sales.EXPECT().GetSaleByInvoice(mock.Anything, adminSale.InvoiceNumber).Return(adminSale, nil)
		m.cache.EXPECT().Set(key, mock.Anything).Return()

		got, err := m.newService().GetSaleByInvoice(context.Background(), manager, adminSale.InvoiceNumber)
		require.NoError(t, err)
		assert.Equal(t, adminSale.InvoiceNumber, got.InvoiceNumber)
	})

	t.Run("corrupt cache entry falls back to the repo", func(t *testing.T) {
		m := newSaleMocks(t)

		m.cache.EXPECT().Get(key).Return([]byte("broken"), true)
		m.cache.EXPECT().Delete(key).Return()
		m.sales.EXPECT().GetSaleByInvoice(mock.Anything, adminSale.InvoiceNumber).Return(adminSale, nil)
		m.cache.EXPECT().Set(key, mock.Anything).Return()

		got, err := m.newService().GetSaleByInvoice(context.Background(), manager, adminSale.InvoiceNumber)
		require.NoError(t, err)
		assert.Equal(t, adminSale.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		m := newSaleMocks(t)

		m.cache.EXPECT().Get("sale:missing").Return(nil, false)
		m.sales.EXPECT().GetSaleByInvoice(mock.Anything, "missing").
			Return(entities.Sale{}, entities.ErrSaleNotFound)

		_, err := m.newService().GetSaleByInvoice(context.Background(), manager, "missing")
		assert.ErrorIs(t, err, entities.ErrSaleNotFound)
	})
}

func TestSaleService_ListSales(t *testing.T) {
	m := newSaleMocks(t)

	status := entities.SalePaid
	m.sales.EXPECT().ListAll(mock.Anything, &status, uint64(20)).
		Return([]entities.Sale{adminSale}, nil)

	sales, err := m.newService().ListSales(context.Background(), manager, &status, 20)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSaleService_SalesStats(t *testing.T) {
	m := newSaleMocks(t)

	m.sales.EXPECT().CountByStatus(mock.Anything, (*int64)(nil)).
		Return(map[entities.SaleStatus]int{
			entities.SalePending:   1,
			entities.SaleConfirmed: 2,
			entities.SalePaid:      3,
			entities.SaleShipped:   4,
			entities.SaleDelivered: 5,
			entities.SaleCancelled: 6,
		}, nil)

	stats, err := m.newService().SalesStats(context.Background(), manager)
	require.NoError(t, err)

	assert.Equal(t, entities.SalesStats{
		Total:     21,
		Pending:   1,
		Confirmed: 2,
		Paid:      3,
		Shipped:   4,
		Delivered: 5,
		Cancelled: 6,
	}, stats)
}

func TestSaleService_AdminOnly(t *testing.T) {
	m := newSaleMocks(t)
	svc := m.newService()

	_, err := svc.ListSales(context.Background(), customer, nil, 0)
	assert.ErrorIs(t, err, entities.ErrAccessDenied)

	_, err = svc.GetSale(context.Background(), customer, 1)
	assert.ErrorIs(t, err, entities.ErrAccessDenied)

	_, err = svc.SalesStats(context.Background(), customer)
	assert.ErrorIs(t, err, entities.ErrAccessDenied)
}
