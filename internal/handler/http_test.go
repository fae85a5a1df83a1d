package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/handler"
	mocks "github.com/petshop/checkout-service/internal/handler/mocks"
	"github.com/petshop/checkout-service/internal/middleware"
	"github.com/petshop/checkout-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	customer = entities.User{ID: 42, Email: "buyer@example.com", Role: entities.RoleCustomer}
	admin    = entities.User{ID: 7, Email: "manager@example.com", Role: entities.RoleManager}
)

type handlerMocks struct {
	carts     *mocks.MockCartService
	orders    *mocks.MockOrderService
	sales     *mocks.MockSaleService
	addresses *mocks.MockAddressService
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	m := handlerMocks{
		carts:     mocks.NewMockCartService(t),
		orders:    mocks.NewMockOrderService(t),
		sales:     mocks.NewMockSaleService(t),
		addresses: mocks.NewMockAddressService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.carts, m.orders, m.sales, m.addresses)

	r := chi.NewRouter()
	r.Use(middleware.Identity)
	h.Init(r)
	return r, m
}

func asUser(req *http.Request, u entities.User) *http.Request {
	req.Header.Set(middleware.HeaderUserID, strconv.FormatInt(u.ID, 10))
	req.Header.Set(middleware.HeaderUserEmail, u.Email)
	req.Header.Set(middleware.HeaderUserRole, string(u.Role))
	return req
}

func TestHTTPHandler_Authentication(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHTTPHandler_AddToCart(t *testing.T) {
	view := entities.CartView{
		ID:         1,
		CustomerID: customer.ID,
		Lines: []entities.CartLine{
			{ProductID: 10, ProductName: "Dog food 5kg", UnitPrice: decimal.NewFromFloat(49.95), Quantity: 2},
		},
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(carts *mocks.MockCartService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"product_id": 10, "quantity": 2}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, customer, int64(10), 2).Return(view, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"product_name":"Dog food 5kg"`,
		},
		{
			name:         "missing product id",
			body:         `{"quantity": 2}`,
			mockBehavior: func(carts *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed body",
			body:         `{`,
			mockBehavior: func(carts *mocks.MockCartService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name: "insufficient stock",
			body: `{"product_id": 10, "quantity": 5}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, customer, int64(10), 5).
					Return(entities.CartView{}, &entities.InsufficientStockError{
						ProductID: 10, ProductName: "Dog food 5kg", Available: 2, Requested: 5,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient stock for Dog food 5kg`,
		},
		{
			name: "product not found",
			body: `{"product_id": 99, "quantity": 1}`,
			mockBehavior: func(carts *mocks.MockCartService) {
				carts.EXPECT().AddItem(mock.Anything, customer, int64(99), 1).
					Return(entities.CartView{}, entities.ErrProductNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"product not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m.carts)

			req := asUser(httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(tc.body)), customer)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	sale := entities.Sale{
		ID:            100,
		InvoiceNumber: "INV-1724800000000-42",
		CustomerID:    customer.ID,
		Status:        entities.SalePending,
		TotalAmount:   decimal.NewFromFloat(111.90),
	}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(orders *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"address_id": 5, "payment_method": "MERCADO_PAGO", "delivery_method": "HOME_DELIVERY"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					CreateOrderFromCart(mock.Anything, customer, service.CreateOrderInput{
						AddressID:      5,
						PaymentMethod:  entities.PaymentMercadoPago,
						DeliveryMethod: entities.DeliveryHome,
					}).
					Return(sale, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"invoice_number":"INV-1724800000000-42"`,
		},
		{
			name:         "unknown payment method rejected before the service",
			body:         `{"address_id": 5, "payment_method": "BARTER", "delivery_method": "PICKUP"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"PaymentMethod"`,
		},
		{
			name: "empty cart",
			body: `{"address_id": 5, "payment_method": "CARD", "delivery_method": "PICKUP"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					CreateOrderFromCart(mock.Anything, customer, mock.Anything).
					Return(entities.Sale{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "stock ran out at checkout",
			body: `{"address_id": 5, "payment_method": "CARD", "delivery_method": "PICKUP"}`,
			mockBehavior: func(orders *mocks.MockOrderService) {
				orders.EXPECT().
					CreateOrderFromCart(mock.Anything, customer, mock.Anything).
					Return(entities.Sale{}, &entities.InsufficientStockError{
						ProductName: "Chew toy", Available: 0, Requested: 1,
					}).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"insufficient stock`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m.orders)

			req := asUser(httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body)), customer)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestHTTPHandler_CancelOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.orders.EXPECT().CancelOrder(mock.Anything, customer, int64(100)).Return(nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/orders/100/cancel", nil), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("already shipped", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.orders.EXPECT().CancelOrder(mock.Anything, customer, int64(100)).
			Return(entities.ErrAlreadyShipped).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/orders/100/cancel", nil), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("garbage id", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := asUser(httptest.NewRequest(http.MethodPost, "/orders/abc/cancel", nil), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_UpdateSaleStatus(t *testing.T) {
	sale := entities.Sale{
		ID:            100,
		InvoiceNumber: "INV-1724800000000-42",
		Status:        entities.SaleConfirmed,
	}

	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.sales.EXPECT().
			UpdateStatus(mock.Anything, admin, int64(100), entities.SaleConfirmed).
			Return(sale, nil).Once()

		body := `{"status": "CONFIRMED"}`
		req := asUser(httptest.NewRequest(http.MethodPatch, "/admin/sales/100/status", strings.NewReader(body)), admin)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"CONFIRMED"`)
	})

	t.Run("unknown status rejected by validation", func(t *testing.T) {
		r, _ := newTestRouter(t)

		body := `{"status": "LOST"}`
		req := asUser(httptest.NewRequest(http.MethodPatch, "/admin/sales/100/status", strings.NewReader(body)), admin)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("closed sale", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.sales.EXPECT().
			UpdateStatus(mock.Anything, admin, int64(100), entities.SaleCancelled).
			Return(entities.Sale{}, entities.ErrSaleClosed).Once()

		body := `{"status": "CANCELLED"}`
		req := asUser(httptest.NewRequest(http.MethodPatch, "/admin/sales/100/status", strings.NewReader(body)), admin)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.sales.EXPECT().
			UpdateStatus(mock.Anything, customer, int64(100), entities.SaleConfirmed).
			Return(entities.Sale{}, entities.ErrAccessDenied).Once()

		body := `{"status": "CONFIRMED"}`
		req := asUser(httptest.NewRequest(http.MethodPatch, "/admin/sales/100/status", strings.NewReader(body)), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHTTPHandler_ListSales(t *testing.T) {
	t.Run("status filter", func(t *testing.T) {
		r, m := newTestRouter(t)

		paid := entities.SalePaid
		m.sales.EXPECT().ListSales(mock.Anything, admin, &paid, uint64(10)).
			Return([]entities.Sale{{ID: 1, Status: entities.SalePaid}}, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodGet, "/admin/sales?status=PAID&limit=10", nil), admin)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := asUser(httptest.NewRequest(http.MethodGet, "/admin/sales?status=BROKEN", nil), admin)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHTTPHandler_GetOrderByInvoice(t *testing.T) {
	r, m := newTestRouter(t)

	sale := entities.Sale{ID: 100, InvoiceNumber: "INV-1-42", CustomerID: customer.ID}
	m.orders.EXPECT().GetOrderByInvoice(mock.Anything, customer, "INV-1-42").Return(sale, nil).Once()

	req := asUser(httptest.NewRequest(http.MethodGet, "/orders/invoice/INV-1-42", nil), customer)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"invoice_number":"INV-1-42"`)
}

func TestHTTPHandler_Addresses(t *testing.T) {
	address := entities.Address{
		ID:           5,
		CustomerID:   customer.ID,
		AddressLine1: "18 de Julio 1234",
		City:         "Montevideo",
		Department:   "Montevideo",
		Country:      "Uruguay",
		ZipCode:      "11200",
		Primary:      true,
	}

	t.Run("create", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.addresses.EXPECT().
			CreateAddress(mock.Anything, customer, mock.Anything).
			Return(address, nil).Once()

		body := `{"address_line1": "18 de Julio 1234", "city": "Montevideo", "department": "Montevideo", "country": "Uruguay", "zip_code": "11200"}`
		req := asUser(httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(body)), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"is_primary":true`)
	})

	t.Run("create without required fields", func(t *testing.T) {
		r, _ := newTestRouter(t)

		req := asUser(httptest.NewRequest(http.MethodPost, "/addresses", strings.NewReader(`{"city": "Montevideo"}`)), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("set primary", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.addresses.EXPECT().SetPrimaryAddress(mock.Anything, customer, int64(5)).Return(address, nil).Once()

		req := asUser(httptest.NewRequest(http.MethodPost, "/addresses/5/primary", nil), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete missing address", func(t *testing.T) {
		r, m := newTestRouter(t)

		m.addresses.EXPECT().DeleteAddress(mock.Anything, customer, int64(9)).
			Return(entities.ErrAddressNotFound).Once()

		req := asUser(httptest.NewRequest(http.MethodDelete, "/addresses/9", nil), customer)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
