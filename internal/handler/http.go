package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/petshop/checkout-service/internal/entities"
	"github.com/petshop/checkout-service/internal/middleware"
	"github.com/petshop/checkout-service/internal/service"
	"github.com/petshop/checkout-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	GetCart(ctx context.Context, actor entities.User) (entities.CartView, error)
	AddItem(ctx context.Context, actor entities.User, productID int64, quantity int) (entities.CartView, error)
	UpdateItem(ctx context.Context, actor entities.User, productID int64, quantity int) (entities.CartView, error)
	RemoveItem(ctx context.Context, actor entities.User, productID int64) (entities.CartView, error)
	Clear(ctx context.Context, actor entities.User) error
	ItemCount(ctx context.Context, actor entities.User) (int, error)
}

type OrderService interface {
	CreateOrderFromCart(ctx context.Context, actor entities.User, input service.CreateOrderInput) (entities.Sale, error)
	CancelOrder(ctx context.Context, actor entities.User, saleID int64) error
	ListOrders(ctx context.Context, actor entities.User) ([]entities.Sale, error)
	GetOrder(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error)
	GetOrderByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error)
	OrderStats(ctx context.Context, actor entities.User) (entities.OrderStats, error)
}

type SaleService interface {
	ListSales(ctx context.Context, actor entities.User, status *entities.SaleStatus, limit uint64) ([]entities.Sale, error)
	GetSale(ctx context.Context, actor entities.User, saleID int64) (entities.Sale, error)
	GetSaleByInvoice(ctx context.Context, actor entities.User, invoiceNumber string) (entities.Sale, error)
	UpdateStatus(ctx context.Context, actor entities.User, saleID int64, next entities.SaleStatus) (entities.Sale, error)
	CancelSale(ctx context.Context, actor entities.User, saleID int64) error
	SalesStats(ctx context.Context, actor entities.User) (entities.SalesStats, error)
}

type AddressService interface {
	ListAddresses(ctx context.Context, actor entities.User) ([]entities.Address, error)
	GetAddress(ctx context.Context, actor entities.User, addressID int64) (entities.Address, error)
	CreateAddress(ctx context.Context, actor entities.User, address entities.Address) (entities.Address, error)
	UpdateAddress(ctx context.Context, actor entities.User, address entities.Address) (entities.Address, error)
	DeleteAddress(ctx context.Context, actor entities.User, addressID int64) error
	SetPrimaryAddress(ctx context.Context, actor entities.User, addressID int64) (entities.Address, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	carts     CartService
	orders    OrderService
	sales     SaleService
	addresses AddressService
}

func NewHTTPHandler(logger *slog.Logger, carts CartService, orders OrderService, sales SaleService, addresses AddressService) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  validator.New(),
		carts:     carts,
		orders:    orders,
		sales:     sales,
		addresses: addresses,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Get("/count", h.GetCartItemCount)
		r.Post("/items", h.AddToCart)
		r.Put("/items/{product_id}", h.UpdateCartItem)
		r.Delete("/items/{product_id}", h.RemoveFromCart)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
		r.Get("/stats", h.GetOrderStats)
		r.Get("/invoice/{invoice_number}", h.GetOrderByInvoice)
		r.Get("/{order_id}", h.GetOrder)
		r.Post("/{order_id}/cancel", h.CancelOrder)
	})

	r.Route("/addresses", func(r chi.Router) {
		r.Get("/", h.ListAddresses)
		r.Post("/", h.CreateAddress)
		r.Get("/{address_id}", h.GetAddress)
		r.Put("/{address_id}", h.UpdateAddress)
		r.Delete("/{address_id}", h.DeleteAddress)
		r.Post("/{address_id}/primary", h.SetPrimaryAddress)
	})

	r.Route("/admin/sales", func(r chi.Router) {
		r.Get("/", h.ListSales)
		r.Get("/stats", h.GetSalesStats)
		r.Get("/invoice/{invoice_number}", h.GetSaleByInvoice)
		r.Get("/{sale_id}", h.GetSale)
		r.Patch("/{sale_id}/status", h.UpdateSaleStatus)
		r.Post("/{sale_id}/cancel", h.CancelSale)
	})
}

// GetCart returns the acting customer's cart, creating it on first access.
func (h *HTTPHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	cart, err := h.carts.GetCart(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CartViewToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req AddToCartRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.AddItem(ctx, actor, req.ProductID, req.Quantity)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CartViewToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	productID, err := parseIDParam(r, "product_id")
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var req UpdateCartItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.carts.UpdateItem(ctx, actor, productID, req.Quantity)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CartViewToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	productID, err := parseIDParam(r, "product_id")
	if err != nil {
		utils.WriteError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	cart, err := h.carts.RemoveItem(ctx, actor, productID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CartViewToJSON(cart), http.StatusOK)
}

func (h *HTTPHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	if err := h.carts.Clear(ctx, actor); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) GetCartItemCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	count, err := h.carts.ItemCount(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, CartCountResponse{Count: count}, http.StatusOK)
}

// CreateOrder converts the cart into a pending sale in a single
// transaction and clears the cart on success.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	sale, err := h.orders.CreateOrderFromCart(ctx, actor, service.CreateOrderInput{
		AddressID:            req.AddressID,
		PaymentMethod:        entities.PaymentMethod(req.PaymentMethod),
		DeliveryMethod:       entities.DeliveryMethod(req.DeliveryMethod),
		DeliveryInstructions: req.DeliveryInstructions,
	})
	if err != nil {
		checkoutsFailed.Inc()
		h.writeServiceError(ctx, w, err)
		return
	}

	ordersCreated.Inc()
	checkoutDuration.Observe(time.Since(start).Seconds())
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusCreated)
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	sales, err := h.orders.ListOrders(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, salesToJSON(sales), http.StatusOK)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	orderID, err := parseIDParam(r, "order_id")
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	sale, err := h.orders.GetOrder(ctx, actor, orderID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusOK)
}

func (h *HTTPHandler) GetOrderByInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	invoiceNumber := chi.URLParam(r, "invoice_number")
	if err := h.validate.Var(invoiceNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sale, err := h.orders.GetOrderByInvoice(ctx, actor, invoiceNumber)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusOK)
}

func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	orderID, err := parseIDParam(r, "order_id")
	if err != nil {
		utils.WriteError(w, "invalid order id", http.StatusBadRequest)
		return
	}

	if err := h.orders.CancelOrder(ctx, actor, orderID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	ordersCancelled.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	stats, err := h.orders.OrderStats(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, OrderStatsToJSON(stats), http.StatusOK)
}

func (h *HTTPHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	addresses, err := h.addresses.ListAddresses(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	res := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		res = append(res, AddressEntityToJSON(a))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *HTTPHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	addressID, err := parseIDParam(r, "address_id")
	if err != nil {
		utils.WriteError(w, "invalid address id", http.StatusBadRequest)
		return
	}

	address, err := h.addresses.GetAddress(ctx, actor, addressID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

func (h *HTTPHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address, err := h.addresses.CreateAddress(ctx, actor, AddressJSONToEntity(req))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusCreated)
}

func (h *HTTPHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	addressID, err := parseIDParam(r, "address_id")
	if err != nil {
		utils.WriteError(w, "invalid address id", http.StatusBadRequest)
		return
	}

	var req AddressRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	address := AddressJSONToEntity(req)
	address.ID = addressID

	updated, err := h.addresses.UpdateAddress(ctx, actor, address)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(updated), http.StatusOK)
}

func (h *HTTPHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	addressID, err := parseIDParam(r, "address_id")
	if err != nil {
		utils.WriteError(w, "invalid address id", http.StatusBadRequest)
		return
	}

	if err := h.addresses.DeleteAddress(ctx, actor, addressID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) SetPrimaryAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	addressID, err := parseIDParam(r, "address_id")
	if err != nil {
		utils.WriteError(w, "invalid address id", http.StatusBadRequest)
		return
	}

	address, err := h.addresses.SetPrimaryAddress(ctx, actor, addressID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, AddressEntityToJSON(address), http.StatusOK)
}

func (h *HTTPHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	var status *entities.SaleStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		s := entities.SaleStatus(raw)
		if !s.Valid() {
			utils.WriteError(w, "unknown sale status", http.StatusBadRequest)
			return
		}
		status = &s
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.WriteError(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	sales, err := h.sales.ListSales(ctx, actor, status, limit)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, salesToJSON(sales), http.StatusOK)
}

func (h *HTTPHandler) GetSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	saleID, err := parseIDParam(r, "sale_id")
	if err != nil {
		utils.WriteError(w, "invalid sale id", http.StatusBadRequest)
		return
	}

	sale, err := h.sales.GetSale(ctx, actor, saleID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusOK)
}

func (h *HTTPHandler) GetSaleByInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	invoiceNumber := chi.URLParam(r, "invoice_number")
	if err := h.validate.Var(invoiceNumber, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sale, err := h.sales.GetSaleByInvoice(ctx, actor, invoiceNumber)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusOK)
}

// UpdateSaleStatus applies a single forward or cancelling transition.
func (h *HTTPHandler) UpdateSaleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	saleID, err := parseIDParam(r, "sale_id")
	if err != nil {
		utils.WriteError(w, "invalid sale id", http.StatusBadRequest)
		return
	}

	var req UpdateSaleStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	sale, err := h.sales.UpdateStatus(ctx, actor, saleID, entities.SaleStatus(req.Status))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SaleEntityToJSON(sale), http.StatusOK)
}

func (h *HTTPHandler) CancelSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	saleID, err := parseIDParam(r, "sale_id")
	if err != nil {
		utils.WriteError(w, "invalid sale id", http.StatusBadRequest)
		return
	}

	if err := h.sales.CancelSale(ctx, actor, saleID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	ordersCancelled.Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HTTPHandler) GetSalesStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actor, ok := middleware.Actor(ctx)
	if !ok {
		utils.WriteError(w, "not authenticated", http.StatusUnauthorized)
		return
	}

	stats, err := h.sales.SalesStats(ctx, actor)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteJSON(w, SalesStatsToJSON(stats), http.StatusOK)
}

func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		utils.WriteError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, entities.ErrAccessDenied):
		utils.WriteError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, entities.ErrProductNotFound),
		errors.Is(err, entities.ErrItemNotFound),
		errors.Is(err, entities.ErrOrderNotFound),
		errors.Is(err, entities.ErrSaleNotFound),
		errors.Is(err, entities.ErrAddressNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrEmptyCart),
		errors.Is(err, entities.ErrInvalidQuantity),
		errors.Is(err, entities.ErrInvalidAddress):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrProductUnavailable),
		errors.Is(err, entities.ErrOutOfStock),
		errors.Is(err, entities.ErrInsufficientStock),
		errors.Is(err, entities.ErrAlreadyCancelled),
		errors.Is(err, entities.ErrAlreadyShipped),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrSaleClosed):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	default:
		h.logger.ErrorContext(ctx, "unhandled service error", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

func salesToJSON(sales []entities.Sale) []SaleResponse {
	res := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		res = append(res, SaleEntityToJSON(s))
	}
	return res
}

func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
