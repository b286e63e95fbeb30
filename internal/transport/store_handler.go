package transport

import (
	"net/http"

	"grocery-store/internal/middleware"
	"grocery-store/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateProductRequest represents the product creation payload
type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
}

// ChangePriceRequest represents the price change payload
type ChangePriceRequest struct {
	Price float64 `json:"price" validate:"gte=0"`
}

// AddLineItemRequest represents a purchase of one product
type AddLineItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest represents the manual restock order payload
type CreateOrderRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CheckoutRequest attributes the active cart to a member
type CheckoutRequest struct {
	MemberID string `json:"member_id" validate:"required,uuid"`
}

// StoreHandler handles HTTP requests for products, purchases, and restock
// orders.
type StoreHandler struct {
	store  service.StoreService
	logger *zap.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(store service.StoreService, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{store: store, logger: logger}
}

// RegisterRoutes registers product, cart, order, and shipment routes
func (h *StoreHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.CreateProduct)
		r.Get("/", h.ListProducts)
		r.Get("/{productID}", h.GetProduct)
		r.Patch("/{productID}/price", h.ChangePrice)
	})
	r.Route("/api/cart", func(r chi.Router) {
		r.Post("/items", h.AddLineItem)
		r.Post("/checkout", h.Checkout)
	})
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/", h.ListOrders)
	})
	r.Post("/api/shipments/{productID}", h.ProcessShipment)
}

// statusForCode maps a facade outcome code to an HTTP status.
func statusForCode(code service.Code) int {
	switch code {
	case service.OperationCompleted:
		return http.StatusOK
	case service.OrderPlaced:
		return http.StatusCreated
	case service.ProductNotFound, service.NoSuchMember:
		return http.StatusNotFound
	default:
		return http.StatusConflict
	}
}

// respondResult writes a facade Result as JSON under its mapped HTTP status.
func respondResult(w http.ResponseWriter, result service.Result) {
	middleware.RespondWithJSON(w, statusForCode(result.Code), result)
}

// decodeValidated decodes and validates a request payload, writing the error
// response itself on failure.
func decodeValidated(w http.ResponseWriter, r *http.Request, v interface{}, logger *zap.Logger) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		logger.Debug("Request validation failed", zap.Error(err))
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return false
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathUUID parses a UUID path parameter, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

// CreateProduct handles product creation
func (h *StoreHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}

	result := h.store.AddProduct(r.Context(), req.Name, req.Price, req.ReorderLevel)
	if result.Code == service.OperationCompleted {
		middleware.RespondWithJSON(w, http.StatusCreated, result)
		return
	}
	respondResult(w, result)
}

// ListProducts returns field copies of every product. With ?name= it is an
// exact-name lookup instead.
func (h *StoreHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		respondResult(w, h.store.RetrieveProductInfo(r.Context(), name))
		return
	}

	results := []service.Result{}
	for result := range h.store.Products(r.Context()) {
		results = append(results, result)
	}
	middleware.RespondWithJSON(w, http.StatusOK, results)
}

// GetProduct returns one product by id
func (h *StoreHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathUUID(w, r, "productID")
	if !ok {
		return
	}
	respondResult(w, h.store.RetrieveProduct(r.Context(), productID))
}

// ChangePrice updates a product's price
func (h *StoreHandler) ChangePrice(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathUUID(w, r, "productID")
	if !ok {
		return
	}

	var req ChangePriceRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}
	respondResult(w, h.store.ChangePrice(r.Context(), productID, req.Price))
}

// AddLineItem records a purchase; an ORDER_PLACED outcome means the purchase
// also triggered an automatic restock order.
func (h *StoreHandler) AddLineItem(w http.ResponseWriter, r *http.Request) {
	var req AddLineItemRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product_id")
		return
	}
	respondResult(w, h.store.AddLineItem(r.Context(), productID, req.Quantity))
}

// Checkout flushes the active cart into a member's transaction log
func (h *StoreHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid member_id")
		return
	}
	respondResult(w, h.store.Checkout(r.Context(), memberID))
}

// CreateOrder handles the manual restock order path
func (h *StoreHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product_id")
		return
	}

	result := h.store.CreateOrder(r.Context(), productID, req.Quantity)
	if result.Code == service.OperationCompleted {
		middleware.RespondWithJSON(w, http.StatusCreated, result)
		return
	}
	respondResult(w, result)
}

// ListOrders returns field copies of every outstanding order
func (h *StoreHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	results := []service.Result{}
	for result := range h.store.Orders(r.Context()) {
		results = append(results, result)
	}
	middleware.RespondWithJSON(w, http.StatusOK, results)
}

// ProcessShipment closes the outstanding order for a product and credits its
// quantity back to stock
func (h *StoreHandler) ProcessShipment(w http.ResponseWriter, r *http.Request) {
	productID, ok := pathUUID(w, r, "productID")
	if !ok {
		return
	}
	respondResult(w, h.store.ProcessShipment(r.Context(), productID))
}
