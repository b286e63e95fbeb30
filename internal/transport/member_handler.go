package transport

import (
	"net/http"
	"time"

	"grocery-store/internal/middleware"
	"grocery-store/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddMemberRequest represents the enrollment payload
type AddMemberRequest struct {
	Name       string  `json:"name" validate:"required"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	DateJoined string  `json:"date_joined"`
	Fee        float64 `json:"fee" validate:"gte=0"`
}

// MemberHandler handles HTTP requests for membership operations
type MemberHandler struct {
	store  service.StoreService
	logger *zap.Logger
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(store service.StoreService, logger *zap.Logger) *MemberHandler {
	return &MemberHandler{store: store, logger: logger}
}

// RegisterRoutes registers member routes
func (h *MemberHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/members", func(r chi.Router) {
		r.Post("/", h.AddMember)
		r.Get("/", h.ListMembers)
		r.Delete("/{memberID}", h.RemoveMember)
		r.Get("/{memberID}/transactions", h.Transactions)
	})
}

// AddMember enrolls a new member. An absent date_joined defaults to today.
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if !decodeValidated(w, r, &req, h.logger) {
		return
	}

	dateJoined := time.Now()
	if req.DateJoined != "" {
		parsed, err := time.Parse("2006-01-02", req.DateJoined)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid date_joined, expected YYYY-MM-DD")
			return
		}
		dateJoined = parsed
	}

	result := h.store.AddMember(r.Context(), req.Name, req.Address, req.Phone, dateJoined, req.Fee)
	if result.Code == service.OperationCompleted {
		middleware.RespondWithJSON(w, http.StatusCreated, result)
		return
	}
	respondResult(w, result)
}

// ListMembers returns field copies of every member. With ?name= it is an
// exact-name membership search instead.
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		respondResult(w, h.store.SearchMembership(r.Context(), name))
		return
	}

	results := []service.Result{}
	for result := range h.store.Members(r.Context()) {
		results = append(results, result)
	}
	middleware.RespondWithJSON(w, http.StatusOK, results)
}

// RemoveMember deletes a member by id
func (h *MemberHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}
	respondResult(w, h.store.RemoveMember(r.Context(), memberID))
}

// Transactions returns the member's purchases on one calendar day. An
// unknown member yields an empty list, not an error.
func (h *MemberHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	memberID, ok := pathUUID(w, r, "memberID")
	if !ok {
		return
	}

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			middleware.RespondWithError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	results := []service.Result{}
	for result := range h.store.TransactionsOnDate(r.Context(), memberID, date) {
		results = append(results, result)
	}
	middleware.RespondWithJSON(w, http.StatusOK, results)
}
