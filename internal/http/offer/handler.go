package offer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/auth"
	"github.com/farmfeed/farmfeed/internal/http/respond"
	"github.com/farmfeed/farmfeed/internal/offer"
)

type Handler struct {
	svc *offer.Service
}

func NewHandler(svc *offer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Post("/{id}/accept", h.accept)
	r.Post("/{id}/reject", h.reject)
	r.Post("/{id}/withdraw", h.withdraw)
}

type createOfferRequest struct {
	ListingID string          `json:"listingId" validate:"required,uuid"`
	BuyerID   string          `json:"buyerId" validate:"required,uuid"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Message   string          `json:"message" validate:"max=1000"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOfferRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	buyerID := uuid.MustParse(req.BuyerID)
	if err := auth.ActAs(r.Context(), buyerID); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Create(r.Context(), offer.CreateParams{
		ListingID: uuid.MustParse(req.ListingID),
		BuyerID:   buyerID,
		Price:     req.Price,
		Quantity:  req.Quantity,
		Message:   req.Message,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, offerEnvelope{Offer: toResponse(o)})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter offer.ListFilter
		err    error
	)

	if filter.ListingID, err = respond.QueryUUID(r, "listingId"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.BuyerID, err = respond.QueryUUID(r, "buyerId"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := offer.Status(s)
		filter.Status = &status
	}

	offers, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponseList(offers))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(o))
}

func (h *Handler) accept(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Accept(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, offerEnvelope{Offer: toResponse(o)})
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req rejectRequest
	if err := respond.DecodeOptional(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Reject(r.Context(), id, req.Reason)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, offerEnvelope{Offer: toResponse(o)})
}

type withdrawRequest struct {
	BuyerID string `json:"buyerId" validate:"required,uuid"`
}

func (h *Handler) withdraw(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var req withdrawRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	buyerID := uuid.MustParse(req.BuyerID)
	if err := auth.ActAs(r.Context(), buyerID); err != nil {
		respond.Error(w, r, err)
		return
	}

	o, err := h.svc.Withdraw(r.Context(), id, buyerID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, offerEnvelope{Offer: toResponse(o)})
}
