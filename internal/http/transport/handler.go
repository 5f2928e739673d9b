package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/auth"
	"github.com/farmfeed/farmfeed/internal/http/respond"
	"github.com/farmfeed/farmfeed/internal/transport"
)

type Handler struct {
	svc *transport.Service
}

func NewHandler(svc *transport.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/request", h.request)
	r.Post("/quote", h.quote)
	r.Get("/requests/{id}", h.getRequest)
	r.Get("/requests/{id}/quotes", h.listQuotes)
}

type transportRequestRequest struct {
	DealID             string       `json:"dealId" validate:"required,uuid"`
	RequesterID        string       `json:"requesterId" validate:"required,uuid"`
	OriginAddress      string       `json:"originAddress" validate:"required,max=500"`
	DestinationAddress string       `json:"destinationAddress" validate:"required,max=500"`
	PickupDate         respond.Date `json:"pickupDate"`
	DeliveryDate       respond.Date `json:"deliveryDate"`
}

func (h *Handler) request(w http.ResponseWriter, r *http.Request) {
	var req transportRequestRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	requesterID := uuid.MustParse(req.RequesterID)
	if err := auth.ActAs(r.Context(), requesterID); err != nil {
		respond.Error(w, r, err)
		return
	}

	tr, err := h.svc.Request(r.Context(), transport.RequestParams{
		DealID:             uuid.MustParse(req.DealID),
		RequesterID:        requesterID,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		PickupDate:         req.PickupDate.Time,
		DeliveryDate:       req.DeliveryDate.Time,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, toRequestResponse(tr))
}

type quoteRequest struct {
	RequestID             string          `json:"requestId" validate:"required,uuid"`
	TransporterID         string          `json:"transporterId" validate:"required,uuid"`
	Price                 decimal.Decimal `json:"price"`
	EstimatedDeliveryDate respond.Date    `json:"estimatedDeliveryDate"`
	Terms                 string          `json:"terms" validate:"max=2000"`
}

func (h *Handler) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	transporterID := uuid.MustParse(req.TransporterID)
	if err := auth.ActAs(r.Context(), transporterID); err != nil {
		respond.Error(w, r, err)
		return
	}

	q, err := h.svc.Quote(r.Context(), transport.QuoteParams{
		RequestID:             uuid.MustParse(req.RequestID),
		TransporterID:         transporterID,
		Price:                 req.Price,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate.Time,
		Terms:                 req.Terms,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, toQuoteResponse(q))
}

func (h *Handler) getRequest(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	tr, err := h.svc.GetRequest(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toRequestResponse(tr))
}

func (h *Handler) listQuotes(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	quotes, err := h.svc.ListQuotes(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]quoteResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = toQuoteResponse(q)
	}

	respond.OK(w, resp)
}
