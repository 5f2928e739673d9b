package deal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/http/respond"
)

type Handler struct {
	svc *deal.Service
}

func NewHandler(svc *deal.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
}

type createDealRequest struct {
	OfferID           string            `json:"offerId" validate:"omitempty,uuid"`
	DeliveryType      deal.DeliveryType `json:"deliveryType" validate:"omitempty,oneof=ex-farm delivered"`
	DeliveryAddress   string            `json:"deliveryAddress" validate:"max=500"`
	DeliveryDate      respond.Date      `json:"deliveryDate"`
	Terms             string            `json:"terms"`
	SpecialConditions string            `json:"specialConditions"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDealRequest
	if err := respond.DecodeOptional(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	params := deal.CreateParams{
		DeliveryType:      req.DeliveryType,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryDate:      req.DeliveryDate.Ptr(),
		Terms:             req.Terms,
		SpecialConditions: req.SpecialConditions,
	}

	if req.OfferID != "" {
		offerID := uuid.MustParse(req.OfferID)
		params.OfferID = &offerID
	}

	d, err := h.svc.CreateFromOffer(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if d == nil {
		respond.Message(w, nil, "No eligible offer")
		return
	}

	respond.Created(w, toResponse(d))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var (
		filter deal.ListFilter
		err    error
	)

	if filter.BuyerID, err = respond.QueryUUID(r, "buyerId"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if filter.SellerID, err = respond.QueryUUID(r, "sellerId"); err != nil {
		respond.Error(w, r, err)
		return
	}

	if s := r.URL.Query().Get("status"); s != "" {
		status := deal.Status(s)
		filter.Status = &status
	}

	deals, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponseList(deals))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(d))
}

type updateStatusRequest struct {
	DealID       string           `json:"dealId" validate:"required,uuid"`
	Status       deal.Status      `json:"status" validate:"required"`
	TransportFee *decimal.Decimal `json:"transportFee"`
}

// UpdateStatus serves POST /api/update-deal-status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	d, err := h.svc.UpdateStatus(r.Context(), uuid.MustParse(req.DealID), req.Status, req.TransportFee)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(d))
}
