package matching

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/farmfeed/farmfeed/internal/http/respond"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/matching"
)

type Handler struct {
	svc *matching.Service
}

func NewHandler(svc *matching.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/resolve", h.resolve)
	r.Post("/", h.learn)
}

type resolveResponse struct {
	Name      string            `json:"name"`
	Commodity listing.Commodity `json:"commodity,omitempty"`
	Matched   bool              `json:"matched"`
}

func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respond.Error(w, r, fmt.Errorf("%w: name query parameter is required", respond.ErrBadRequest))
		return
	}

	commodity, ok, err := h.svc.Resolve(r.Context(), name)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, resolveResponse{
		Name:      name,
		Commodity: commodity,
		Matched:   ok,
	})
}

type learnRequest struct {
	Pattern   string            `json:"pattern" validate:"required,max=100"`
	Commodity listing.Commodity `json:"commodity" validate:"required"`
}

type aliasResponse struct {
	Pattern   string            `json:"pattern"`
	Commodity listing.Commodity `json:"commodity"`
}

func (h *Handler) learn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	if err := h.svc.Learn(r.Context(), req.Pattern, req.Commodity); err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, aliasResponse{Pattern: req.Pattern, Commodity: req.Commodity})
}
