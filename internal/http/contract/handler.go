package contract

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/farmfeed/farmfeed/internal/contract"
	"github.com/farmfeed/farmfeed/internal/http/respond"
)

type Handler struct {
	svc *contract.Service
}

func NewHandler(svc *contract.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/generate", h.generate)
}

type generateRequest struct {
	DealID string `json:"dealId" validate:"required,uuid"`
}

// generate issues the contract, marking the deal facilitated. With
// ?preview=true the deal is left untouched.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	dealID := uuid.MustParse(req.DealID)

	issue := h.svc.Issue
	if preview, _ := strconv.ParseBool(r.URL.Query().Get("preview")); preview {
		issue = h.svc.Generate
	}

	c, err := issue(r.Context(), dealID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(c))
}
