package diagnostics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/http/respond"
)

const recentDeals = 5

type Database interface {
	Ping(ctx context.Context) error
	TableCounts(ctx context.Context) (map[string]int64, error)
}

type Deals interface {
	List(ctx context.Context, filter deal.ListFilter) ([]*deal.Deal, error)
}

type Handler struct {
	db    Database
	deals Deals
}

func NewHandler(db Database, deals Deals) *Handler {
	return &Handler{db: db, deals: deals}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/test-db", h.testDB)
	r.Get("/test-deals", h.testDeals)
}

// Health serves GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		respond.Fail(w, http.StatusServiceUnavailable, "Database unavailable")

		return
	}

	respond.Message(w, nil, "ok")
}

func (h *Handler) testDB(w http.ResponseWriter, r *http.Request) {
	counts, err := h.db.TableCounts(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, respond.Envelope{
		Success: true,
		Data:    map[string]any{"tables": counts},
		Message: "Database connection OK",
	})
}

type dealSummary struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

func (h *Handler) testDeals(w http.ResponseWriter, r *http.Request) {
	deals, err := h.deals.List(r.Context(), deal.ListFilter{Limit: recentDeals})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]dealSummary, len(deals))
	for i, d := range deals {
		resp[i] = dealSummary{
			ID:          d.ID.String(),
			Status:      string(d.Status),
			TotalAmount: d.TotalAmount.StringFixed(2),
			CreatedAt:   d.CreatedAt.Format(time.RFC3339),
		}
	}

	respond.OK(w, resp)
}
