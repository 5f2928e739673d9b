package listing

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/farmfeed/farmfeed/internal/auth"
	"github.com/farmfeed/farmfeed/internal/http/respond"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/listing/importer"
)

const maxUploadSize = 10 << 20

type Handler struct {
	svc    *listing.Service
	parser *importer.Parser
}

func NewHandler(svc *listing.Service, parser *importer.Parser) *Handler {
	return &Handler{svc: svc, parser: parser}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Post("/import", h.importCSV)
	r.Get("/{id}", h.get)
}

type createListingRequest struct {
	SellerID    string            `json:"sellerId" validate:"required,uuid"`
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=2000"`
	Commodity   listing.Commodity `json:"commodity" validate:"required"`
	Price       decimal.Decimal   `json:"price"`
	Quantity    decimal.Decimal   `json:"quantity"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	sellerID := uuid.MustParse(req.SellerID)
	if err := auth.ActAs(r.Context(), sellerID); err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.Create(r.Context(), listing.CreateParams{
		SellerID:    sellerID,
		Title:       req.Title,
		Description: req.Description,
		Commodity:   req.Commodity,
		Price:       req.Price,
		Quantity:    req.Quantity,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, toResponse(l))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := listing.ListFilter{}

	if s := r.URL.Query().Get("commodity"); s != "" {
		commodity := listing.Commodity(s)
		filter.Commodity = &commodity
	}

	sellerID, err := respond.QueryUUID(r, "sellerId")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	filter.SellerID = sellerID

	ls, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponseList(ls))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := respond.URLParamUUID(r, "id")
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.OK(w, toResponse(l))
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respond.Error(w, r, fmt.Errorf("%w: failed to parse form", respond.ErrBadRequest))
		return
	}

	sellerID, err := uuid.Parse(r.FormValue("sellerId"))
	if err != nil {
		respond.Error(w, r, fmt.Errorf("%w: sellerId is required", respond.ErrBadRequest))
		return
	}

	if err := auth.ActAs(r.Context(), sellerID); err != nil {
		respond.Error(w, r, err)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, fmt.Errorf("%w: file is required", respond.ErrBadRequest))
		return
	}
	defer file.Close()

	res, err := h.parser.Parse(r.Context(), file)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	ls, err := h.svc.ImportBatch(r.Context(), sellerID, res.Params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.Created(w, importResponse{
		Profile:  res.Profile,
		Charset:  string(res.Charset),
		Imported: len(ls),
		Listings: toResponseList(ls),
	})
}
