package contract_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/farmfeed/farmfeed/internal/contract"
	"github.com/farmfeed/farmfeed/internal/deal"
	contracthttp "github.com/farmfeed/farmfeed/internal/http/contract"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/offer"
	"github.com/farmfeed/farmfeed/internal/user"
)

type offersFunc func(context.Context, uuid.UUID) (*offer.Offer, error)

func (f offersFunc) Get(ctx context.Context, id uuid.UUID) (*offer.Offer, error) { return f(ctx, id) }

type listingsFunc func(context.Context, uuid.UUID) (*listing.Listing, error)

func (f listingsFunc) Get(ctx context.Context, id uuid.UUID) (*listing.Listing, error) {
	return f(ctx, id)
}

type usersFunc func(context.Context, uuid.UUID) (*user.User, error)

func (f usersFunc) Get(ctx context.Context, id uuid.UUID) (*user.User, error) { return f(ctx, id) }

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		ContractNumber string `json:"contract_number"`
		Status         string `json:"status"`
		Buyer          struct {
			Name string `json:"name"`
		} `json:"buyer"`
		Product struct {
			Title string `json:"title"`
		} `json:"product"`
		Financials struct {
			TotalAmount string            `json:"total_amount"`
			Formatted   map[string]string `json:"formatted"`
		} `json:"financials"`
	} `json:"data"`
}

func newRouter(repo deal.Repository) http.Handler {
	offers := offersFunc(func(context.Context, uuid.UUID) (*offer.Offer, error) { return nil, offer.ErrNotFound })
	listings := listingsFunc(func(_ context.Context, id uuid.UUID) (*listing.Listing, error) {
		return &listing.Listing{ID: id, Title: "Yellow maize", Commodity: listing.CommodityMaize}, nil
	})
	users := usersFunc(func(context.Context, uuid.UUID) (*user.User, error) { return nil, user.ErrNotFound })

	svc := contract.NewService(deal.NewService(repo, true), offers, listings, users)

	r := chi.NewRouter()
	r.Route("/api/contracts", contracthttp.NewHandler(svc).Routes)

	return r
}

func connectedDeal(id uuid.UUID) *deal.Deal {
	return &deal.Deal{
		ID:            id,
		OfferID:       uuid.New(),
		ListingID:     uuid.New(),
		BuyerID:       uuid.New(),
		SellerID:      uuid.New(),
		FinalPrice:    decimal.NewFromInt(50),
		Quantity:      decimal.NewFromInt(20),
		PlatformFee:   decimal.NewFromInt(20),
		TotalAmount:   decimal.NewFromInt(1020),
		DeliveryType:  deal.DeliveryExFarm,
		Status:        deal.StatusConnected,
		PaymentStatus: deal.PaymentPending,
	}
}

func do(t *testing.T, h http.Handler, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, rdr))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHandler_Generate(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *deal.MockRepository, id uuid.UUID)
		wantStatus string
	}{
		{
			name: "IssueMarksDealFacilitated",
			path: "/api/contracts/generate",
			setupMock: func(m *deal.MockRepository, id uuid.UUID) {
				m.EXPECT().GetDeal(gomock.Any(), id).
					DoAndReturn(func(context.Context, uuid.UUID) (*deal.Deal, error) { return connectedDeal(id), nil }).
					Times(2)
				m.EXPECT().
					UpdateDealStatus(gomock.Any(), gomock.Any(), deal.StatusConnected).
					DoAndReturn(func(_ context.Context, d *deal.Deal, _ deal.Status) error {
						assert.Equal(t, deal.StatusFacilitated, d.Status)
						return nil
					})
			},
			wantStatus: "facilitated",
		},
		{
			name: "PreviewLeavesDealUntouched",
			path: "/api/contracts/generate?preview=true",
			setupMock: func(m *deal.MockRepository, id uuid.UUID) {
				m.EXPECT().GetDeal(gomock.Any(), id).Return(connectedDeal(id), nil)
			},
			wantStatus: "connected",
		},
		{
			name: "ClosedDealStillAnswered",
			path: "/api/contracts/generate",
			setupMock: func(m *deal.MockRepository, id uuid.UUID) {
				m.EXPECT().GetDeal(gomock.Any(), id).
					DoAndReturn(func(context.Context, uuid.UUID) (*deal.Deal, error) {
						d := connectedDeal(id)
						d.Status = deal.StatusCompleted
						return d, nil
					}).
					Times(2)
			},
			wantStatus: "completed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			id := uuid.New()
			repo := deal.NewMockRepository(ctrl)
			tt.setupMock(repo, id)

			rec, env := do(t, newRouter(repo), tt.path, `{"dealId":"`+id.String()+`"}`)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			assert.True(t, env.Success)
			assert.Equal(t, tt.wantStatus, env.Data.Status)
			assert.Equal(t, contract.Number(id), env.Data.ContractNumber)
			assert.Equal(t, contract.UnknownBuyer, env.Data.Buyer.Name)
			assert.Equal(t, "Yellow maize", env.Data.Product.Title)
			assert.Equal(t, "1020", env.Data.Financials.TotalAmount)
			assert.Equal(t, "ZAR 1,020.00", env.Data.Financials.Formatted["total_amount"])
		})
	}
}

func TestHandler_Generate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *deal.MockRepository)
		wantStatus int
		wantError  string
	}{
		{
			name:       "MissingDealID",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "bad request: dealId is required",
		},
		{
			name:       "NoBody",
			wantStatus: http.StatusBadRequest,
			wantError:  "bad request: malformed JSON body",
		},
		{
			name: "UnknownDeal",
			body: `{"dealId":"0b7f2c58-5a8e-4c1e-9d7e-3f1f1e1c2a10"}`,
			setupMock: func(m *deal.MockRepository) {
				m.EXPECT().GetDeal(gomock.Any(), uuid.MustParse("0b7f2c58-5a8e-4c1e-9d7e-3f1f1e1c2a10")).Return(nil, deal.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Deal not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := deal.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			rec, env := do(t, newRouter(repo), "/api/contracts/generate", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}
