package deal_test

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

	"github.com/farmfeed/farmfeed/internal/deal"
	dealhttp "github.com/farmfeed/farmfeed/internal/http/deal"
)

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newRouter(repo deal.Repository) http.Handler {
	h := dealhttp.NewHandler(deal.NewService(repo, true))

	r := chi.NewRouter()
	r.Route("/api/deals", h.Routes)
	r.Post("/api/update-deal-status", h.UpdateStatus)

	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, rdr))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offerID := uuid.New()
	repo := deal.NewMockRepository(ctrl)
	conv := deal.NewMockConversionTx(ctrl)

	repo.EXPECT().BeginConversion(gomock.Any()).Return(conv, nil)
	conv.EXPECT().FindEligibleOffer(gomock.Any(), &offerID).Return(&deal.EligibleOffer{
		OfferID:  offerID,
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Price:    decimal.NewFromInt(50),
		Quantity: decimal.NewFromInt(20),
	}, nil)
	conv.EXPECT().
		CreateDeal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *deal.Deal) error {
			assert.Equal(t, deal.DeliveryDelivered, d.DeliveryType)
			assert.Equal(t, 2026, d.DeliveryDate.Year())
			d.ID = uuid.New()
			return nil
		})
	conv.EXPECT().LinkOffer(gomock.Any(), offerID, gomock.Any()).Return(nil)
	conv.EXPECT().Commit().Return(nil)
	conv.EXPECT().Rollback().Return(nil)

	body := `{"offerId":"` + offerID.String() + `","deliveryType":"delivered","deliveryDate":"2026-11-20"}`

	rec, env := do(t, newRouter(repo), http.MethodPost, "/api/deals", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)

	var got struct {
		Status        string `json:"status"`
		PaymentStatus string `json:"payment_status"`
		PlatformFee   string `json:"platform_fee"`
		TotalAmount   string `json:"total_amount"`
		OfferID       string `json:"offer_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))

	assert.Equal(t, "connected", got.Status)
	assert.Equal(t, "pending", got.PaymentStatus)
	assert.Equal(t, "20", got.PlatformFee)
	assert.Equal(t, "1020", got.TotalAmount)
	assert.Equal(t, offerID.String(), got.OfferID)
}

func TestHandler_Create_NoEligibleOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := deal.NewMockRepository(ctrl)
	conv := deal.NewMockConversionTx(ctrl)

	repo.EXPECT().BeginConversion(gomock.Any()).Return(conv, nil)
	conv.EXPECT().FindEligibleOffer(gomock.Any(), (*uuid.UUID)(nil)).Return(nil, deal.ErrNoEligibleOffer)
	conv.EXPECT().Rollback().Return(nil)

	rec, env := do(t, newRouter(repo), http.MethodPost, "/api/deals", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "No eligible offer", env.Message)
	assert.Empty(t, env.Data)
}

func TestHandler_UpdateStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		body       string
		setupMock  func(m *deal.MockRepository)
		wantStatus int
		wantError  string
	}{
		{
			name: "Success",
			body: `{"dealId":"` + id.String() + `","status":"transport-selected","transportFee":"800"}`,
			setupMock: func(m *deal.MockRepository) {
				m.EXPECT().GetDeal(gomock.Any(), id).Return(&deal.Deal{ID: id, Status: deal.StatusTransportQuoted}, nil)
				m.EXPECT().UpdateDealStatus(gomock.Any(), gomock.Any(), deal.StatusTransportQuoted).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "IllegalTransition",
			body: `{"dealId":"` + id.String() + `","status":"connected"}`,
			setupMock: func(m *deal.MockRepository) {
				m.EXPECT().GetDeal(gomock.Any(), id).Return(&deal.Deal{ID: id, Status: deal.StatusCompleted}, nil)
			},
			wantStatus: http.StatusConflict,
			wantError:  "Invalid deal status transition",
		},
		{
			name: "DealNotFound",
			body: `{"dealId":"` + id.String() + `","status":"cancelled"}`,
			setupMock: func(m *deal.MockRepository) {
				m.EXPECT().GetDeal(gomock.Any(), id).Return(nil, deal.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantError:  "Deal not found",
		},
		{
			name:       "UnknownStatus",
			body:       `{"dealId":"` + id.String() + `","status":"shipped"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  `invalid deal status: "shipped"`,
		},
		{
			name:       "MissingDealID",
			body:       `{"status":"cancelled"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "bad request: dealId is required",
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

			rec, env := do(t, newRouter(repo), http.MethodPost, "/api/update-deal-status", tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, env.Error)
		})
	}
}
