package listing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	listinghttp "github.com/farmfeed/farmfeed/internal/http/listing"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/listing/importer"
	"github.com/farmfeed/farmfeed/internal/user"
)

type resolverFunc func(ctx context.Context, raw string) (listing.Commodity, bool, error)

func (f resolverFunc) Resolve(ctx context.Context, raw string) (listing.Commodity, bool, error) {
	return f(ctx, raw)
}

var exact = resolverFunc(func(_ context.Context, raw string) (listing.Commodity, bool, error) {
	c := listing.Commodity(strings.ToLower(raw))
	return c, c.Valid(), nil
})

type importEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Data    struct {
		Profile  string `json:"profile"`
		Imported int    `json:"imported"`
		Listings []struct {
			SellerID  uuid.UUID `json:"seller_id"`
			Commodity string    `json:"commodity"`
			Price     string    `json:"price"`
		} `json:"listings"`
	} `json:"data"`
}

func newRouter(t *testing.T, ctrl *gomock.Controller, repo listing.Repository, seller *user.User) http.Handler {
	t.Helper()

	userRepo := user.NewMockRepository(ctrl)
	userRepo.EXPECT().GetUser(gomock.Any(), seller.ID).Return(seller, nil).AnyTimes()

	users, err := user.NewService(userRepo, 16, time.Minute)
	require.NoError(t, err)

	h := listinghttp.NewHandler(listing.NewService(repo, users), importer.NewParser(exact))

	r := chi.NewRouter()
	r.Route("/api/listings", h.Routes)

	return r
}

func uploadRequest(t *testing.T, sellerID, csv string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if sellerID != "" {
		require.NoError(t, mw.WriteField("sellerId", sellerID))
	}

	fw, err := mw.CreateFormFile("file", "listings.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/listings/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

const upload = `Title;Commodity;Price;Quantity
Yellow maize;Maize;R 3 450,00;30
Bread wheat;Wheat;5 210,50;12
`

func TestHandler_Import(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := &user.User{ID: uuid.New(), Role: user.RoleSeller, Capabilities: []user.Capability{user.CapabilitySell}}

	btx := listing.NewMockBatchTx(ctrl)
	btx.EXPECT().CreateListings(gomock.Any(), gomock.Len(2)).DoAndReturn(func(_ context.Context, ls []*listing.Listing) error {
		for _, l := range ls {
			l.ID = uuid.New()
		}
		return nil
	})
	btx.EXPECT().Commit().Return(nil)
	btx.EXPECT().Rollback().Return(nil)

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().BeginBatch(gomock.Any()).Return(btx, nil)

	rec := httptest.NewRecorder()
	newRouter(t, ctrl, repo, seller).ServeHTTP(rec, uploadRequest(t, seller.ID.String(), upload))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env importEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	assert.True(t, env.Success)
	assert.Equal(t, 2, env.Data.Imported)
	require.Len(t, env.Data.Listings, 2)
	assert.Equal(t, seller.ID, env.Data.Listings[0].SellerID)
	assert.Equal(t, "maize", env.Data.Listings[0].Commodity)
	assert.Equal(t, "3450", env.Data.Listings[0].Price)
	assert.Equal(t, "5210.5", env.Data.Listings[1].Price)
}

func TestHandler_ImportRejected(t *testing.T) {
	seller := &user.User{ID: uuid.New(), Role: user.RoleSeller, Capabilities: []user.Capability{user.CapabilitySell}}

	tests := []struct {
		name     string
		sellerID string
		csv      string
		wantCode int
	}{
		{
			name:     "MissingSeller",
			csv:      upload,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "UnknownLayout",
			sellerID: seller.ID.String(),
			csv:      "Date,Amount\n2024-01-01,12\n",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "UnknownCommodity",
			sellerID: seller.ID.String(),
			csv:      "Title;Commodity;Price;Quantity\nOats;Oats;100;1\n",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := listing.NewMockRepository(ctrl)

			rec := httptest.NewRecorder()
			newRouter(t, ctrl, repo, seller).ServeHTTP(rec, uploadRequest(t, tt.sellerID, tt.csv))

			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())

			var env importEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}
}

func TestHandler_ImportStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := &user.User{ID: uuid.New(), Role: user.RoleSeller, Capabilities: []user.Capability{user.CapabilitySell}}

	repo := listing.NewMockRepository(ctrl)
	repo.EXPECT().BeginBatch(gomock.Any()).Return(nil, errors.New("connection refused"))

	rec := httptest.NewRecorder()
	newRouter(t, ctrl, repo, seller).ServeHTTP(rec, uploadRequest(t, seller.ID.String(), upload))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
