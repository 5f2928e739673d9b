package transport_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/farmfeed/farmfeed/internal/deal"
	"github.com/farmfeed/farmfeed/internal/transport"
	"github.com/farmfeed/farmfeed/internal/user"
)

var (
	pickup   = time.Date(2026, 11, 2, 8, 0, 0, 0, time.UTC)
	delivery = time.Date(2026, 11, 4, 17, 0, 0, 0, time.UTC)
)

func requestParams(dealID uuid.UUID) transport.RequestParams {
	return transport.RequestParams{
		DealID:             dealID,
		RequesterID:        uuid.New(),
		OriginAddress:      "Farm 12, Bothaville",
		DestinationAddress: "Feedlot, Heidelberg",
		PickupDate:         pickup,
		DeliveryDate:       delivery,
	}
}

func TestService_Request(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dealID := uuid.New()
	repo := transport.NewMockRepository(ctrl)
	rtx := transport.NewMockRequestTx(ctrl)

	repo.EXPECT().BeginRequest(gomock.Any()).Return(rtx, nil)
	rtx.EXPECT().LockDeal(gomock.Any(), dealID).Return(&transport.LockedDeal{
		ID:           dealID,
		Status:       deal.StatusConnected,
		Title:        "Yellow maize",
		Description:  "Bulk, Bothaville silo",
		Quantity:     decimal.NewFromInt(30),
		DeliveryType: deal.DeliveryExFarm,
	}, nil)
	rtx.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *transport.Request) error {
			r.ID = uuid.New()
			return nil
		})
	rtx.EXPECT().SetDealStatus(gomock.Any(), dealID, deal.StatusTransportQuoted).Return(nil)
	rtx.EXPECT().Commit().Return(nil)
	rtx.EXPECT().Rollback().Return(nil)

	got, err := transport.NewService(repo, nil).Request(context.Background(), requestParams(dealID))
	require.NoError(t, err)

	assert.Equal(t, transport.RequestPending, got.Status)
	assert.Equal(t, "Yellow maize", got.ProductDetails.Title)
	assert.Equal(t, deal.DeliveryExFarm, got.ProductDetails.DeliveryType)
	assert.True(t, got.ProductDetails.Quantity.Equal(decimal.NewFromInt(30)))
}

func TestService_Request_Failures(t *testing.T) {
	dealID := uuid.New()

	type testCase struct {
		name      string
		params    func(p transport.RequestParams) transport.RequestParams
		setupMock func(repo *transport.MockRepository, rtx *transport.MockRequestTx)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "PickupAfterDelivery",
			params: func(p transport.RequestParams) transport.RequestParams {
				p.PickupDate = delivery.Add(time.Hour)
				return p
			},
			wantErr: transport.ErrInvalid,
		},
		{
			name: "MissingOrigin",
			params: func(p transport.RequestParams) transport.RequestParams {
				p.OriginAddress = "  "
				return p
			},
			wantErr: transport.ErrInvalid,
		},
		{
			name: "DealNotFound",
			setupMock: func(repo *transport.MockRepository, rtx *transport.MockRequestTx) {
				repo.EXPECT().BeginRequest(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().LockDeal(gomock.Any(), dealID).Return(nil, transport.ErrDealNotFound)
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: transport.ErrDealNotFound,
		},
		{
			name: "DealCancelled",
			setupMock: func(repo *transport.MockRepository, rtx *transport.MockRequestTx) {
				repo.EXPECT().BeginRequest(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().LockDeal(gomock.Any(), dealID).Return(&transport.LockedDeal{ID: dealID, Status: deal.StatusCancelled}, nil)
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: transport.ErrDealClosed,
		},
		{
			name: "StatusUpdateFailureRollsBack",
			setupMock: func(repo *transport.MockRepository, rtx *transport.MockRequestTx) {
				repo.EXPECT().BeginRequest(gomock.Any()).Return(rtx, nil)
				rtx.EXPECT().LockDeal(gomock.Any(), dealID).Return(&transport.LockedDeal{ID: dealID, Status: deal.StatusConnected}, nil)
				rtx.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).Return(nil)
				rtx.EXPECT().SetDealStatus(gomock.Any(), dealID, deal.StatusTransportQuoted).Return(errors.New("db error"))
				rtx.EXPECT().Commit().Times(0)
				rtx.EXPECT().Rollback().Return(nil)
			},
			wantErr: errors.New("set deal status: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transport.NewMockRepository(ctrl)
			rtx := transport.NewMockRequestTx(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(repo, rtx)
			}

			params := requestParams(dealID)
			if tt.params != nil {
				params = tt.params(params)
			}

			got, err := transport.NewService(repo, nil).Request(context.Background(), params)
			require.Error(t, err)
			assert.Nil(t, got)

			if !errors.Is(err, tt.wantErr) {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestService_Quote(t *testing.T) {
	requestID := uuid.New()
	carrier := &user.User{ID: uuid.New(), Role: user.RoleTransporter, Capabilities: []user.Capability{user.CapabilityTransport}}
	farmer := &user.User{ID: uuid.New(), Role: user.RoleSeller, Capabilities: []user.Capability{user.CapabilitySell}}

	valid := transport.QuoteParams{
		RequestID:             requestID,
		TransporterID:         carrier.ID,
		Price:                 decimal.NewFromInt(8500),
		EstimatedDeliveryDate: delivery,
		Terms:                 "50% on loading",
	}

	type testCase struct {
		name      string
		params    func(p transport.QuoteParams) transport.QuoteParams
		setupMock func(m *transport.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *transport.MockRepository) {
				m.EXPECT().GetRequest(gomock.Any(), requestID).Return(&transport.Request{ID: requestID, Status: transport.RequestPending}, nil)
				m.EXPECT().
					CreateQuote(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, q *transport.Quote) error {
						assert.Equal(t, "ZAR", q.Currency)
						assert.Equal(t, transport.QuotePending, q.Status)
						q.ID = uuid.New()
						return nil
					})
			},
		},
		{
			name: "RequestNotFound",
			setupMock: func(m *transport.MockRepository) {
				m.EXPECT().GetRequest(gomock.Any(), requestID).Return(nil, transport.ErrRequestNotFound)
			},
			wantErr: transport.ErrRequestNotFound,
		},
		{
			name: "NotATransporter",
			params: func(p transport.QuoteParams) transport.QuoteParams {
				p.TransporterID = farmer.ID
				return p
			},
			setupMock: func(m *transport.MockRepository) {
				m.EXPECT().GetRequest(gomock.Any(), requestID).Return(&transport.Request{ID: requestID, Status: transport.RequestPending}, nil)
			},
			wantErr: user.ErrForbidden,
		},
		{
			name: "ZeroPrice",
			params: func(p transport.QuoteParams) transport.QuoteParams {
				p.Price = decimal.Zero
				return p
			},
			wantErr: transport.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			userRepo := user.NewMockRepository(ctrl)
			userRepo.EXPECT().GetUser(gomock.Any(), carrier.ID).Return(carrier, nil).AnyTimes()
			userRepo.EXPECT().GetUser(gomock.Any(), farmer.ID).Return(farmer, nil).AnyTimes()

			users, err := user.NewService(userRepo, 16, time.Minute)
			require.NoError(t, err)

			repo := transport.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			params := valid
			if tt.params != nil {
				params = tt.params(params)
			}

			got, err := transport.NewService(repo, users).Quote(context.Background(), params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, requestID, got.RequestID)
			assert.Equal(t, "50% on loading", got.Terms)
		})
	}
}

func TestService_ListQuotes_UnknownRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := transport.NewMockRepository(ctrl)
	repo.EXPECT().GetRequest(gomock.Any(), id).Return(nil, transport.ErrRequestNotFound)

	_, err := transport.NewService(repo, nil).ListQuotes(context.Background(), id)
	require.ErrorIs(t, err, transport.ErrRequestNotFound)
}
