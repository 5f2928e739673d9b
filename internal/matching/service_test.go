package matching_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/matching"
)

func TestService_Resolve(t *testing.T) {
	type testCase struct {
		name      string
		raw       string
		setupMock func(m *matching.MockRepository)
		want      listing.Commodity
		wantOK    bool
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "ExactCommodity",
			raw:  " Wheat ",
			want: listing.CommodityWheat, wantOK: true,
		},
		{
			name: "LearnedAliasWins",
			raw:  "WM2 White",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindCommodity(gomock.Any(), "wm2 white").Return(listing.CommodityMaize, nil)
			},
			want: listing.CommodityMaize, wantOK: true,
		},
		{
			name: "KeywordFallback",
			raw:  "Soybeans (GMO)",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindCommodity(gomock.Any(), "soybeans (gmo)").Return(listing.Commodity(""), nil)
			},
			want: listing.CommoditySoya, wantOK: true,
		},
		{
			name: "OilcakeIsFeed",
			raw:  "Sunflower oilcake",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindCommodity(gomock.Any(), gomock.Any()).Return(listing.Commodity(""), nil)
			},
			want: listing.CommodityFeed, wantOK: true,
		},
		{
			name: "NoMatch",
			raw:  "Sorghum",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindCommodity(gomock.Any(), "sorghum").Return(listing.Commodity(""), nil)
			},
		},
		{
			name: "Empty",
			raw:  "   ",
		},
		{
			name: "RepoError",
			raw:  "Yellow maize",
			setupMock: func(m *matching.MockRepository) {
				m.EXPECT().FindCommodity(gomock.Any(), gomock.Any()).Return(listing.Commodity(""), errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			got, ok, err := matching.NewService(repo).Resolve(context.Background(), tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	repo.EXPECT().CreateAlias(gomock.Any(), "wm2", listing.CommodityMaize).Return(nil)

	svc := matching.NewService(repo)

	require.NoError(t, svc.Learn(context.Background(), " WM2 ", listing.CommodityMaize))
	assert.ErrorIs(t, svc.Learn(context.Background(), "wm2", "sorghum"), listing.ErrInvalid)
	assert.ErrorIs(t, svc.Learn(context.Background(), "", listing.CommodityMaize), listing.ErrInvalid)
}
