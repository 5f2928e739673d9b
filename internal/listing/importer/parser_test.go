package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/farmfeed/farmfeed/internal/encoding"
	"github.com/farmfeed/farmfeed/internal/listing"
	"github.com/farmfeed/farmfeed/internal/listing/importer"
)

// resolverFunc adapts a function to importer.CommodityResolver.
type resolverFunc func(ctx context.Context, raw string) (listing.Commodity, bool, error)

func (f resolverFunc) Resolve(ctx context.Context, raw string) (listing.Commodity, bool, error) {
	return f(ctx, raw)
}

var byName = resolverFunc(func(_ context.Context, raw string) (listing.Commodity, bool, error) {
	name := strings.ToLower(raw)
	for _, c := range listing.Commodities {
		if strings.Contains(name, string(c)) {
			return c, true, nil
		}
	}

	if strings.Contains(name, "soybean") {
		return listing.CommoditySoya, true, nil
	}

	return "", false, nil
})

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParser_FarmFeedLayout(t *testing.T) {
	csv := `Title;Commodity;Description;Price;Quantity
Yellow maize YM1;Maize;Bulk, Bothaville silo;R 3 450,00;30
;;;;
Bread wheat B2;wheat;;5 210,50;12,5
`

	res, err := importer.NewParser(byName).Parse(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, "farmfeed", res.Profile)
	assert.Equal(t, encoding.UTF8, res.Charset)
	require.Len(t, res.Params, 2)

	assert.Equal(t, "Yellow maize YM1", res.Params[0].Title)
	assert.Equal(t, listing.CommodityMaize, res.Params[0].Commodity)
	assert.Equal(t, "Bulk, Bothaville silo", res.Params[0].Description)
	assert.True(t, dec("3450").Equal(res.Params[0].Price))
	assert.True(t, dec("30").Equal(res.Params[0].Quantity))

	assert.Equal(t, listing.CommodityWheat, res.Params[1].Commodity)
	assert.True(t, dec("5210.50").Equal(res.Params[1].Price))
	assert.True(t, dec("12.5").Equal(res.Params[1].Quantity))
}

func TestParser_CoopLayoutCommaSeparated(t *testing.T) {
	csv := `Co-op weekly offer list
Depot,Bethlehem

Product,Grade,Price (R/t),Tons,Remarks
Soybeans,Grade 1,"8,100.00",40,
Barley,Malting,"4,320.00",18,"Ex-farm only"
`

	res, err := importer.NewParser(byName).Parse(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)

	assert.Equal(t, "co-op", res.Profile)
	require.Len(t, res.Params, 2)

	assert.Equal(t, "Soybeans Grade 1", res.Params[0].Title)
	assert.Equal(t, listing.CommoditySoya, res.Params[0].Commodity)
	assert.True(t, dec("8100").Equal(res.Params[0].Price))

	assert.Equal(t, "Barley Malting", res.Params[1].Title)
	assert.Equal(t, "Ex-farm only", res.Params[1].Description)
}

func TestParser_Windows1252(t *testing.T) {
	raw, err := charmap.Windows1252.NewEncoder().String("Title;Commodity;Description;Price;Quantity\nSonneblom;sunflower;Graad één;7 900,00;20\n")
	require.NoError(t, err)

	res, err := importer.NewParser(byName).Parse(context.Background(), strings.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, encoding.Windows1252, res.Charset)
	require.Len(t, res.Params, 1)
	assert.Equal(t, "Graad één", res.Params[0].Description)
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr string
	}{
		{
			name:    "UnknownLayout",
			csv:     "Name;Amount\nMaize;100\n",
			wantErr: "no known column layout",
		},
		{
			name:    "UnknownCommodity",
			csv:     "Title;Commodity;Price;Quantity\nSorghum;sorghum;100;1\n",
			wantErr: "row 2: unknown commodity",
		},
		{
			name:    "BadPrice",
			csv:     "Title;Commodity;Price;Quantity\nMaize;maize;tbc;1\n",
			wantErr: "row 2: invalid price",
		},
		{
			name:    "MissingTitle",
			csv:     "Title;Commodity;Price;Quantity\nMaize;maize;100;1\n;maize;100;1\n",
			wantErr: "row 3: missing title",
		},
		{
			name:    "RowNumberAfterPreamble",
			csv:     "Pricelist March\nTitle;Commodity;Price;Quantity\nSorghum;sorghum;100;1\n",
			wantErr: "row 3: unknown commodity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := importer.NewParser(byName).Parse(context.Background(), strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.ErrorIs(t, err, listing.ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParser_ResolverError(t *testing.T) {
	failing := resolverFunc(func(context.Context, string) (listing.Commodity, bool, error) {
		return "", false, errors.New("db down")
	})

	_, err := importer.NewParser(failing).Parse(context.Background(), strings.NewReader("Title;Commodity;Price;Quantity\nMaize;maize;100;1\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, listing.ErrInvalid)
}
