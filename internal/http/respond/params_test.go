package respond_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farmfeed/farmfeed/internal/http/respond"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	var body struct {
		Pickup   respond.Date `json:"pickup"`
		Delivery respond.Date `json:"delivery"`
		Missing  respond.Date `json:"missing"`
	}

	err := json.Unmarshal([]byte(`{"pickup":"2026-11-02","delivery":"2026-11-04T17:00:00+02:00"}`), &body)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC), body.Pickup.Time)
	assert.Equal(t, 15, body.Delivery.UTC().Hour())
	assert.Nil(t, body.Missing.Ptr())

	assert.Error(t, json.Unmarshal([]byte(`{"pickup":"next week"}`), &body))
}
