package upi

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIntentURI(t *testing.T) {
	uri := BuildIntentURI(Intent{
		PayeeID:   "greencity@upi",
		PayeeName: "Green City Connect",
		Amount:    120,
		Currency:  "INR",
		Note:      "Monthly waste collection fee",
	})

	require.True(t, strings.HasPrefix(uri, "upi://pay?"), uri)

	params, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "greencity@upi", params.Get("pa"))
	assert.Equal(t, "Green City Connect", params.Get("pn"))
	assert.Equal(t, "120.00", params.Get("am"))
	assert.Equal(t, "INR", params.Get("cu"))
	assert.Equal(t, "Monthly waste collection fee", params.Get("tn"))
}

func TestBuildIntentURIAmountAlwaysTwoDecimals(t *testing.T) {
	uri := BuildIntentURI(Intent{PayeeID: "x@upi", PayeeName: "X", Amount: 45.5, Currency: "INR"})
	params, err := url.ParseQuery(strings.TrimPrefix(uri, "upi://pay?"))
	require.NoError(t, err)
	assert.Equal(t, "45.50", params.Get("am"))
}

func TestBuildIntentURIOmitsEmptyNote(t *testing.T) {
	uri := BuildIntentURI(Intent{PayeeID: "x@upi", PayeeName: "X", Amount: 10, Currency: "INR"})
	assert.NotContains(t, uri, "tn=")
}
