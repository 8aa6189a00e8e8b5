package gst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateIntraStateSplitsEvenly(t *testing.T) {
	b := Calculate(10000, 18, false)

	require.InDelta(t, 10000, b.TaxableAmount, 0.001)
	require.InDelta(t, 900, b.Cgst, 0.001)
	require.InDelta(t, 900, b.Sgst, 0.001)
	require.Zero(t, b.Igst)
	require.InDelta(t, 1800, b.TotalTax, 0.001)
	require.InDelta(t, 11800, b.Total, 0.001)
}

func TestCalculateInterStateUsesIGST(t *testing.T) {
	b := Calculate(10000, 18, true)

	require.Zero(t, b.Cgst)
	require.Zero(t, b.Sgst)
	require.InDelta(t, 1800, b.Igst, 0.001)
	require.InDelta(t, 11800, b.Total, 0.001)
}

func TestCalculateZeroRate(t *testing.T) {
	b := Calculate(500, 0, false)

	require.Zero(t, b.TotalTax)
	require.InDelta(t, 500, b.Total, 0.001)
}

func TestFormatINRUsesIndianGrouping(t *testing.T) {
	require.Equal(t, "₹11,800.00", FormatINR(11800))
	require.Equal(t, "₹1,18,000.00", FormatINR(118000))
	require.Equal(t, "₹0.00", FormatINR(0))
}

func TestSlabsCoverStandardRates(t *testing.T) {
	slabs := Slabs()
	require.Len(t, slabs, 5)

	rates := make([]float64, 0, len(slabs))
	for _, slab := range slabs {
		rates = append(rates, slab.Rate)
	}
	require.Equal(t, []float64{0, 5, 12, 18, 28}, rates)
}
