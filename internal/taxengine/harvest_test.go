package taxengine

import (
	"testing"
	"time"

	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func harvestFixtureLots() []domain.Lot {
	purchase := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []domain.Lot{
		{
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			CostPerShare: decimal.NewFromInt(200),
			PurchaseDate: purchase,
		},
		{
			Symbol:       "NVDA",
			Quantity:     decimal.NewFromInt(5),
			CostPerShare: decimal.NewFromInt(120),
			PurchaseDate: purchase,
		},
		{
			Symbol:       "MSFT",
			Quantity:     decimal.NewFromInt(2),
			CostPerShare: decimal.NewFromInt(400),
			PurchaseDate: purchase,
		},
	}
}

func TestHarvestCandidatesRankedByLoss(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(150), // loss 500
		"NVDA": decimal.NewFromInt(100), // loss 100
		"MSFT": decimal.NewFromInt(300), // loss 200
	}
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := HarvestCandidates(harvestFixtureLots(), prices, decimal.NewFromInt(50), 10, asOf)

	require.Len(t, out, 3)
	require.Equal(t, "AAPL", out[0].Symbol)
	require.Equal(t, "MSFT", out[1].Symbol)
	require.Equal(t, "NVDA", out[2].Symbol)
	require.True(t, decimal.NewFromInt(500).Equal(out[0].UnrealizedLoss))
	for _, c := range out {
		require.True(t, c.UnrealizedLoss.GreaterThan(decimal.Zero))
		// 2025-01-01 -> 2025-03-01 is 59 days held
		require.Equal(t, 306, c.DaysToLongTerm)
	}
}

func TestHarvestCandidatesThresholdInclusive(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(195), // loss exactly 50
		"NVDA": decimal.NewFromFloat(110.2), // loss 49
	}
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := HarvestCandidates(harvestFixtureLots(), prices, decimal.NewFromInt(50), 10, asOf)

	require.Len(t, out, 1)
	require.Equal(t, "AAPL", out[0].Symbol)
	require.True(t, decimal.NewFromInt(50).Equal(out[0].UnrealizedLoss))
}

func TestHarvestCandidatesExcludesGainsAndBreakEven(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(250), // gain
		"NVDA": decimal.NewFromInt(120), // break-even
		"MSFT": decimal.NewFromInt(300), // loss 200
	}
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := HarvestCandidates(harvestFixtureLots(), prices, decimal.Zero, 10, asOf)

	require.Len(t, out, 1)
	require.Equal(t, "MSFT", out[0].Symbol)
}

func TestHarvestCandidatesSkipsUnpricedLots(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"MSFT": decimal.NewFromInt(300),
	}
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := HarvestCandidates(harvestFixtureLots(), prices, decimal.NewFromInt(50), 10, asOf)

	require.Len(t, out, 1)
	require.Equal(t, "MSFT", out[0].Symbol)
}

func TestHarvestCandidatesLimit(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"AAPL": decimal.NewFromInt(150),
		"NVDA": decimal.NewFromInt(100),
		"MSFT": decimal.NewFromInt(300),
	}
	asOf := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	out := HarvestCandidates(harvestFixtureLots(), prices, decimal.Zero, 2, asOf)

	require.Len(t, out, 2)
	require.Equal(t, "AAPL", out[0].Symbol)
	require.Equal(t, "MSFT", out[1].Symbol)
}
