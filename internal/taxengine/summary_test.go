package taxengine

import (
	"testing"
	"time"

	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	require.True(t, decimal.Zero.Equal(s.PreTaxValue))
	require.True(t, decimal.Zero.Equal(s.TotalUnrealizedGain))
	require.True(t, decimal.Zero.Equal(s.GrossTaxOnGains))
	require.True(t, decimal.Zero.Equal(s.GrossPotentialSavingsOnLosses))
	require.True(t, decimal.Zero.Equal(s.NaiveNetTaxIfLiquidatedNow))
	require.True(t, decimal.Zero.Equal(s.AfterTaxValueIfLiquidatedNow))
}

func TestSummarizeMixedPortfolio(t *testing.T) {
	asOf := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	purchase := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	winner := EstimateLot(domain.Lot{
		Symbol:       "AAA",
		Quantity:     decimal.NewFromInt(10),
		CostPerShare: decimal.NewFromInt(100),
		PurchaseDate: purchase,
	}, decimal.NewFromInt(150), testProfile, asOf)
	loser := EstimateLot(domain.Lot{
		Symbol:       "BBB",
		Quantity:     decimal.NewFromInt(10),
		CostPerShare: decimal.NewFromInt(100),
		PurchaseDate: purchase,
	}, decimal.NewFromInt(80), testProfile, asOf)

	s := Summarize([]domain.LotResult{winner, loser})

	require.True(t, decimal.NewFromInt(2300).Equal(s.PreTaxValue))
	require.True(t, decimal.NewFromInt(300).Equal(s.TotalUnrealizedGain))
	require.True(t, decimal.NewFromInt(125).Equal(s.GrossTaxOnGains))
	require.True(t, decimal.NewFromInt(50).Equal(s.GrossPotentialSavingsOnLosses))
	require.True(t, decimal.NewFromInt(75).Equal(s.NaiveNetTaxIfLiquidatedNow))
	require.True(t, decimal.NewFromInt(2225).Equal(s.AfterTaxValueIfLiquidatedNow))
	require.True(t, s.AfterTaxValueIfLiquidatedNow.LessThanOrEqual(s.PreTaxValue))
}

func TestSummarizeNetTaxFlooredAtZero(t *testing.T) {
	asOf := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	purchase := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	smallWinner := EstimateLot(domain.Lot{
		Symbol:       "AAA",
		Quantity:     decimal.NewFromInt(1),
		CostPerShare: decimal.NewFromInt(100),
		PurchaseDate: purchase,
	}, decimal.NewFromInt(110), testProfile, asOf)
	bigLoser := EstimateLot(domain.Lot{
		Symbol:       "BBB",
		Quantity:     decimal.NewFromInt(10),
		CostPerShare: decimal.NewFromInt(100),
		PurchaseDate: purchase,
	}, decimal.NewFromInt(50), testProfile, asOf)

	s := Summarize([]domain.LotResult{smallWinner, bigLoser})

	// savings exceed tax; the net never goes negative
	require.True(t, decimal.Zero.Equal(s.NaiveNetTaxIfLiquidatedNow))
	require.True(t, s.AfterTaxValueIfLiquidatedNow.Equal(s.PreTaxValue))
}
