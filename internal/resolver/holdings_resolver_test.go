package resolver

import (
	"io"
	"testing"
	"time"

	api_types "taxdash/api-types"
	"taxdash/internal/domain"
	"taxdash/internal/prices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubHoldingsService struct {
	holdings   []domain.LotResult
	summary    *domain.PortfolioSummary
	simulation *domain.SellSimulation
	candidates []domain.HarvestCandidate
	imported   int
	err        error
}

func (s stubHoldingsService) ListHoldings(userID uuid.UUID) ([]domain.LotResult, error) {
	return s.holdings, s.err
}

func (s stubHoldingsService) GetPortfolioSummary(userID uuid.UUID) (*domain.PortfolioSummary, error) {
	return s.summary, s.err
}

func (s stubHoldingsService) SimulateSell(userID uuid.UUID, symbol string, quantity decimal.Decimal) (*domain.SellSimulation, error) {
	return s.simulation, s.err
}

func (s stubHoldingsService) HarvestCandidates(userID uuid.UUID, minLoss decimal.Decimal, limit int) ([]domain.HarvestCandidate, error) {
	return s.candidates, s.err
}

func (s stubHoldingsService) ImportLotsCSV(userID uuid.UUID, r io.Reader) (int, error) {
	return s.imported, s.err
}

func newTestResolver(holdings stubHoldingsService) Resolver {
	return NewResolver(nil, holdings, nil, prices.NewQuoteStore(), logrus.New())
}

func TestListHoldingsRoundsAtBoundary(t *testing.T) {
	r := newTestResolver(stubHoldingsService{holdings: []domain.LotResult{
		{
			Symbol:          "AAPL",
			Quantity:        decimal.NewFromInt(10),
			Price:           decimal.RequireFromString("150.23456"),
			CostPerShare:    decimal.RequireFromString("100.5"),
			PurchaseDate:    time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
			HoldingDays:     730,
			Term:            domain.TermLong,
			UnrealizedGain:  decimal.RequireFromString("497.3456"),
			EstTaxLiability: decimal.RequireFromString("124.336"),
			EstTaxSavings:   decimal.Zero,
			AfterTaxValue:   decimal.RequireFromString("1378.0096"),
			DaysToLongTerm:  0,
		},
	}})

	resp, err := r.ListHoldings(uuid.New())
	require.NoError(t, err)

	want := []api_types.LotHolding{
		{
			Symbol:          "AAPL",
			Quantity:        10,
			Price:           150.2346,
			CostPerShare:    100.5,
			PurchaseDate:    "2023-03-15",
			HoldingDays:     730,
			Term:            "long",
			UnrealizedGain:  497.35,
			EstTaxLiability: 124.34,
			EstTaxSavings:   0,
			AfterTaxValue:   1378.01,
			DaysToLt:        0,
		},
	}
	require.Empty(t, cmp.Diff(want, resp))
}

func TestWhatIfSellResponse(t *testing.T) {
	lotID := uuid.New()
	r := newTestResolver(stubHoldingsService{simulation: &domain.SellSimulation{
		Symbol:       "AAPL",
		SellQuantity: decimal.NewFromInt(15),
		AsOfPrice:    decimal.NewFromInt(150),
		RealizedGain: decimal.RequireFromString("650"),
		EstTax:       decimal.RequireFromString("177.5"),
		LotsConsumed: []domain.ConsumedLot{
			{
				LotID:        &lotID,
				QuantityUsed: decimal.NewFromInt(10),
				Term:         domain.TermLong,
				RealizedGain: decimal.NewFromInt(500),
				EstTax:       decimal.NewFromInt(125),
			},
		},
	}})

	resp, err := r.WhatIfSell(uuid.New(), api_types.WhatIfSellRequest{Symbol: "AAPL", Quantity: 15})
	require.NoError(t, err)

	want := &api_types.WhatIfSellResponse{
		Symbol:       "AAPL",
		SellQuantity: 15,
		AsOfPrice:    150,
		RealizedGain: 650,
		EstTax:       177.5,
		LotsConsumed: []api_types.ConsumedLot{
			{
				LotID:        lotID.String(),
				QuantityUsed: 10,
				Term:         "long",
				RealizedGain: 500,
				EstTax:       125,
			},
		},
	}
	require.Empty(t, cmp.Diff(want, resp))
}

func TestWhatIfSellRejectsNonPositiveQuantity(t *testing.T) {
	r := newTestResolver(stubHoldingsService{})

	_, err := r.WhatIfSell(uuid.New(), api_types.WhatIfSellRequest{Symbol: "AAPL", Quantity: 0})
	require.Error(t, err)

	_, err = r.WhatIfSell(uuid.New(), api_types.WhatIfSellRequest{Symbol: "AAPL", Quantity: -3})
	require.Error(t, err)
}

func TestUpsertQuotesNormalizesSymbols(t *testing.T) {
	store := prices.NewQuoteStore()
	r := NewResolver(nil, stubHoldingsService{}, nil, store, logrus.New())

	resp, err := r.UpsertQuotes(api_types.UpsertQuotesRequest{Quotes: map[string]float64{
		" aapl ": 230.10,
		"NVDA":   112.40,
	}})
	require.NoError(t, err)
	require.Equal(t, []string{"AAPL", "NVDA"}, resp.Symbols)

	quotes, err := r.GetQuotes([]string{"aapl", " nvda ", "MSFT"})
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"AAPL": 230.10, "NVDA": 112.40}, quotes)
}
