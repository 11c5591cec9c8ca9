package resolver

import (
	"fmt"
	"io"

	api_types "taxdash/api-types"
	"taxdash/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r resolverHandler) ImportLotsCSV(userID uuid.UUID, body io.Reader) (*api_types.ImportLotsResponse, error) {
	imported, err := r.HoldingsService.ImportLotsCSV(userID, body)
	if err != nil {
		return nil, err
	}
	return &api_types.ImportLotsResponse{Lots: imported}, nil
}

func (r resolverHandler) ListHoldings(userID uuid.UUID) ([]api_types.LotHolding, error) {
	results, err := r.HoldingsService.ListHoldings(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}

	out := []api_types.LotHolding{}
	for _, result := range results {
		out = append(out, lotHolding(result))
	}
	return out, nil
}

func (r resolverHandler) GetPortfolioSummary(userID uuid.UUID) (*api_types.PortfolioSummaryResponse, error) {
	summary, err := r.HoldingsService.GetPortfolioSummary(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize portfolio: %w", err)
	}

	return &api_types.PortfolioSummaryResponse{
		PreTaxValue:                   money(summary.PreTaxValue),
		TotalUnrealizedGain:           money(summary.TotalUnrealizedGain),
		GrossTaxOnGains:               money(summary.GrossTaxOnGains),
		GrossPotentialSavingsOnLosses: money(summary.GrossPotentialSavingsOnLosses),
		NaiveNetTaxIfLiquidatedNow:    money(summary.NaiveNetTaxIfLiquidatedNow),
		AfterTaxValueIfLiquidatedNow:  money(summary.AfterTaxValueIfLiquidatedNow),
	}, nil
}

func (r resolverHandler) WhatIfSell(userID uuid.UUID, req api_types.WhatIfSellRequest) (*api_types.WhatIfSellResponse, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	result, err := r.HoldingsService.SimulateSell(userID, req.Symbol, decimal.NewFromFloat(req.Quantity))
	if err != nil {
		return nil, err
	}

	consumed := []api_types.ConsumedLot{}
	for _, c := range result.LotsConsumed {
		consumed = append(consumed, api_types.ConsumedLot{
			LotID:        lotIDString(c.LotID),
			QuantityUsed: c.QuantityUsed.InexactFloat64(),
			Term:         string(c.Term),
			RealizedGain: c.RealizedGain.InexactFloat64(),
			EstTax:       c.EstTax.InexactFloat64(),
		})
	}

	return &api_types.WhatIfSellResponse{
		Symbol:       result.Symbol,
		SellQuantity: result.SellQuantity.InexactFloat64(),
		AsOfPrice:    result.AsOfPrice.InexactFloat64(),
		RealizedGain: result.RealizedGain.InexactFloat64(),
		EstTax:       result.EstTax.InexactFloat64(),
		LotsConsumed: consumed,
	}, nil
}

func (r resolverHandler) HarvestCandidates(userID uuid.UUID, minLoss float64, limit int) ([]api_types.HarvestCandidate, error) {
	candidates, err := r.HoldingsService.HarvestCandidates(userID, decimal.NewFromFloat(minLoss), limit)
	if err != nil {
		return nil, err
	}

	out := []api_types.HarvestCandidate{}
	for _, c := range candidates {
		out = append(out, api_types.HarvestCandidate{
			Symbol:         c.Symbol,
			LotID:          lotIDString(c.LotID),
			PurchaseDate:   c.PurchaseDate.Format(dateLayout),
			Quantity:       c.Quantity.InexactFloat64(),
			CostPerShare:   price(c.CostPerShare),
			Price:          price(c.Price),
			UnrealizedLoss: c.UnrealizedLoss.InexactFloat64(),
			DaysToLt:       c.DaysToLongTerm,
		})
	}
	return out, nil
}

func lotHolding(result domain.LotResult) api_types.LotHolding {
	return api_types.LotHolding{
		Symbol:          result.Symbol,
		Quantity:        result.Quantity.InexactFloat64(),
		Price:           price(result.Price),
		CostPerShare:    price(result.CostPerShare),
		PurchaseDate:    result.PurchaseDate.Format(dateLayout),
		HoldingDays:     result.HoldingDays,
		Term:            string(result.Term),
		UnrealizedGain:  money(result.UnrealizedGain),
		EstTaxLiability: money(result.EstTaxLiability),
		EstTaxSavings:   money(result.EstTaxSavings),
		AfterTaxValue:   money(result.AfterTaxValue),
		DaysToLt:        result.DaysToLongTerm,
	}
}

// money is rounded to cents at the API boundary; per-share figures keep
// four decimal places.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func price(d decimal.Decimal) float64 {
	return d.Round(4).InexactFloat64()
}

func lotIDString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
