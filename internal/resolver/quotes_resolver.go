package resolver

import (
	"strings"

	api_types "taxdash/api-types"

	"github.com/shopspring/decimal"
)

func (r resolverHandler) UpsertQuotes(req api_types.UpsertQuotesRequest) (*api_types.UpsertQuotesResponse, error) {
	quotes := map[string]decimal.Decimal{}
	for symbol, price := range req.Quotes {
		quotes[strings.ToUpper(strings.TrimSpace(symbol))] = decimal.NewFromFloat(price)
	}
	r.QuoteStore.Upsert(quotes)

	return &api_types.UpsertQuotesResponse{
		Symbols: r.QuoteStore.Symbols(),
	}, nil
}

func (r resolverHandler) GetQuotes(symbols []string) (map[string]float64, error) {
	normalized := []string{}
	for _, symbol := range symbols {
		if s := strings.ToUpper(strings.TrimSpace(symbol)); s != "" {
			normalized = append(normalized, s)
		}
	}

	quotes, err := r.QuoteStore.GetQuotes(normalized)
	if err != nil {
		return nil, err
	}

	out := map[string]float64{}
	for symbol, price := range quotes {
		out[symbol] = price.Round(4).InexactFloat64()
	}
	return out, nil
}
