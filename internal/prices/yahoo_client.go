package prices

import (
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"
)

// YahooClient pulls last traded prices from Yahoo Finance.
type YahooClient struct{}

func (c YahooClient) GetQuotes(symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		q, err := equity.Get(symbol)
		if err != nil || q == nil {
			// unknown or delisted symbol; caller handles absence
			continue
		}
		if q.RegularMarketPrice == 0 {
			continue
		}
		out[symbol] = decimal.NewFromFloat(q.RegularMarketPrice)
	}
	return out, nil
}
