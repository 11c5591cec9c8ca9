package prices

import (
	"github.com/shopspring/decimal"
)

// PriceLookup resolves current prices for ticker symbols. A symbol with no
// known price is simply absent from the returned map; absence is a valid,
// expected state, not an error. Callers decide whether a missing price is
// fatal (single-symbol simulations) or skippable (bulk views).
type PriceLookup interface {
	GetQuotes(symbols []string) (map[string]decimal.Decimal, error)
}
