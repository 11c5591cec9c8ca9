package prices

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"
)

// QuoteStore is the stub quote source: an injected in-memory symbol->price
// map fed by PUT /api/quotes. Injection (rather than a package-level map)
// keeps requests isolated and tests hermetic.
type QuoteStore struct {
	mu     sync.RWMutex
	quotes map[string]decimal.Decimal
}

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{
		quotes: map[string]decimal.Decimal{},
	}
}

func (s *QuoteStore) Upsert(quotes map[string]decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for symbol, price := range quotes {
		s.quotes[symbol] = price
	}
}

func (s *QuoteStore) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.quotes))
	for symbol := range s.quotes {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

func (s *QuoteStore) GetQuotes(symbols []string) (map[string]decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		if price, ok := s.quotes[symbol]; ok {
			out[symbol] = price
		}
	}
	return out, nil
}
