package prices

import (
	"fmt"
	"net/http"
)

// Quote source names accepted in QUOTES_SOURCE.
const (
	SourceStub         = "stub"
	SourceYahoo        = "yahoo"
	SourceAlphaVantage = "alphavantage"
)

// FromSource picks the price lookup for the configured source. The stub
// store is always constructed by the caller so PUT /api/quotes has
// somewhere to write even when an external source serves reads.
func FromSource(source string, store *QuoteStore, alphaVantageKey string) (PriceLookup, error) {
	switch source {
	case SourceStub:
		return store, nil
	case SourceYahoo:
		return YahooClient{}, nil
	case SourceAlphaVantage:
		return AlphaVantageClient{
			HttpClient: http.DefaultClient,
			ApiKey:     alphaVantageKey,
		}, nil
	}
	return nil, fmt.Errorf("unknown quotes source %q", source)
}
