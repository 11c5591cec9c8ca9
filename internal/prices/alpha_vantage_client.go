package prices

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type AlphaVantageClient struct {
	HttpClient *http.Client
	ApiKey     string
}

type alphaVantageQuoteResult struct {
	GlobalQuote struct {
		Symbol           string `json:"symbol"`
		Price            string `json:"price"`
		LatestTradingDay string `json:"latest trading day"`
		PreviousClose    string `json:"previous close"`
	} `json:"Global Quote"`
	Note string `json:"Note"`
}

func (c AlphaVantageClient) GetQuotes(symbols []string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, symbol := range symbols {
		price, err := c.getLatestPrice(symbol)
		if err != nil {
			return nil, err
		}
		if price == nil {
			continue
		}
		out[symbol] = *price
	}
	return out, nil
}

// getLatestPrice returns (nil, nil) when Alpha Vantage has no quote for
// the symbol.
func (c AlphaVantageClient) getLatestPrice(symbol string) (*decimal.Decimal, error) {
	url := fmt.Sprintf("https://www.alphavantage.co/query?function=GLOBAL_QUOTE&symbol=%s&apikey=%s", symbol, c.ApiKey)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("alpha vantage returned status %d for %s", response.StatusCode, symbol)
	}

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	// API uses odd format which includes numbers in JSON keys
	var responseJson alphaVantageQuoteResult
	err = json.Unmarshal(cleanResponseBody(responseBytes), &responseJson)
	if err != nil {
		return nil, err
	}

	if strings.Contains(responseJson.Note, "API call frequency") {
		time.Sleep(time.Minute)
		return c.getLatestPrice(symbol)
	}

	if responseJson.GlobalQuote.Price == "" {
		return nil, nil
	}

	price, err := decimal.NewFromString(responseJson.GlobalQuote.Price)
	if err != nil {
		return nil, fmt.Errorf("could not parse price from Alpha Vantage response for %s: %w", symbol, err)
	}

	return &price, nil
}

func cleanResponseBody(bytes []byte) []byte {
	r := regexp.MustCompile("\"[0-9]+\\. ")
	return r.ReplaceAll(bytes, []byte("\""))
}
