package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"taxdash/internal/domain"
	"taxdash/internal/taxengine"

	"github.com/shopspring/decimal"
)

// demoPrices stands in for live quotes; edit freely.
var demoPrices = map[string]decimal.Decimal{
	"AAPL": decimal.NewFromFloat(230.10),
	"NVDA": decimal.NewFromFloat(112.40),
	"TSLA": decimal.NewFromFloat(240.50),
	"MSFT": decimal.NewFromFloat(420.75),
	"AMZN": decimal.NewFromFloat(181.22),
}

type profileFile struct {
	FilingStatus       string  `json:"filing_status"`
	FederalStRate      float64 `json:"federal_st_rate"`
	FederalLtRate      float64 `json:"federal_lt_rate"`
	StateCode          string  `json:"state_code"`
	StateStRate        float64 `json:"state_st_rate"`
	StateLtRate        float64 `json:"state_lt_rate"`
	NiitRate           float64 `json:"niit_rate"`
	CarryForwardLosses float64 `json:"carry_forward_losses"`
}

func loadProfile(path string) (domain.TaxProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.TaxProfile{}, err
	}
	defer f.Close()

	var p profileFile
	if err := json.NewDecoder(f).Decode(&p); err != nil {
		return domain.TaxProfile{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return domain.TaxProfile{
		FilingStatus:       p.FilingStatus,
		FederalSTRate:      decimal.NewFromFloat(p.FederalStRate),
		FederalLTRate:      decimal.NewFromFloat(p.FederalLtRate),
		StateCode:          p.StateCode,
		StateSTRate:        decimal.NewFromFloat(p.StateStRate),
		StateLTRate:        decimal.NewFromFloat(p.StateLtRate),
		NIITRate:           decimal.NewFromFloat(p.NiitRate),
		CarryForwardLosses: decimal.NewFromFloat(p.CarryForwardLosses),
	}, nil
}

func loadLots(path string) ([]domain.Lot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	lots := []domain.Lot{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		quantity, err := decimal.NewFromString(record[col["quantity"]])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q: %w", record[col["quantity"]], err)
		}
		costPerShare, err := decimal.NewFromString(record[col["cost_per_share"]])
		if err != nil {
			return nil, fmt.Errorf("invalid cost_per_share %q: %w", record[col["cost_per_share"]], err)
		}
		purchaseDate, err := time.Parse("2006-01-02", record[col["purchase_date"]])
		if err != nil {
			return nil, fmt.Errorf("invalid purchase_date %q: %w", record[col["purchase_date"]], err)
		}

		lots = append(lots, domain.Lot{
			Symbol:       strings.ToUpper(strings.TrimSpace(record[col["symbol"]])),
			Quantity:     quantity,
			CostPerShare: costPerShare,
			PurchaseDate: purchaseDate,
		})
	}
	return lots, nil
}

func main() {
	holdingsPath := flag.String("holdings", "data/holdings.example.csv", "path to a holdings csv")
	profilePath := flag.String("profile", "data/tax_profile.example.json", "path to a tax profile json")
	flag.Parse()

	profile, err := loadProfile(*profilePath)
	if err != nil {
		log.Fatal(err)
	}
	lots, err := loadLots(*holdingsPath)
	if err != nil {
		log.Fatal(err)
	}

	asOf := time.Now().UTC()
	results := []domain.LotResult{}
	for _, lot := range lots {
		price, ok := demoPrices[lot.Symbol]
		if !ok {
			continue
		}
		results = append(results, taxengine.EstimateLot(lot, price, profile, asOf))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Symbol\tQty\tCost\tPrice\tDays\tTerm\tUnrealized\tEst. Tax\tAfter-Tax")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			r.Symbol,
			r.Quantity,
			r.CostPerShare.StringFixed(2),
			r.Price.StringFixed(2),
			r.HoldingDays,
			strings.ToUpper(string(r.Term)),
			r.UnrealizedGain.StringFixed(2),
			r.EstTaxLiability.StringFixed(2),
			r.AfterTaxValue.StringFixed(2),
		)
	}
	w.Flush()

	s := taxengine.Summarize(results)
	fmt.Println("\nSummary:")
	fmt.Printf("Pre-tax value: $%s\n", s.PreTaxValue.StringFixed(2))
	fmt.Printf("Total unrealized P/L: $%s\n", s.TotalUnrealizedGain.StringFixed(2))
	fmt.Printf("Gross tax on gains: $%s\n", s.GrossTaxOnGains.StringFixed(2))
	fmt.Printf("Gross potential savings from losses: $%s\n", s.GrossPotentialSavingsOnLosses.StringFixed(2))
	fmt.Printf("Naive net tax if liquidated now: $%s\n", s.NaiveNetTaxIfLiquidatedNow.StringFixed(2))
	fmt.Printf("After-tax value if liquidated now: $%s\n", s.AfterTaxValueIfLiquidatedNow.StringFixed(2))

	fmt.Println("\nNote: These are estimates only and not tax advice.")
}
