package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	taxdash_errors "taxdash/internal"
	"taxdash/internal/db/models/postgres/public/model"
	"taxdash/internal/domain"
	"taxdash/internal/prices"
	"taxdash/internal/repository"
	"taxdash/internal/taxengine"
	"taxdash/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type HoldingsService interface {
	// ListHoldings estimates every lot that has a price; unpriced lots
	// are skipped, not errors.
	ListHoldings(userID uuid.UUID) ([]domain.LotResult, error)
	GetPortfolioSummary(userID uuid.UUID) (*domain.PortfolioSummary, error)
	// SimulateSell fails with ErrPriceUnavailable when the symbol has no
	// quote; a missing price is fatal for single-symbol simulations.
	SimulateSell(userID uuid.UUID, symbol string, quantity decimal.Decimal) (*domain.SellSimulation, error)
	HarvestCandidates(userID uuid.UUID, minLoss decimal.Decimal, limit int) ([]domain.HarvestCandidate, error)
	// ImportLotsCSV reads rows of symbol,quantity,cost_per_share,
	// purchase_date[,account] and returns how many lots were stored.
	ImportLotsCSV(userID uuid.UUID, r io.Reader) (int, error)
}

type holdingsServiceHandler struct {
	TaxProfileRepository repository.TaxProfileRepository
	LotRepository        repository.LotRepository
	PriceLookup          prices.PriceLookup
	Logger               *logrus.Logger
}

func NewHoldingsService(
	taxProfileRepository repository.TaxProfileRepository,
	lotRepository repository.LotRepository,
	priceLookup prices.PriceLookup,
	logger *logrus.Logger,
) HoldingsService {
	return holdingsServiceHandler{
		TaxProfileRepository: taxProfileRepository,
		LotRepository:        lotRepository,
		PriceLookup:          priceLookup,
		Logger:               logger,
	}
}

func (h holdingsServiceHandler) estimateAll(userID uuid.UUID) ([]domain.LotResult, error) {
	profileModel, err := h.TaxProfileRepository.Get(userID)
	if err != nil {
		return nil, err
	}
	profile := profileFromModel(*profileModel)

	lotModels, err := h.LotRepository.List(userID)
	if err != nil {
		return nil, err
	}

	symbols := util.NewSet()
	for _, lot := range lotModels {
		symbols.Add(lot.Symbol)
	}
	quotes, err := h.PriceLookup.GetQuotes(symbols.List())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	asOf := time.Now().UTC()
	results := []domain.LotResult{}
	for _, lotModel := range lotModels {
		price, ok := quotes[lotModel.Symbol]
		if !ok {
			continue
		}
		results = append(results, taxengine.EstimateLot(lotFromModel(lotModel), price, profile, asOf))
	}
	return results, nil
}

func (h holdingsServiceHandler) ListHoldings(userID uuid.UUID) ([]domain.LotResult, error) {
	return h.estimateAll(userID)
}

func (h holdingsServiceHandler) GetPortfolioSummary(userID uuid.UUID) (*domain.PortfolioSummary, error) {
	results, err := h.estimateAll(userID)
	if err != nil {
		return nil, err
	}
	summary := taxengine.Summarize(results)
	return &summary, nil
}

func (h holdingsServiceHandler) SimulateSell(userID uuid.UUID, symbol string, quantity decimal.Decimal) (*domain.SellSimulation, error) {
	symbol = strings.ToUpper(symbol)

	profileModel, err := h.TaxProfileRepository.Get(userID)
	if err != nil {
		return nil, err
	}

	lotModels, err := h.LotRepository.ListBySymbol(userID, symbol)
	if err != nil {
		return nil, err
	}
	if len(lotModels) == 0 {
		return nil, taxdash_errors.ErrNoLotsForSymbol{Symbol: symbol}
	}

	quotes, err := h.PriceLookup.GetQuotes([]string{symbol})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	price, ok := quotes[symbol]
	if !ok {
		return nil, taxdash_errors.ErrPriceUnavailable{Symbol: symbol}
	}

	result, err := taxengine.SimulateSell(
		lotsFromModels(lotModels),
		symbol,
		quantity,
		price,
		profileFromModel(*profileModel),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	h.Logger.WithFields(logrus.Fields{
		"userID":   userID,
		"symbol":   symbol,
		"quantity": quantity,
	}).Info("simulated sell")

	return result, nil
}

func (h holdingsServiceHandler) HarvestCandidates(userID uuid.UUID, minLoss decimal.Decimal, limit int) ([]domain.HarvestCandidate, error) {
	// all estimation depends on a configured profile, the scan included
	if _, err := h.TaxProfileRepository.Get(userID); err != nil {
		return nil, err
	}

	lotModels, err := h.LotRepository.List(userID)
	if err != nil {
		return nil, err
	}

	symbols := util.NewSet()
	for _, lot := range lotModels {
		symbols.Add(lot.Symbol)
	}
	quotes, err := h.PriceLookup.GetQuotes(symbols.List())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quotes: %w", err)
	}

	return taxengine.HarvestCandidates(lotsFromModels(lotModels), quotes, minLoss, limit, time.Now().UTC()), nil
}

func (h holdingsServiceHandler) ImportLotsCSV(userID uuid.UUID, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"symbol", "quantity", "cost_per_share", "purchase_date"} {
		if _, ok := col[required]; !ok {
			return 0, fmt.Errorf("csv missing required column %q", required)
		}
	}

	lots := []model.Lot{}
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		quantity, err := decimal.NewFromString(record[col["quantity"]])
		if err != nil {
			return 0, fmt.Errorf("invalid quantity on line %d: %w", line, err)
		}
		costPerShare, err := decimal.NewFromString(record[col["cost_per_share"]])
		if err != nil {
			return 0, fmt.Errorf("invalid cost_per_share on line %d: %w", line, err)
		}
		purchaseDate, err := time.Parse("2006-01-02", record[col["purchase_date"]])
		if err != nil {
			return 0, fmt.Errorf("invalid purchase_date on line %d: %w", line, err)
		}

		var account *string
		if i, ok := col["account"]; ok && i < len(record) && record[i] != "" {
			account = util.StringPtr(record[i])
		}

		lots = append(lots, model.Lot{
			UserID:       userID,
			Symbol:       strings.ToUpper(strings.TrimSpace(record[col["symbol"]])),
			Quantity:     quantity,
			CostPerShare: costPerShare,
			PurchaseDate: purchaseDate,
			Account:      account,
		})
	}

	inserted, err := h.LotRepository.Add(lots)
	if err != nil {
		return 0, err
	}

	h.Logger.WithFields(logrus.Fields{
		"userID": userID,
		"lots":   len(inserted),
	}).Info("imported lots from csv")

	return len(inserted), nil
}
