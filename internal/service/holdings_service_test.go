package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	taxdash_errors "taxdash/internal"
	"taxdash/internal/db/models/postgres/public/model"
	"taxdash/internal/prices"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type stubTaxProfileRepository struct {
	profile *model.TaxProfile
}

func (s stubTaxProfileRepository) Get(userID uuid.UUID) (*model.TaxProfile, error) {
	if s.profile == nil {
		return nil, taxdash_errors.ErrNoTaxProfile{UserID: userID}
	}
	return s.profile, nil
}

func (s stubTaxProfileRepository) Upsert(userID uuid.UUID, profile model.TaxProfile) (*model.TaxProfile, error) {
	return &profile, nil
}

type stubLotRepository struct {
	lots  []model.Lot
	added []model.Lot
}

func (s *stubLotRepository) Add(lots []model.Lot) ([]model.Lot, error) {
	for i := range lots {
		lots[i].LotID = uuid.New()
	}
	s.added = append(s.added, lots...)
	return lots, nil
}

func (s *stubLotRepository) List(userID uuid.UUID) ([]model.Lot, error) {
	return s.lots, nil
}

func (s *stubLotRepository) ListBySymbol(userID uuid.UUID, symbol string) ([]model.Lot, error) {
	out := []model.Lot{}
	for _, lot := range s.lots {
		if lot.Symbol == symbol {
			out = append(out, lot)
		}
	}
	return out, nil
}

func testProfileModel() *model.TaxProfile {
	return &model.TaxProfile{
		TaxProfileID:  uuid.New(),
		FilingStatus:  "single",
		FederalStRate: decimal.NewFromFloat(0.35),
		FederalLtRate: decimal.NewFromFloat(0.25),
		StateCode:     "WA",
	}
}

func TestListHoldingsSkipsUnpricedLots(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	lotRepo := &stubLotRepository{lots: []model.Lot{
		{
			LotID:        uuid.New(),
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			CostPerShare: decimal.NewFromInt(100),
			PurchaseDate: time.Now().AddDate(-2, 0, 0),
		},
		{
			LotID:        uuid.New(),
			UserID:       userID,
			Symbol:       "NVDA",
			Quantity:     decimal.NewFromInt(5),
			CostPerShare: decimal.NewFromInt(120),
			PurchaseDate: time.Now().AddDate(0, -1, 0),
		},
	}}

	priceLookup := prices.NewMockPriceLookup(ctrl)
	priceLookup.
		EXPECT().
		GetQuotes([]string{"AAPL", "NVDA"}).
		Return(map[string]decimal.Decimal{
			"AAPL": decimal.NewFromInt(150),
		}, nil)

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, lotRepo, priceLookup, logrus.New())

	results, err := svc.ListHoldings(userID)
	require.NoError(t, err)

	require.Len(t, results, 1)
	require.Equal(t, "AAPL", results[0].Symbol)
	require.True(t, decimal.NewFromInt(500).Equal(results[0].UnrealizedGain))
	require.True(t, decimal.NewFromInt(125).Equal(results[0].EstTaxLiability))
}

func TestGetPortfolioSummaryRequiresProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	svc := NewHoldingsService(stubTaxProfileRepository{}, &stubLotRepository{}, prices.NewMockPriceLookup(ctrl), logrus.New())

	_, err := svc.GetPortfolioSummary(userID)

	var noProfile taxdash_errors.ErrNoTaxProfile
	require.True(t, errors.As(err, &noProfile))
	require.Equal(t, userID, noProfile.UserID)
}

func TestSimulateSellPriceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	lotRepo := &stubLotRepository{lots: []model.Lot{
		{
			LotID:        uuid.New(),
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			CostPerShare: decimal.NewFromInt(100),
			PurchaseDate: time.Now().AddDate(-2, 0, 0),
		},
	}}

	priceLookup := prices.NewMockPriceLookup(ctrl)
	priceLookup.
		EXPECT().
		GetQuotes([]string{"AAPL"}).
		Return(map[string]decimal.Decimal{}, nil)

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, lotRepo, priceLookup, logrus.New())

	_, err := svc.SimulateSell(userID, "AAPL", decimal.NewFromInt(5))

	var priceErr taxdash_errors.ErrPriceUnavailable
	require.True(t, errors.As(err, &priceErr))
	require.Equal(t, "AAPL", priceErr.Symbol)
}

func TestSimulateSellUppercasesSymbol(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	lotRepo := &stubLotRepository{lots: []model.Lot{
		{
			LotID:        uuid.New(),
			UserID:       userID,
			Symbol:       "AAPL",
			Quantity:     decimal.NewFromInt(10),
			CostPerShare: decimal.NewFromInt(100),
			PurchaseDate: time.Now().AddDate(-2, 0, 0),
		},
	}}

	priceLookup := prices.NewMockPriceLookup(ctrl)
	priceLookup.
		EXPECT().
		GetQuotes([]string{"AAPL"}).
		Return(map[string]decimal.Decimal{"AAPL": decimal.NewFromInt(150)}, nil)

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, lotRepo, priceLookup, logrus.New())

	result, err := svc.SimulateSell(userID, "aapl", decimal.NewFromInt(5))
	require.NoError(t, err)
	require.Equal(t, "AAPL", result.Symbol)
	require.True(t, decimal.NewFromInt(250).Equal(result.RealizedGain))
}

func TestSimulateSellNoLots(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, &stubLotRepository{}, prices.NewMockPriceLookup(ctrl), logrus.New())

	_, err := svc.SimulateSell(userID, "AAPL", decimal.NewFromInt(5))

	var notFound taxdash_errors.ErrNoLotsForSymbol
	require.True(t, errors.As(err, &notFound))
}

func TestHarvestCandidatesThroughService(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()

	lotRepo := &stubLotRepository{lots: []model.Lot{
		{
			LotID:        uuid.New(),
			UserID:       userID,
			Symbol:       "NVDA",
			Quantity:     decimal.NewFromInt(10),
			CostPerShare: decimal.NewFromInt(120),
			PurchaseDate: time.Now().AddDate(0, -6, 0),
		},
	}}

	priceLookup := prices.NewMockPriceLookup(ctrl)
	priceLookup.
		EXPECT().
		GetQuotes([]string{"NVDA"}).
		Return(map[string]decimal.Decimal{"NVDA": decimal.NewFromInt(100)}, nil)

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, lotRepo, priceLookup, logrus.New())

	candidates, err := svc.HarvestCandidates(userID, decimal.NewFromInt(50), 10)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.True(t, decimal.NewFromInt(200).Equal(candidates[0].UnrealizedLoss))
	require.Greater(t, candidates[0].DaysToLongTerm, 0)
}

func TestImportLotsCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	userID := uuid.New()
	lotRepo := &stubLotRepository{}

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, lotRepo, prices.NewMockPriceLookup(ctrl), logrus.New())

	csvBody := strings.Join([]string{
		"symbol,quantity,cost_per_share,purchase_date,account",
		"aapl,10,150.25,2023-01-01,brokerage",
		"NVDA,2.5,480,2024-06-15,",
	}, "\n")

	n, err := svc.ImportLotsCSV(userID, strings.NewReader(csvBody))
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Len(t, lotRepo.added, 2)
	require.Equal(t, "AAPL", lotRepo.added[0].Symbol)
	require.Equal(t, userID, lotRepo.added[0].UserID)
	require.True(t, decimal.NewFromFloat(150.25).Equal(lotRepo.added[0].CostPerShare))
	require.NotNil(t, lotRepo.added[0].Account)
	require.Equal(t, "brokerage", *lotRepo.added[0].Account)
	require.Nil(t, lotRepo.added[1].Account)
	require.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), lotRepo.added[1].PurchaseDate)
}

func TestImportLotsCSVMissingColumn(t *testing.T) {
	ctrl := gomock.NewController(t)

	svc := NewHoldingsService(stubTaxProfileRepository{profile: testProfileModel()}, &stubLotRepository{}, prices.NewMockPriceLookup(ctrl), logrus.New())

	_, err := svc.ImportLotsCSV(uuid.New(), strings.NewReader("symbol,quantity\nAAPL,10"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "cost_per_share")
}
