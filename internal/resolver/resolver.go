package resolver

import (
	"io"

	api_types "taxdash/api-types"
	"taxdash/internal/prices"
	"taxdash/internal/repository"
	"taxdash/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

type Resolver interface {
	// auth endpoints
	SignUp(req api_types.SignUpRequest) (*api_types.AuthResponse, error)
	LogIn(req api_types.LogInRequest) (*api_types.AuthResponse, error)
	GetMe(userID uuid.UUID) (*api_types.GetMeResponse, error)

	// quote endpoints
	UpsertQuotes(req api_types.UpsertQuotesRequest) (*api_types.UpsertQuotesResponse, error)
	GetQuotes(symbols []string) (map[string]float64, error)

	// tax profile endpoints
	PutTaxProfile(userID uuid.UUID, req api_types.PutTaxProfileRequest) (*api_types.TaxProfileResponse, error)
	GetTaxProfile(userID uuid.UUID) (*api_types.TaxProfileResponse, error)

	// holdings endpoints
	ImportLotsCSV(userID uuid.UUID, r io.Reader) (*api_types.ImportLotsResponse, error)
	ListHoldings(userID uuid.UUID) ([]api_types.LotHolding, error)
	GetPortfolioSummary(userID uuid.UUID) (*api_types.PortfolioSummaryResponse, error)
	WhatIfSell(userID uuid.UUID, req api_types.WhatIfSellRequest) (*api_types.WhatIfSellResponse, error)
	HarvestCandidates(userID uuid.UUID, minLoss float64, limit int) ([]api_types.HarvestCandidate, error)
}

type resolverHandler struct {
	AuthService          service.AuthService
	HoldingsService      service.HoldingsService
	TaxProfileRepository repository.TaxProfileRepository
	QuoteStore           *prices.QuoteStore
	Logger               *logrus.Logger
}

func NewResolver(
	authService service.AuthService,
	holdingsService service.HoldingsService,
	taxProfileRepository repository.TaxProfileRepository,
	quoteStore *prices.QuoteStore,
	logger *logrus.Logger,
) Resolver {
	return resolverHandler{
		AuthService:          authService,
		HoldingsService:      holdingsService,
		TaxProfileRepository: taxProfileRepository,
		QuoteStore:           quoteStore,
		Logger:               logger,
	}
}
