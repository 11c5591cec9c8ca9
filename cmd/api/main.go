package main

import (
	"log"

	"taxdash/api"
	"taxdash/internal/config"
	db "taxdash/internal/db/query"
	"taxdash/internal/prices"
	"taxdash/internal/repository"
	"taxdash/internal/resolver"
	"taxdash/internal/service"

	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load(logger)
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepository := repository.NewUserRepository(dbConn)
	taxProfileRepository := repository.NewTaxProfileRepository(dbConn)
	lotRepository := repository.NewLotRepository(dbConn)

	quoteStore := prices.NewQuoteStore()
	priceLookup, err := prices.FromSource(cfg.QuotesSource, quoteStore, cfg.AlphaVantageKey)
	if err != nil {
		log.Fatal(err)
	}
	logger.WithField("source", cfg.QuotesSource).Info("configured quote source")

	authService := service.NewAuthService(
		userRepository,
		cfg.JWTSecret,
		cfg.TokenExpiry,
		logger,
	)
	holdingsService := service.NewHoldingsService(
		taxProfileRepository,
		lotRepository,
		priceLookup,
		logger,
	)

	r := resolver.NewResolver(
		authService,
		holdingsService,
		taxProfileRepository,
		quoteStore,
		logger,
	)

	err = api.StartApi(cfg.Port, r, authService, logger)
	if err != nil {
		log.Fatal(err)
	}
}
