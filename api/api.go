package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	api_types "taxdash/api-types"
	taxdash_errors "taxdash/internal"
	"taxdash/internal/resolver"
	"taxdash/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultHarvestMinLoss = 50.0
	defaultHarvestLimit   = 10
	maxHarvestLimit       = 100
)

func StartApi(port int, r resolver.Resolver, authService service.AuthService, logger *logrus.Logger) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	router.POST("/api/auth/signup", func(c *gin.Context) {
		var req api_types.SignUpRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := r.SignUp(req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.POST("/api/auth/login", func(c *gin.Context) {
		var req api_types.LogInRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := r.LogIn(req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.PUT("/api/quotes", func(c *gin.Context) {
		var req api_types.UpsertQuotesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := r.UpsertQuotes(req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	router.GET("/api/quotes", func(c *gin.Context) {
		symbols := c.Query("symbols")
		if symbols == "" {
			returnErrorJsonCode(fmt.Errorf("symbols query parameter is required"), c, http.StatusBadRequest)
			return
		}
		resp, err := r.GetQuotes(strings.Split(symbols, ","))
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized := router.Group("/api", requireAuth(authService))

	authorized.GET("/me", func(c *gin.Context) {
		resp, err := r.GetMe(authenticatedUser(c))
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.PUT("/tax_profile", func(c *gin.Context) {
		var req api_types.PutTaxProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := r.PutTaxProfile(authenticatedUser(c), req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.GET("/tax_profile", func(c *gin.Context) {
		resp, err := r.GetTaxProfile(authenticatedUser(c))
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.POST("/import/csv", func(c *gin.Context) {
		body, err := csvBody(c)
		if err != nil {
			returnErrorJsonCode(err, c, http.StatusBadRequest)
			return
		}
		defer body.Close()

		resp, err := r.ImportLotsCSV(authenticatedUser(c), body)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.GET("/holdings", func(c *gin.Context) {
		resp, err := r.ListHoldings(authenticatedUser(c))
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.GET("/portfolio/summary", func(c *gin.Context) {
		resp, err := r.GetPortfolioSummary(authenticatedUser(c))
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.GET("/whatif/sell", func(c *gin.Context) {
		var req api_types.WhatIfSellRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to read query parameters: %w", err), c, http.StatusBadRequest)
			return
		}
		resp, err := r.WhatIfSell(authenticatedUser(c), req)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	authorized.GET("/harvest/candidates", func(c *gin.Context) {
		minLoss, err := strconv.ParseFloat(c.DefaultQuery("min_loss", fmt.Sprintf("%v", defaultHarvestMinLoss)), 64)
		if err != nil || minLoss < 0 {
			returnErrorJsonCode(fmt.Errorf("min_loss must be a non-negative number"), c, http.StatusBadRequest)
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultHarvestLimit)))
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("limit must be an integer"), c, http.StatusBadRequest)
			return
		}
		if limit < 1 {
			limit = 1
		}
		if limit > maxHarvestLimit {
			limit = maxHarvestLimit
		}

		resp, err := r.HarvestCandidates(authenticatedUser(c), minLoss, limit)
		if err != nil {
			returnErrorJson(err, c, logger)
			return
		}
		c.JSON(http.StatusOK, resp)
	})

	return router.Run(fmt.Sprintf(":%d", port))
}

// csvBody accepts either a multipart upload with a "file" field or the
// raw request body.
func csvBody(c *gin.Context) (io.ReadCloser, error) {
	file, err := c.FormFile("file")
	if err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded file: %w", err)
		}
		return f, nil
	}
	if c.Request.Body == nil {
		return nil, fmt.Errorf("request body is empty")
	}
	return c.Request.Body, nil
}

func returnErrorJson(err error, c *gin.Context, logger *logrus.Logger) {
	logger.WithError(err).Error("request failed")

	var (
		noProfile   taxdash_errors.ErrNoTaxProfile
		noLots      taxdash_errors.ErrNoLotsForSymbol
		noPrice     taxdash_errors.ErrPriceUnavailable
		tooFew      taxdash_errors.ErrInsufficientShares
		duplicate   taxdash_errors.ErrEmailAlreadyRegistered
		credentials taxdash_errors.ErrInvalidCredentials
	)
	switch {
	case errors.As(err, &noProfile), errors.As(err, &noLots):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	case errors.As(err, &noPrice), errors.As(err, &tooFew),
		errors.As(err, &duplicate), errors.As(err, &credentials):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	default:
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
