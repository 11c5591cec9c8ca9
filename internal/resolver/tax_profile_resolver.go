package resolver

import (
	"fmt"
	"strings"

	api_types "taxdash/api-types"
	"taxdash/internal/db/models/postgres/public/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (r resolverHandler) PutTaxProfile(userID uuid.UUID, req api_types.PutTaxProfileRequest) (*api_types.TaxProfileResponse, error) {
	for name, rate := range map[string]float64{
		"federal_st_rate": req.FederalStRate,
		"federal_lt_rate": req.FederalLtRate,
		"state_st_rate":   req.StateStRate,
		"state_lt_rate":   req.StateLtRate,
		"niit_rate":       req.NiitRate,
	} {
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	if req.CarryForwardLosses < 0 {
		return nil, fmt.Errorf("carry_forward_losses must not be negative")
	}

	profile, err := r.TaxProfileRepository.Upsert(userID, model.TaxProfile{
		UserID:             userID,
		FilingStatus:       req.FilingStatus,
		FederalStRate:      decimal.NewFromFloat(req.FederalStRate),
		FederalLtRate:      decimal.NewFromFloat(req.FederalLtRate),
		StateCode:          strings.ToUpper(strings.TrimSpace(req.StateCode)),
		StateStRate:        decimal.NewFromFloat(req.StateStRate),
		StateLtRate:        decimal.NewFromFloat(req.StateLtRate),
		NiitRate:           decimal.NewFromFloat(req.NiitRate),
		CarryForwardLosses: decimal.NewFromFloat(req.CarryForwardLosses),
	})
	if err != nil {
		return nil, err
	}

	return taxProfileResponse(profile), nil
}

func (r resolverHandler) GetTaxProfile(userID uuid.UUID) (*api_types.TaxProfileResponse, error) {
	profile, err := r.TaxProfileRepository.Get(userID)
	if err != nil {
		return nil, err
	}
	return taxProfileResponse(profile), nil
}

func taxProfileResponse(m *model.TaxProfile) *api_types.TaxProfileResponse {
	return &api_types.TaxProfileResponse{
		FilingStatus:       m.FilingStatus,
		FederalStRate:      m.FederalStRate.InexactFloat64(),
		FederalLtRate:      m.FederalLtRate.InexactFloat64(),
		StateCode:          m.StateCode,
		StateStRate:        m.StateStRate.InexactFloat64(),
		StateLtRate:        m.StateLtRate.InexactFloat64(),
		NiitRate:           m.NiitRate.InexactFloat64(),
		CarryForwardLosses: m.CarryForwardLosses.InexactFloat64(),
	}
}
