package service

import (
	"taxdash/internal/db/models/postgres/public/model"
	"taxdash/internal/domain"
	"taxdash/internal/util"
)

func lotFromModel(m model.Lot) domain.Lot {
	return domain.Lot{
		LotID:        util.UUIDPtr(m.LotID),
		Symbol:       m.Symbol,
		Quantity:     m.Quantity,
		CostPerShare: m.CostPerShare,
		PurchaseDate: m.PurchaseDate,
		Account:      m.Account,
	}
}

func lotsFromModels(ms []model.Lot) []domain.Lot {
	out := make([]domain.Lot, len(ms))
	for i, m := range ms {
		out[i] = lotFromModel(m)
	}
	return out
}

func profileFromModel(m model.TaxProfile) domain.TaxProfile {
	return domain.TaxProfile{
		FilingStatus:       m.FilingStatus,
		FederalSTRate:      m.FederalStRate,
		FederalLTRate:      m.FederalLtRate,
		StateCode:          m.StateCode,
		StateSTRate:        m.StateStRate,
		StateLTRate:        m.StateLtRate,
		NIITRate:           m.NiitRate,
		CarryForwardLosses: m.CarryForwardLosses,
	}
}
