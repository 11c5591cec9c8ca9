package types

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type GetMeResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type UpsertQuotesRequest struct {
	// symbol -> last price
	Quotes map[string]float64 `json:"quotes"`
}

type UpsertQuotesResponse struct {
	// every symbol the store now holds
	Symbols []string `json:"symbols"`
}

type PutTaxProfileRequest struct {
	FilingStatus       string  `json:"filing_status"`
	FederalStRate      float64 `json:"federal_st_rate"`
	FederalLtRate      float64 `json:"federal_lt_rate"`
	StateCode          string  `json:"state_code"`
	StateStRate        float64 `json:"state_st_rate"`
	StateLtRate        float64 `json:"state_lt_rate"`
	NiitRate           float64 `json:"niit_rate"`
	CarryForwardLosses float64 `json:"carry_forward_losses"`
}

type TaxProfileResponse struct {
	FilingStatus       string  `json:"filing_status"`
	FederalStRate      float64 `json:"federal_st_rate"`
	FederalLtRate      float64 `json:"federal_lt_rate"`
	StateCode          string  `json:"state_code"`
	StateStRate        float64 `json:"state_st_rate"`
	StateLtRate        float64 `json:"state_lt_rate"`
	NiitRate           float64 `json:"niit_rate"`
	CarryForwardLosses float64 `json:"carry_forward_losses"`
}

type ImportLotsResponse struct {
	Lots int `json:"lots"`
}

type LotHolding struct {
	Symbol          string  `json:"symbol"`
	Quantity        float64 `json:"quantity"`
	Price           float64 `json:"price"`
	CostPerShare    float64 `json:"cost_per_share"`
	PurchaseDate    string  `json:"purchase_date"`
	HoldingDays     int     `json:"holding_days"`
	Term            string  `json:"term"`
	UnrealizedGain  float64 `json:"unrealized_gain"`
	EstTaxLiability float64 `json:"est_tax_liability"`
	EstTaxSavings   float64 `json:"est_tax_savings"`
	AfterTaxValue   float64 `json:"after_tax_value"`
	DaysToLt        int     `json:"days_to_lt"`
}

type PortfolioSummaryResponse struct {
	PreTaxValue                   float64 `json:"pre_tax_value"`
	TotalUnrealizedGain           float64 `json:"total_unrealized_gain"`
	GrossTaxOnGains               float64 `json:"gross_tax_on_gains"`
	GrossPotentialSavingsOnLosses float64 `json:"gross_potential_savings_on_losses"`
	NaiveNetTaxIfLiquidatedNow    float64 `json:"naive_net_tax_if_liquidated_now"`
	AfterTaxValueIfLiquidatedNow  float64 `json:"after_tax_value_if_liquidated_now"`
}

type WhatIfSellRequest struct {
	Symbol   string  `form:"symbol" json:"symbol"`
	Quantity float64 `form:"quantity" json:"quantity"`
}

type ConsumedLot struct {
	LotID        string  `json:"lot_id"`
	QuantityUsed float64 `json:"qty_used"`
	Term         string  `json:"term"`
	RealizedGain float64 `json:"realized_gain"`
	EstTax       float64 `json:"est_tax"`
}

type WhatIfSellResponse struct {
	Symbol       string        `json:"symbol"`
	SellQuantity float64       `json:"sell_quantity"`
	AsOfPrice    float64       `json:"asof_price"`
	RealizedGain float64       `json:"realized_gain"`
	EstTax       float64       `json:"est_tax"`
	LotsConsumed []ConsumedLot `json:"lots_consumed"`
}

type HarvestCandidate struct {
	Symbol         string  `json:"symbol"`
	LotID          string  `json:"lot_id"`
	PurchaseDate   string  `json:"purchase_date"`
	Quantity       float64 `json:"quantity"`
	CostPerShare   float64 `json:"cost_per_share"`
	Price          float64 `json:"price"`
	UnrealizedLoss float64 `json:"unrealized_loss"`
	DaysToLt       int     `json:"days_to_lt"`
}
