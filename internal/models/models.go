package models

// ExchangeInfo pairs an exchange identifier with its display name.
type ExchangeInfo struct {
	Name    string `json:"name"`
	Display string `json:"display"`
}

type ExchangeList struct {
	ExchangeNames []ExchangeInfo `json:"exchange_names"`
	Exchanges     []string       `json:"exchanges"`
}

// Snapshot is one funding-rate document from the upstream /funding endpoint.
// Rates are fixed-point integers scaled by 10,000; dividing by 10,000 yields
// a percentage.
type Snapshot struct {
	Symbols       []string                  `json:"symbols"`
	Exchanges     ExchangeList              `json:"exchanges"`
	FundingRates  map[string]map[string]int `json:"funding_rates"`
	OIRankings    map[string]string         `json:"oi_rankings"`
	DefaultOIRank string                    `json:"default_oi_rank"`
	Timestamp     string                    `json:"timestamp"`
}

// ArbitrageOpportunity is one pair of exchanges quoting the same symbol at
// different funding rates. Rates and spread are percentages; the long side
// pays the lower rate, the short side collects the higher one.
type ArbitrageOpportunity struct {
	Symbol        string  `json:"symbol"`
	Exchange1     string  `json:"exchange1"`
	Rate1         float64 `json:"rate1"`
	Exchange2     string  `json:"exchange2"`
	Rate2         float64 `json:"rate2"`
	Spread        float64 `json:"spread"`
	LongExchange  string  `json:"long_exchange"`
	ShortExchange string  `json:"short_exchange"`
}
