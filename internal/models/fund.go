package models

// ChangeUnavailable is the sentinel used when a holding's intraday price
// change could not be retrieved or parsed.
const ChangeUnavailable = "--"

const (
	// UnknownFundName is used when the provider response carries no fund title.
	UnknownFundName = "unknown fund"
	// UnknownReportDate is used when the provider response carries no disclosure date.
	UnknownReportDate = "unknown"
)

// FundInfo identifies a fund on the provider's system.
type FundInfo struct {
	Name string `json:"name"`
	Code string `json:"code"` // 6-digit fund code
}

// HoldingRecord is a single disclosed stock position in a fund's portfolio
// report. Records are kept in the provider's reported ranking (descending
// weight) and that order is preserved through to output.
type HoldingRecord struct {
	StockCode     string  `json:"stock_code"` // 6-digit stock code
	StockName     string  `json:"stock_name"`
	Proportion    float64 `json:"proportion"`     // percent of net asset value, 0-100
	MarketValue   string  `json:"market_value"`   // disclosed holding value as reported
	ChangePercent string  `json:"change_percent"` // signed percentage like "+2.35%", or ChangeUnavailable
}

// FundReport is the result of one holdings query. Immutable after
// construction except for the per-holding ChangePercent enrichment.
type FundReport struct {
	FundInfo   FundInfo        `json:"fund_info"`
	ReportDate string          `json:"report_date"` // YYYY-MM-DD, or UnknownReportDate
	Holdings   []HoldingRecord `json:"holdings"`
}

// FundSearchResult is one candidate from a fund name search.
type FundSearchResult struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"` // fund category as reported by the provider
}
