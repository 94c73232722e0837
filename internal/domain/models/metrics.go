package models

// PeriodMetrics is the derived financial picture of a single period. It is
// recomputed on demand from (Period, FeeConfig, StaffCosts) and never stored.
type PeriodMetrics struct {
	TotalSales            float64 `json:"totalSales"`
	RoyaltyFee            float64 `json:"royaltyFee"`
	TotalOtherExpenses    float64 `json:"totalOtherExpenses"`
	InventoryCostValue    float64 `json:"inventoryCostValue"`
	StaffCost             float64 `json:"staffCost"`
	NetTakeHome           float64 `json:"netTakeHome"`
	NetEarningsAfterStaff float64 `json:"netEarningsAfterStaff"`
	GrossProfit           float64 `json:"grossProfit"`
	FranchisorCut         float64 `json:"franchisorCut"`
	OwnerCut              float64 `json:"ownerCut"`
}

// HistoricalDataPoint is one period projected for trend charting. The JSON keys
// match the series names the charts expect.
type HistoricalDataPoint struct {
	Name        string  `json:"name"`
	Sales       float64 `json:"Sales"`
	GrossProfit float64 `json:"Gross Profit"`
	NetProfit   float64 `json:"Net Profit"`
}

// Dashboard is the aggregated view for one user: the active period's metrics,
// its margins, and the full historical series.
type Dashboard struct {
	ActivePeriodID string                `json:"activePeriodId"`
	Active         PeriodMetrics         `json:"active"`
	GrossMargin    float64               `json:"grossMargin"`
	NetMargin      float64               `json:"netMargin"`
	History        []HistoricalDataPoint `json:"history"`
}

// AnnualReportRow is one period's line in the annual report.
type AnnualReportRow struct {
	PeriodID    string  `json:"periodId"`
	Name        string  `json:"name"`
	Sales       float64 `json:"sales"`
	GrossProfit float64 `json:"grossProfit"`
	NetProfit   float64 `json:"netProfit"`
	OwnerCut    float64 `json:"ownerCut"`
}

// AnnualReport aggregates every period of the portfolio into yearly totals.
type AnnualReport struct {
	Rows             []AnnualReportRow `json:"rows"`
	TotalSales       float64           `json:"totalSales"`
	TotalGrossProfit float64           `json:"totalGrossProfit"`
	TotalNetProfit   float64           `json:"totalNetProfit"`
}

// PersonalSummary is the owner-side budget view: what the business pays out to
// the owner versus their personal expense lines.
type PersonalSummary struct {
	OwnerCut              float64           `json:"ownerCut"`
	TotalPersonalExpenses float64           `json:"totalPersonalExpenses"`
	Disposable            float64           `json:"disposable"`
	Expenses              []PersonalExpense `json:"expenses"`
}
