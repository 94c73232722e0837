package metrics

import (
	"strings"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
)

// Aggregate folds every period through Compute to build the historical trend
// series and selects the active period's metrics. The caller keeps periods in
// chronological order; when activePeriodID matches nothing the most recent
// period wins.
//
// The current fee config and roster are applied to every historical period.
// There is no per-period fee or staffing history in this model, so older
// periods are recosted at today's rates.
func Aggregate(periods []models.Period, fees models.FeeConfig, staff []models.StaffCost, activePeriodID string) models.Dashboard {
	history := make([]models.HistoricalDataPoint, 0, len(periods))

	var active models.PeriodMetrics
	var resolvedID string
	matched := false
	for _, period := range periods {
		m := Compute(period, fees, staff)
		history = append(history, models.HistoricalDataPoint{
			Name:        firstToken(period.Name),
			Sales:       m.TotalSales,
			GrossProfit: m.GrossProfit,
			NetProfit:   m.NetEarningsAfterStaff,
		})

		if period.ID == activePeriodID {
			active = m
			resolvedID = period.ID
			matched = true
		} else if !matched {
			// Most recent period is the running fallback until an id matches.
			active = m
			resolvedID = period.ID
		}
	}

	return models.Dashboard{
		ActivePeriodID: resolvedID,
		Active:         active,
		GrossMargin:    marginPercent(active.GrossProfit, active.TotalSales),
		NetMargin:      marginPercent(active.NetEarningsAfterStaff, active.TotalSales),
		History:        history,
	}
}

// marginPercent guards the zero-sales case so charts receive 0 instead of NaN.
func marginPercent(part, totalSales float64) float64 {
	if totalSales <= 0 {
		return 0
	}
	return part / totalSales * 100
}

// firstToken trims a period label like "January 2026" down to its month name.
func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return name
	}
	return fields[0]
}
