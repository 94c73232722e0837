package metrics

import (
	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
)

// Compute derives the full financial picture of one period from its raw inputs,
// the current fee policy and the current staff roster. It is a total function:
// degenerate inputs (no weeks, empty roster, missing pay payloads) simply
// contribute zero, and no rounding is applied here. Formatting is the caller's
// problem.
//
// The revenue split it produces always accounts for every sales dollar:
// FranchisorCut + OwnerCut equals TotalSales, and OwnerCut is by construction
// the same figure as NetEarningsAfterStaff.
func Compute(period models.Period, fees models.FeeConfig, staff []models.StaffCost) models.PeriodMetrics {
	var totalSales float64
	for _, week := range period.WeeklySales {
		totalSales += week
	}

	royaltyFee := totalSales * fees.RoyaltyPercent / 100

	var totalOtherExpenses float64
	for _, exp := range period.OtherExpenses {
		totalOtherExpenses += exp.Amount
	}

	inventoryCost := period.Inventory.Resolve(totalSales)

	var staffCost float64
	for _, s := range staff {
		staffCost += s.Cost()
	}

	netTakeHome := totalSales - royaltyFee - inventoryCost - totalOtherExpenses
	netEarningsAfterStaff := netTakeHome - staffCost
	franchisorCut := royaltyFee + totalOtherExpenses + inventoryCost + staffCost

	return models.PeriodMetrics{
		TotalSales:            totalSales,
		RoyaltyFee:            royaltyFee,
		TotalOtherExpenses:    totalOtherExpenses,
		InventoryCostValue:    inventoryCost,
		StaffCost:             staffCost,
		NetTakeHome:           netTakeHome,
		NetEarningsAfterStaff: netEarningsAfterStaff,
		GrossProfit:           totalSales - inventoryCost,
		FranchisorCut:         franchisorCut,
		OwnerCut:              totalSales - franchisorCut,
	}
}
