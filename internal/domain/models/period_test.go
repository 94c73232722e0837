package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInventoryCostResolve(t *testing.T) {
	flat := InventoryCost{Type: InventoryCostAmount, Value: 750}
	require.Equal(t, 750.0, flat.Resolve(0))
	require.Equal(t, 750.0, flat.Resolve(100000))

	pct := InventoryCost{Type: InventoryCostPercent, Value: 22}
	require.Equal(t, 0.0, pct.Resolve(0))
	require.Equal(t, 4532.0, pct.Resolve(20600))
}

func TestStaffCostCost(t *testing.T) {
	hourly := StaffCost{PaymentType: PaymentHourly, Hourly: &HourlyPay{Hours: 160, WageRate: 20}}
	require.Equal(t, 3200.0, hourly.Cost())

	salaried := StaffCost{PaymentType: PaymentSalary, Salaried: &SalariedPay{Salary: 4500}}
	require.Equal(t, 4500.0, salaried.Cost())

	// Missing payloads coerce to zero instead of failing.
	require.Equal(t, 0.0, StaffCost{PaymentType: PaymentHourly}.Cost())
	require.Equal(t, 0.0, StaffCost{PaymentType: PaymentSalary}.Cost())
	require.Equal(t, 0.0, StaffCost{}.Cost())
}

func TestWeeksInMonth(t *testing.T) {
	require.Equal(t, 4, WeeksInMonth(time.January))
	require.Equal(t, 5, WeeksInMonth(time.March))
	require.Equal(t, 5, WeeksInMonth(time.June))
	require.Equal(t, 4, WeeksInMonth(time.August))
	require.Equal(t, 5, WeeksInMonth(time.December))
}

func TestFindPeriod(t *testing.T) {
	state := PortfolioState{Periods: []Period{{ID: "a"}, {ID: "b"}}}

	found := state.FindPeriod("b")
	require.NotNil(t, found)
	require.Equal(t, "b", found.ID)
	require.Nil(t, state.FindPeriod("c"))

	// The pointer aliases the stored slice so callers can mutate in place.
	found.Name = "renamed"
	require.Equal(t, "renamed", state.Periods[1].Name)
}
