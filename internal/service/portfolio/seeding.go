package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
	"github.com/SawSimonLinn/BizBoost/internal/service/metrics"
)

const defaultRoyaltyPercent = 36

// seedPortfolio builds the first-visit state: one period per elapsed month of
// the current year, the default fee policy, and a starter roster and personal
// budget the user edits from there. The newest month gets illustrative sales
// so the dashboard is not a wall of zeros.
func (s *Service) seedPortfolio(userID string, now time.Time) models.PortfolioState {
	year := now.Year()
	periods := make([]models.Period, 0, int(now.Month()))
	for m := time.January; m <= now.Month(); m++ {
		periods = append(periods, newMonthPeriod(m, year))
	}

	latest := &periods[len(periods)-1]
	monthIndex := int(now.Month()) - 1
	for week := range latest.WeeklySales {
		latest.WeeklySales[week] = float64(5000 + monthIndex*500 + week*100)
	}
	latest.Inventory = models.InventoryCost{Type: models.InventoryCostPercent, Value: 22}

	return models.PortfolioState{
		UserID:         userID,
		Periods:        periods,
		ActivePeriodID: latest.ID,
		FeeConfig:      models.FeeConfig{RoyaltyPercent: defaultRoyaltyPercent},
		StaffCosts: []models.StaffCost{
			{ID: uuid.NewString(), EmployeeName: "John Doe", PaymentType: models.PaymentHourly, Hourly: &models.HourlyPay{Hours: 160, WageRate: 20}},
			{ID: uuid.NewString(), EmployeeName: "Jane Smith", PaymentType: models.PaymentSalary, Salaried: &models.SalariedPay{Salary: 4500}},
		},
		PersonalExpenses: []models.PersonalExpense{
			{ID: uuid.NewString(), Name: "Rent/Mortgage", Amount: 2000},
			{ID: uuid.NewString(), Name: "Car Loan", Amount: 450},
			{ID: uuid.NewString(), Name: "Groceries", Amount: 800},
			{ID: uuid.NewString(), Name: "Utilities", Amount: 300},
		},
	}
}

func newMonthPeriod(m time.Month, year int) models.Period {
	return models.Period{
		ID:            uuid.NewString(),
		Name:          fmt.Sprintf("%s %d", m.String(), year),
		WeeklySales:   make([]float64, models.WeeksInMonth(m)),
		Inventory:     models.InventoryCost{Type: models.InventoryCostAmount},
		OtherExpenses: []models.OtherExpense{},
	}
}

// EnsureCurrentPeriod appends the period for the month containing now, if the
// portfolio does not have it yet, and makes it the active one. It reports
// whether a period was added, so the rollover job stays idempotent within a
// month.
func (s *Service) EnsureCurrentPeriod(ctx context.Context, userID string, now time.Time) (bool, error) {
	name := fmt.Sprintf("%s %d", now.Month().String(), now.Year())

	added := false
	err := s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		for _, p := range state.Periods {
			if p.Name == name {
				return nil
			}
		}
		period := newMonthPeriod(now.Month(), now.Year())
		state.Periods = append(state.Periods, period)
		state.ActivePeriodID = period.ID
		added = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if added {
		s.logger.Info("rolled portfolio into new month",
			zap.String("user_id", userID),
			zap.String("period", name))
	}
	return added, nil
}

// PersonalFinances builds the owner-side budget summary from the active
// period's owner cut and the personal expense lines.
func (s *Service) PersonalFinances(ctx context.Context, userID string) (models.PersonalSummary, error) {
	state, err := s.loadOrSeed(ctx, userID)
	if err != nil {
		return models.PersonalSummary{}, err
	}

	dash := metrics.Aggregate(state.Periods, state.FeeConfig, state.StaffCosts, state.ActivePeriodID)

	var total float64
	for _, exp := range state.PersonalExpenses {
		total += exp.Amount
	}

	return models.PersonalSummary{
		OwnerCut:              dash.Active.OwnerCut,
		TotalPersonalExpenses: total,
		Disposable:            dash.Active.OwnerCut - total,
		Expenses:              state.PersonalExpenses,
	}, nil
}

// AnnualReport recomputes every period and rolls the results into yearly
// totals for the report page and the spreadsheet export.
func (s *Service) AnnualReport(ctx context.Context, userID string) (models.AnnualReport, error) {
	state, err := s.loadOrSeed(ctx, userID)
	if err != nil {
		return models.AnnualReport{}, err
	}

	report := models.AnnualReport{Rows: make([]models.AnnualReportRow, 0, len(state.Periods))}
	for _, period := range state.Periods {
		m := metrics.Compute(period, state.FeeConfig, state.StaffCosts)
		report.Rows = append(report.Rows, models.AnnualReportRow{
			PeriodID:    period.ID,
			Name:        period.Name,
			Sales:       m.TotalSales,
			GrossProfit: m.GrossProfit,
			NetProfit:   m.NetEarningsAfterStaff,
			OwnerCut:    m.OwnerCut,
		})
		report.TotalSales += m.TotalSales
		report.TotalGrossProfit += m.GrossProfit
		report.TotalNetProfit += m.NetEarningsAfterStaff
	}
	return report, nil
}
