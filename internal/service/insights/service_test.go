package insights

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
	"github.com/SawSimonLinn/BizBoost/internal/repository/mongodb"
	"github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
	"github.com/SawSimonLinn/BizBoost/pkg/clients/anthropic"
)

type stubRepo struct {
	state models.PortfolioState
}

func (r *stubRepo) LoadPortfolio(_ context.Context, userID string) (models.PortfolioState, error) {
	if userID != r.state.UserID {
		return models.PortfolioState{}, mongodb.ErrPortfolioNotFound
	}
	return r.state, nil
}

func (r *stubRepo) SavePortfolio(_ context.Context, state models.PortfolioState) error {
	r.state = state
	return nil
}

func (r *stubRepo) ListUserIDs(_ context.Context) ([]string, error) {
	return []string{r.state.UserID}, nil
}

type capturingAI struct {
	costSavings *anthropic.CostSavingsInput
	focusAreas  *anthropic.FocusAreasInput
	targetSales *anthropic.TargetSalesInput
}

func (c *capturingAI) SuggestCostSavings(_ context.Context, input anthropic.CostSavingsInput) (anthropic.CostSavingsResult, error) {
	c.costSavings = &input
	return anthropic.CostSavingsResult{Suggestions: "renegotiate the royalty"}, nil
}

func (c *capturingAI) SuggestFocusAreas(_ context.Context, input anthropic.FocusAreasInput) (anthropic.FocusAreasResult, error) {
	c.focusAreas = &input
	return anthropic.FocusAreasResult{FocusAreaSuggestion: "weekend promos"}, nil
}

func (c *capturingAI) GenerateTargetSales(_ context.Context, input anthropic.TargetSalesInput) (anthropic.TargetSalesResult, error) {
	c.targetSales = &input
	return anthropic.TargetSalesResult{TargetSales: 30000, Reasoning: "covers fixed costs"}, nil
}

func testState() models.PortfolioState {
	return models.PortfolioState{
		UserID: "owner-1",
		Periods: []models.Period{
			{ID: "p1", Name: "July 2026", WeeklySales: []float64{4000, 4000, 4000, 4000}},
			{
				ID:          "p2",
				Name:        "August 2026",
				WeeklySales: []float64{5000, 5100, 5200, 5300},
				Inventory:   models.InventoryCost{Type: models.InventoryCostPercent, Value: 22},
				OtherExpenses: []models.OtherExpense{
					{ID: "e1", Name: "signage", Amount: 300},
				},
			},
		},
		ActivePeriodID: "p2",
		FeeConfig:      models.FeeConfig{RoyaltyPercent: 36},
		StaffCosts: []models.StaffCost{
			{ID: "s1", EmployeeName: "John Doe", PaymentType: models.PaymentHourly, Hourly: &models.HourlyPay{Hours: 160, WageRate: 20}},
		},
	}
}

func newTestService(ai anthropic.Client) *Service {
	repo := &stubRepo{state: testState()}
	return NewService(portfolio.NewService(repo, nil), ai, nil)
}

func TestCostSavingsSnapshotsActivePeriod(t *testing.T) {
	ai := &capturingAI{}
	svc := newTestService(ai)

	result, err := svc.CostSavings(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Equal(t, "renegotiate the royalty", result.Suggestions)

	require.NotNil(t, ai.costSavings)
	require.Equal(t, 20600.0, ai.costSavings.Revenue)
	require.Equal(t, 7416.0, ai.costSavings.RoyaltyFee)
	require.Equal(t, 3200.0, ai.costSavings.StaffCost)
	require.Equal(t, 4532.0, ai.costSavings.InventoryCost)
	require.Equal(t, "signage: 300.00", ai.costSavings.OtherExpenses)
	require.Equal(t, 2, ai.costSavings.PeriodsAnalyzed)
}

func TestFocusAreasSendsHistoricalSeries(t *testing.T) {
	ai := &capturingAI{}
	svc := newTestService(ai)

	result, err := svc.FocusAreas(context.Background(), "owner-1")
	require.NoError(t, err)
	require.Equal(t, "weekend promos", result.FocusAreaSuggestion)

	require.NotNil(t, ai.focusAreas)
	require.Contains(t, ai.focusAreas.PeriodsData, `"name":"July"`)
	require.Contains(t, ai.focusAreas.PeriodsData, `"name":"August"`)
	require.Contains(t, ai.focusAreas.PeriodsData, `"Sales":20600`)
}

func TestTargetSalesBuildsCSV(t *testing.T) {
	ai := &capturingAI{}
	svc := newTestService(ai)

	result, err := svc.TargetSales(context.Background(), "owner-1", 5000)
	require.NoError(t, err)
	require.Equal(t, 30000.0, result.TargetSales)

	require.NotNil(t, ai.targetSales)
	require.Equal(t, 5000.0, ai.targetSales.DesiredTakeHomePay)
	lines := strings.Split(strings.TrimSpace(ai.targetSales.PastSalesData), "\n")
	require.Equal(t, []string{"period,sales", "July,16000.00", "August,20600.00"}, lines)
}

func TestFlowsDisabledWithoutClient(t *testing.T) {
	svc := newTestService(nil)
	require.False(t, svc.Enabled())

	_, err := svc.CostSavings(context.Background(), "owner-1")
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = svc.FocusAreas(context.Background(), "owner-1")
	require.ErrorIs(t, err, ErrUnavailable)
	_, err = svc.TargetSales(context.Background(), "owner-1", 1000)
	require.ErrorIs(t, err, ErrUnavailable)
}
