package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
	"github.com/SawSimonLinn/BizBoost/pkg/clients/anthropic"
)

// ErrUnavailable is returned when no LLM client is configured.
var ErrUnavailable = errors.New("ai insights are not configured")

// Service turns the current portfolio numbers into prompt inputs for the
// advisory flows. It only ever reads derived metrics; the engine's outputs are
// the sole bridge between the financial core and the LLM.
type Service struct {
	portfolioSvc *portfolio.Service
	ai           anthropic.Client
	logger       *zap.Logger
}

// NewService wires a new insights service. A nil client disables all flows.
func NewService(portfolioSvc *portfolio.Service, ai anthropic.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{portfolioSvc: portfolioSvc, ai: ai, logger: logger}
}

// Enabled reports whether an LLM client is configured.
func (s *Service) Enabled() bool {
	return s.ai != nil
}

// CostSavings asks the advisor for savings opportunities based on the active
// period's expense breakdown.
func (s *Service) CostSavings(ctx context.Context, userID string) (anthropic.CostSavingsResult, error) {
	if s.ai == nil {
		return anthropic.CostSavingsResult{}, ErrUnavailable
	}

	state, err := s.portfolioSvc.Portfolio(ctx, userID)
	if err != nil {
		return anthropic.CostSavingsResult{}, err
	}
	dash, err := s.portfolioSvc.Dashboard(ctx, userID, "")
	if err != nil {
		return anthropic.CostSavingsResult{}, err
	}

	var otherExpenses []string
	if active := state.FindPeriod(dash.ActivePeriodID); active != nil {
		for _, exp := range active.OtherExpenses {
			otherExpenses = append(otherExpenses, fmt.Sprintf("%s: %.2f", exp.Name, exp.Amount))
		}
	}
	otherLine := "none"
	if len(otherExpenses) > 0 {
		otherLine = strings.Join(otherExpenses, "; ")
	}

	input := anthropic.CostSavingsInput{
		Revenue:         dash.Active.TotalSales,
		RoyaltyFee:      dash.Active.RoyaltyFee,
		StaffCost:       dash.Active.StaffCost,
		InventoryCost:   dash.Active.InventoryCostValue,
		OtherExpenses:   otherLine,
		PeriodsAnalyzed: len(dash.History),
	}

	result, err := s.ai.SuggestCostSavings(ctx, input)
	if err != nil {
		s.logger.Error("cost savings flow failed", zap.Error(err))
		return anthropic.CostSavingsResult{}, err
	}
	return result, nil
}

// FocusAreas asks the advisor which levers to pull, given the full historical
// series.
func (s *Service) FocusAreas(ctx context.Context, userID string) (anthropic.FocusAreasResult, error) {
	if s.ai == nil {
		return anthropic.FocusAreasResult{}, ErrUnavailable
	}

	dash, err := s.portfolioSvc.Dashboard(ctx, userID, "")
	if err != nil {
		return anthropic.FocusAreasResult{}, err
	}

	serialized, err := json.Marshal(dash.History)
	if err != nil {
		return anthropic.FocusAreasResult{}, fmt.Errorf("serialize history: %w", err)
	}

	result, err := s.ai.SuggestFocusAreas(ctx, anthropic.FocusAreasInput{PeriodsData: string(serialized)})
	if err != nil {
		s.logger.Error("focus areas flow failed", zap.Error(err))
		return anthropic.FocusAreasResult{}, err
	}
	return result, nil
}

// TargetSales asks the advisor for a sales target that reaches the owner's
// desired take-home pay.
func (s *Service) TargetSales(ctx context.Context, userID string, desiredTakeHome float64) (anthropic.TargetSalesResult, error) {
	if s.ai == nil {
		return anthropic.TargetSalesResult{}, ErrUnavailable
	}

	dash, err := s.portfolioSvc.Dashboard(ctx, userID, "")
	if err != nil {
		return anthropic.TargetSalesResult{}, err
	}

	var csv strings.Builder
	csv.WriteString("period,sales\n")
	for _, point := range dash.History {
		fmt.Fprintf(&csv, "%s,%.2f\n", point.Name, point.Sales)
	}

	input := anthropic.TargetSalesInput{
		PastSalesData:      csv.String(),
		DesiredTakeHomePay: desiredTakeHome,
	}

	result, err := s.ai.GenerateTargetSales(ctx, input)
	if err != nil {
		s.logger.Error("target sales flow failed", zap.Error(err))
		return anthropic.TargetSalesResult{}, err
	}
	return result, nil
}
