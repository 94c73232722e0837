package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
	"github.com/SawSimonLinn/BizBoost/internal/repository/mongodb"
	"github.com/SawSimonLinn/BizBoost/internal/service/metrics"
)

// Sentinel errors the HTTP layer maps to status codes.
var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrPeriodNotFound  = errors.New("period not found")
	ErrStaffNotFound   = errors.New("staff record not found")
	ErrExpenseNotFound = errors.New("expense not found")
)

// Service owns the load-mutate-save cycle around the portfolio repository.
// All financial math is delegated to the metrics package; this layer enforces
// boundary validation so the engine can stay total and unvalidated.
type Service struct {
	repo   mongodb.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new portfolio service instance.
func NewService(repo mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Portfolio returns the user's full editable state, seeding a fresh portfolio
// on first visit.
func (s *Service) Portfolio(ctx context.Context, userID string) (models.PortfolioState, error) {
	return s.loadOrSeed(ctx, userID)
}

// Dashboard aggregates the portfolio into the active period's metrics plus the
// historical trend series. An explicit periodID overrides the stored selection;
// an unknown id falls back to the most recent period.
func (s *Service) Dashboard(ctx context.Context, userID, periodID string) (models.Dashboard, error) {
	state, err := s.loadOrSeed(ctx, userID)
	if err != nil {
		return models.Dashboard{}, err
	}

	if periodID == "" {
		periodID = state.ActivePeriodID
	}
	return metrics.Aggregate(state.Periods, state.FeeConfig, state.StaffCosts, periodID), nil
}

// CreatePeriod appends a new accounting period with the given week count and
// marks it active.
func (s *Service) CreatePeriod(ctx context.Context, userID, name string, weeks int) (models.Period, error) {
	if name == "" {
		return models.Period{}, fmt.Errorf("%w: period name must not be empty", ErrInvalidInput)
	}
	if weeks < 1 || weeks > 6 {
		return models.Period{}, fmt.Errorf("%w: week count %d out of range", ErrInvalidInput, weeks)
	}

	period := models.Period{
		ID:            uuid.NewString(),
		Name:          name,
		WeeklySales:   make([]float64, weeks),
		Inventory:     models.InventoryCost{Type: models.InventoryCostAmount},
		OtherExpenses: []models.OtherExpense{},
	}

	err := s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		state.Periods = append(state.Periods, period)
		state.ActivePeriodID = period.ID
		return nil
	})
	if err != nil {
		return models.Period{}, err
	}
	return period, nil
}

// SetWeeklySales replaces a period's weekly sales figures. The number of weeks
// is fixed at creation; a mismatched length is rejected rather than silently
// resizing the period.
func (s *Service) SetWeeklySales(ctx context.Context, userID, periodID string, sales []float64) error {
	for _, v := range sales {
		if v < 0 {
			return fmt.Errorf("%w: weekly sales must not be negative", ErrInvalidInput)
		}
	}

	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		period := state.FindPeriod(periodID)
		if period == nil {
			return ErrPeriodNotFound
		}
		if len(sales) != len(period.WeeklySales) {
			return fmt.Errorf("%w: period has %d weeks, got %d values; use the resize operation to change week count",
				ErrInvalidInput, len(period.WeeklySales), len(sales))
		}
		period.WeeklySales = append([]float64(nil), sales...)
		return nil
	})
}

// SetInventoryCost updates a period's cost-of-goods policy.
func (s *Service) SetInventoryCost(ctx context.Context, userID, periodID string, cost models.InventoryCost) error {
	if cost.Type != models.InventoryCostAmount && cost.Type != models.InventoryCostPercent {
		return fmt.Errorf("%w: unknown inventory cost type %q", ErrInvalidInput, cost.Type)
	}
	if cost.Value < 0 {
		return fmt.Errorf("%w: inventory cost must not be negative", ErrInvalidInput)
	}

	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		period := state.FindPeriod(periodID)
		if period == nil {
			return ErrPeriodNotFound
		}
		period.Inventory = cost
		return nil
	})
}

// ResizeWeeks changes a period's week count, spreading the existing sales total
// evenly across the new weeks so the period total is preserved.
func (s *Service) ResizeWeeks(ctx context.Context, userID, periodID string, weeks int) error {
	if weeks < 1 || weeks > 6 {
		return fmt.Errorf("%w: week count %d out of range", ErrInvalidInput, weeks)
	}

	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		period := state.FindPeriod(periodID)
		if period == nil {
			return ErrPeriodNotFound
		}

		var total float64
		for _, v := range period.WeeklySales {
			total += v
		}

		resized := make([]float64, weeks)
		perWeek := total / float64(weeks)
		for i := range resized {
			resized[i] = perWeek
		}
		period.WeeklySales = resized
		return nil
	})
}

// AddOtherExpense attaches an ad-hoc expense line to a period.
func (s *Service) AddOtherExpense(ctx context.Context, userID, periodID, name string, amount float64) (models.OtherExpense, error) {
	if name == "" {
		return models.OtherExpense{}, fmt.Errorf("%w: expense name must not be empty", ErrInvalidInput)
	}
	if amount < 0 {
		return models.OtherExpense{}, fmt.Errorf("%w: expense amount must not be negative", ErrInvalidInput)
	}

	expense := models.OtherExpense{ID: uuid.NewString(), Name: name, Amount: amount}
	err := s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		period := state.FindPeriod(periodID)
		if period == nil {
			return ErrPeriodNotFound
		}
		period.OtherExpenses = append(period.OtherExpenses, expense)
		return nil
	})
	if err != nil {
		return models.OtherExpense{}, err
	}
	return expense, nil
}

// RemoveOtherExpense deletes an expense line from a period.
func (s *Service) RemoveOtherExpense(ctx context.Context, userID, periodID, expenseID string) error {
	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		period := state.FindPeriod(periodID)
		if period == nil {
			return ErrPeriodNotFound
		}
		for i, exp := range period.OtherExpenses {
			if exp.ID == expenseID {
				period.OtherExpenses = append(period.OtherExpenses[:i], period.OtherExpenses[i+1:]...)
				return nil
			}
		}
		return ErrExpenseNotFound
	})
}

// SetActivePeriod records which period the dashboard should focus on.
func (s *Service) SetActivePeriod(ctx context.Context, userID, periodID string) error {
	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		if state.FindPeriod(periodID) == nil {
			return ErrPeriodNotFound
		}
		state.ActivePeriodID = periodID
		return nil
	})
}

// SetRoyaltyPercent updates the fee policy. The value is intentionally not
// clamped to 0-100; the stored figure is applied verbatim.
func (s *Service) SetRoyaltyPercent(ctx context.Context, userID string, percent float64) error {
	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		state.FeeConfig.RoyaltyPercent = percent
		return nil
	})
}

func (s *Service) mutate(ctx context.Context, userID string, fn func(state *models.PortfolioState) error) error {
	state, err := s.loadOrSeed(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(&state); err != nil {
		return err
	}
	if err := s.repo.SavePortfolio(ctx, state); err != nil {
		return err
	}
	return nil
}

func (s *Service) loadOrSeed(ctx context.Context, userID string) (models.PortfolioState, error) {
	state, err := s.repo.LoadPortfolio(ctx, userID)
	if errors.Is(err, mongodb.ErrPortfolioNotFound) {
		state = s.seedPortfolio(userID, s.now())
		if saveErr := s.repo.SavePortfolio(ctx, state); saveErr != nil {
			return models.PortfolioState{}, saveErr
		}
		s.logger.Info("seeded new portfolio",
			zap.String("user_id", userID),
			zap.Int("periods", len(state.Periods)))
		return state, nil
	}
	if err != nil {
		return models.PortfolioState{}, err
	}
	return state, nil
}
