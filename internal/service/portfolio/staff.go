package portfolio

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/SawSimonLinn/BizBoost/internal/domain/models"
)

// StaffInput carries raw staff form data before it becomes a tagged roster
// record. Hours/WageRate apply to hourly staff, Salary to salaried staff;
// whichever set is inactive is discarded during normalization.
type StaffInput struct {
	EmployeeName string             `json:"employeeName" binding:"required"`
	PaymentType  models.PaymentType `json:"paymentType" binding:"required"`
	Hours        float64            `json:"hours"`
	WageRate     float64            `json:"wageRate"`
	Salary       float64            `json:"salary"`
}

func (in StaffInput) toRecord(id string) (models.StaffCost, error) {
	record := models.StaffCost{ID: id, EmployeeName: in.EmployeeName, PaymentType: in.PaymentType}

	switch in.PaymentType {
	case models.PaymentHourly:
		if in.Hours < 0 || in.WageRate < 0 {
			return models.StaffCost{}, fmt.Errorf("%w: hours and wage rate must not be negative", ErrInvalidInput)
		}
		record.Hourly = &models.HourlyPay{Hours: in.Hours, WageRate: in.WageRate}
	case models.PaymentSalary:
		if in.Salary < 0 {
			return models.StaffCost{}, fmt.Errorf("%w: salary must not be negative", ErrInvalidInput)
		}
		record.Salaried = &models.SalariedPay{Salary: in.Salary}
	default:
		return models.StaffCost{}, fmt.Errorf("%w: unknown payment type %q", ErrInvalidInput, in.PaymentType)
	}

	return record, nil
}

// AddStaff appends a staffing line to the current roster.
func (s *Service) AddStaff(ctx context.Context, userID string, input StaffInput) (models.StaffCost, error) {
	record, err := input.toRecord(uuid.NewString())
	if err != nil {
		return models.StaffCost{}, err
	}

	err = s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		state.StaffCosts = append(state.StaffCosts, record)
		return nil
	})
	if err != nil {
		return models.StaffCost{}, err
	}
	return record, nil
}

// UpdateStaff replaces an existing roster line, keeping its id.
func (s *Service) UpdateStaff(ctx context.Context, userID, staffID string, input StaffInput) (models.StaffCost, error) {
	record, err := input.toRecord(staffID)
	if err != nil {
		return models.StaffCost{}, err
	}

	err = s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		for i := range state.StaffCosts {
			if state.StaffCosts[i].ID == staffID {
				state.StaffCosts[i] = record
				return nil
			}
		}
		return ErrStaffNotFound
	})
	if err != nil {
		return models.StaffCost{}, err
	}
	return record, nil
}

// RemoveStaff drops a line from the roster.
func (s *Service) RemoveStaff(ctx context.Context, userID, staffID string) error {
	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		for i := range state.StaffCosts {
			if state.StaffCosts[i].ID == staffID {
				state.StaffCosts = append(state.StaffCosts[:i], state.StaffCosts[i+1:]...)
				return nil
			}
		}
		return ErrStaffNotFound
	})
}

// AddPersonalExpense appends an owner-side budget line.
func (s *Service) AddPersonalExpense(ctx context.Context, userID, name string, amount float64) (models.PersonalExpense, error) {
	if name == "" {
		return models.PersonalExpense{}, fmt.Errorf("%w: expense name must not be empty", ErrInvalidInput)
	}
	if amount < 0 {
		return models.PersonalExpense{}, fmt.Errorf("%w: expense amount must not be negative", ErrInvalidInput)
	}

	expense := models.PersonalExpense{ID: uuid.NewString(), Name: name, Amount: amount}
	err := s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		state.PersonalExpenses = append(state.PersonalExpenses, expense)
		return nil
	})
	if err != nil {
		return models.PersonalExpense{}, err
	}
	return expense, nil
}

// RemovePersonalExpense deletes an owner-side budget line.
func (s *Service) RemovePersonalExpense(ctx context.Context, userID, expenseID string) error {
	return s.mutate(ctx, userID, func(state *models.PortfolioState) error {
		for i := range state.PersonalExpenses {
			if state.PersonalExpenses[i].ID == expenseID {
				state.PersonalExpenses = append(state.PersonalExpenses[:i], state.PersonalExpenses[i+1:]...)
				return nil
			}
		}
		return ErrExpenseNotFound
	})
}
