package models

import "time"

// PortfolioState is the full editable state for one user: every period plus the
// current fee policy, staff roster and personal budget. It is loaded and saved
// as a single document; the metrics engine only ever sees read-only snapshots
// of its collections.
type PortfolioState struct {
	UserID           string            `bson:"_id" json:"userId"`
	Periods          []Period          `bson:"periods" json:"periods"`
	ActivePeriodID   string            `bson:"active_period_id" json:"activePeriodId"`
	FeeConfig        FeeConfig         `bson:"fee_config" json:"feeConfig"`
	StaffCosts       []StaffCost       `bson:"staff_costs" json:"staffCosts"`
	PersonalExpenses []PersonalExpense `bson:"personal_expenses" json:"personalExpenses"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updatedAt"`
}

// FindPeriod returns a pointer into Periods for the given id, or nil.
func (s *PortfolioState) FindPeriod(id string) *Period {
	for i := range s.Periods {
		if s.Periods[i].ID == id {
			return &s.Periods[i]
		}
	}
	return nil
}
