package models

// FeeConfig is the per-user fee policy applied to every period. RoyaltyPercent
// is conceptually 0-100 but deliberately not clamped.
type FeeConfig struct {
	RoyaltyPercent float64 `bson:"royalty_percent" json:"royaltyPercent"`
}

// PersonalExpense is an owner-side budget line. It feeds the personal-finance
// summary only and never enters the franchise metrics.
type PersonalExpense struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
}
