package models

// InventoryCostType discriminates how a period's inventory cost is expressed.
type InventoryCostType string

const (
	// InventoryCostAmount means the value is a flat dollar figure.
	InventoryCostAmount InventoryCostType = "amount"
	// InventoryCostPercent means the value is a percentage of the period's total sales.
	InventoryCostPercent InventoryCostType = "percent"
)

// InventoryCost is the cost-of-goods policy for a period. The same numeric value
// means different things depending on the tag, so it is resolved exactly once
// via Resolve and never read raw by downstream math.
type InventoryCost struct {
	Type  InventoryCostType `bson:"type" json:"type"`
	Value float64           `bson:"value" json:"value"`
}

// Resolve converts the policy into a concrete dollar amount for the given sales total.
func (c InventoryCost) Resolve(totalSales float64) float64 {
	if c.Type == InventoryCostPercent {
		return totalSales * c.Value / 100
	}
	return c.Value
}

// OtherExpense is an ad-hoc named expense line attached to a period.
type OtherExpense struct {
	ID     string  `bson:"id" json:"id"`
	Name   string  `bson:"name" json:"name"`
	Amount float64 `bson:"amount" json:"amount"`
}

// Period is one accounting interval, typically a calendar month. WeeklySales
// holds one entry per sales week; its length is fixed at creation time and only
// changes through an explicit resize that redistributes the existing total.
type Period struct {
	ID            string         `bson:"id" json:"id"`
	Name          string         `bson:"name" json:"name"`
	WeeklySales   []float64      `bson:"weekly_sales" json:"weeklySales"`
	Inventory     InventoryCost  `bson:"inventory" json:"inventoryCost"`
	OtherExpenses []OtherExpense `bson:"other_expenses" json:"otherExpenses"`
}
