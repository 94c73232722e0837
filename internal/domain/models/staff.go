package models

// PaymentType enumerates how a staff member is paid.
type PaymentType string

const (
	PaymentHourly PaymentType = "hourly"
	PaymentSalary PaymentType = "salary"
)

// HourlyPay is the payload for hourly staff.
type HourlyPay struct {
	Hours    float64 `bson:"hours" json:"hours"`
	WageRate float64 `bson:"wage_rate" json:"wageRate"`
}

// SalariedPay is the payload for salaried staff.
type SalariedPay struct {
	Salary float64 `bson:"salary" json:"salary"`
}

// StaffCost is one line of the current staff roster. Exactly one payload shape
// applies, selected by PaymentType; the inactive pointer stays nil so an hourly
// record can never carry a salary.
type StaffCost struct {
	ID           string       `bson:"id" json:"id"`
	EmployeeName string       `bson:"employee_name" json:"employeeName"`
	PaymentType  PaymentType  `bson:"payment_type" json:"paymentType"`
	Hourly       *HourlyPay   `bson:"hourly,omitempty" json:"hourly,omitempty"`
	Salaried     *SalariedPay `bson:"salaried,omitempty" json:"salaried,omitempty"`
}

// Cost returns the monthly dollar cost of the record. A missing payload counts
// as zero rather than an error.
func (s StaffCost) Cost() float64 {
	switch s.PaymentType {
	case PaymentHourly:
		if s.Hourly == nil {
			return 0
		}
		return s.Hourly.Hours * s.Hourly.WageRate
	case PaymentSalary:
		if s.Salaried == nil {
			return 0
		}
		return s.Salaried.Salary
	default:
		return 0
	}
}
