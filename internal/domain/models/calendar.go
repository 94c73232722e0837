package models

import "time"

// weeksByMonth is the franchise accounting calendar: each month is split into
// 4 or 5 sales weeks following the brand's reporting convention.
var weeksByMonth = [12]int{4, 4, 5, 4, 4, 5, 4, 4, 5, 4, 4, 5}

// WeeksInMonth returns the number of sales weeks for a calendar month.
func WeeksInMonth(m time.Month) int {
	return weeksByMonth[m-1]
}
