package types

type CompoundingFrequency string

const (
	CompoundingDaily   CompoundingFrequency = "DAILY"
	CompoundingWeekly  CompoundingFrequency = "WEEKLY"
	CompoundingMonthly CompoundingFrequency = "MONTHLY"
	CompoundingYearly  CompoundingFrequency = "YEARLY"
)

func (f CompoundingFrequency) String() string {
	return string(f)
}

// PeriodsPerYear returns the number of compounding periods in a year,
// 0 for unknown frequencies.
func (f CompoundingFrequency) PeriodsPerYear() int {
	switch f {
	case CompoundingDaily:
		return 365
	case CompoundingWeekly:
		return 52
	case CompoundingMonthly:
		return 12
	case CompoundingYearly:
		return 1
	default:
		return 0
	}
}
