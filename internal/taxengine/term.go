package taxengine

import (
	"time"
)

// A position becomes long-term once held strictly more than 365 days,
// i.e. on day 366. Holding exactly 365 days is still short-term.
const longTermThresholdDays = 365

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HoldingDays returns the whole-day calendar delta between purchase and
// as-of, ignoring time of day.
func HoldingDays(purchaseDate, asOf time.Time) int {
	return int(midnightUTC(asOf).Sub(midnightUTC(purchaseDate)).Hours() / 24)
}

// IsLongTerm is the single long-term predicate for the whole engine. The
// estimator, the disposal simulator and the harvest scan all route through
// it so the 365/366 boundary cannot drift between call sites.
func IsLongTerm(purchaseDate, asOf time.Time) bool {
	return HoldingDays(purchaseDate, asOf) > longTermThresholdDays
}

// DaysToLongTerm returns how many days remain until the lot crosses the
// long-term threshold, and 0 once it has.
func DaysToLongTerm(purchaseDate, asOf time.Time) int {
	remaining := longTermThresholdDays - HoldingDays(purchaseDate, asOf)
	if remaining < 0 {
		return 0
	}
	return remaining
}
