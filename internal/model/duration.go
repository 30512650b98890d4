package model

import (
	"fmt"
	"math/big"
)

// Time unit lengths in seconds. A month is approximated as 30 days and a
// year as 365 days, matching the coarse-grained nature of the estimate.
const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
	secondsPerMonth  = 30 * secondsPerDay
	secondsPerYear   = 365 * secondsPerDay
)

// breakTimeUnit describes one bucket of the break-time formatter: the
// upper bound of the bucket and the unit the duration is expressed in.
type breakTimeUnit struct {
	limit    int64
	unit     int64
	singular string
	plural   string
}

// breakTimeUnits is walked in order until the duration fits a bucket.
// There is deliberately no "days" bucket: anything between an hour and a
// month reads better as hours or weeks for this kind of estimate.
var breakTimeUnits = []breakTimeUnit{
	{secondsPerMinute, 1, "second", "seconds"},
	{secondsPerHour, secondsPerMinute, "minute", "minutes"},
	{secondsPerDay, secondsPerHour, "hour", "hours"},
	{secondsPerMonth, secondsPerWeek, "week", "weeks"},
	{secondsPerYear, secondsPerMonth, "month", "months"},
}

// FormatBreakTime renders an estimated break time in seconds as a
// human-readable duration:
//
//	< 1 second  -> "instant"
//	< 1 minute  -> N second(s)
//	< 1 hour    -> N minute(s)
//	< 1 day     -> N hour(s)
//	< ~1 month  -> N week(s)
//	< ~1 year   -> N month(s)
//	otherwise   -> N year(s)
//
// The count stays exact even when it no longer fits a machine word, which
// happens quickly for long passwords.
func FormatBreakTime(seconds *big.Float) string {
	if seconds == nil {
		return ""
	}

	if seconds.Cmp(big.NewFloat(1)) < 0 {
		return "instant"
	}

	for _, bucket := range breakTimeUnits {
		if seconds.Cmp(big.NewFloat(float64(bucket.limit))) < 0 {
			return formatDuration(seconds, bucket.unit, bucket.singular, bucket.plural)
		}
	}

	return formatDuration(seconds, secondsPerYear, "year", "years")
}

// formatDuration divides seconds by the unit length and renders the
// truncated count with the matching singular or plural word.
func formatDuration(seconds *big.Float, unit int64, singular, plural string) string {
	quotient := new(big.Float).Quo(seconds, big.NewFloat(float64(unit)))
	count, _ := quotient.Int(nil)

	word := plural
	if count.Cmp(big.NewInt(1)) == 0 {
		word = singular
	}
	return fmt.Sprintf("%s %s", count.String(), word)
}
