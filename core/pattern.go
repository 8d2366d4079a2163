package core

import (
	"math"
	"time"

	"github.com/gitpulse/gitpulse/schema"
)

// Classification thresholds. These boundaries are observable behavior and
// must not drift.
const (
	minClassifiableCommits = 5

	dayStartHour = 9  // inclusive, UTC
	dayEndHour   = 18 // exclusive, UTC

	dayWorkerDayRatio       = 0.7
	dayWorkerWeekendCeiling = 0.3
	moonlighterNightRatio   = 0.6
	moonlighterWeekendRatio = 0.4
)

// ClassifyWorkPattern derives a work-pattern label and confidence from one
// contributor's full timestamp list. It is a pure function; it needs the
// whole sample because the decision runs on full-sample ratios.
//
// A weekend commit counts in both the weekend tally and the day-or-night
// tally for its hour: the two dimensions are tracked independently.
func ClassifyWorkPattern(times []time.Time) schema.WorkPattern {
	var day, night, weekend uint

	for _, t := range times {
		t = t.UTC()
		if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekend++
		}
		if h := t.Hour(); h >= dayStartHour && h < dayEndHour {
			day++
		} else {
			night++
		}
	}

	pattern := schema.WorkPattern{
		PatternType:    schema.UnknownPattern,
		DayCommits:     day,
		NightCommits:   night,
		WeekendCommits: weekend,
	}

	total := len(times)
	if total < minClassifiableCommits {
		return pattern // confidence stays 0.0
	}

	dayRatio := float64(day) / float64(total)
	nightRatio := float64(night) / float64(total)
	weekendRatio := float64(weekend) / float64(total)

	switch {
	case dayRatio >= dayWorkerDayRatio && weekendRatio < dayWorkerWeekendCeiling:
		pattern.PatternType = schema.DayWorkerPattern
		pattern.Confidence = dayRatio
	case nightRatio >= moonlighterNightRatio || weekendRatio >= moonlighterWeekendRatio:
		pattern.PatternType = schema.MoonlighterPattern
		pattern.Confidence = math.Min(1.0, nightRatio+0.5*weekendRatio)
	default:
		pattern.PatternType = schema.MixedPattern
		pattern.Confidence = 1.0 - math.Abs(dayRatio-nightRatio)
	}
	return pattern
}

// HourlyDistribution buckets timestamps into an hour-of-day histogram.
func HourlyDistribution(times []time.Time) map[int]uint {
	hourly := make(map[int]uint)
	for _, t := range times {
		hourly[t.UTC().Hour()]++
	}
	return hourly
}
