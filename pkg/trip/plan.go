package trip

import (
	"sort"

	"tableflip.dev/trip/pkg/daterange"
)

// DayPlan is the activities scheduled on one day of the trip, ordered by time.
type DayPlan struct {
	Day        daterange.Day
	Activities []Activity
}

// Past reports whether the whole day is before today.
func (p DayPlan) Past(today daterange.Day) bool {
	return p.Day.Before(today)
}

// GroupByDay buckets activities by the local day they occur on. When window is
// closed on both sides every day of it gets an entry, even without activities;
// activities outside the window still get their own day.
func GroupByDay(activities []Activity, window daterange.Bounds) []DayPlan {
	byDay := map[daterange.Day][]Activity{}
	for _, a := range activities {
		d := daterange.DayOf(local(a.OccursAt))
		byDay[d] = append(byDay[d], a)
	}

	if !window.Min.IsZero() && !window.Max.IsZero() {
		for d := window.Min; !d.After(window.Max); d = d.AddDays(1) {
			if _, ok := byDay[d]; !ok {
				byDay[d] = nil
			}
		}
	}

	plans := make([]DayPlan, 0, len(byDay))
	for d, as := range byDay {
		sort.SliceStable(as, func(i, j int) bool {
			return as[i].OccursAt.Before(as[j].OccursAt)
		})
		plans = append(plans, DayPlan{Day: d, Activities: as})
	}
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].Day.Before(plans[j].Day)
	})
	return plans
}
