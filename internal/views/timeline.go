package views

import (
	"sort"
	"time"

	"canvas-engine/internal/domain/artifact"
)

// dayKeyFormat renders a calendar-day bucket key
const dayKeyFormat = "2006-01-02"

// TimelineGroup holds every artifact created on one calendar day.
type TimelineGroup struct {
	// Day is the bucket key in YYYY-MM-DD form
	Day string `json:"day"`
	// Date is midnight of the bucket day in the grouping zone
	Date time.Time `json:"date"`
	// Artifacts are ordered newest first within the day
	Artifacts []*artifact.Artifact `json:"artifacts"`
}

// Timeline is the chronological view model: day groups, newest day first.
type Timeline struct {
	Groups []TimelineGroup `json:"groups"`
	Total  int             `json:"total"`
}

// GroupByDate buckets artifacts into calendar days by CreatedAt, evaluated in
// the given zone (UTC when nil). Days are ordered newest first and artifacts
// within a day newest first. Every input artifact lands in exactly one group.
func GroupByDate(artifacts []*artifact.Artifact, zone *time.Location) Timeline {
	if zone == nil {
		zone = time.UTC
	}

	buckets := make(map[string][]*artifact.Artifact)
	for _, a := range artifacts {
		key := a.CreatedAt.In(zone).Format(dayKeyFormat)
		buckets[key] = append(buckets[key], a)
	}

	groups := make([]TimelineGroup, 0, len(buckets))
	for key, members := range buckets {
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].CreatedAt.After(members[j].CreatedAt)
		})
		date, _ := time.ParseInLocation(dayKeyFormat, key, zone)
		groups = append(groups, TimelineGroup{Day: key, Date: date, Artifacts: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day > groups[j].Day
	})

	return Timeline{Groups: groups, Total: len(artifacts)}
}
