package views

import (
	"testing"
	"time"

	"canvas-engine/internal/domain/artifact"
)

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestGroupByDate(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "morning", createdAt: at(2025, 6, 10, 9)}),
		buildArtifact(artifactSpec{title: "evening", createdAt: at(2025, 6, 10, 21)}),
		buildArtifact(artifactSpec{title: "earlier day", createdAt: at(2025, 6, 8, 12)}),
	}

	tl := GroupByDate(artifacts, nil)

	if tl.Total != 3 {
		t.Errorf("Total = %d, want 3", tl.Total)
	}
	if len(tl.Groups) != 2 {
		t.Fatalf("Groups = %d, want 2", len(tl.Groups))
	}

	// Newest day first
	if tl.Groups[0].Day != "2025-06-10" || tl.Groups[1].Day != "2025-06-08" {
		t.Errorf("day order: %s, %s", tl.Groups[0].Day, tl.Groups[1].Day)
	}

	// Newest artifact first within a day
	day := tl.Groups[0].Artifacts
	if len(day) != 2 || day[0].Title.String() != "evening" || day[1].Title.String() != "morning" {
		t.Errorf("within-day order: %v", titles(day))
	}
}

func TestGroupByDate_EveryArtifactInExactlyOneGroup(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "a", createdAt: at(2025, 1, 1, 0)}),
		buildArtifact(artifactSpec{title: "b", createdAt: at(2025, 1, 2, 0)}),
		buildArtifact(artifactSpec{title: "c", createdAt: at(2025, 1, 2, 23)}),
	}

	tl := GroupByDate(artifacts, nil)

	seen := make(map[string]int)
	grouped := 0
	for _, g := range tl.Groups {
		for _, a := range g.Artifacts {
			seen[a.ID.String()]++
			grouped++
		}
	}
	if grouped != len(artifacts) {
		t.Errorf("grouped %d artifacts, want %d", grouped, len(artifacts))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("artifact %s appears %d times", id, n)
		}
	}
}

func TestGroupByDate_ZoneChangesBuckets(t *testing.T) {
	// 01:00 UTC on June 10 is still June 9 in a UTC-2 zone
	zone := time.FixedZone("west", -2*60*60)
	a := buildArtifact(artifactSpec{title: "late night", createdAt: at(2025, 6, 10, 1)})

	tl := GroupByDate([]*artifact.Artifact{a}, zone)

	if len(tl.Groups) != 1 || tl.Groups[0].Day != "2025-06-09" {
		t.Errorf("expected bucket 2025-06-09, got %v", tl.Groups)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	tl := GroupByDate(nil, nil)
	if tl.Total != 0 || len(tl.Groups) != 0 {
		t.Errorf("empty input: %+v", tl)
	}
}
