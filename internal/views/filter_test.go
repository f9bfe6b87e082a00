package views

import (
	"testing"
	"time"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/shared"
)

type artifactSpec struct {
	title       string
	artType     artifact.Type
	description string
	content     string
	tags        []string
	collections []string
	createdAt   time.Time
}

func buildArtifact(s artifactSpec) *artifact.Artifact {
	if s.artType == "" {
		s.artType = artifact.TypeNote
	}
	if s.createdAt.IsZero() {
		s.createdAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	ids := make([]shared.CollectionID, len(s.collections))
	for i, id := range s.collections {
		ids[i] = shared.CollectionID(id)
	}
	title, _ := shared.NewTitle(s.title)
	return artifact.Reconstruct(shared.NewArtifactID(), s.artType, title,
		s.description, s.content, "", "", shared.NewTags(s.tags...), ids,
		s.createdAt, s.createdAt, "user-1", nil)
}

func titles(artifacts []*artifact.Artifact) []string {
	out := make([]string, len(artifacts))
	for i, a := range artifacts {
		out[i] = a.Title.String()
	}
	return out
}

func TestFilterArtifacts_Query(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "Neural Networks Survey"}),
		buildArtifact(artifactSpec{title: "Budget", description: "network costs"}),
		buildArtifact(artifactSpec{title: "Scan results", tags: []string{"X-Ray"}}),
		buildArtifact(artifactSpec{title: "Unrelated"}),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "title match is case-insensitive", query: "NEURAL", want: []string{"Neural Networks Survey"}},
		{name: "description matches too", query: "network", want: []string{"Neural Networks Survey", "Budget"}},
		{name: "substring of a tag matches", query: "x", want: []string{"Scan results"}},
		{name: "empty query matches all", query: "", want: []string{"Neural Networks Survey", "Budget", "Scan results", "Unrelated"}},
		{name: "no match", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(FilterArtifacts(artifacts, Criteria{Query: tt.query}))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFilterArtifacts_CombinedCriteria(t *testing.T) {
	collID := shared.CollectionID("papers")
	mid := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "Match", artType: artifact.TypeDocument,
			tags: []string{"ml"}, collections: []string{"papers"}, createdAt: mid}),
		buildArtifact(artifactSpec{title: "Wrong type", artType: artifact.TypeNote,
			tags: []string{"ml"}, collections: []string{"papers"}, createdAt: mid}),
		buildArtifact(artifactSpec{title: "Wrong collection", artType: artifact.TypeDocument,
			tags: []string{"ml"}, createdAt: mid}),
		buildArtifact(artifactSpec{title: "Too old", artType: artifact.TypeDocument,
			tags: []string{"ml"}, collections: []string{"papers"},
			createdAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}),
	}

	after := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	got := FilterArtifacts(artifacts, Criteria{
		Types:        []artifact.Type{artifact.TypeDocument},
		Tags:         []string{"ml"},
		CollectionID: &collID,
		CreatedAfter: &after,
	})

	if len(got) != 1 || got[0].Title.String() != "Match" {
		t.Errorf("combined criteria: got %v, want [Match]", titles(got))
	}
}

func TestFilterArtifacts_TagsAreOrWithin(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "First", tags: []string{"alpha"}}),
		buildArtifact(artifactSpec{title: "Second", tags: []string{"beta"}}),
		buildArtifact(artifactSpec{title: "Neither", tags: []string{"gamma"}}),
	}

	got := FilterArtifacts(artifacts, Criteria{Tags: []string{"alpha", "beta"}})
	if len(got) != 2 {
		t.Errorf("tag OR semantics: got %v, want [First Second]", titles(got))
	}
}

func TestFilterArtifacts_DateBoundsInclusive(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	a := buildArtifact(artifactSpec{title: "On the boundary", createdAt: day})

	got := FilterArtifacts([]*artifact.Artifact{a}, Criteria{CreatedAfter: &day, CreatedBefore: &day})
	if len(got) != 1 {
		t.Error("bounds must be inclusive")
	}
}

func TestFilterArtifacts_PreservesInput(t *testing.T) {
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "A"}),
		buildArtifact(artifactSpec{title: "B"}),
	}
	_ = FilterArtifacts(artifacts, Criteria{Query: "a"})

	if artifacts[0].Title.String() != "A" || artifacts[1].Title.String() != "B" {
		t.Error("input slice must not be mutated")
	}
}

func TestSortArtifacts(t *testing.T) {
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "banana", artType: artifact.TypeNote, createdAt: t2}),
		buildArtifact(artifactSpec{title: "Apple", artType: artifact.TypeCode, createdAt: t3}),
		buildArtifact(artifactSpec{title: "cherry", artType: artifact.TypeDocument, createdAt: t1}),
	}

	tests := []struct {
		name string
		key  SortKey
		want []string
	}{
		{name: "created newest first", key: SortByCreated, want: []string{"Apple", "banana", "cherry"}},
		{name: "title ignores case", key: SortByTitle, want: []string{"Apple", "banana", "cherry"}},
		{name: "type ascending", key: SortByType, want: []string{"Apple", "cherry", "banana"}},
		{name: "unknown key falls back to created", key: SortKey("bogus"), want: []string{"Apple", "banana", "cherry"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(SortArtifacts(artifacts, tt.key))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("got %v, want %v", got, tt.want)
					break
				}
			}
		})
	}

	// The original slice keeps its order
	if artifacts[0].Title.String() != "banana" {
		t.Error("SortArtifacts must not mutate its input")
	}
}

func TestSortArtifacts_Stable(t *testing.T) {
	same := time.Date(2025, 5, 5, 0, 0, 0, 0, time.UTC)
	artifacts := []*artifact.Artifact{
		buildArtifact(artifactSpec{title: "first in", createdAt: same}),
		buildArtifact(artifactSpec{title: "second in", createdAt: same}),
		buildArtifact(artifactSpec{title: "third in", createdAt: same}),
	}

	got := titles(SortArtifacts(artifacts, SortByCreated))
	want := []string{"first in", "second in", "third in"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("equal keys must keep input order: got %v", got)
		}
	}
}
