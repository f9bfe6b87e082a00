package views

import (
	"testing"
	"time"

	"canvas-engine/internal/domain/artifact"
	"canvas-engine/internal/domain/relationship"
	"canvas-engine/internal/domain/shared"
)

func link(source, target *artifact.Artifact, relType relationship.Type, confidence shared.Confidence) *relationship.Relationship {
	return relationship.Reconstruct(shared.NewRelationshipID(), source.ID, target.ID,
		relType, confidence, "", time.Now(), "user-1")
}

func mustConfidence(t *testing.T, value int) shared.Confidence {
	t.Helper()
	c, err := shared.NewConfidence(value)
	if err != nil {
		t.Fatalf("NewConfidence(%d): %v", value, err)
	}
	return c
}

func TestBuildGraph_GridPlacement(t *testing.T) {
	artifacts := make([]*artifact.Artifact, 7)
	for i := range artifacts {
		artifacts[i] = buildArtifact(artifactSpec{title: "node"})
	}

	g := BuildGraph(artifacts, nil, GraphOptions{RowWidth: 3, CellWidth: 100, CellHeight: 50})

	if len(g.Nodes) != 7 {
		t.Fatalf("Nodes = %d, want 7", len(g.Nodes))
	}

	// 3 per row: index 4 sits at column 1, row 1
	if g.Nodes[4].X != 100 || g.Nodes[4].Y != 50 {
		t.Errorf("node 4 at (%d, %d), want (100, 50)", g.Nodes[4].X, g.Nodes[4].Y)
	}
	// index 6 starts the third row
	if g.Nodes[6].X != 0 || g.Nodes[6].Y != 100 {
		t.Errorf("node 6 at (%d, %d), want (0, 100)", g.Nodes[6].X, g.Nodes[6].Y)
	}
}

func TestBuildGraph_EdgeStyling(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "a"})
	b := buildArtifact(artifactSpec{title: "b"})

	tests := []struct {
		name         string
		relType      relationship.Type
		confidence   shared.Confidence
		wantWeight   shared.WeightClass
		wantAnimated bool
		wantLabel    string
	}{
		{name: "strong builds-on", relType: relationship.TypeBuildsOn,
			confidence: mustConfidence(t, 95), wantWeight: shared.WeightStrong, wantAnimated: true, wantLabel: "Builds On"},
		{name: "boundary 80 is moderate", relType: relationship.TypeCites,
			confidence: mustConfidence(t, 80), wantWeight: shared.WeightModerate, wantLabel: "Cites"},
		{name: "boundary 40 is weak", relType: relationship.TypeReferences,
			confidence: mustConfidence(t, 40), wantWeight: shared.WeightWeak, wantLabel: "References"},
		{name: "unset confidence is weak", relType: relationship.TypeDerivesFrom,
			confidence: shared.NoConfidence(), wantWeight: shared.WeightWeak, wantAnimated: true, wantLabel: "Derives From"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := BuildGraph([]*artifact.Artifact{a, b},
				[]*relationship.Relationship{link(a, b, tt.relType, tt.confidence)}, GraphOptions{})

			if len(g.Edges) != 1 {
				t.Fatalf("Edges = %d, want 1", len(g.Edges))
			}
			e := g.Edges[0]
			if e.Weight != tt.wantWeight {
				t.Errorf("Weight = %s, want %s", e.Weight, tt.wantWeight)
			}
			if e.Animated != tt.wantAnimated {
				t.Errorf("Animated = %v, want %v", e.Animated, tt.wantAnimated)
			}
			if e.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", e.Label, tt.wantLabel)
			}
		})
	}
}

func TestBuildGraph_RelationshipCountSymmetry(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "a"})
	b := buildArtifact(artifactSpec{title: "b"})
	c := buildArtifact(artifactSpec{title: "c"})

	relationships := []*relationship.Relationship{
		link(a, b, relationship.TypeCites, shared.NoConfidence()),
		link(a, c, relationship.TypeReferences, shared.NoConfidence()),
		link(b, c, relationship.TypeRelatedTo, shared.NoConfidence()),
	}

	g := BuildGraph([]*artifact.Artifact{a, b, c}, relationships, GraphOptions{})

	total := 0
	for _, n := range g.Nodes {
		total += n.RelationshipCount
	}
	if total != 2*len(g.Edges) {
		t.Errorf("count sum = %d, want %d", total, 2*len(g.Edges))
	}
	if g.Nodes[0].RelationshipCount != 2 {
		t.Errorf("node a count = %d, want 2", g.Nodes[0].RelationshipCount)
	}
}

func TestBuildGraph_DropsDanglingEdges(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "a"})
	b := buildArtifact(artifactSpec{title: "b"})
	ghost := buildArtifact(artifactSpec{title: "ghost"})

	relationships := []*relationship.Relationship{
		link(a, b, relationship.TypeCites, shared.NoConfidence()),
		link(a, ghost, relationship.TypeCites, shared.NoConfidence()),
	}

	// ghost is not part of the artifact list
	g := BuildGraph([]*artifact.Artifact{a, b}, relationships, GraphOptions{})

	if len(g.Edges) != 1 {
		t.Errorf("Edges = %d, want 1", len(g.Edges))
	}
	if g.Dropped != 1 {
		t.Errorf("Dropped = %d, want 1", g.Dropped)
	}
	// The dropped edge must not inflate any count
	if g.Nodes[0].RelationshipCount != 1 {
		t.Errorf("node a count = %d, want 1", g.Nodes[0].RelationshipCount)
	}
}

func TestBuildGraph_ToleratesSelfLinks(t *testing.T) {
	a := buildArtifact(artifactSpec{title: "loops back"})
	self := relationship.Reconstruct(shared.NewRelationshipID(), a.ID, a.ID,
		relationship.TypeRelatedTo, shared.NoConfidence(), "", time.Now(), "user-1")

	g := BuildGraph([]*artifact.Artifact{a}, []*relationship.Relationship{self}, GraphOptions{})

	if count := g.Nodes[0].RelationshipCount; count != 2 {
		t.Errorf("self link must contribute 2 to its artifact's count, got %d", count)
	}
	if len(g.Edges) != 1 || g.Dropped != 0 {
		t.Errorf("self link must render, not drop: %+v", g)
	}
}

func TestBuildGraph_DefaultOptions(t *testing.T) {
	artifacts := make([]*artifact.Artifact, 6)
	for i := range artifacts {
		artifacts[i] = buildArtifact(artifactSpec{title: "node"})
	}

	g := BuildGraph(artifacts, nil, GraphOptions{})

	// Default row width is 5, so index 5 wraps to the second row
	if g.Nodes[5].X != 0 || g.Nodes[5].Y != defaultCellHeight {
		t.Errorf("node 5 at (%d, %d), want (0, %d)", g.Nodes[5].X, g.Nodes[5].Y, defaultCellHeight)
	}
}
